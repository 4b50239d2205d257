package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO tarjetas de resumen del dashboard.
type DashboardMetricsDTO struct {
	TotalProducts    int             `json:"total_products"`
	LowStockItems    int             `json:"low_stock_items"` // critical + warning
	TotalValue       decimal.Decimal `json:"total_value"`     // Σ stock × costo promedio del libro
	RecentMovements  int             `json:"recent_movements"` // ventana de 7 días calendario
	PendingPurchases int             `json:"pending_purchases"`
	ActiveSuppliers  int             `json:"active_suppliers"`
}

// DayBucketDTO conteo de entradas/salidas de un día calendario local.
type DayBucketDTO struct {
	Day     string `json:"day"` // etiqueta corta del día, ej. "lun"
	Date    string `json:"date"` // YYYY-MM-DD
	Entries int    `json:"entries"`
	Exits   int    `json:"exits"`
}

// CategoryRollupDTO agregado por categoría de producto.
type CategoryRollupDTO struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"` // Σ stock actual
	Value    decimal.Decimal `json:"value"`    // Σ stock × costo promedio del libro
}

// StockStatusCountsDTO productos por estado de stock (gráfico de torta).
type StockStatusCountsDTO struct {
	Normal   int `json:"normal"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
}

// DashboardResponse view-model completo del dashboard.
type DashboardResponse struct {
	Metrics         DashboardMetricsDTO  `json:"metrics"`
	MovementsByDay  []DayBucketDTO       `json:"movements_by_day"`
	StockStatus     StockStatusCountsDTO `json:"stock_status"`
	Categories      []CategoryRollupDTO  `json:"categories"`
	RecentMovements []MovementResponse   `json:"recent_movements"`
}

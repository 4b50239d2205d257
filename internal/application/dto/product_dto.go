package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Unit         string `json:"unit" validate:"required"`
	Category     string `json:"category" validate:"required"`
	MinStock     int    `json:"min_stock" validate:"min=0"`
	CurrentStock int    `json:"current_stock" validate:"min=0"`
	Location     string `json:"location"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
// CurrentStock no aparece: el stock solo lo mutan los movimientos.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Category    *string `json:"category,omitempty"`
	MinStock    *int    `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	Location    *string `json:"location,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Unit         string    `json:"unit"`
	Category     string    `json:"category"`
	MinStock     int       `json:"min_stock"`
	CurrentStock int       `json:"current_stock"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"` // critical | warning | normal
	StockPercent int       `json:"stock_percent"`
	LastUpdated  time.Time `json:"last_updated"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

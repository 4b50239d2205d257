// Package analytics construye los view-models del dashboard. Los builders son
// funciones puras sobre colecciones completas; el caso de uso solo hace la
// lectura concurrente y el ensamblado.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	dominv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

// Etiquetas cortas de día indexadas por time.Weekday (domingo = 0).
var dayLabels = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// dayWindow cantidad de días calendario que cubre el gráfico de movimientos.
const dayWindow = 7

// MovementsByDay agrupa las cantidades de entradas y salidas en los últimos
// siete días calendario de la zona horaria de now, incluido el día de now.
// Los cortes son a medianoche local: un movimiento a las 23:59 y otro a las
// 00:00 del día siguiente caen en cubetas distintas aunque los separen
// segundos. La cubeta se resuelve por fecha calendario, no por horas
// transcurridas: un día de 23 horas por cambio de horario no corre los
// cortes. Devuelve siempre siete cubetas en orden cronológico, con ceros
// donde no hubo movimientos.
func MovementsByDay(movements []entity.StockMovement, now time.Time) []dto.DayBucketDTO {
	loc := now.Location()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -(dayWindow - 1))

	buckets := make([]dto.DayBucketDTO, dayWindow)
	byDate := make(map[string]int, dayWindow)
	for i := range buckets {
		day := start.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		buckets[i] = dto.DayBucketDTO{
			Day:  dayLabels[day.Weekday()],
			Date: date,
		}
		byDate[date] = i
	}

	for i := range movements {
		m := &movements[i]
		idx, ok := byDate[m.Date.In(loc).Format("2006-01-02")]
		if !ok {
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntry:
			buckets[idx].Entries += m.Quantity
		case entity.MovementTypeExit:
			buckets[idx].Exits += m.Quantity
		}
	}
	return buckets
}

// CategoryRollup agrega cantidad y valor monetario por categoría. El valor
// por producto es stock × costo promedio del libro de ese producto; los
// productos sin entradas con precio aportan valor cero, nunca un precio
// inventado. Las categorías salen ordenadas por valor descendente implícito
// en el orden de inserción del catálogo; el frontend reordena a gusto.
func CategoryRollup(products []*entity.Product, movements []entity.StockMovement) []dto.CategoryRollupDTO {
	index := make(map[string]int)
	var rollup []dto.CategoryRollupDTO

	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "sin categoría"
		}
		i, ok := index[category]
		if !ok {
			i = len(rollup)
			index[category] = i
			rollup = append(rollup, dto.CategoryRollupDTO{Category: category, Value: decimal.Zero})
		}
		summary := dominv.Aggregate(movements, p.ID, p.CurrentStock)
		rollup[i].Quantity += p.CurrentStock
		rollup[i].Value = rollup[i].Value.Add(
			summary.AverageCost.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
	}
	return rollup
}

// StockStatusCounts cuenta productos por estado de stock.
func StockStatusCounts(products []*entity.Product) dto.StockStatusCountsDTO {
	var counts dto.StockStatusCountsDTO
	for _, p := range products {
		switch dominv.Classify(p.CurrentStock, p.MinStock) {
		case dominv.StatusCritical:
			counts.Critical++
		case dominv.StatusWarning:
			counts.Warning++
		default:
			counts.Normal++
		}
	}
	return counts
}

// Metrics arma las tarjetas de resumen. TotalValue reutiliza el rollup por
// categoría para no agregar el libro dos veces.
func Metrics(
	products []*entity.Product,
	movements []entity.StockMovement,
	purchases []*entity.Purchase,
	suppliers []*entity.Supplier,
	now time.Time,
) dto.DashboardMetricsDTO {
	counts := StockStatusCounts(products)

	totalValue := decimal.Zero
	for _, c := range CategoryRollup(products, movements) {
		totalValue = totalValue.Add(c.Value)
	}

	loc := now.Location()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -(dayWindow - 1))
	recent := 0
	for i := range movements {
		if !movements[i].Date.In(loc).Before(windowStart) {
			recent++
		}
	}

	pending := 0
	for _, p := range purchases {
		if p.Status == entity.PurchaseStatusPending {
			pending++
		}
	}

	active := 0
	for _, s := range suppliers {
		if s.Active {
			active++
		}
	}

	return dto.DashboardMetricsDTO{
		TotalProducts:    len(products),
		LowStockItems:    counts.Critical + counts.Warning,
		TotalValue:       totalValue,
		RecentMovements:  recent,
		PendingPurchases: pending,
		ActiveSuppliers:  active,
	}
}

// Package inventory contiene la lógica de dominio del libro de movimientos:
// agregación de stock derivado y clasificación de estado de stock.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Summary valores derivados del libro de movimientos para un producto.
// InitialStock es una reconstrucción (CurrentStock − Entries + Exits), no un
// valor almacenado: puede ser negativo si el stock fue editado por fuera del
// libro, y en ese caso se muestra tal cual como señal de desvío.
type Summary struct {
	Entries           int
	Exits             int
	InitialStock      int
	AverageCost       decimal.Decimal
	LastPurchasePrice decimal.Decimal
}

// Aggregate recorre el historial completo de movimientos (sin paginar; la
// corrección exige el libro entero) y calcula los valores derivados para el
// producto indicado. Función pura: no muta el slice de entrada y es segura de
// invocar en cada render.
//
//   - Entries/Exits: suma de cantidades por tipo.
//   - AverageCost: media ponderada por cantidad de los precios unitarios de
//     las entradas con precio; las entradas sin precio no cuentan ni en el
//     numerador ni en el denominador. Cero si no hay entradas con precio.
//   - LastPurchasePrice: precio unitario de la entrada con precio más
//     reciente por fecha de negocio; empates por CreatedAt descendente cuando
//     ambos lo traen, si no por orden de llegada.
func Aggregate(movements []entity.StockMovement, productID string, currentStock int) Summary {
	var (
		entries, exits int
		pricedQty      int64
		pricedValue    = decimal.Zero
		last           *entity.StockMovement
	)

	for i := range movements {
		m := &movements[i]
		if m.ProductID != productID {
			continue
		}
		switch m.Type {
		case entity.MovementTypeEntry:
			entries += m.Quantity
			if m.UnitPrice != nil {
				pricedQty += int64(m.Quantity)
				pricedValue = pricedValue.Add(m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity))))
				if last == nil || moreRecentPurchase(m, last) {
					last = m
				}
			}
		case entity.MovementTypeExit:
			exits += m.Quantity
		}
	}

	avg := decimal.Zero
	if pricedQty > 0 {
		avg = pricedValue.Div(decimal.NewFromInt(pricedQty))
	}
	lastPrice := decimal.Zero
	if last != nil {
		lastPrice = *last.UnitPrice
	}

	return Summary{
		Entries:           entries,
		Exits:             exits,
		InitialStock:      currentStock - entries + exits,
		AverageCost:       avg,
		LastPurchasePrice: lastPrice,
	}
}

// moreRecentPurchase decide si la entrada candidata desplaza a la actual como
// "última compra": fecha de negocio posterior, o misma fecha con CreatedAt
// posterior (cuando ambas lo traen).
func moreRecentPurchase(candidate, current *entity.StockMovement) bool {
	if candidate.Date.After(current.Date) {
		return true
	}
	if !candidate.Date.Equal(current.Date) {
		return false
	}
	if candidate.CreatedAt != nil && current.CreatedAt != nil {
		return candidate.CreatedAt.After(*current.CreatedAt)
	}
	return false
}

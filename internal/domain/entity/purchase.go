package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusApproved  = "approved"
	PurchaseStatusDelivered = "delivered"
	PurchaseStatusCancelled = "cancelled"
)

// Purchase es el agregado de orden de compra: cabecera + líneas.
// TotalValue se recalcula con PurchaseTotal en cada escritura, nunca se
// arrastra un total cacheado junto a ítems mutables.
type Purchase struct {
	ID                   string
	Date                 time.Time
	SupplierID           string
	SupplierName         string
	Items                []PurchaseItem
	Discount             decimal.Decimal // descuento a nivel de cabecera, >= 0
	TotalValue           decimal.Decimal
	Status               string
	DocumentNumber       string
	Notes                string
	ExpectedDeliveryDate *time.Time
	CreatedBy            string
}

// PurchaseItem línea de una orden de compra.
type PurchaseItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity × UnitPrice
}

// PurchaseTotal calcula el total de la orden: Σ qty×unitPrice − descuento.
// El descuento se aplica una sola vez a nivel de cabecera.
func PurchaseTotal(items []PurchaseItem, discount decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromInt(int64(it.Quantity)).Mul(it.UnitPrice))
	}
	return total.Sub(discount)
}

// ValidPurchaseStatus verifica que el estado sea uno de los conocidos.
func ValidPurchaseStatus(s string) bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusApproved, PurchaseStatusDelivered, PurchaseStatusCancelled:
		return true
	}
	return false
}

// CanTransitionPurchase valida una transición de estado de la orden.
// delivered y cancelled son estados terminales.
func CanTransitionPurchase(from, to string) bool {
	if !ValidPurchaseStatus(from) || !ValidPurchaseStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	switch from {
	case PurchaseStatusDelivered, PurchaseStatusCancelled:
		return false
	}
	return true
}

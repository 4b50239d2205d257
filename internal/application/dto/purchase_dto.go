package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de una orden de compra entrante.
type PurchaseItemRequest struct {
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseRequest body para POST /api/purchases.
// El total no se acepta del cliente: siempre se recalcula de las líneas.
type CreatePurchaseRequest struct {
	Date                 time.Time             `json:"date" validate:"required"`
	SupplierID           string                `json:"supplier_id" validate:"required"`
	Items                []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount             decimal.Decimal       `json:"discount"`
	DocumentNumber       string                `json:"document_number,omitempty"`
	Notes                string                `json:"notes,omitempty"`
	ExpectedDeliveryDate *time.Time            `json:"expected_delivery_date,omitempty"`
}

// UpdatePurchaseStatusRequest body para PATCH /api/purchases/:id/status.
type UpdatePurchaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved delivered cancelled"`
}

// PurchaseItemResponse línea de una orden en respuestas.
type PurchaseItemResponse struct {
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// PurchaseResponse representación HTTP de una orden de compra.
type PurchaseResponse struct {
	ID                   string                 `json:"id"`
	Date                 time.Time              `json:"date"`
	SupplierID           string                 `json:"supplier_id,omitempty"`
	SupplierName         string                 `json:"supplier_name,omitempty"`
	Items                []PurchaseItemResponse `json:"items"`
	Discount             decimal.Decimal        `json:"discount"`
	TotalValue           decimal.Decimal        `json:"total_value"`
	Status               string                 `json:"status"`
	DocumentNumber       string                 `json:"document_number,omitempty"`
	Notes                string                 `json:"notes,omitempty"`
	ExpectedDeliveryDate *time.Time             `json:"expected_delivery_date,omitempty"`
}

// PurchaseListResponse listado de órdenes de compra.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Total int                `json:"total"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
// Para entradas: UnitPrice y SupplierID opcionales.
// Para salidas: RequestedBy, Department y Reason opcionales.
type RegisterMovementRequest struct {
	Date           time.Time        `json:"date" validate:"required"`
	Type           string           `json:"type" validate:"required,oneof=entry exit"`
	ProductID      string           `json:"product_id" validate:"required"`
	Quantity       int              `json:"quantity" validate:"required,gt=0"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	SupplierID     string           `json:"supplier_id,omitempty"`
	DocumentNumber string           `json:"document_number,omitempty"`
	RequestedBy    string           `json:"requested_by,omitempty"`
	Department     string           `json:"department,omitempty"`
	Reason         string           `json:"reason,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// MovementResponse representación HTTP de un asiento del libro.
type MovementResponse struct {
	ID             string           `json:"id"`
	Date           time.Time        `json:"date"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"`
	Type           string           `json:"type"`
	ProductID      string           `json:"product_id"`
	ProductName    string           `json:"product_name,omitempty"`
	Quantity       int              `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	TotalValue     *decimal.Decimal `json:"total_value,omitempty"`
	SupplierID     string           `json:"supplier_id,omitempty"`
	SupplierName   string           `json:"supplier_name,omitempty"`
	DocumentNumber string           `json:"document_number,omitempty"`
	RequestedBy    string           `json:"requested_by,omitempty"`
	Department     string           `json:"department,omitempty"`
	Reason         string           `json:"reason,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// MovementListResponse listado de movimientos por recencia.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// LedgerSummaryResponse valores derivados del libro para un producto.
type LedgerSummaryResponse struct {
	ProductID         string          `json:"product_id"`
	Entries           int             `json:"entries"`
	Exits             int             `json:"exits"`
	InitialStock      int             `json:"initial_stock"`
	CurrentStock      int             `json:"current_stock"`
	AverageCost       decimal.Decimal `json:"average_cost"`
	LastPurchasePrice decimal.Decimal `json:"last_purchase_price"`
}

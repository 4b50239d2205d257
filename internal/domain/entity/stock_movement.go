package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock (value object conceptual).
const (
	MovementTypeEntry = "entry" // entrada
	MovementTypeExit  = "exit"  // salida
)

// StockMovement es un asiento inmutable del libro de movimientos (append-only).
// Date es la fecha de negocio; CreatedAt la hora de inserción en el sistema y
// se usa para ordenar por recencia cuando está presente.
type StockMovement struct {
	ID             string
	Date           time.Time
	CreatedAt      *time.Time
	Type           string // entry | exit
	ProductID      string
	ProductName    string
	Quantity       int              // siempre > 0
	UnitPrice      *decimal.Decimal // solo entradas; costo de adquisición
	TotalValue     *decimal.Decimal // solo entradas; Quantity × UnitPrice
	SupplierID     string           // solo entradas
	SupplierName   string
	DocumentNumber string
	RequestedBy    string // solo salidas
	Department     string // solo salidas
	Reason         string // solo salidas
	Notes          string
	CreatedBy      string
}

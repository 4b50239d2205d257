package entity

import "time"

// Tipos y estados de movimiento de treliças (préstamo de equipos).
const (
	TrussMovementWithdrawal = "withdrawal" // retirada
	TrussMovementReturn     = "return"     // devolución

	TrussStatusActive   = "active"   // retirada pendiente de devolución
	TrussStatusReturned = "returned" // devuelta
)

// Truss representa una treliça/andamio del control de préstamos.
// MaxStock es la capacidad total del inventario; CurrentStock lo disponible.
type Truss struct {
	ID           string
	Code         string
	Name         string
	Description  string
	Unit         string
	Category     string
	MaxStock     int
	CurrentStock int
	Location     string
	LastUpdated  time.Time
	CreatedBy    string
}

// TrussMovement es el asiento del libro de préstamos: retiradas y devoluciones.
// Status vive en la retirada (active → returned); las devoluciones nacen returned.
type TrussMovement struct {
	ID                 string
	Date               time.Time
	CreatedAt          *time.Time
	Type               string // withdrawal | return
	TrussID            string
	TrussName          string
	Quantity           int
	TakenBy            string
	ServiceDescription string
	Notes              string
	Status             string // active | returned
	CreatedBy          string
}

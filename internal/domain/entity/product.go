package entity

import "time"

// Product representa un producto o material del catálogo del almacén.
// CurrentStock es la cantidad autoritativa denormalizada: solo la mutan los
// movimientos de stock, nunca el CRUD del catálogo.
type Product struct {
	ID           string
	Code         string // código único
	Name         string
	Description  string
	Unit         string // resma, caja, unidad...
	Category     string
	MinStock     int // umbral de reposición
	CurrentStock int
	Location     string
	LastUpdated  time.Time
	CreatedBy    string
	UpdatedBy    string
}

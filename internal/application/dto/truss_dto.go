package dto

import "time"

// CreateTrussRequest body para POST /api/trusses.
type CreateTrussRequest struct {
	Code         string `json:"code" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Unit         string `json:"unit" validate:"required"`
	Category     string `json:"category" validate:"required"`
	MaxStock     int    `json:"max_stock" validate:"min=0"`
	CurrentStock int    `json:"current_stock" validate:"min=0"`
	Location     string `json:"location,omitempty"`
}

// RegisterTrussMovementRequest body para POST /api/trusses/movements.
type RegisterTrussMovementRequest struct {
	Date               time.Time `json:"date" validate:"required"`
	Type               string    `json:"type" validate:"required,oneof=withdrawal return"`
	TrussID            string    `json:"truss_id" validate:"required"`
	Quantity           int       `json:"quantity" validate:"required,gt=0"`
	TakenBy            string    `json:"taken_by,omitempty"`
	ServiceDescription string    `json:"service_description,omitempty"`
	Notes              string    `json:"notes,omitempty"`
}

// TrussResponse representación HTTP de una treliça.
type TrussResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Unit         string    `json:"unit"`
	Category     string    `json:"category"`
	MaxStock     int       `json:"max_stock"`
	CurrentStock int       `json:"current_stock"`
	Location     string    `json:"location,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
}

// TrussMovementResponse asiento del libro de préstamos en respuestas.
type TrussMovementResponse struct {
	ID                 string     `json:"id"`
	Date               time.Time  `json:"date"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	Type               string     `json:"type"`
	TrussID            string     `json:"truss_id"`
	TrussName          string     `json:"truss_name,omitempty"`
	Quantity           int        `json:"quantity"`
	TakenBy            string     `json:"taken_by,omitempty"`
	ServiceDescription string     `json:"service_description,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	Status             string     `json:"status"`
}

// TrussListResponse listado de treliças.
type TrussListResponse struct {
	Items []TrussResponse `json:"items"`
	Total int             `json:"total"`
}

// TrussMovementListResponse listado de movimientos de treliças.
type TrussMovementListResponse struct {
	Items []TrussMovementResponse `json:"items"`
	Total int                     `json:"total"`
}

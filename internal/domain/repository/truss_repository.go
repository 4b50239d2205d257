package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// TrussRepository puerto de persistencia para treliças.
type TrussRepository interface {
	Create(t *entity.Truss) error
	GetByID(id string) (*entity.Truss, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Truss, error)
	UpdateStock(trussID string, newStock int) error
	List() ([]*entity.Truss, error)
	Delete(id string) error
}

// TrussMovementRepository puerto del libro de préstamos de treliças.
// Los asientos solo mutan su estado (active → returned).
type TrussMovementRepository interface {
	Create(m *entity.TrussMovement) error
	GetByID(id string) (*entity.TrussMovement, error)
	List() ([]entity.TrussMovement, error)
	UpdateStatus(id, status string) error
}

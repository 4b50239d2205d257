package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// MovementRepository puerto de persistencia del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(m *entity.StockMovement) error
	// List devuelve el historial completo, fecha de negocio descendente.
	// La agregación del libro exige el historial sin paginar.
	List() ([]entity.StockMovement, error)
	ListByProduct(productID string) ([]entity.StockMovement, error)
}

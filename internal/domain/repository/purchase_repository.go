package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// PurchaseRepository puerto de persistencia para órdenes de compra.
// Create persiste cabecera y líneas juntas; las órdenes solo mutan su estado.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	List() ([]*entity.Purchase, error)
	UpdateStatus(id, status string) error
}

package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List devuelve el catálogo completo ordenado por nombre: los agregadores de
// dashboard e inventario trabajan sobre colecciones enteras, sin paginar.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, newStock int, updatedBy string) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}

// Package usecase contiene los casos de uso CRUD de catálogo, proveedores,
// compras y usuarios. Los casos de uso con lógica propia de inventario viven
// en paquetes dedicados (inventory, analytics, truss, auth).
package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	dominv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	bus         *events.Bus
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, bus *events.Bus) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, bus: bus}
}

// Create da de alta un producto. El código es único: un duplicado devuelve
// ErrDuplicate sin escribir nada.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.productRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		Category:     in.Category,
		MinStock:     in.MinStock,
		CurrentStock: in.CurrentStock,
		Location:     in.Location,
		LastUpdated:  time.Now(),
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableProducts)
	resp := toProductResponse(product)
	return &resp, nil
}

// GetByID devuelve un producto con su estado de stock derivado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update modifica los campos editables del catálogo. CurrentStock queda fuera
// a propósito: el stock solo lo mutan los movimientos.
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	product.LastUpdated = time.Now()
	product.UpdatedBy = userID

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableProducts)
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto del catálogo. Borrado duro: el historial de
// movimientos conserva el nombre denormalizado del producto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.bus.Publish(events.TableProducts)
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Unit:         p.Unit,
		Category:     p.Category,
		MinStock:     p.MinStock,
		CurrentStock: p.CurrentStock,
		Location:     p.Location,
		Status:       string(dominv.Classify(p.CurrentStock, p.MinStock)),
		StockPercent: dominv.StockPercent(p.CurrentStock, p.MinStock),
		LastUpdated:  p.LastUpdated,
	}
}

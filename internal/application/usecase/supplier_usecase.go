package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	bus          *events.Bus
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository, bus *events.Bus) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, bus: bus}
}

// Create da de alta un proveedor. Código duplicado devuelve ErrDuplicate.
func (uc *SupplierUseCase) Create(userID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := uc.supplierRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		TradeName: in.TradeName,
		CNPJ:      in.CNPJ,
		Contact:   in.Contact,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Active:    in.Active,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableSuppliers)
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// GetByID devuelve un proveedor.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// List devuelve todos los proveedores, activos e inactivos. El filtro de
// activos es cosa de los formularios que los seleccionan.
func (uc *SupplierUseCase) List() (*dto.SupplierListResponse, error) {
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// Update modifica los campos del proveedor; nil no toca el campo.
// Desactivar (Active=false) conserva al proveedor en el historial pero lo
// saca de los formularios de entrada y compra.
func (uc *SupplierUseCase) Update(userID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.TradeName != nil {
		supplier.TradeName = *in.TradeName
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.City != nil {
		supplier.City = *in.City
	}
	if in.State != nil {
		supplier.State = *in.State
	}
	if in.ZipCode != nil {
		supplier.ZipCode = *in.ZipCode
	}
	if in.Active != nil {
		supplier.Active = *in.Active
	}
	supplier.UpdatedBy = userID

	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableSuppliers)
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete elimina el proveedor. Los movimientos y órdenes históricas conservan
// el nombre denormalizado.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := uc.supplierRepo.Delete(id); err != nil {
		return err
	}
	uc.bus.Publish(events.TableSuppliers)
	return nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		TradeName: s.TradeName,
		CNPJ:      s.CNPJ,
		Contact:   s.Contact,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		ZipCode:   s.ZipCode,
		Active:    s.Active,
	}
}

package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// PurchaseUseCase casos de uso de órdenes de compra.
type PurchaseUseCase struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	bus          *events.Bus
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	bus *events.Bus,
) *PurchaseUseCase {
	return &PurchaseUseCase{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo, bus: bus}
}

// Create registra una orden de compra en estado pending. El total se calcula
// siempre en el servidor a partir de las líneas y el descuento; cualquier
// total que venga del cliente se ignora.
func (uc *PurchaseUseCase) Create(userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.Active {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.PurchaseItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.PurchaseItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  decimal.NewFromInt(int64(it.Quantity)).Mul(it.UnitPrice),
		})
	}

	purchase := &entity.Purchase{
		ID:                   uuid.New().String(),
		Date:                 in.Date,
		SupplierID:           in.SupplierID,
		SupplierName:         supplier.Name,
		Items:                items,
		Discount:             in.Discount,
		TotalValue:           entity.PurchaseTotal(items, in.Discount),
		Status:               entity.PurchaseStatusPending,
		DocumentNumber:       in.DocumentNumber,
		Notes:                in.Notes,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		CreatedBy:            userID,
	}
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TablePurchases)
	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

// GetByID devuelve una orden con sus líneas.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

// List devuelve todas las órdenes de compra.
func (uc *PurchaseUseCase) List() (*dto.PurchaseListResponse, error) {
	purchases, err := uc.purchaseRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{Items: items, Total: len(items)}, nil
}

// UpdateStatus cambia el estado de la orden validando la transición:
// delivered y cancelled son terminales. Una transición inválida devuelve
// ErrConflict.
func (uc *PurchaseUseCase) UpdateStatus(id string, in dto.UpdatePurchaseStatusRequest) (*dto.PurchaseResponse, error) {
	if !entity.ValidPurchaseStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionPurchase(purchase.Status, in.Status) {
		return nil, domain.ErrConflict
	}

	if err := uc.purchaseRepo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	purchase.Status = in.Status

	uc.bus.Publish(events.TablePurchases)
	resp := toPurchaseResponse(purchase)
	return &resp, nil
}

func toPurchaseResponse(p *entity.Purchase) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return dto.PurchaseResponse{
		ID:                   p.ID,
		Date:                 p.Date,
		SupplierID:           p.SupplierID,
		SupplierName:         p.SupplierName,
		Items:                items,
		Discount:             p.Discount,
		TotalValue:           p.TotalValue,
		Status:               p.Status,
		DocumentNumber:       p.DocumentNumber,
		Notes:                p.Notes,
		ExpectedDeliveryDate: p.ExpectedDeliveryDate,
	}
}

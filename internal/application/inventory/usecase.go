// Package inventory orquesta el registro de movimientos de stock y expone el
// libro agregado. La agregación en sí es pura y vive en domain/inventory; aquí
// solo se hace la E/S alrededor.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	dominv "github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// UseCase casos de uso del libro de movimientos.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	movementRepo repository.MovementRepository
	bus          *events.Bus
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	movementRepo repository.MovementRepository,
	bus *events.Bus,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		movementRepo: movementRepo,
		bus:          bus,
	}
}

// RegisterMovement valida el asiento, bloquea la fila del producto y escribe
// movimiento + stock en una sola transacción. Una salida que dejaría el stock
// negativo se rechaza con ErrInsufficientStock antes de escribir nada.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var supplierName string
	if in.Type == entity.MovementTypeEntry && in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		// Solo proveedores activos son seleccionables en entradas
		if supplier == nil || !supplier.Active {
			return nil, domain.ErrInvalidInput
		}
		supplierName = supplier.Name
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		Date:           in.Date,
		CreatedAt:      &now,
		Type:           in.Type,
		ProductID:      in.ProductID,
		ProductName:    product.Name,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		SupplierID:     in.SupplierID,
		SupplierName:   supplierName,
		DocumentNumber: in.DocumentNumber,
		RequestedBy:    in.RequestedBy,
		Department:     in.Department,
		Reason:         in.Reason,
		Notes:          in.Notes,
		CreatedBy:      userID,
	}
	if in.UnitPrice != nil {
		total := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		mov.TotalValue = &total
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Relee con bloqueo de fila: el chequeo de stock y la resta deben ver
		// el mismo valor aunque haya escrituras concurrentes.
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newStock := locked.CurrentStock + in.Quantity
		if in.Type == entity.MovementTypeExit {
			if locked.CurrentStock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock = locked.CurrentStock - in.Quantity
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productRepo.UpdateStock(in.ProductID, newStock, userID)
	})
	if err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableMovements)
	uc.bus.Publish(events.TableProducts)

	resp := toMovementResponse(*mov)
	return &resp, nil
}

// List devuelve el libro completo ordenado por recencia: CreatedAt descendente
// cuando existe, si no fecha de negocio descendente.
func (uc *UseCase) List() (*dto.MovementListResponse, error) {
	movs, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	sorted := SortByRecency(movs)
	items := make([]dto.MovementResponse, 0, len(sorted))
	for _, m := range sorted {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// Summary agrega el libro completo de un producto: entradas, salidas, stock
// inicial reconstruido, costo promedio y último precio de compra.
func (uc *UseCase) Summary(productID string) (*dto.LedgerSummaryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	s := dominv.Aggregate(movs, productID, product.CurrentStock)
	return &dto.LedgerSummaryResponse{
		ProductID:         productID,
		Entries:           s.Entries,
		Exits:             s.Exits,
		InitialStock:      s.InitialStock,
		CurrentStock:      product.CurrentStock,
		AverageCost:       s.AverageCost,
		LastPurchasePrice: s.LastPurchasePrice,
	}, nil
}

func toMovementResponse(m entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
		Type:           m.Type,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalValue:     m.TotalValue,
		SupplierID:     m.SupplierID,
		SupplierName:   m.SupplierName,
		DocumentNumber: m.DocumentNumber,
		RequestedBy:    m.RequestedBy,
		Department:     m.Department,
		Reason:         m.Reason,
		Notes:          m.Notes,
	}
}

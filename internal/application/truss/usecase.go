// Package truss gestiona el inventario de treliças y su libro de préstamos:
// retiradas que dejan un asiento activo y devoluciones que lo cierran.
package truss

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// UseCase casos de uso de treliças.
type UseCase struct {
	txRunner  TxRunner
	trussRepo repository.TrussRepository
	movRepo   repository.TrussMovementRepository
	bus       *events.Bus
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	trussRepo repository.TrussRepository,
	movRepo repository.TrussMovementRepository,
	bus *events.Bus,
) *UseCase {
	return &UseCase{txRunner: txRunner, trussRepo: trussRepo, movRepo: movRepo, bus: bus}
}

// CreateTruss da de alta una treliça en el inventario.
func (uc *UseCase) CreateTruss(userID string, in dto.CreateTrussRequest) (*dto.TrussResponse, error) {
	if in.CurrentStock > in.MaxStock {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Truss{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		Category:     in.Category,
		MaxStock:     in.MaxStock,
		CurrentStock: in.CurrentStock,
		Location:     in.Location,
		LastUpdated:  time.Now(),
		CreatedBy:    userID,
	}
	if err := uc.trussRepo.Create(t); err != nil {
		return nil, err
	}
	uc.bus.Publish(events.TableTrusses)
	resp := toTrussResponse(t)
	return &resp, nil
}

// ListTrusses devuelve el inventario de treliças.
func (uc *UseCase) ListTrusses() (*dto.TrussListResponse, error) {
	trusses, err := uc.trussRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrussResponse, 0, len(trusses))
	for _, t := range trusses {
		items = append(items, toTrussResponse(t))
	}
	return &dto.TrussListResponse{Items: items, Total: len(items)}, nil
}

// DeleteTruss elimina la treliça del inventario.
func (uc *UseCase) DeleteTruss(id string) error {
	t, err := uc.trussRepo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if err := uc.trussRepo.Delete(id); err != nil {
		return err
	}
	uc.bus.Publish(events.TableTrusses)
	return nil
}

// RegisterMovement registra una retirada o devolución. Una retirada descuenta
// del stock disponible y nace con estado active; una devolución suma y nace
// returned. Retirar más de lo disponible devuelve ErrInsufficientStock.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterTrussMovementRequest) (*dto.TrussMovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.TrussMovementWithdrawal, entity.TrussMovementReturn:
	default:
		return nil, domain.ErrInvalidInput
	}

	t, err := uc.trussRepo.GetByID(in.TrussID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.TrussMovement{
		ID:                 uuid.New().String(),
		Date:               in.Date,
		CreatedAt:          &now,
		Type:               in.Type,
		TrussID:            in.TrussID,
		TrussName:          t.Name,
		Quantity:           in.Quantity,
		TakenBy:            in.TakenBy,
		ServiceDescription: in.ServiceDescription,
		Notes:              in.Notes,
		Status:             entity.TrussStatusActive,
		CreatedBy:          userID,
	}
	if in.Type == entity.TrussMovementReturn {
		mov.Status = entity.TrussStatusReturned
	}

	err = uc.txRunner.Run(ctx, func(
		trussRepo repository.TrussRepository,
		movRepo repository.TrussMovementRepository,
	) error {
		locked, err := trussRepo.GetForUpdate(in.TrussID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newStock := locked.CurrentStock
		switch in.Type {
		case entity.TrussMovementWithdrawal:
			if locked.CurrentStock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock -= in.Quantity
		case entity.TrussMovementReturn:
			newStock += in.Quantity
			// La capacidad acota las devoluciones: no puede volver más de lo que cabe
			if newStock > locked.MaxStock {
				return domain.ErrConflict
			}
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return trussRepo.UpdateStock(in.TrussID, newStock)
	})
	if err != nil {
		return nil, err
	}

	uc.bus.Publish(events.TableTrussMovements)
	uc.bus.Publish(events.TableTrusses)
	resp := toTrussMovementResponse(mov)
	return &resp, nil
}

// ListMovements devuelve el libro de préstamos completo.
func (uc *UseCase) ListMovements() (*dto.TrussMovementListResponse, error) {
	movs, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrussMovementResponse, 0, len(movs))
	for i := range movs {
		items = append(items, toTrussMovementResponse(&movs[i]))
	}
	return &dto.TrussMovementListResponse{Items: items, Total: len(items)}, nil
}

// MarkReturned cierra una retirada activa: devuelve su cantidad al stock y
// pasa el asiento a returned. Una retirada ya devuelta produce ErrConflict.
func (uc *UseCase) MarkReturned(ctx context.Context, movementID string) (*dto.TrussMovementResponse, error) {
	mov, err := uc.movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.Type != entity.TrussMovementWithdrawal {
		return nil, domain.ErrInvalidInput
	}
	if mov.Status == entity.TrussStatusReturned {
		return nil, domain.ErrConflict
	}

	err = uc.txRunner.Run(ctx, func(
		trussRepo repository.TrussRepository,
		movRepo repository.TrussMovementRepository,
	) error {
		locked, err := trussRepo.GetForUpdate(mov.TrussID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.UpdateStatus(movementID, entity.TrussStatusReturned); err != nil {
			return err
		}
		return trussRepo.UpdateStock(mov.TrussID, locked.CurrentStock+mov.Quantity)
	})
	if err != nil {
		return nil, err
	}
	mov.Status = entity.TrussStatusReturned

	uc.bus.Publish(events.TableTrussMovements)
	uc.bus.Publish(events.TableTrusses)
	resp := toTrussMovementResponse(mov)
	return &resp, nil
}

func toTrussResponse(t *entity.Truss) dto.TrussResponse {
	return dto.TrussResponse{
		ID:           t.ID,
		Code:         t.Code,
		Name:         t.Name,
		Description:  t.Description,
		Unit:         t.Unit,
		Category:     t.Category,
		MaxStock:     t.MaxStock,
		CurrentStock: t.CurrentStock,
		Location:     t.Location,
		LastUpdated:  t.LastUpdated,
	}
}

func toTrussMovementResponse(m *entity.TrussMovement) dto.TrussMovementResponse {
	return dto.TrussMovementResponse{
		ID:                 m.ID,
		Date:               m.Date,
		CreatedAt:          m.CreatedAt,
		Type:               m.Type,
		TrussID:            m.TrussID,
		TrussName:          m.TrussName,
		Quantity:           m.Quantity,
		TakenBy:            m.TakenBy,
		ServiceDescription: m.ServiceDescription,
		Notes:              m.Notes,
		Status:             m.Status,
	}
}

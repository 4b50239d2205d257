package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePurchaseRepo struct {
	byID map[string]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{byID: make(map[string]*entity.Purchase)}
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.byID[id], nil
}

func (r *fakePurchaseRepo) List() ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePurchaseRepo) UpdateStatus(id, status string) error {
	if p, ok := r.byID[id]; ok {
		p.Status = status
	}
	return nil
}

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{byID: make(map[string]*entity.Supplier)}
	for _, s := range suppliers {
		r.byID[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *fakeSupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	for _, s := range r.byID {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSupplierRepo) Delete(id string) error { delete(r.byID, id); return nil }

func activeSupplier() *entity.Supplier {
	return &entity.Supplier{ID: "sup-1", Code: "PROV-01", Name: "Ferretería Central", Active: true}
}

func buildPurchaseUseCase(suppliers ...*entity.Supplier) (*usecase.PurchaseUseCase, *fakePurchaseRepo) {
	repo := newFakePurchaseRepo()
	uc := usecase.NewPurchaseUseCase(repo, newFakeSupplierRepo(suppliers...), events.NewBus())
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: líneas (2 × 10.00) y (1 × 5.00) con descuento 3.00
// dan un total de 22.00. El total nunca viene del cliente.
func TestPurchaseCreate_TotalRecalculadoConDescuento(t *testing.T) {
	uc, _ := buildPurchaseUseCase(activeSupplier())

	resp, err := uc.Create("user-1", dto.CreatePurchaseRequest{
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		SupplierID: "sup-1",
		Discount:   decimal.RequireFromString("3.00"),
		Items: []dto.PurchaseItemRequest{
			{ProductName: "Tornillos", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductName: "Tuercas", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("22.00").Equal(resp.TotalValue),
		"2×10 + 1×5 − 3 = 22.00, obtenido %s", resp.TotalValue)
	assert.Equal(t, entity.PurchaseStatusPending, resp.Status, "toda orden nace pending")
	assert.Equal(t, "Ferretería Central", resp.SupplierName)
	require.Len(t, resp.Items, 2)
	assert.True(t, decimal.RequireFromString("20.00").Equal(resp.Items[0].TotalPrice))
}

func TestPurchaseCreate_ProveedorInactivoRechazado(t *testing.T) {
	inactivo := activeSupplier()
	inactivo.Active = false
	uc, _ := buildPurchaseUseCase(inactivo)

	_, err := uc.Create("user-1", dto.CreatePurchaseRequest{
		Date:       time.Now(),
		SupplierID: "sup-1",
		Items: []dto.PurchaseItemRequest{
			{ProductName: "Tornillos", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseCreate_SinLineasRechazado(t *testing.T) {
	uc, _ := buildPurchaseUseCase(activeSupplier())

	_, err := uc.Create("user-1", dto.CreatePurchaseRequest{
		Date:       time.Now(),
		SupplierID: "sup-1",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseUpdateStatus_TransicionValida(t *testing.T) {
	uc, repo := buildPurchaseUseCase(activeSupplier())
	created, err := uc.Create("user-1", dto.CreatePurchaseRequest{
		Date:       time.Now(),
		SupplierID: "sup-1",
		Items: []dto.PurchaseItemRequest{
			{ProductName: "Tornillos", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(created.ID, dto.UpdatePurchaseStatusRequest{Status: entity.PurchaseStatusApproved})

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusApproved, resp.Status)
	assert.Equal(t, entity.PurchaseStatusApproved, repo.byID[created.ID].Status)
}

// delivered es terminal: cualquier salida devuelve ErrConflict.
func TestPurchaseUpdateStatus_EstadoTerminalNoTransiciona(t *testing.T) {
	uc, repo := buildPurchaseUseCase(activeSupplier())
	created, err := uc.Create("user-1", dto.CreatePurchaseRequest{
		Date:       time.Now(),
		SupplierID: "sup-1",
		Items: []dto.PurchaseItemRequest{
			{ProductName: "Tornillos", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)
	repo.byID[created.ID].Status = entity.PurchaseStatusDelivered

	_, err = uc.UpdateStatus(created.ID, dto.UpdatePurchaseStatusRequest{Status: entity.PurchaseStatusPending})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPurchaseUpdateStatus_OrdenInexistente(t *testing.T) {
	uc, _ := buildPurchaseUseCase(activeSupplier())

	_, err := uc.UpdateStatus("no-existe", dto.UpdatePurchaseStatusRequest{Status: entity.PurchaseStatusApproved})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

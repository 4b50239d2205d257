package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/events"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, newStock int, updatedBy string) error {
	if p, ok := r.byID[id]; ok {
		p.CurrentStock = newStock
		p.UpdatedBy = updatedBy
	}
	return nil
}
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.byID, id); return nil }

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}
func (r *fakeMovementRepo) List() ([]entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) ListByProduct(productID string) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.byID[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.byID[id], nil
}
func (r *fakeSupplierRepo) GetByCode(string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error            { return nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error)          { return nil, nil }
func (r *fakeSupplierRepo) Delete(string) error                        { return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes: sin tx real,
// pero con la misma forma que el runner de producción.
type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movRepo, r.productRepo)
}

func buildUseCase(products ...*entity.Product) (*inventory.UseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movRepo := &fakeMovementRepo{}
	supplierRepo := &fakeSupplierRepo{byID: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Ferretería Central", Active: true},
	}}
	uc := inventory.NewUseCase(
		&fakeTxRunner{movRepo: movRepo, productRepo: productRepo},
		productRepo, supplierRepo, movRepo, events.NewBus(),
	)
	return uc, productRepo, movRepo
}

func producto(stock int) *entity.Product {
	return &entity.Product{ID: "prod-1", Code: "P-01", Name: "Resma A4", CurrentStock: stock}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStockYCalculaTotal(t *testing.T) {
	uc, productRepo, movRepo := buildUseCase(producto(10))
	price := decimal.RequireFromString("5.50")

	out, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		Type:      entity.MovementTypeEntry,
		ProductID: "prod-1",
		Quantity:  4,
		UnitPrice: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, 14, productRepo.byID["prod-1"].CurrentStock)
	require.Len(t, movRepo.movements, 1)
	require.NotNil(t, out.TotalValue)
	assert.True(t, decimal.RequireFromString("22.00").Equal(*out.TotalValue),
		"4 × 5.50 = 22.00, obtenido %s", out.TotalValue)
	assert.Equal(t, "Resma A4", out.ProductName, "el nombre se denormaliza en el asiento")
}

func TestRegisterMovement_SalidaRestaStock(t *testing.T) {
	uc, productRepo, _ := buildUseCase(producto(10))

	_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		Date:      time.Now(),
		Type:      entity.MovementTypeExit,
		ProductID: "prod-1",
		Quantity:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, productRepo.byID["prod-1"].CurrentStock)
}

// La salida que dejaría el stock negativo se rechaza sin escribir nada.
func TestRegisterMovement_SalidaMayorQueStockRechazada(t *testing.T) {
	uc, productRepo, movRepo := buildUseCase(producto(2))

	_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		Date:      time.Now(),
		Type:      entity.MovementTypeExit,
		ProductID: "prod-1",
		Quantity:  5,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, productRepo.byID["prod-1"].CurrentStock, "el stock no cambia")
	assert.Empty(t, movRepo.movements, "no queda asiento huérfano")
}

func TestRegisterMovement_CantidadNoPositivaRechazada(t *testing.T) {
	uc, _, _ := buildUseCase(producto(10))

	for _, qty := range []int{0, -3} {
		_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
			Date:      time.Now(),
			Type:      entity.MovementTypeEntry,
			ProductID: "prod-1",
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildUseCase(producto(10))

	_, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		Date:      time.Now(),
		Type:      entity.MovementTypeEntry,
		ProductID: "no-existe",
		Quantity:  1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_EntradaConProveedorDenormalizaNombre(t *testing.T) {
	uc, _, movRepo := buildUseCase(producto(0))

	out, err := uc.RegisterMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		Date:       time.Now(),
		Type:       entity.MovementTypeEntry,
		ProductID:  "prod-1",
		Quantity:   1,
		SupplierID: "sup-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ferretería Central", out.SupplierName)
	assert.Equal(t, "Ferretería Central", movRepo.movements[0].SupplierName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SortByRecency
// ──────────────────────────────────────────────────────────────────────────────

func TestSortByRecency_CreatedAtMandaSobreFechaDeNegocio(t *testing.T) {
	d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	t1 := d.Add(8 * time.Hour)
	t2 := d.Add(20 * time.Hour)

	viejo := entity.StockMovement{ID: "a", Date: d.AddDate(0, 0, 5), CreatedAt: &t1}
	nuevo := entity.StockMovement{ID: "b", Date: d, CreatedAt: &t2}

	sorted := inventory.SortByRecency([]entity.StockMovement{viejo, nuevo})

	// Aunque "a" tiene fecha de negocio posterior, "b" se registró después
	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
}

// Con presencia mezclada de CreatedAt, cada movimiento se ordena por su marca
// efectiva: el criterio sigue siendo un orden total, sin depender de qué par
// compare primero el sort.
func TestSortByRecency_PresenciaMezcladaDeCreatedAt(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	conMarca := d.AddDate(0, 0, 12)

	movs := []entity.StockMovement{
		{ID: "a", Date: d.AddDate(0, 0, 11)},     // marca efectiva: 12 de marzo
		{ID: "b", Date: d, CreatedAt: &conMarca}, // marca efectiva: 13 de marzo
		{ID: "c", Date: d.AddDate(0, 0, 10)},     // marca efectiva: 11 de marzo
	}

	sorted := inventory.SortByRecency(movs)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestSortByRecency_SinCreatedAtOrdenaPorFecha(t *testing.T) {
	d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	movs := []entity.StockMovement{
		{ID: "a", Date: d},
		{ID: "b", Date: d.AddDate(0, 0, 2)},
		{ID: "c", Date: d.AddDate(0, 0, 1)},
	}

	sorted := inventory.SortByRecency(movs)

	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "c", sorted[1].ID)
	assert.Equal(t, "a", sorted[2].ID)
	assert.Equal(t, "a", movs[0].ID, "la entrada no se muta")
}

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de transacción
// ──────────────────────────────────────────────────────────────────────────────

// fakeTx cuenta los Exec y puede fallar en el enésimo; registra Commit/Rollback.
// Embebe pgx.Tx solo para satisfacer la interfaz: lo no sobreescrito no se usa.
type fakeTx struct {
	pgx.Tx
	execs      int
	failOnExec int // 0 = nunca falla
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs++
	if t.failOnExec > 0 && t.execs == t.failOnExec {
		return pgconn.CommandTag{}, errors.New("insert falla")
	}
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

// fakeDB entrega la fakeTx en Begin. Embebe Querier: solo Begin se usa.
type fakeDB struct {
	postgres.Querier
	tx *fakeTx
}

func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) { return db.tx, nil }

func ordenConLineas() *entity.Purchase {
	return &entity.Purchase{
		ID:           "po-1",
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
		SupplierID:   "sup-1",
		SupplierName: "Ferretería Central",
		Status:       entity.PurchaseStatusPending,
		Discount:     decimal.Zero,
		TotalValue:   decimal.RequireFromString("25.00"),
		Items: []entity.PurchaseItem{
			{ProductName: "Resma A4", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00"), TotalPrice: decimal.RequireFromString("20.00")},
			{ProductName: "Caja clips", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00"), TotalPrice: decimal.RequireFromString("5.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_CabeceraYLineasEnUnaTransaccion(t *testing.T) {
	tx := &fakeTx{}
	repo := postgres.NewPurchaseRepository(&fakeDB{tx: tx})

	err := repo.Create(ordenConLineas())

	require.NoError(t, err)
	assert.Equal(t, 3, tx.execs, "cabecera + dos líneas")
	assert.True(t, tx.committed)
}

// Si una línea falla, la cabecera ya insertada se revierte con ella: no queda
// una orden parcial cuyo total no cierre contra sus líneas.
func TestPurchaseCreate_FalloEnLineaRevierteCabecera(t *testing.T) {
	tx := &fakeTx{failOnExec: 3} // cabecera y primera línea pasan, la segunda falla
	repo := postgres.NewPurchaseRepository(&fakeDB{tx: tx})

	err := repo.Create(ordenConLineas())

	require.Error(t, err)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack, "la transacción entera se revierte")
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, date, created_at, type, product_id, product_name, quantity,
	unit_price, total_value, supplier_id, supplier_name, document_number,
	requested_by, department, reason, notes, created_by`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL.
// El libro es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.CreatedAt, m.Type, m.ProductID, m.ProductName, m.Quantity,
		m.UnitPrice, m.TotalValue, nullIfEmpty(m.SupplierID), m.SupplierName, m.DocumentNumber,
		m.RequestedBy, m.Department, m.Reason, m.Notes, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve el historial completo, fecha de negocio descendente. La
// agregación del libro exige el historial sin paginar.
func (r *MovementRepo) List() ([]entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movementColumns+` FROM stock_movements ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// ListByProduct devuelve el historial completo de un producto.
func (r *MovementRepo) ListByProduct(productID string) ([]entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movementColumns+` FROM stock_movements WHERE product_id = $1 ORDER BY date DESC, created_at DESC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]entity.StockMovement, error) {
	defer rows.Close()
	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var supplierID *string
		if err := rows.Scan(&m.ID, &m.Date, &m.CreatedAt, &m.Type, &m.ProductID, &m.ProductName,
			&m.Quantity, &m.UnitPrice, &m.TotalValue, &supplierID, &m.SupplierName,
			&m.DocumentNumber, &m.RequestedBy, &m.Department, &m.Reason, &m.Notes, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if supplierID != nil {
			m.SupplierID = *supplierID
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas con FK opcional.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

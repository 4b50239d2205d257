package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TrussMovementRepository = (*TrussMovementRepo)(nil)

const trussMovementColumns = `id, date, created_at, type, truss_id, truss_name, quantity,
	taken_by, service_description, notes, status, created_by`

// TrussMovementRepo implementación del libro de préstamos sobre PostgreSQL.
// Los asientos solo mutan su estado (active → returned).
type TrussMovementRepo struct {
	q Querier
}

// NewTrussMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrussMovementRepository(q Querier) *TrussMovementRepo {
	return &TrussMovementRepo{q: q}
}

// Create persiste un asiento del libro de préstamos.
func (r *TrussMovementRepo) Create(m *entity.TrussMovement) error {
	query := `
		INSERT INTO truss_movements (` + trussMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.CreatedAt, m.Type, m.TrussID, m.TrussName, m.Quantity,
		m.TakenBy, m.ServiceDescription, m.Notes, m.Status, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert truss movement: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *TrussMovementRepo) GetByID(id string) (*entity.TrussMovement, error) {
	var m entity.TrussMovement
	err := r.q.QueryRow(context.Background(),
		`SELECT `+trussMovementColumns+` FROM truss_movements WHERE id = $1`, id).Scan(
		&m.ID, &m.Date, &m.CreatedAt, &m.Type, &m.TrussID, &m.TrussName, &m.Quantity,
		&m.TakenBy, &m.ServiceDescription, &m.Notes, &m.Status, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truss movement: %w", err)
	}
	return &m, nil
}

// List devuelve el libro completo, fecha descendente.
func (r *TrussMovementRepo) List() ([]entity.TrussMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+trussMovementColumns+` FROM truss_movements ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list truss movements: %w", err)
	}
	defer rows.Close()
	var list []entity.TrussMovement
	for rows.Next() {
		var m entity.TrussMovement
		if err := rows.Scan(&m.ID, &m.Date, &m.CreatedAt, &m.Type, &m.TrussID, &m.TrussName,
			&m.Quantity, &m.TakenBy, &m.ServiceDescription, &m.Notes, &m.Status, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan truss movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del asiento.
func (r *TrussMovementRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE truss_movements SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update truss movement status: %w", err)
	}
	return nil
}

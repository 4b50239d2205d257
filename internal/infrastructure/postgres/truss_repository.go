package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TrussRepository = (*TrussRepo)(nil)

const trussColumns = `id, code, name, description, unit, category, max_stock, current_stock, location, last_updated, created_by`

// TrussRepo implementación del inventario de treliças sobre PostgreSQL.
type TrussRepo struct {
	q Querier
}

// NewTrussRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrussRepository(q Querier) *TrussRepo {
	return &TrussRepo{q: q}
}

// Create persiste una treliça nueva.
func (r *TrussRepo) Create(t *entity.Truss) error {
	query := `
		INSERT INTO trusses (` + trussColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Code, t.Name, t.Description, t.Unit, t.Category,
		t.MaxStock, t.CurrentStock, t.Location, t.LastUpdated, t.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert truss: %w", err)
	}
	return nil
}

// GetByID obtiene una treliça por ID.
func (r *TrussRepo) GetByID(id string) (*entity.Truss, error) {
	return r.getOne(`SELECT `+trussColumns+` FROM trusses WHERE id = $1`, id)
}

// GetForUpdate obtiene una treliça bloqueando su fila. Usar solo dentro de una tx.
func (r *TrussRepo) GetForUpdate(id string) (*entity.Truss, error) {
	return r.getOne(`SELECT `+trussColumns+` FROM trusses WHERE id = $1 FOR UPDATE`, id)
}

func (r *TrussRepo) getOne(query string, arg any) (*entity.Truss, error) {
	var t entity.Truss
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Code, &t.Name, &t.Description, &t.Unit, &t.Category,
		&t.MaxStock, &t.CurrentStock, &t.Location, &t.LastUpdated, &t.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truss: %w", err)
	}
	return &t, nil
}

// UpdateStock actualiza el stock disponible.
func (r *TrussRepo) UpdateStock(trussID string, newStock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE trusses SET current_stock = $2, last_updated = now() WHERE id = $1`,
		trussID, newStock)
	if err != nil {
		return fmt.Errorf("update truss stock: %w", err)
	}
	return nil
}

// List devuelve el inventario completo ordenado por nombre.
func (r *TrussRepo) List() ([]*entity.Truss, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+trussColumns+` FROM trusses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list trusses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Truss
	for rows.Next() {
		var t entity.Truss
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Description, &t.Unit, &t.Category,
			&t.MaxStock, &t.CurrentStock, &t.Location, &t.LastUpdated, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan truss: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una treliça por ID.
func (r *TrussRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM trusses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete truss: %w", err)
	}
	return nil
}

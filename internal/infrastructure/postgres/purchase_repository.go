package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, date, supplier_id, supplier_name, discount, total_value,
	status, document_number, notes, expected_delivery_date, created_by`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
// La cabecera vive en purchases y las líneas en purchase_items.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste cabecera y líneas de la orden en una sola transacción: un
// fallo en cualquier línea revierte también la cabecera.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, query,
		p.ID, p.Date, nullIfEmpty(p.SupplierID), p.SupplierName, p.Discount, p.TotalValue,
		p.Status, p.DocumentNumber, p.Notes, p.ExpectedDeliveryDate, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	for i, it := range p.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO purchase_items (purchase_id, position, product_id, product_name, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, i, nullIfEmpty(it.ProductID), it.ProductName, it.Quantity, it.UnitPrice, it.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	ctx := context.Background()
	var p entity.Purchase
	var supplierID *string
	err := r.q.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id).Scan(
		&p.ID, &p.Date, &supplierID, &p.SupplierName, &p.Discount, &p.TotalValue,
		&p.Status, &p.DocumentNumber, &p.Notes, &p.ExpectedDeliveryDate, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	items, err := r.itemsFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// List devuelve todas las órdenes, fecha descendente, con sus líneas.
func (r *PurchaseRepo) List() ([]*entity.Purchase, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var supplierID *string
		if err := rows.Scan(&p.ID, &p.Date, &supplierID, &p.SupplierName, &p.Discount,
			&p.TotalValue, &p.Status, &p.DocumentNumber, &p.Notes,
			&p.ExpectedDeliveryDate, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if supplierID != nil {
			p.SupplierID = *supplierID
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range list {
		items, err := r.itemsFor(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return list, nil
}

// UpdateStatus cambia el estado de la orden.
func (r *PurchaseRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) itemsFor(ctx context.Context, purchaseID string) ([]entity.PurchaseItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_price, total_price
		FROM purchase_items WHERE purchase_id = $1 ORDER BY position`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		var productID *string
		if err := rows.Scan(&productID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		if productID != nil {
			it.ProductID = *productID
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

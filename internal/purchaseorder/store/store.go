package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/database"
	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, vendor_id, vendor_name, po_number, po_date, terms, items, created_at, updated_at
func scanPurchaseOrder(s scanner) (*purchaseorder.PurchaseOrder, error) {
	var po purchaseorder.PurchaseOrder

	var items []byte

	if err := s.Scan(
		&po.ID, &po.VendorID, &po.VendorName, &po.Number, &po.Date, &po.Terms, &items,
		&po.CreatedAt, &po.UpdatedAt,
	); err != nil {
		return nil, err
	}

	decoded, err := decodeItems(items)
	if err != nil {
		return nil, err
	}

	po.Items = decoded

	return &po, nil
}

const selectPurchaseOrderColumns = `
	p.id, p.vendor_id, v.name AS vendor_name, p.po_number, p.po_date, p.terms, p.items,
	p.created_at, p.updated_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q queryRower, po *purchaseorder.PurchaseOrder) error {
	items, err := encodeItems(po.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO purchase_orders (vendor_id, po_number, po_date, terms, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRowContext(ctx, query, po.VendorID, po.Number, po.Date, po.Terms, items).
		Scan(&po.ID, &po.CreatedAt, &po.UpdatedAt)

	return mapWriteError("creating purchase order", err)
}

func mapWriteError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, document.ErrDuplicateNumber)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, vendor.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *Store) CreatePurchaseOrder(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	return insert(ctx, s.db, po)
}

func (s *Store) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*purchaseorder.PurchaseOrder, error) {
	query := `SELECT ` + selectPurchaseOrderColumns + `
		FROM purchase_orders p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE p.id = $1`

	po, err := scanPurchaseOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, purchaseorder.ErrNotFound
		}

		return nil, fmt.Errorf("getting purchase order: %w", err)
	}

	return po, nil
}

func (s *Store) ListPurchaseOrders(ctx context.Context, filter purchaseorder.ListFilter) ([]*purchaseorder.PurchaseOrder, error) {
	query := `SELECT ` + selectPurchaseOrderColumns + `
		FROM purchase_orders p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.VendorID != nil {
		query += fmt.Sprintf(" AND p.vendor_id = $%d", argIdx)

		args = append(args, *filter.VendorID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND p.po_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND p.po_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY p.po_date DESC, p.po_number DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
		argIdx++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)

		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing purchase orders: %w", err)
	}
	defer rows.Close()

	var pos []*purchaseorder.PurchaseOrder

	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning purchase order: %w", err)
		}

		pos = append(pos, po)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase order rows: %w", err)
	}

	return pos, nil
}

func (s *Store) UpdatePurchaseOrder(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	items, err := encodeItems(po.Items)
	if err != nil {
		return err
	}

	query := `
		UPDATE purchase_orders
		SET vendor_id = $1, po_number = $2, po_date = $3, terms = $4, items = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err = s.db.QueryRowContext(ctx, query, po.VendorID, po.Number, po.Date, po.Terms, items, po.ID).
		Scan(&po.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return purchaseorder.ErrNotFound
	}

	return mapWriteError("updating purchase order", err)
}

func (s *Store) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting purchase order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return purchaseorder.ErrNotFound
	}

	return nil
}

type numberingTx struct {
	tx *sql.Tx
}

// BeginNumbering takes a transaction-scoped advisory lock on prefix so
// concurrent creators for the same vendor and year run one after another.
func (s *Store) BeginNumbering(ctx context.Context, prefix string) (purchaseorder.NumberingTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning numbering tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", document.LockKey(prefix)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring numbering lock: %w", err)
	}

	return &numberingTx{tx: dbTx}, nil
}

func (ntx *numberingTx) Commit() error   { return ntx.tx.Commit() }
func (ntx *numberingTx) Rollback() error { return ntx.tx.Rollback() }

func (ntx *numberingTx) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT po_number
		FROM purchase_orders
		WHERE po_number LIKE $1
		ORDER BY po_number COLLATE "C" DESC
		LIMIT 1
	`

	var number string

	err := ntx.tx.QueryRowContext(ctx, query, database.LikePrefix(prefix)).Scan(&number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding last purchase order number: %w", err)
	}

	return number, nil
}

func (ntx *numberingTx) CreatePurchaseOrder(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	return insert(ctx, ntx.tx, po)
}

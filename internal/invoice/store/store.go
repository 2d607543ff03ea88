package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/database"
	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
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

// Expected column order: id, vendor_id, vendor_name, invoice_number, invoice_date, terms, items, created_at, updated_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var items []byte

	if err := s.Scan(
		&inv.ID, &inv.VendorID, &inv.VendorName, &inv.Number, &inv.Date, &inv.Terms, &items,
		&inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	decoded, err := decodeItems(items)
	if err != nil {
		return nil, err
	}

	inv.Items = decoded

	return &inv, nil
}

const selectInvoiceColumns = `
	i.id, i.vendor_id, v.name AS vendor_name, i.invoice_number, i.invoice_date, i.terms, i.items,
	i.created_at, i.updated_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insert(ctx context.Context, q queryRower, inv *invoice.Invoice) error {
	items, err := encodeItems(inv.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (vendor_id, invoice_number, invoice_date, terms, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRowContext(ctx, query, inv.VendorID, inv.Number, inv.Date, inv.Terms, items).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)

	return mapWriteError("creating invoice", err)
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

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	return insert(ctx, s.db, inv)
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN vendors v ON v.id = i.vendor_id
		WHERE i.id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		JOIN vendors v ON v.id = i.vendor_id
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.VendorID != nil {
		query += fmt.Sprintf(" AND i.vendor_id = $%d", argIdx)

		args = append(args, *filter.VendorID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND i.invoice_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND i.invoice_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY i.invoice_date DESC, i.invoice_number DESC"

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
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invs, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	items, err := encodeItems(inv.Items)
	if err != nil {
		return err
	}

	query := `
		UPDATE invoices
		SET vendor_id = $1, invoice_number = $2, invoice_date = $3, terms = $4, items = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err = s.db.QueryRowContext(ctx, query, inv.VendorID, inv.Number, inv.Date, inv.Terms, items, inv.ID).
		Scan(&inv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return invoice.ErrNotFound
	}

	return mapWriteError("updating invoice", err)
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return invoice.ErrNotFound
	}

	return nil
}

type numberingTx struct {
	tx *sql.Tx
}

// BeginNumbering takes a transaction-scoped advisory lock on prefix so
// concurrent creators for the same vendor and year run one after another.
func (s *Store) BeginNumbering(ctx context.Context, prefix string) (invoice.NumberingTx, error) {
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
		SELECT invoice_number
		FROM invoices
		WHERE invoice_number LIKE $1
		ORDER BY invoice_number COLLATE "C" DESC
		LIMIT 1
	`

	var number string

	err := ntx.tx.QueryRowContext(ctx, query, database.LikePrefix(prefix)).Scan(&number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding last invoice number: %w", err)
	}

	return number, nil
}

func (ntx *numberingTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	return insert(ctx, ntx.tx, inv)
}

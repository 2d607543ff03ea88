package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error

	// BeginNumbering opens a unit of work serialized with every other
	// numbering run for the same prefix.
	BeginNumbering(ctx context.Context, prefix string) (NumberingTx, error)
}

type NumberingTx interface {
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	Commit() error
	Rollback() error
}

type VendorLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error)
}

type Service struct {
	repo    Repository
	vendors VendorLookup
}

func NewService(repo Repository, vendors VendorLookup) *Service {
	return &Service{repo: repo, vendors: vendors}
}

type CreateParams struct {
	VendorID uuid.UUID
	Date     time.Time
	Terms    string
	Items    []Item
	// Number is used verbatim when set.
	Number string
}

type UpdateParams struct {
	VendorID uuid.UUID
	Date     time.Time
	Terms    string
	Items    []Item
	// Number replaces the current number only when non-empty.
	Number string
}

type ListFilter struct {
	VendorID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	number, err := checkNumber(params.Number)
	if err != nil {
		return nil, err
	}

	v, err := s.vendor(ctx, params.VendorID)
	if err != nil {
		return nil, err
	}

	inv := New(v.ID, params.Date, params.Terms, params.Items, number)
	inv.VendorName = v.Name

	if err := document.CheckExplicitNumber("invoice_number", document.KindInvoice, v.Name, inv.Date, inv.Number); err != nil {
		return nil, err
	}

	if inv.Number != "" {
		if err := s.repo.CreateInvoice(ctx, inv); err != nil {
			return nil, err
		}

		return inv, nil
	}

	err = s.createNumbered(ctx, inv)
	if errors.Is(err, document.ErrDuplicateNumber) {
		slog.Warn("invoice number taken concurrently, renumbering", "number", inv.Number)
		err = s.createNumbered(ctx, inv)
	}

	if err != nil {
		inv.Number = ""
		return nil, err
	}

	return inv, nil
}

func (s *Service) createNumbered(ctx context.Context, inv *Invoice) error {
	prefix := document.NumberPrefix(document.KindInvoice, inv.VendorName, inv.Date)
	if document.GeneratedLength(prefix) > MaxNumberLength {
		return document.Invalid("vendor_id", fmt.Sprintf("vendor name yields a number longer than %d characters", MaxNumberLength))
	}

	ntx, err := s.repo.BeginNumbering(ctx, prefix)
	if err != nil {
		return fmt.Errorf("begin numbering: %w", err)
	}
	defer ntx.Rollback()

	number, err := document.NextNumber(ctx, ntx, document.KindInvoice, inv.VendorName, inv.Date)
	if err != nil {
		return err
	}

	inv.Number = number

	if err := ntx.CreateInvoice(ctx, inv); err != nil {
		return err
	}

	if err := ntx.Commit(); err != nil {
		return fmt.Errorf("commit invoice: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// Update replaces vendor, date, terms and items. The number survives unless
// params carries a replacement.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Invoice, error) {
	number, err := checkNumber(params.Number)
	if err != nil {
		return nil, err
	}

	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	v, err := s.vendor(ctx, params.VendorID)
	if err != nil {
		return nil, err
	}

	inv.VendorID = v.ID
	inv.VendorName = v.Name
	inv.Terms = params.Terms
	inv.ReplaceItems(params.Items)

	if !params.Date.IsZero() {
		inv.Date = params.Date
	}

	if number != "" {
		inv.Number = number
	}

	if err := document.CheckExplicitNumber("invoice_number", document.KindInvoice, inv.VendorName, inv.Date, inv.Number); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}

func (s *Service) vendor(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	if id == uuid.Nil {
		return nil, document.Invalid("vendor", "is required")
	}

	v, err := s.vendors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading vendor: %w", err)
	}

	return v, nil
}

func checkNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if len(number) > MaxNumberLength {
		return "", document.Invalid("invoice_number", fmt.Sprintf("must be at most %d characters", MaxNumberLength))
	}

	return number, nil
}

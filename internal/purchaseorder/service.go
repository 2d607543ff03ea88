package purchaseorder

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

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=purchaseorder
type Repository interface {
	CreatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error
	GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error
	DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error

	// BeginNumbering opens a unit of work serialized with every other
	// numbering run for the same prefix.
	BeginNumbering(ctx context.Context, prefix string) (NumberingTx, error)
}

type NumberingTx interface {
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
	CreatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error
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

func (s *Service) Create(ctx context.Context, params CreateParams) (*PurchaseOrder, error) {
	number, err := checkNumber(params.Number)
	if err != nil {
		return nil, err
	}

	v, err := s.vendor(ctx, params.VendorID)
	if err != nil {
		return nil, err
	}

	po := New(v.ID, params.Date, params.Terms, params.Items, number)
	po.VendorName = v.Name

	if err := document.CheckExplicitNumber("po_number", document.KindPurchaseOrder, v.Name, po.Date, po.Number); err != nil {
		return nil, err
	}

	if po.Number != "" {
		if err := s.repo.CreatePurchaseOrder(ctx, po); err != nil {
			return nil, err
		}

		return po, nil
	}

	err = s.createNumbered(ctx, po)
	if errors.Is(err, document.ErrDuplicateNumber) {
		slog.Warn("purchase order number taken concurrently, renumbering", "number", po.Number)
		err = s.createNumbered(ctx, po)
	}

	if err != nil {
		po.Number = ""
		return nil, err
	}

	return po, nil
}

func (s *Service) createNumbered(ctx context.Context, po *PurchaseOrder) error {
	prefix := document.NumberPrefix(document.KindPurchaseOrder, po.VendorName, po.Date)
	if document.GeneratedLength(prefix) > MaxNumberLength {
		return document.Invalid("vendor_id", fmt.Sprintf("vendor name yields a number longer than %d characters", MaxNumberLength))
	}

	ntx, err := s.repo.BeginNumbering(ctx, prefix)
	if err != nil {
		return fmt.Errorf("begin numbering: %w", err)
	}
	defer ntx.Rollback()

	number, err := document.NextNumber(ctx, ntx, document.KindPurchaseOrder, po.VendorName, po.Date)
	if err != nil {
		return err
	}

	po.Number = number

	if err := ntx.CreatePurchaseOrder(ctx, po); err != nil {
		return err
	}

	if err := ntx.Commit(); err != nil {
		return fmt.Errorf("commit purchase order: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error) {
	return s.repo.GetPurchaseOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*PurchaseOrder, error) {
	return s.repo.ListPurchaseOrders(ctx, filter)
}

// Update replaces vendor, date, terms and items. The number survives unless
// params carries a replacement.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*PurchaseOrder, error) {
	number, err := checkNumber(params.Number)
	if err != nil {
		return nil, err
	}

	po, err := s.repo.GetPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	v, err := s.vendor(ctx, params.VendorID)
	if err != nil {
		return nil, err
	}

	po.VendorID = v.ID
	po.VendorName = v.Name
	po.Terms = params.Terms
	po.ReplaceItems(params.Items)

	if !params.Date.IsZero() {
		po.Date = params.Date
	}

	if number != "" {
		po.Number = number
	}

	if err := document.CheckExplicitNumber("po_number", document.KindPurchaseOrder, po.VendorName, po.Date, po.Number); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePurchaseOrder(ctx, po); err != nil {
		return nil, err
	}

	return po, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePurchaseOrder(ctx, id)
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
		return "", document.Invalid("po_number", fmt.Sprintf("must be at most %d characters", MaxNumberLength))
	}

	return number, nil
}

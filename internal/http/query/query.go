// Package query reads typed, optional values from request URLs.
package query

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
)

// Date parses a YYYY-MM-DD value. A missing key yields nil.
func Date(r *http.Request, key string) (*time.Time, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, document.Invalid(key, "must be a date like 2006-01-02")
	}

	return new(t), nil
}

func UUID(r *http.Request, key string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, document.Invalid(key, "must be a valid id")
	}

	return new(id), nil
}

// Int parses a non-negative integer, returning def when the key is missing.
func Int(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, document.Invalid(key, "must be a non-negative integer")
	}

	return n, nil
}

// Page holds the vendor, date range and paging filters shared by the
// document list routes.
type Page struct {
	VendorID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// DefaultLimit caps list responses when no limit is given.
const DefaultLimit = 50

func ParsePage(r *http.Request) (Page, error) {
	var (
		p   Page
		err error
	)

	if p.VendorID, err = UUID(r, "vendor_id"); err != nil {
		return Page{}, err
	}

	if p.StartDate, err = Date(r, "start_date"); err != nil {
		return Page{}, err
	}

	if p.EndDate, err = Date(r, "end_date"); err != nil {
		return Page{}, err
	}

	// end_date is inclusive of the whole day.
	if p.EndDate != nil {
		p.EndDate = new(document.EndOfDay(*p.EndDate))
	}

	if p.Limit, err = Int(r, "limit", DefaultLimit); err != nil {
		return Page{}, err
	}

	if p.Offset, err = Int(r, "offset", 0); err != nil {
		return Page{}, err
	}

	return p, nil
}

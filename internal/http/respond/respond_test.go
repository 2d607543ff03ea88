package respond_test

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/http/respond"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/storage"
	"github.com/MrJamesThe3rd/backoffice/internal/user"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Validation", err: fmt.Errorf("item 1: %w", document.Invalid("quantity", "must not be negative")), want: http.StatusBadRequest},
		{name: "InvoiceNotFound", err: invoice.ErrNotFound, want: http.StatusNotFound},
		{name: "VendorNotFound", err: vendor.ErrNotFound, want: http.StatusNotFound},
		{name: "Duplicate", err: document.ErrDuplicateNumber, want: http.StatusConflict},
		{name: "Overflow", err: document.ErrNumberOverflow, want: http.StatusConflict},
		{name: "VendorInUse", err: vendor.ErrInUse, want: http.StatusConflict},
		{name: "UserNotFound", err: user.ErrNotFound, want: http.StatusNotFound},
		{name: "LastAdmin", err: user.ErrLastAdmin, want: http.StatusConflict},
		{name: "StorageDisabled", err: storage.ErrDisabled, want: http.StatusServiceUnavailable},
		{name: "Render", err: &export.RenderError{Number: "INV/AC/2024/0001", Err: errors.New("boom")}, want: http.StatusInternalServerError},
		{name: "Unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, respond.Status(tt.err))
		})
	}
}

func TestError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("pq: password leaked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "leaked")
}

func TestError_ValidationMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, httptest.NewRequest(http.MethodPost, "/x", nil), document.Invalid("vendor", "is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "vendor")
}

func TestFile_ContentDisposition(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		inline   bool
		want     string
	}{
		{name: "Plain", filename: "invoices.zip", want: "attachment"},
		{name: "Inline", filename: "purchase_order_PO_AC_2024_0007.pdf", inline: true, want: "inline"},
		{name: "Quote", filename: `a"b.pdf`, want: "attachment"},
		{name: "Semicolon", filename: "a; filename=evil.exe", want: "attachment"},
		{name: "NonASCII", filename: "fatura_Ação.html", inline: true, want: "inline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.File(rec, tt.filename, "application/octet-stream", []byte("x"), tt.inline)

			disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, disposition)
			assert.Equal(t, tt.filename, params["filename"])
			assert.Equal(t, "x", rec.Body.String())
		})
	}
}

package invoice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	invoicehttp "github.com/MrJamesThe3rd/backoffice/internal/http/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/render"
	"github.com/MrJamesThe3rd/backoffice/internal/report"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

type mocks struct {
	repo    *invoice.MockRepository
	vendors *invoice.MockVendorLookup
	source  *export.MockSource
}

type rendererFunc func(name string, data any) ([]byte, error)

func (f rendererFunc) Render(name string, data any) ([]byte, error) {
	return f(name, data)
}

// asRole stands in for the bearer token middleware.
func asRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := auth.WithClaims(r.Context(), &auth.Claims{Username: "ada", Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newServer(t *testing.T, role auth.Role) (http.Handler, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    invoice.NewMockRepository(ctrl),
		vendors: invoice.NewMockVendorLookup(ctrl),
		source:  export.NewMockSource(ctrl),
	}

	exports := export.NewService(export.Profile{
		Kind:   document.KindInvoice,
		Source: m.source,
		Renderer: rendererFunc(func(name string, data any) ([]byte, error) {
			return []byte("<html>" + data.(string) + "</html>"), nil
		}),
		Format:      render.FormatHTML,
		Template:    render.InvoicePrint,
		Entry:       "invoice",
		ArchiveName: "invoices.zip",
	})

	h := invoicehttp.NewHandler(invoice.NewService(m.repo, m.vendors), exports)

	r := chi.NewRouter()
	r.Use(asRole(role))
	r.Route("/invoices", h.Routes)

	return r, m
}

func stored(number string) *invoice.Invoice {
	item, _ := invoice.NewItem("Cement", decimal.RequireFromString("2"), decimal.RequireFromString("100"), decimal.RequireFromString("10"), true)

	inv := invoice.New(uuid.New(), time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "", []invoice.Item{item}, number)
	inv.ID = uuid.New()
	inv.VendorName = "Acme Co"

	return inv
}

func TestHandler_Create(t *testing.T) {
	vendorID := uuid.New()

	tests := []struct {
		name      string
		role      auth.Role
		body      string
		setupMock func(m mocks)
		wantCode  int
		wantBody  []string
	}{
		{
			name: "ExplicitNumber",
			role: auth.RoleProjectManager,
			body: `{"vendor_id":"` + vendorID.String() + `","date":"2024-03-10","invoice_number":"INV/AC/2024/0042",
				"items":[{"description":"Cement","quantity":"2","unit_price":"100","discount":"10","tax":true}]}`,
			setupMock: func(m mocks) {
				m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(&vendor.Vendor{ID: vendorID, Name: "Acme Co"}, nil)
				m.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
			wantBody: []string{
				`"invoice_number":"INV/AC/2024/0042"`,
				`"date":"2024-03-10"`,
				`"total":"180"`,
				`"net_amount":"175"`,
				`"terms":"Please pay within 30 days."`,
				`"total_in_words":"One Hundred And Eighty , Zero Kobo Naira Only"`,
			},
		},
		{
			name:      "AccountantForbidden",
			role:      auth.RoleAccountant,
			body:      `{}`,
			setupMock: func(m mocks) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "NegativeQuantity",
			role:      auth.RoleAdmin,
			body:      `{"vendor_id":"` + vendorID.String() + `","items":[{"description":"x","quantity":"-1","unit_price":"1"}]}`,
			setupMock: func(m mocks) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  []string{"quantity"},
		},
		{
			name:      "BadDate",
			role:      auth.RoleAdmin,
			body:      `{"vendor_id":"` + vendorID.String() + `","date":"10/03/2024"}`,
			setupMock: func(m mocks) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "UnknownVendor",
			role: auth.RoleAdmin,
			body: `{"vendor_id":"` + vendorID.String() + `","items":[]}`,
			setupMock: func(m mocks) {
				m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(nil, vendor.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "DuplicateNumber",
			role: auth.RoleAdmin,
			body: `{"vendor_id":"` + vendorID.String() + `","invoice_number":"INV/AC/2024/0001"}`,
			setupMock: func(m mocks) {
				m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(&vendor.Vendor{ID: vendorID, Name: "Acme Co"}, nil)
				m.repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(document.ErrDuplicateNumber)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newServer(t, tt.role)
			tt.setupMock(m)

			req := httptest.NewRequest(http.MethodPost, "/invoices/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestHandler_Get(t *testing.T) {
	inv := stored("INV/AC/2024/0001")

	t.Run("Found", func(t *testing.T) {
		srv, m := newServer(t, auth.RoleAccountant)
		m.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/"+inv.ID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"vendor_name":"Acme Co"`)
	})

	t.Run("NotFound", func(t *testing.T) {
		srv, m := newServer(t, auth.RoleAccountant)
		m.repo.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(nil, invoice.ErrNotFound)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/"+inv.ID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		srv, _ := newServer(t, auth.RoleAccountant)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/nope", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_List(t *testing.T) {
	srv, m := newServer(t, auth.RoleAccountant)

	m.repo.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f invoice.ListFilter) ([]*invoice.Invoice, error) {
			require.NotNil(t, f.StartDate)
			assert.Equal(t, 2024, f.StartDate.Year())
			assert.Equal(t, 5, f.Limit)

			return []*invoice.Invoice{stored("INV/AC/2024/0001"), stored("INV/AC/2024/0002")}, nil
		})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/?start_date=2024-01-01&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "INV/AC/2024/0002")
}

func TestHandler_List_BadFilter(t *testing.T) {
	srv, _ := newServer(t, auth.RoleAccountant)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/?vendor_id=nope", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Report(t *testing.T) {
	srv, m := newServer(t, auth.RoleAccountant)
	m.repo.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return([]*invoice.Invoice{stored("INV/AC/2024/0001")}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/report.xlsx", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "invoices.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHandler_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("ProjectManager", func(t *testing.T) {
		srv, m := newServer(t, auth.RoleProjectManager)
		m.repo.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/invoices/"+id.String(), nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Accountant", func(t *testing.T) {
		srv, _ := newServer(t, auth.RoleAccountant)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/invoices/"+id.String(), nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandler_Print(t *testing.T) {
	srv, m := newServer(t, auth.RoleAccountant)
	id := uuid.New()

	m.source.EXPECT().Load(gomock.Any(), id).Return(&export.Printable{Number: "INV/AC/2024/0001", View: "INV/AC/2024/0001"}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/"+id.String()+"/print", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "inline; filename=invoice_INV_AC_2024_0001.html", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "<html>INV/AC/2024/0001</html>", rec.Body.String())
}

func TestHandler_BulkDownload(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("JSON", func(t *testing.T) {
		srv, m := newServer(t, auth.RoleAccountant)
		gomock.InOrder(
			m.source.EXPECT().Load(gomock.Any(), a).Return(&export.Printable{Number: "INV/AC/2024/0001", View: "a"}, nil),
			m.source.EXPECT().Load(gomock.Any(), b).Return(nil, invoice.ErrNotFound),
		)

		req := httptest.NewRequest(http.MethodPost, "/invoices/bulk_download",
			strings.NewReader(`{"ids":["`+a.String()+`","`+b.String()+`"]}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, export.ContentTypeZip, rec.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=invoices.zip", rec.Header().Get("Content-Disposition"))
	})

	t.Run("FormWithNothingSelected", func(t *testing.T) {
		srv, _ := newServer(t, auth.RoleAccountant)

		req := httptest.NewRequest(http.MethodPost, "/invoices/bulk_download", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/invoices/", rec.Header().Get("Location"))
	})

	t.Run("FormIDs", func(t *testing.T) {
		srv, m := newServer(t, auth.RoleAccountant)
		m.source.EXPECT().Load(gomock.Any(), a).Return(&export.Printable{Number: "INV/AC/2024/0001", View: "a"}, nil)

		form := url.Values{"ids": {a.String()}}
		req := httptest.NewRequest(http.MethodPost, "/invoices/bulk_download", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		srv, _ := newServer(t, auth.RoleAccountant)

		req := httptest.NewRequest(http.MethodPost, "/invoices/bulk_download", strings.NewReader(`{"ids":["nope"]}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

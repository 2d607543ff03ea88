package purchaseorder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	pohttp "github.com/MrJamesThe3rd/backoffice/internal/http/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/render"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

var orderDate = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

type mocks struct {
	repo    *purchaseorder.MockRepository
	tx      *purchaseorder.MockNumberingTx
	vendors *purchaseorder.MockVendorLookup
	source  *export.MockSource
}

type rendererFunc func(name string, data any) ([]byte, error)

func (f rendererFunc) Render(name string, data any) ([]byte, error) {
	return f(name, data)
}

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
		repo:    purchaseorder.NewMockRepository(ctrl),
		tx:      purchaseorder.NewMockNumberingTx(ctrl),
		vendors: purchaseorder.NewMockVendorLookup(ctrl),
		source:  export.NewMockSource(ctrl),
	}

	exports := export.NewService(export.Profile{
		Kind:   document.KindPurchaseOrder,
		Source: m.source,
		Renderer: rendererFunc(func(name string, data any) ([]byte, error) {
			return []byte("%PDF-" + data.(string)), nil
		}),
		Format:      render.FormatPDF,
		Template:    render.PurchaseOrderPrint,
		Entry:       "purchase_order",
		ArchiveName: "purchase_orders.zip",
	})

	h := pohttp.NewHandler(purchaseorder.NewService(m.repo, m.vendors), exports)

	r := chi.NewRouter()
	r.Use(asRole(role))
	r.Route("/purchase_orders", h.Routes)

	return r, m
}

func TestHandler_Create_AssignsNumber(t *testing.T) {
	srv, m := newServer(t, auth.RoleAdmin)
	vendorID := uuid.New()

	m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(&vendor.Vendor{ID: vendorID, Name: "Acme Co"}, nil)
	m.repo.EXPECT().BeginNumbering(gomock.Any(), "PO/AC/2024/").Return(m.tx, nil)
	m.tx.EXPECT().MaxNumberWithPrefix(gomock.Any(), "PO/AC/2024/").Return("PO/AC/2024/0006", nil)
	m.tx.EXPECT().CreatePurchaseOrder(gomock.Any(), gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil)

	body := `{"vendor_id":"` + vendorID.String() + `","date":"2024-05-02","terms":"Deliver to site",
		"items":[{"description":"Steel rods","quantity":"3","unit_price":"1500.50"}]}`

	req := httptest.NewRequest(http.MethodPost, "/purchase_orders/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"po_number":"PO/AC/2024/0007"`)
	assert.Contains(t, rec.Body.String(), `"total":"4501.5"`)
	assert.Contains(t, rec.Body.String(), `"terms":"Deliver to site"`)
}

func TestHandler_Create_Overflow(t *testing.T) {
	srv, m := newServer(t, auth.RoleProjectManager)
	vendorID := uuid.New()

	m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(&vendor.Vendor{ID: vendorID, Name: "Acme Co"}, nil)
	m.repo.EXPECT().BeginNumbering(gomock.Any(), gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().MaxNumberWithPrefix(gomock.Any(), gomock.Any()).Return("PO/AC/2024/9999", nil)
	m.tx.EXPECT().Rollback().Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/purchase_orders/",
		strings.NewReader(`{"vendor_id":"`+vendorID.String()+`","date":"2024-05-02"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Print(t *testing.T) {
	srv, m := newServer(t, auth.RoleAccountant)
	id := uuid.New()

	m.source.EXPECT().Load(gomock.Any(), id).Return(&export.Printable{Number: "PO/AC/2024/0007", View: "x"}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/purchase_orders/"+id.String()+"/print", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=purchase_order_PO_AC_2024_0007.pdf", rec.Header().Get("Content-Disposition"))
}

func TestHandler_BulkDownload_NothingSelected(t *testing.T) {
	srv, _ := newServer(t, auth.RoleAccountant)

	req := httptest.NewRequest(http.MethodPost, "/purchase_orders/bulk_download", strings.NewReader(`{"ids":[]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/purchase_orders/", rec.Header().Get("Location"))
}

func TestHandler_Update_KeepsNumber(t *testing.T) {
	srv, m := newServer(t, auth.RoleProjectManager)
	vendorID := uuid.New()

	po := purchaseorder.New(vendorID, orderDate, "", nil, "PO/AC/2024/0003")
	po.ID = uuid.New()

	m.repo.EXPECT().GetPurchaseOrder(gomock.Any(), po.ID).Return(po, nil)
	m.vendors.EXPECT().Get(gomock.Any(), vendorID).Return(&vendor.Vendor{ID: vendorID, Name: "Acme Co"}, nil)
	m.repo.EXPECT().UpdatePurchaseOrder(gomock.Any(), po).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/purchase_orders/"+po.ID.String(),
		strings.NewReader(`{"vendor_id":"`+vendorID.String()+`","terms":"Net 14"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"po_number":"PO/AC/2024/0003"`)
	assert.Contains(t, rec.Body.String(), `"date":"2024-05-02"`)
}

package purchaseorder

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/http/authz"
	"github.com/MrJamesThe3rd/backoffice/internal/http/query"
	"github.com/MrJamesThe3rd/backoffice/internal/http/respond"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/report"
)

type Handler struct {
	svc     *purchaseorder.Service
	exports *export.Service
}

func NewHandler(svc *purchaseorder.Service, exports *export.Service) *Handler {
	return &Handler{svc: svc, exports: exports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(authz.RequireRole(authz.Everyone...))
		r.Get("/", h.list)
		r.Get("/report.xlsx", h.report)
		r.Post("/bulk_download", h.bulkDownload)
		r.Get("/{id}", h.get)
		r.Get("/{id}/print", h.print)
	})

	r.Group(func(r chi.Router) {
		r.Use(authz.RequireRole(authz.Editors...))
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

type purchaseOrderRequest struct {
	VendorID uuid.UUID                 `json:"vendor_id"`
	Date     string                    `json:"date"`
	Terms    string                    `json:"terms"`
	PONumber string                    `json:"po_number"`
	Items    []purchaseorder.ItemInput `json:"items"`
}

// parse converts the body into service input. An empty date means today on
// create and "unchanged" on update.
func (req purchaseOrderRequest) parse() (time.Time, []purchaseorder.Item, error) {
	var date time.Time

	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return time.Time{}, nil, document.Invalid("date", "must be a date like 2006-01-02")
		}

		date = d
	}

	items, err := purchaseorder.ParseItems(req.Items)
	if err != nil {
		return time.Time{}, nil, err
	}

	return date, items, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req purchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, items, err := req.parse()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	po, err := h.svc.Create(r.Context(), purchaseorder.CreateParams{
		VendorID: req.VendorID,
		Date:     date,
		Terms:    req.Terms,
		Items:    items,
		Number:   req.PONumber,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(po))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	pos, err := h.find(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(pos))
}

// report exports the filtered list as a spreadsheet.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	pos, err := h.find(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	data, err := report.PurchaseOrders(pos)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.File(w, report.PurchaseOrdersFile, report.ContentType, data, false)
}

func (h *Handler) find(r *http.Request) ([]*purchaseorder.PurchaseOrder, error) {
	page, err := query.ParsePage(r)
	if err != nil {
		return nil, err
	}

	return h.svc.List(r.Context(), purchaseorder.ListFilter{
		VendorID:  page.VendorID,
		StartDate: page.StartDate,
		EndDate:   page.EndDate,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	po, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(po))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req purchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, items, err := req.parse()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	po, err := h.svc.Update(r.Context(), id, purchaseorder.UpdateParams{
		VendorID: req.VendorID,
		Date:     date,
		Terms:    req.Terms,
		Items:    items,
		Number:   req.PONumber,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(po))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) print(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	file, err := h.exports.Print(r.Context(), document.KindPurchaseOrder, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.File(w, file.Name, file.ContentType, file.Data, true)
}

type bulkRequest struct {
	IDs []string `json:"ids"`
}

// bulkDownload accepts ids as a JSON body or as repeated form values. With
// nothing selected it sends the caller back to the list.
func (h *Handler) bulkDownload(w http.ResponseWriter, r *http.Request) {
	ids, err := bulkIDs(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, err := h.exports.Bulk(r.Context(), document.KindPurchaseOrder, ids)
	if err != nil {
		if errors.Is(err, export.ErrNoDocuments) {
			http.Redirect(w, r, strings.TrimSuffix(r.URL.Path, "/bulk_download")+"/", http.StatusSeeOther)
			return
		}

		respond.Error(w, r, err)

		return
	}

	respond.File(w, file.Name, file.ContentType, file.Data, false)
}

func bulkIDs(r *http.Request) ([]uuid.UUID, error) {
	var raw []string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req bulkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}

		raw = req.IDs
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}

		raw = r.PostForm["ids"]
	}

	ids := make([]uuid.UUID, 0, len(raw))

	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, document.Invalid("ids", "must be valid ids")
		}

		ids = append(ids, id)
	}

	return ids, nil
}

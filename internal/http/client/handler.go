package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/backoffice/internal/client"
	"github.com/MrJamesThe3rd/backoffice/internal/http/authz"
	"github.com/MrJamesThe3rd/backoffice/internal/http/respond"
	"github.com/MrJamesThe3rd/backoffice/internal/http/upload"
	"github.com/MrJamesThe3rd/backoffice/internal/storage"
)

type LogoGetter interface {
	GetLogo(ctx context.Context, key string) (*storage.Logo, error)
}

type Handler struct {
	svc   *client.Service
	logos LogoGetter
}

func NewHandler(svc *client.Service, logos LogoGetter) *Handler {
	return &Handler{svc: svc, logos: logos}
}

// Routes exposes the issuing company settings. Only admins may see or change
// them.
func (h *Handler) Routes(r chi.Router) {
	r.Use(authz.RequireRole(authz.Admins...))
	r.Get("/", h.get)
	r.Put("/", h.update)
	r.Get("/logo", h.logo)
	r.Put("/logo", h.setLogo)
}

type clientResponse struct {
	CompanyName string     `json:"company_name"`
	Address     string     `json:"address"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number"`
	HasLogo     bool       `json:"has_logo"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		CompanyName: c.CompanyName,
		Address:     c.Address,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		HasLogo:     c.LogoKey != "",
		UpdatedAt:   c.UpdatedAt,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Load(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var params client.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) setLogo(w http.ResponseWriter, r *http.Request) {
	contentType, data, err := upload.Image(w, r, "logo")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	key, err := h.svc.SetLogo(r.Context(), contentType, data)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"logo_key": key})
}

func (h *Handler) logo(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Load(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if c.LogoKey == "" {
		http.Error(w, "no logo uploaded", http.StatusNotFound)
		return
	}

	logo, err := h.logos.GetLogo(r.Context(), c.LogoKey)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.File(w, "logo", logo.ContentType, logo.Data, true)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/backoffice/internal/http/authz"
	"github.com/MrJamesThe3rd/backoffice/internal/http/client"
	"github.com/MrJamesThe3rd/backoffice/internal/http/invoice"
	"github.com/MrJamesThe3rd/backoffice/internal/http/purchaseorder"
	"github.com/MrJamesThe3rd/backoffice/internal/http/user"
	"github.com/MrJamesThe3rd/backoffice/internal/http/vendor"
)

type Options struct {
	AllowedOrigins []string
	Tokens         authz.TokenParser
}

func New(
	opts Options,
	vendorsV1 *vendor.Handler,
	clientV1 *client.Handler,
	invoicesV1 *invoice.Handler,
	purchaseOrdersV1 *purchaseorder.Handler,
	usersV1 *user.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authz.Authenticate(opts.Tokens))

		r.Route("/vendors", vendorsV1.Routes)
		r.Route("/client", clientV1.Routes)
		r.Route("/invoices", invoicesV1.Routes)
		r.Route("/purchase_orders", purchaseOrdersV1.Routes)
		r.Route("/users", usersV1.Routes)
	})

	return router
}

// Package app assembles the services shared by the API server and the TUI.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/backoffice/internal/client"
	clientStore "github.com/MrJamesThe3rd/backoffice/internal/client/store"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/database"
	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/export"
	"github.com/MrJamesThe3rd/backoffice/internal/importer"
	"github.com/MrJamesThe3rd/backoffice/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/backoffice/internal/invoice/store"
	"github.com/MrJamesThe3rd/backoffice/internal/purchaseorder"
	poStore "github.com/MrJamesThe3rd/backoffice/internal/purchaseorder/store"
	"github.com/MrJamesThe3rd/backoffice/internal/render"
	"github.com/MrJamesThe3rd/backoffice/internal/storage"
	"github.com/MrJamesThe3rd/backoffice/internal/user"
	userStore "github.com/MrJamesThe3rd/backoffice/internal/user/store"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
	vendorStore "github.com/MrJamesThe3rd/backoffice/internal/vendor/store"
)

type App struct {
	DB             *sql.DB
	Logos          *storage.Store
	Vendors        *vendor.Service
	Client         *client.Service
	Invoices       *invoice.Service
	PurchaseOrders *purchaseorder.Service
	Exports        *export.Service
	Importer       *importer.Service
	Users          *user.Service
}

// New connects to the database and object storage, applies the schema and
// builds every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	logos, err := storage.New(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := logos.EnsureBucket(ctx); err != nil {
		db.Close()
		return nil, err
	}

	html, err := render.NewHTMLRenderer()
	if err != nil {
		db.Close()
		return nil, err
	}

	var (
		vendorService  = vendor.NewService(vendorStore.New(db), logos)
		clientService  = client.NewService(clientStore.New(db), logos)
		invoiceService = invoice.NewService(invoiceStore.New(db), vendorService)
		poService      = purchaseorder.NewService(poStore.New(db), vendorService)
	)

	exportService := export.NewService(
		export.Profile{
			Kind:        document.KindInvoice,
			Source:      export.NewInvoiceSource(invoiceService, vendorService, clientService, logos),
			Renderer:    html,
			Format:      render.FormatHTML,
			Template:    render.InvoicePrint,
			Entry:       "invoice",
			ArchiveName: "invoices.zip",
		},
		export.Profile{
			Kind:        document.KindPurchaseOrder,
			Source:      export.NewPurchaseOrderSource(poService, vendorService, clientService, logos),
			Renderer:    render.NewPDFRenderer(),
			Format:      render.FormatPDF,
			Template:    render.PurchaseOrderPrint,
			Entry:       "purchase_order",
			ArchiveName: "purchase_orders.zip",
		},
	)

	return &App{
		DB:             db,
		Logos:          logos,
		Vendors:        vendorService,
		Client:         clientService,
		Invoices:       invoiceService,
		PurchaseOrders: poService,
		Exports:        exportService,
		Importer:       importer.NewService(),
		Users:          user.NewService(userStore.New(db)),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}

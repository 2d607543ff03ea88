package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/backoffice/internal/app"
	"github.com/MrJamesThe3rd/backoffice/internal/auth"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	backofficeHttp "github.com/MrJamesThe3rd/backoffice/internal/http"
	clientHandler "github.com/MrJamesThe3rd/backoffice/internal/http/client"
	invoiceHandler "github.com/MrJamesThe3rd/backoffice/internal/http/invoice"
	poHandler "github.com/MrJamesThe3rd/backoffice/internal/http/purchaseorder"
	userHandler "github.com/MrJamesThe3rd/backoffice/internal/http/user"
	vendorHandler "github.com/MrJamesThe3rd/backoffice/internal/http/vendor"
	"github.com/MrJamesThe3rd/backoffice/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer services.Close()

	if !services.Logos.Enabled() {
		slog.Warn("object storage not configured, logos are disabled")
	}

	var (
		vendorH  = vendorHandler.NewHandler(services.Vendors, services.Importer, services.Logos)
		clientH  = clientHandler.NewHandler(services.Client, services.Logos)
		invoiceH = invoiceHandler.NewHandler(services.Invoices, services.Exports)
		poH      = poHandler.NewHandler(services.PurchaseOrders, services.Exports)
		userH    = userHandler.NewHandler(services.Users)
	)

	router := backofficeHttp.New(backofficeHttp.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Tokens:         auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
	}, vendorH, clientH, invoiceH, poH, userH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "addr", srv.Addr, "app", cfg.App.Name)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

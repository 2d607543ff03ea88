package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/backoffice/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/backoffice/internal/app"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/logging"
)

type model struct {
	name     string
	services *app.App

	invoices       view.Documents
	purchaseOrders view.Documents

	currentView View
	active      tea.Model
}

type View int

const (
	ViewMenu View = iota
	ViewBrowse
	ViewCreate
	ViewExport
)

func initialModel(name string, services *app.App) model {
	return model{
		name:           name,
		services:       services,
		invoices:       view.NewInvoiceDocuments(services.Invoices),
		purchaseOrders: view.NewPurchaseOrderDocuments(services.PurchaseOrders),
		currentView:    ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) open(v View, next tea.Model) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.active = next

	return m, next.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				return m.open(ViewBrowse, view.NewBrowseModel(m.invoices))
			case "2":
				return m.open(ViewBrowse, view.NewBrowseModel(m.purchaseOrders))
			case "3":
				return m.open(ViewCreate, view.NewCreateModel(m.invoices, m.services.Vendors))
			case "4":
				return m.open(ViewCreate, view.NewCreateModel(m.purchaseOrders, m.services.Vendors))
			}

			return m, nil
		}

	case view.ExportRequestMsg:
		return m.open(ViewExport, view.NewExportModel(m.services.Exports, msg))

	case view.BackMsg:
		m.currentView = ViewMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.currentView == ViewMenu || m.active == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			m.name + "\n\n" +
				"1. Invoices\n" +
				"2. Purchase Orders\n" +
				"3. New Invoice\n" +
				"4. New Purchase Order\n\n" +
				"q. Quit",
		)
	}

	body := m.active.View()

	if v, ok := m.active.(view.View); ok {
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Render(v.Title())
		help := lipgloss.NewStyle().Faint(true).Render(v.ShortHelp())

		return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
	}

	return body
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI; logs only surface when LOG_FILE is set.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()

		logOut = f
	}

	if err := logging.Setup(logOut, cfg.Log.Level, cfg.Log.Format); err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}

	services, err := app.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer services.Close()

	p := tea.NewProgram(initialModel(cfg.App.Name, services), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/money"
	"github.com/MrJamesThe3rd/backoffice/internal/vendor"
)

type VendorLister interface {
	List(ctx context.Context, filter vendor.ListFilter) ([]*vendor.Vendor, error)
}

type createState int

const (
	createStateLoading createState = iota
	createStateForm
	createStateSaving
	createStateResult
)

// createFields lives on the heap so form bindings survive model copies.
type createFields struct {
	vendorID    string
	description string
	quantity    string
	unitPrice   string
	terms       string
}

// CreateModel quick-creates a single-line document against an existing
// vendor. The number is assigned on save.
type CreateModel struct {
	CommonModel
	docs    Documents
	vendors VendorLister

	state  createState
	form   *huh.Form
	fields *createFields

	created Row
	err     error
}

func NewCreateModel(docs Documents, vendors VendorLister) CreateModel {
	return CreateModel{
		docs:    docs,
		vendors: vendors,
		fields:  &createFields{quantity: "1"},
	}
}

func (m CreateModel) Title() string { return "New " + strings.TrimSuffix(m.docs.Label(), "s") }

func (m CreateModel) ShortHelp() string {
	if m.state == createStateResult {
		return "Esc: back"
	}

	return "Navigate form | Esc: cancel"
}

func (m CreateModel) Init() tea.Cmd {
	vendors := m.vendors

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		vs, err := vendors.List(ctx, vendor.ListFilter{})

		return vendorsLoadedMsg{vendors: vs, err: err}
	}
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.state != createStateSaving {
		return m, Back
	}

	switch msg := msg.(type) {
	case vendorsLoadedMsg:
		if msg.err != nil {
			m.state = createStateResult
			m.err = msg.err

			return m, nil
		}

		if len(msg.vendors) == 0 {
			m.state = createStateResult
			m.err = errors.New("no vendors yet, add one first")

			return m, nil
		}

		m.form = m.buildForm(msg.vendors)
		m.state = createStateForm

		return m, m.form.Init()

	case createdMsg:
		m.state = createStateResult
		m.created = msg.row
		m.err = msg.err

		return m, nil
	}

	if m.state != createStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	line, err := m.fields.line()
	if err != nil {
		m.state = createStateResult
		m.err = err

		return m, nil
	}

	m.state = createStateSaving

	return m, m.saveCmd(line)
}

func (m CreateModel) buildForm(vendors []*vendor.Vendor) *huh.Form {
	options := make([]huh.Option[string], len(vendors))
	for i, v := range vendors {
		options[i] = huh.NewOption(v.Name, v.ID.String())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Vendor").
				Options(options...).
				Value(&m.fields.vendorID),

			huh.NewInput().
				Title("Description").
				Value(&m.fields.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description cannot be empty")
					}

					return nil
				}),

			huh.NewInput().
				Title("Quantity").
				Value(&m.fields.quantity).
				Validate(func(s string) error {
					_, err := money.ParseQuantity(s)
					return err
				}),

			huh.NewInput().
				Title("Unit Price").
				Placeholder("0.00").
				Value(&m.fields.unitPrice).
				Validate(func(s string) error {
					_, err := money.ParseAmount(s)
					return err
				}),

			huh.NewText().
				Title("Terms").
				Description("Optional").
				Value(&m.fields.terms),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (f *createFields) line() (QuickLine, error) {
	vendorID, err := uuid.Parse(f.vendorID)
	if err != nil {
		return QuickLine{}, fmt.Errorf("invalid vendor: %w", err)
	}

	quantity, err := money.ParseQuantity(f.quantity)
	if err != nil {
		return QuickLine{}, fmt.Errorf("quantity: %w", err)
	}

	unitPrice, err := money.ParseAmount(f.unitPrice)
	if err != nil {
		return QuickLine{}, fmt.Errorf("unit price: %w", err)
	}

	return QuickLine{
		VendorID:    vendorID,
		Description: f.description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Terms:       strings.TrimSpace(f.terms),
	}, nil
}

func (m CreateModel) View() string {
	switch m.state {
	case createStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading vendors...")
	case createStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case createStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to back)")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Created " + m.created.Number)

	return lipgloss.NewStyle().Padding(2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("Vendor: %s", m.created.VendorName),
			fmt.Sprintf("Total:  %s", FormatAmount(m.created.Total)),
			m.created.TotalInWords(),
			"",
			"(Esc to back)",
		),
	)
}

type vendorsLoadedMsg struct {
	vendors []*vendor.Vendor
	err     error
}

type createdMsg struct {
	row Row
	err error
}

func (m CreateModel) saveCmd(line QuickLine) tea.Cmd {
	docs := m.docs

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		row, err := docs.QuickCreate(ctx, line)

		return createdMsg{row: row, err: err}
	}
}

package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
)

type browseState int

const (
	browseStateList browseState = iota
	browseStateTimeframe
	browseStateTerms
)

// ExportRequestMsg asks the root model to export the selected documents.
type ExportRequestMsg struct {
	Kind  document.Kind
	Label string
	IDs   []uuid.UUID
}

type BrowseModel struct {
	CommonModel
	docs Documents

	state           browseState
	table           table.Model
	rows            []Row
	selected        map[uuid.UUID]bool
	timeframePicker TimeframePicker
	form            *huh.Form

	dateRange DateRange
	rangeName string
	loading   bool
	err       error
	status    string

	// Heap-allocated so the form binding survives model copies.
	formTerms *string
}

func NewBrowseModel(docs Documents) BrowseModel {
	columns := []table.Column{
		{Title: " ", Width: 2},
		{Title: "Number", Width: 22},
		{Title: "Date", Width: 12},
		{Title: "Vendor", Width: 28},
		{Title: "Items", Width: 6},
		{Title: "Total", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return BrowseModel{
		docs:            docs,
		table:           t,
		selected:        make(map[uuid.UUID]bool),
		timeframePicker: NewTimeframePicker(TimeframeThisMonth),
		rangeName:       TimeframeAll.String(),
		loading:         true,
	}
}

func (m BrowseModel) Title() string { return m.docs.Label() }

func (m BrowseModel) ShortHelp() string {
	switch m.state {
	case browseStateTerms:
		return "Navigate form | Esc: cancel"
	case browseStateTimeframe:
		return "Esc: cancel"
	}

	return "Esc: back | space: select | a: all | x: export | t: terms | d: dates | r: refresh"
}

func (m BrowseModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRowsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.rows = msg.rows
		m.pruneSelection()
		m.refreshTable()

		return m, nil

	case termsSavedMsg:
		m.state = browseStateList
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Terms updated"

		return m, m.loadCmd()

	case TimeframeSelectedMsg:
		m.dateRange = msg.Range
		m.rangeName = msg.Label
		m.state = browseStateList
		m.loading = true
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil
	}

	switch m.state {
	case browseStateTimeframe:
		return m.updateTimeframe(msg)
	case browseStateTerms:
		return m.updateTerms(msg)
	}

	return m.updateList(msg)
}

func (m BrowseModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case " ":
			if row, ok := m.current(); ok {
				m.selected[row.ID] = !m.selected[row.ID]
				if !m.selected[row.ID] {
					delete(m.selected, row.ID)
				}

				m.refreshTable()
			}

			return m, nil
		case "a":
			m.toggleAll()
			m.refreshTable()

			return m, nil
		case "d":
			m.state = browseStateTimeframe
			m.timeframePicker.Reset()
			m.table.Blur()

			return m, nil
		case "t":
			return m.enterTermsMode()
		case "x":
			ids := m.selectedIDs()
			if len(ids) == 0 {
				m.status = "Nothing selected"
				return m, nil
			}

			req := ExportRequestMsg{Kind: m.docs.Kind(), Label: m.docs.Label(), IDs: ids}

			return m, func() tea.Msg { return req }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BrowseModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			m.state = browseStateList
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m BrowseModel) enterTermsMode() (tea.Model, tea.Cmd) {
	row, ok := m.current()
	if !ok {
		return m, nil
	}

	m.formTerms = new(row.Terms)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("terms").
				Title("Terms").
				CharLimit(1000).
				Value(m.formTerms),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = browseStateTerms
	m.table.Blur()

	return m, m.form.Init()
}

func (m BrowseModel) updateTerms(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = browseStateList
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveTermsCmd()
}

func (m BrowseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Loading %s...", strings.ToLower(m.docs.Label())))
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)) + "\n\n(r to retry, Esc to back)")
	}

	if m.state == browseStateTimeframe {
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	}

	header := fmt.Sprintf(
		"%s | [d] Dates: %s | Selected: %s",
		m.docs.Label(),
		activeStyle(m.rangeName),
		activeStyle(fmt.Sprintf("%d", len(m.selected))),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	footer := ""
	if row, ok := m.current(); ok {
		footer = lipgloss.NewStyle().Faint(true).Render(row.TotalInWords())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		footer,
	)

	if m.state == browseStateTerms && m.form != nil {
		row, _ := m.current()
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Edit Terms\n\n%s\n\n%s", row.Number, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m BrowseModel) current() (Row, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return Row{}, false
	}

	return m.rows[idx], true
}

// toggleAll selects every listed row, or clears the selection when all are
// already selected.
func (m *BrowseModel) toggleAll() {
	if len(m.selected) == len(m.rows) {
		clear(m.selected)
		return
	}

	for _, row := range m.rows {
		m.selected[row.ID] = true
	}
}

// selectedIDs keeps list order so archives follow what the user sees.
func (m BrowseModel) selectedIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.selected))
	for _, row := range m.rows {
		if m.selected[row.ID] {
			ids = append(ids, row.ID)
		}
	}

	return ids
}

func (m *BrowseModel) pruneSelection() {
	listed := make(map[uuid.UUID]bool, len(m.rows))
	for _, row := range m.rows {
		listed[row.ID] = true
	}

	for id := range m.selected {
		if !listed[id] {
			delete(m.selected, id)
		}
	}
}

func (m *BrowseModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		mark := ""
		if m.selected[r.ID] {
			mark = "*"
		}

		rows = append(rows, table.Row{
			mark,
			r.Number,
			FormatDate(r.Date),
			r.VendorName,
			fmt.Sprintf("%d", r.Items),
			FormatAmount(r.Total),
		})
	}

	m.table.SetRows(rows)
}

type loadRowsMsg struct {
	rows []Row
	err  error
}

func (m BrowseModel) loadCmd() tea.Cmd {
	docs, r := m.docs, m.dateRange

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rows, err := docs.List(ctx, r)

		return loadRowsMsg{rows: rows, err: err}
	}
}

type termsSavedMsg struct {
	err error
}

func (m BrowseModel) saveTermsCmd() tea.Cmd {
	row, ok := m.current()
	if !ok {
		return nil
	}

	docs, terms := m.docs, strings.TrimSpace(*m.formTerms)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return termsSavedMsg{err: docs.SetTerms(ctx, row.ID, terms)}
	}
}

package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spendo/internal/category"
	"spendo/internal/session"
	"spendo/internal/transaction"
)

// TransactionsModel lists the signed-in user's transactions, newest
// first.
type TransactionsModel struct {
	CommonModel
	session *session.Session

	table    table.Model
	txs      []transaction.Transaction
	currency string
	loading  bool
	err      error
}

func NewTransactionsModel(s *session.Session) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Type", Width: 8},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 18},
		{Title: "Method", Width: 8},
		{Title: "Notes", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s2 := table.DefaultStyles()
	s2.Header = s2.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s2.Selected = s2.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s2)

	return TransactionsModel{
		session: s,
		table:   t,
		loading: true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }

func (m TransactionsModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTransactionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.currency = msg.currency
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(tableView)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			FormatAmount(tx.Amount, m.currency),
			category.Lookup(tx.Category).Name,
			string(tx.Method),
			tx.Notes,
		})
	}

	m.table.SetRows(rows)
}

type loadTransactionsMsg struct {
	txs      []transaction.Transaction
	currency string
	err      error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.User()
		if err != nil {
			return loadTransactionsMsg{err: err}
		}

		store, err := m.session.Store()
		if err != nil {
			return loadTransactionsMsg{err: err}
		}

		return loadTransactionsMsg{txs: store.List(), currency: user.Currency}
	}
}

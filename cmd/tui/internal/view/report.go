package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spendo/internal/report"
	"spendo/internal/session"
)

var reportPeriods = []report.Period{
	report.PeriodDaily,
	report.PeriodWeekly,
	report.PeriodMonthly,
	report.PeriodYearly,
}

const barWidth = 30

// ReportModel shows aggregate income, expense and a per-category
// expense breakdown for a cycling time period.
type ReportModel struct {
	CommonModel
	session *session.Session

	periodIdx int
	data      report.Data
	currency  string
	loading   bool
	err       error
}

func NewReportModel(s *session.Session) ReportModel {
	return ReportModel{
		session:   s,
		periodIdx: 2, // monthly
		loading:   true,
	}
}

func (m ReportModel) Title() string { return "Reports" }

func (m ReportModel) ShortHelp() string {
	return "Esc: back | p / left / right: change period | r: refresh"
}

func (m ReportModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReportMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.data = msg.data
		m.currency = msg.currency

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "p", "right":
			m.periodIdx = (m.periodIdx + 1) % len(reportPeriods)
			m.loading = true

			return m, m.loadCmd()
		case "left":
			m.periodIdx = (m.periodIdx + len(reportPeriods) - 1) % len(reportPeriods)
			m.loading = true

			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m ReportModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Crunching numbers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	period := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render(strings.ToUpper(string(reportPeriods[m.periodIdx])))

	totals := fmt.Sprintf(
		"Income:  %s\nExpense: %s\nBalance: %s",
		FormatAmount(m.data.Income, m.currency),
		FormatAmount(m.data.Expense, m.currency),
		FormatAmount(m.data.Balance, m.currency),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		period,
		"",
		totals,
		"",
		m.viewBreakdown(),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ReportModel) viewBreakdown() string {
	if len(m.data.ByCategory) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No expenses in this period.")
	}

	lines := make([]string, 0, len(m.data.ByCategory))

	for _, ct := range m.data.ByCategory {
		width := 1
		if m.data.Expense.IsPositive() {
			ratio, _ := ct.Amount.Div(m.data.Expense).Float64()
			width = int(ratio * barWidth)

			if width < 1 {
				width = 1
			}
		}

		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ct.Color)).
			Render(strings.Repeat("█", width))

		lines = append(lines, fmt.Sprintf("%-18s %s %s",
			ct.Category, bar, FormatAmount(ct.Amount, m.currency)))
	}

	return strings.Join(lines, "\n")
}

type loadReportMsg struct {
	data     report.Data
	currency string
	err      error
}

func (m ReportModel) loadCmd() tea.Cmd {
	period := reportPeriods[m.periodIdx]

	return func() tea.Msg {
		user, err := m.session.User()
		if err != nil {
			return loadReportMsg{err: err}
		}

		store, err := m.session.Store()
		if err != nil {
			return loadReportMsg{err: err}
		}

		data := report.Generate(store.List(), period, time.Now())

		return loadReportMsg{data: data, currency: user.Currency}
	}
}

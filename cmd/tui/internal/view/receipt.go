package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spendo/internal/category"
	"spendo/internal/receipt"
	"spendo/internal/session"
	"spendo/internal/transaction"
)

type receiptState int

const (
	receiptStateIdle receiptState = iota
	receiptStateScanning
	receiptStateResult
	receiptStateDone
)

// ReceiptModel runs the receipt extractor and saves the result as an
// expense.
type ReceiptModel struct {
	CommonModel
	session   *session.Session
	extractor receipt.Extractor

	state      receiptState
	spinner    spinner.Model
	extraction receipt.Extraction
	saved      transaction.Transaction
	err        error
}

func NewReceiptModel(s *session.Session, extractor receipt.Extractor) ReceiptModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ReceiptModel{
		session:   s,
		extractor: extractor,
		spinner:   sp,
	}
}

func (m ReceiptModel) Title() string { return "Scan Receipt" }

func (m ReceiptModel) ShortHelp() string {
	switch m.state {
	case receiptStateResult:
		return "a: save as expense | s: scan again | Esc: back"
	case receiptStateDone:
		return "s: scan another | Esc: back"
	case receiptStateScanning:
		return "Scanning..."
	}
	return "s: scan | Esc: back"
}

func (m ReceiptModel) Init() tea.Cmd {
	return nil
}

func (m ReceiptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = receiptStateIdle

			return m, nil
		}

		m.extraction = msg.extraction
		m.state = receiptStateResult

		return m, nil

	case receiptSaveMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = receiptStateResult

			return m, nil
		}

		m.saved = msg.tx
		m.state = receiptStateDone

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.state == receiptStateScanning {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ReceiptModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, Back
	case "s":
		if m.state == receiptStateScanning {
			return m, nil
		}

		m.state = receiptStateScanning
		m.err = nil

		return m, tea.Batch(m.spinner.Tick, m.scanCmd())
	case "a":
		if m.state != receiptStateResult {
			return m, nil
		}

		if m.extraction.Amount == nil {
			m.err = fmt.Errorf("no amount was extracted")
			return m, nil
		}

		return m, m.saveCmd()
	}

	return m, nil
}

func (m ReceiptModel) View() string {
	switch m.state {
	case receiptStateIdle:
		content := "Press s to scan a receipt."
		if m.err != nil {
			content = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(content)

	case receiptStateScanning:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Scanning receipt...", m.spinner.View()),
		)

	case receiptStateResult:
		return m.viewResult()

	case receiptStateDone:
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")).
			Render("Expense Saved!")

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				header,
				"",
				fmt.Sprintf("%s from %s", m.saved.Amount.String(), m.saved.Notes),
			),
		)
	}

	return ""
}

func (m ReceiptModel) viewResult() string {
	amount := "not found"
	if m.extraction.Amount != nil {
		amount = m.extraction.Amount.String()
	}

	date := "not found"
	if m.extraction.Date != nil {
		date = FormatDate(*m.extraction.Date)
	}

	preview := fmt.Sprintf("Vendor: %s\nAmount: %s\nDate:   %s",
		m.extraction.Vendor, amount, date)

	content := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(preview)

	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("Error: %v", m.err))
		content = lipgloss.JoinVertical(lipgloss.Left, content, errLine)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type scanResultMsg struct {
	extraction receipt.Extraction
	err        error
}

func (m ReceiptModel) scanCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		extraction, err := m.extractor.Extract(ctx, "camera")

		return scanResultMsg{extraction: extraction, err: err}
	}
}

type receiptSaveMsg struct {
	tx  transaction.Transaction
	err error
}

func (m ReceiptModel) saveCmd() tea.Cmd {
	params := transaction.CreateParams{
		Amount:   *m.extraction.Amount,
		Type:     transaction.TypeExpense,
		Category: category.Other,
		Notes:    m.extraction.Vendor,
	}

	if m.extraction.Date != nil {
		params.Date = *m.extraction.Date
	}

	return func() tea.Msg {
		store, err := m.session.Store()
		if err != nil {
			return receiptSaveMsg{err: err}
		}

		ctx, cancel := OpCtx()
		defer cancel()

		tx, err := store.Append(ctx, params)

		return receiptSaveMsg{tx: tx, err: err}
	}
}

package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"spendo/internal/category"
	"spendo/internal/entry"
	"spendo/internal/session"
	"spendo/internal/transaction"
)

type entryState int

const (
	entryStateAmount entryState = iota
	entryStateDetails
	entryStateSaving
	entryStateDone
)

// EntryModel is the manual add-transaction screen: a keypad builds the
// amount, then a form collects category, method and notes.
type EntryModel struct {
	CommonModel
	session *session.Session

	state   entryState
	keypad  *entry.Keypad
	txType  transaction.Type
	form    *huh.Form
	spinner spinner.Model

	saved transaction.Transaction
	err   error

	formCategory string
	formMethod   string
	formNotes    string
}

func NewEntryModel(s *session.Session) EntryModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return EntryModel{
		session: s,
		keypad:  entry.New(),
		txType:  transaction.TypeExpense,
		spinner: sp,
	}
}

func (m EntryModel) Title() string { return "Add Transaction" }

func (m EntryModel) ShortHelp() string {
	switch m.state {
	case entryStateAmount:
		return "0-9 .: type amount | backspace: delete | t: income/expense | Enter: next | Esc: back"
	case entryStateDetails:
		return "Navigate form | Esc: back to amount"
	case entryStateDone:
		return "n: add another | Esc: back"
	}
	return "Saving..."
}

func (m EntryModel) Init() tea.Cmd {
	return nil
}

func (m EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySaveMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = entryStateAmount

			return m, nil
		}

		m.saved = msg.tx
		m.state = entryStateDone

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case entryStateAmount:
		return m.updateAmount(msg)
	case entryStateDetails:
		return m.updateDetails(msg)
	case entryStateSaving:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case entryStateDone:
		return m.updateDone(msg)
	}

	return m, nil
}

func (m EntryModel) updateAmount(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "backspace":
		m.keypad.Backspace()
		return m, nil
	case "t":
		if m.txType == transaction.TypeExpense {
			m.txType = transaction.TypeIncome
		} else {
			m.txType = transaction.TypeExpense
		}

		return m, nil
	case "enter":
		amount, err := m.keypad.Amount()
		if err != nil || !amount.IsPositive() {
			return m, nil
		}

		m.form = m.buildDetailsForm()
		m.state = entryStateDetails

		return m, m.form.Init()
	}

	for _, r := range keyMsg.String() {
		m.keypad.Press(r)
	}

	return m, nil
}

func (m *EntryModel) buildDetailsForm() *huh.Form {
	categories := make([]huh.Option[string], 0, len(category.All()))
	for _, e := range category.All() {
		categories = append(categories, huh.NewOption(e.Name, string(e.ID)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categories...).
				Value(&m.formCategory),

			huh.NewSelect[string]().
				Key("method").
				Title("Payment Method").
				Options(
					huh.NewOption("Cash", string(transaction.MethodCash)),
					huh.NewOption("Card", string(transaction.MethodCard)),
					huh.NewOption("Bank Transfer", string(transaction.MethodBank)),
					huh.NewOption("Mobile Payment", string(transaction.MethodMobile)),
					huh.NewOption("Other", string(transaction.MethodOther)),
				).
				Value(&m.formMethod),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Placeholder("No notes").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m EntryModel) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = entryStateAmount
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = entryStateSaving
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.saveCmd())
}

func (m EntryModel) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "n":
		m.keypad.Reset()
		m.txType = transaction.TypeExpense
		m.state = entryStateAmount
		m.err = nil

		return m, nil
	}

	return m, nil
}

func (m EntryModel) View() string {
	switch m.state {
	case entryStateAmount:
		return m.viewAmount()

	case entryStateDetails:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case entryStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Saving transaction...", m.spinner.View()),
		)

	case entryStateDone:
		return m.viewDone()
	}

	return ""
}

func (m EntryModel) viewAmount() string {
	typeLabel := "Expense"
	typeColor := lipgloss.Color("196")

	if m.txType == transaction.TypeIncome {
		typeLabel = "Income"
		typeColor = lipgloss.Color("46")
	}

	amount := lipgloss.NewStyle().
		Bold(true).
		Padding(1, 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(m.keypad.Value())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(typeColor).Bold(true).Render(typeLabel),
		"",
		amount,
	)

	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("Error: %v", m.err))
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", errLine)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m EntryModel) viewDone() string {
	user, err := m.session.User()
	if err != nil {
		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf("Error: %v", err))
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Transaction Saved!")

	details := fmt.Sprintf("%s %s on %s\n%s",
		FormatAmount(m.saved.Amount, user.Currency),
		m.saved.Type,
		category.Lookup(m.saved.Category).Name,
		FormatDate(m.saved.Date),
	)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", details),
	)
}

type entrySaveMsg struct {
	tx  transaction.Transaction
	err error
}

func (m EntryModel) saveCmd() tea.Cmd {
	amount, err := m.keypad.Amount()
	if err != nil {
		return func() tea.Msg { return entrySaveMsg{err: err} }
	}

	txType := m.txType
	categoryID := category.ID(m.form.GetString("category"))
	method := transaction.Method(m.form.GetString("method"))
	notes := m.form.GetString("notes")

	return func() tea.Msg {
		store, err := m.session.Store()
		if err != nil {
			return entrySaveMsg{err: err}
		}

		ctx, cancel := OpCtx()
		defer cancel()

		tx, err := store.Append(ctx, transaction.CreateParams{
			Amount:   amount,
			Type:     txType,
			Category: categoryID,
			Method:   method,
			Notes:    notes,
		})

		return entrySaveMsg{tx: tx, err: err}
	}
}

package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spendo/internal/category"
	"spendo/internal/session"
	"spendo/internal/transaction"
	"spendo/internal/voice"
)

type voiceState int

const (
	voiceStateInput voiceState = iota
	voiceStateResult
	voiceStateDone
)

// VoiceModel parses a typed-in transcript the way a speech capture
// would, previews the inferred transaction and saves it on confirm.
type VoiceModel struct {
	CommonModel
	session *session.Session

	state      voiceState
	input      textinput.Model
	transcript string
	result     voice.Result
	saved      transaction.Transaction
	err        error
}

func NewVoiceModel(s *session.Session) VoiceModel {
	ti := textinput.New()
	ti.Placeholder = "I spent 25 dollars on food"
	ti.Focus()
	ti.Width = 60

	return VoiceModel{
		session: s,
		input:   ti,
	}
}

func (m VoiceModel) Title() string { return "Voice Entry" }

func (m VoiceModel) ShortHelp() string {
	switch m.state {
	case voiceStateResult:
		return "a: save | e: edit transcript | Esc: back"
	case voiceStateDone:
		return "n: new transcript | Esc: back"
	}
	return "Type a transcript | Enter: parse | Esc: back"
}

func (m VoiceModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m VoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case voiceSaveMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = voiceStateResult

			return m, nil
		}

		m.saved = msg.tx
		m.state = voiceStateDone

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case voiceStateInput:
		return m.updateInput(msg)
	case voiceStateResult:
		return m.updateResult(msg)
	case voiceStateDone:
		return m.updateDone(msg)
	}

	return m, nil
}

func (m VoiceModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "enter":
			m.transcript = m.input.Value()
			m.result = voice.Parse(m.transcript)
			m.state = voiceStateResult
			m.err = nil

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m VoiceModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "e":
		m.state = voiceStateInput
		m.input.Focus()

		return m, textinput.Blink
	case "a":
		if m.result.Amount == nil || m.result.Type == nil {
			m.err = fmt.Errorf("transcript is missing an amount or a type")
			return m, nil
		}

		return m, m.saveCmd()
	}

	return m, nil
}

func (m VoiceModel) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "n":
		m.input.SetValue("")
		m.input.Focus()
		m.state = voiceStateInput
		m.err = nil

		return m, textinput.Blink
	}

	return m, nil
}

func (m VoiceModel) View() string {
	switch m.state {
	case voiceStateInput:
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				"What did you spend or earn?",
				"",
				m.input.View(),
			),
		)

	case voiceStateResult:
		return m.viewResult()

	case voiceStateDone:
		return m.viewDone()
	}

	return ""
}

func (m VoiceModel) viewResult() string {
	amount := "not recognized"
	if m.result.Amount != nil {
		amount = m.result.Amount.String()
	}

	txType := "not recognized"
	if m.result.Type != nil {
		txType = string(*m.result.Type)
	}

	categoryName := "not recognized"
	if m.result.Category != nil {
		categoryName = category.Lookup(*m.result.Category).Name
	}

	preview := fmt.Sprintf(
		"Transcript: %q\n\nAmount:   %s\nType:     %s\nCategory: %s",
		m.transcript, amount, txType, categoryName,
	)

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

func (m VoiceModel) viewDone() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Transaction Saved!")

	details := fmt.Sprintf("%s %s in %s",
		m.saved.Amount.String(),
		m.saved.Type,
		category.Lookup(m.saved.Category).Name,
	)

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", details),
	)
}

type voiceSaveMsg struct {
	tx  transaction.Transaction
	err error
}

func (m VoiceModel) saveCmd() tea.Cmd {
	params := transaction.CreateParams{
		Amount: *m.result.Amount,
		Type:   *m.result.Type,
		Notes:  m.transcript,
	}

	if m.result.Category != nil {
		params.Category = *m.result.Category
	}

	return func() tea.Msg {
		store, err := m.session.Store()
		if err != nil {
			return voiceSaveMsg{err: err}
		}

		ctx, cancel := OpCtx()
		defer cancel()

		tx, err := store.Append(ctx, params)

		return voiceSaveMsg{tx: tx, err: err}
	}
}

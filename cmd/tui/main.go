package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"spendo/cmd/tui/internal/view"
	"spendo/internal/auth"
	"spendo/internal/config"
	"spendo/internal/database"
	"spendo/internal/receipt"
	"spendo/internal/session"
	"spendo/internal/storage"
)

type model struct {
	session   *session.Session
	extractor receipt.Extractor

	currentView View
	userName    string

	signInView       view.SignInModel
	entryView        view.EntryModel
	voiceView        view.VoiceModel
	receiptView      view.ReceiptModel
	transactionsView view.TransactionsModel
	reportView       view.ReportModel
	exportView       view.ExportModel
}

type View int

const (
	ViewSignIn       View = 0
	ViewMenu         View = 1
	ViewEntry        View = 2
	ViewVoice        View = 3
	ViewReceipt      View = 4
	ViewTransactions View = 5
	ViewReport       View = 6
	ViewExport       View = 7
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	kv, err := openStorage(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}

	sess := session.New(auth.Demo{}, storage.NewTransactionPersister(kv))
	extractor := receipt.Stub{Delay: cfg.Receipt.StubDelay}

	return model{
		session:     sess,
		extractor:   extractor,
		currentView: ViewSignIn,
		signInView:  view.NewSignInModel(sess),
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.NewPostgres(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return storage.NewPostgres(ctx, db)
	case "sqlite":
		db, err := database.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}

		return storage.NewSQLite(ctx, db)
	case "file":
		return storage.OpenFile(cfg.Storage.FilePath)
	case "memory":
		return storage.NewMemory(), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func (m model) Init() tea.Cmd {
	return m.signInView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

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
				m.currentView = ViewEntry
				m.entryView = view.NewEntryModel(m.session)

				return m, m.entryView.Init()
			case "2":
				m.currentView = ViewVoice
				m.voiceView = view.NewVoiceModel(m.session)

				return m, m.voiceView.Init()
			case "3":
				m.currentView = ViewReceipt
				m.receiptView = view.NewReceiptModel(m.session, m.extractor)

				return m, m.receiptView.Init()
			case "4":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.session)

				return m, m.transactionsView.Init()
			case "5":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.session)

				return m, m.reportView.Init()
			case "6":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.session)

				return m, m.exportView.Init()
			case "o":
				m.session.SignOut()
				m.currentView = ViewSignIn
				m.signInView = view.NewSignInModel(m.session)

				return m, m.signInView.Init()
			}
		}
	case view.SignedInMsg:
		m.currentView = ViewMenu
		m.userName = msg.Profile.Name

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSignIn:
		var newModel tea.Model
		newModel, cmd = m.signInView.Update(msg)
		m.signInView = newModel.(view.SignInModel)
	case ViewEntry:
		var newModel tea.Model
		newModel, cmd = m.entryView.Update(msg)
		m.entryView = newModel.(view.EntryModel)
	case ViewVoice:
		var newModel tea.Model
		newModel, cmd = m.voiceView.Update(msg)
		m.voiceView = newModel.(view.VoiceModel)
	case ViewReceipt:
		var newModel tea.Model
		newModel, cmd = m.receiptView.Update(msg)
		m.receiptView = newModel.(view.ReceiptModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewSignIn:
		return m.signInView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Spendo - %s\n\n", m.userName) +
				"1. Add Transaction\n" +
				"2. Voice Entry\n" +
				"3. Scan Receipt\n" +
				"4. Transactions\n" +
				"5. Reports\n" +
				"6. Export CSV\n\n" +
				"o. Sign Out\n" +
				"q. Quit",
		)
	case ViewEntry:
		return m.entryView.View()
	case ViewVoice:
		return m.voiceView.View()
	case ViewReceipt:
		return m.receiptView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"spendo/internal/auth"
	"spendo/internal/session"
)

type signInState int

const (
	signInStateForm signInState = iota
	signInStateWorking
)

const (
	modeSignIn   = "signin"
	modeSignUp   = "signup"
	modeGoogle   = "google"
	modeFacebook = "facebook"
)

// SignedInMsg tells the root model a user is established.
type SignedInMsg struct {
	Profile auth.Profile
}

type SignInModel struct {
	CommonModel
	session *session.Session

	state   signInState
	form    *huh.Form
	spinner spinner.Model
	err     error

	mode         string
	email        string
	password     string
	name         string
	businessName string
	currency     string
}

func NewSignInModel(s *session.Session) SignInModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := SignInModel{
		session:  s,
		spinner:  sp,
		mode:     modeSignIn,
		currency: "USD",
	}
	m.form = m.buildForm()

	return m
}

func (m SignInModel) Title() string { return "Sign In" }

func (m SignInModel) ShortHelp() string {
	if m.state == signInStateWorking {
		return "Signing in..."
	}
	return "Navigate form | Enter: confirm | Ctrl+C: quit"
}

func (m *SignInModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mode").
				Title("How would you like to continue?").
				Options(
					huh.NewOption("Sign in", modeSignIn),
					huh.NewOption("Create account", modeSignUp),
					huh.NewOption("Continue with Google", modeGoogle),
					huh.NewOption("Continue with Facebook", modeFacebook),
				).
				Value(&m.mode),
		),

		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&m.email),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password),
		).WithHideFunc(func() bool {
			return m.mode == modeGoogle || m.mode == modeFacebook
		}),

		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Your Name").
				Value(&m.name),

			huh.NewInput().
				Key("business_name").
				Title("Business Name").
				Value(&m.businessName),

			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(huh.NewOptions("USD", "EUR", "GBP", "JPY")...).
				Value(&m.currency),
		).WithHideFunc(func() bool {
			return m.mode != modeSignUp
		}),
	).WithWidth(50).WithShowHelp(false)
}

func (m SignInModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = signInStateForm
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return SignedInMsg{Profile: msg.profile} }

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	if m.state == signInStateWorking {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = signInStateWorking
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.submitCmd())
}

func (m SignInModel) View() string {
	if m.state == signInStateWorking {
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Signing in...", m.spinner.View()),
		)
	}

	content := m.form.View()

	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("Error: %v", m.err))
		content = lipgloss.JoinVertical(lipgloss.Left, errLine, "", content)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type signInResultMsg struct {
	profile auth.Profile
	err     error
}

func (m SignInModel) submitCmd() tea.Cmd {
	// Read through the form accessors: the bound fields belong to the
	// model copy the form was built on.
	mode := m.form.GetString("mode")
	email := m.form.GetString("email")
	password := m.form.GetString("password")
	name := m.form.GetString("name")
	businessName := m.form.GetString("business_name")
	currencyCode := m.form.GetString("currency")

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		var (
			profile auth.Profile
			err     error
		)

		switch mode {
		case modeSignUp:
			profile, err = m.session.SignUp(ctx, email, password, name, businessName, currencyCode)
		case modeGoogle:
			profile, err = m.session.SocialSignIn(ctx, auth.ProviderGoogle)
		case modeFacebook:
			profile, err = m.session.SocialSignIn(ctx, auth.ProviderFacebook)
		default:
			profile, err = m.session.SignIn(ctx, email, password)
		}

		return signInResultMsg{profile: profile, err: err}
	}
}

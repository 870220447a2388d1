package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/session"
	"github.com/FM1201/aijohub/cli/tui/styles"
)

// LoginModel renders the sign-in screen. An authentication failure is
// shown inline and never persisted anywhere.
type LoginModel struct {
	ctx    context.Context
	client *api.Client
	store  *session.Store

	username string
	password string

	form       *huh.Form
	submitting bool
	errText    string
	spinner    spinner.Model
}

func NewLoginModel(ctx context.Context, client *api.Client, store *session.Store) *LoginModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	m := &LoginModel{ctx: ctx, client: client, store: store, spinner: s}
	m.form = m.buildForm()
	return m
}

func (m *LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *LoginModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authFailedMsg:
		m.submitting = false
		m.errText = msg.err.Error()
		m.password = ""
		m.form = m.buildForm()
		return m.form.Init()

	case spinner.TickMsg:
		if !m.submitting {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}

	if m.submitting {
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m.submit()
	}
	return cmd
}

// submit issues the login call and reports the outcome as a message.
func (m *LoginModel) submit() tea.Cmd {
	m.submitting = true
	m.errText = ""

	ctx, client, store := m.ctx, m.client, m.store
	username, password := m.username, m.password
	login := func() tea.Msg {
		sess, err := store.Login(ctx, client, username, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return loggedInMsg{sess: sess}
	}
	return tea.Batch(m.spinner.Tick, login)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Aijo Hub") + "\n")
	b.WriteString(styles.MutedText.Render("Selamat datang kembali!") + "\n\n")
	if m.submitting {
		b.WriteString(fmt.Sprintf("%s Signing in...\n", m.spinner.View()))
	} else {
		b.WriteString(m.form.View())
	}
	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorText.Render("✗ "+m.errText))
	}
	return styles.Modal.Render(b.String())
}

func (m *LoginModel) buildForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Username").
			Value(&m.username).
			Validate(func(v string) error {
				if strings.TrimSpace(v) == "" {
					return fmt.Errorf("username is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.password),
	)).WithShowHelp(false)
}

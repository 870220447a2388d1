package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/session"
	"github.com/FM1201/aijohub/pkg/logger"
)

// AppModel is the top-level shell: it shows the login view when no
// session exists and the dashboard otherwise. Login success and logout
// switch between the two and reset the dashboard's controllers.
type AppModel struct {
	ctx    context.Context
	client *api.Client
	store  *session.Store

	sess  *session.Session
	login *LoginModel
	dash  *DashboardModel
}

// NewAppModel restores any persisted session and builds the matching view.
func NewAppModel(ctx context.Context, client *api.Client, store *session.Store) *AppModel {
	m := &AppModel{ctx: ctx, client: client, store: store}

	sess, err := store.Restore()
	if err != nil {
		logger.FromContext(ctx).Warn("failed to restore session", "error", err)
	}
	if sess != nil {
		m.sess = sess
		m.dash = NewDashboardModel(ctx, client, store, sess)
	} else {
		m.login = NewLoginModel(ctx, client, store)
	}
	return m
}

func (m *AppModel) Init() tea.Cmd {
	if m.dash != nil {
		return m.dash.Init()
	}
	return m.login.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedInMsg:
		m.sess = msg.sess
		m.login = nil
		m.dash = NewDashboardModel(m.ctx, m.client, m.store, msg.sess)
		return m, m.dash.Init()

	case loggedOutMsg:
		m.sess = nil
		m.dash = nil
		m.login = NewLoginModel(m.ctx, m.client, m.store)
		return m, m.login.Init()

	case tea.KeyMsg:
		if m.login != nil && (msg.String() == "ctrl+c" || msg.String() == "esc") {
			return m, tea.Quit
		}
	}

	if m.dash != nil {
		cmd := m.dash.Update(msg)
		return m, cmd
	}
	return m, m.login.Update(msg)
}

func (m *AppModel) View() string {
	if m.dash != nil {
		return m.dash.View()
	}
	return m.login.View()
}

// LoggedIn reports whether the shell is showing the dashboard.
func (m *AppModel) LoggedIn() bool {
	return m.dash != nil
}

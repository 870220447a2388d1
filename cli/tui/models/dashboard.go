package models

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/session"
	"github.com/FM1201/aijohub/cli/tui/components"
	"github.com/FM1201/aijohub/cli/tui/styles"
	"github.com/FM1201/aijohub/pkg/logger"
)

const searchFieldCount = 3

// DashboardModel composes the status bar, search bar, supplier list, and
// the add/edit modal. It wires a successful save to a list refresh that
// keeps the active search filter.
type DashboardModel struct {
	BaseModel

	client *api.Client
	store  *session.Store
	sess   *session.Session

	statusBar components.StatusBar
	list      *ListModel
	form      *FormModel

	searchInputs []textinput.Model
	searchFocus  int // -1 means the table has focus
}

func NewDashboardModel(
	ctx context.Context,
	client *api.Client,
	store *session.Store,
	sess *session.Session,
) *DashboardModel {
	inputs := make([]textinput.Model, searchFieldCount)
	for i, placeholder := range []string{"nama...", "alamat...", "telepon..."} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		ti.Width = 18
		inputs[i] = ti
	}

	return &DashboardModel{
		BaseModel:    NewBaseModel(ctx),
		client:       client,
		store:        store,
		sess:         sess,
		statusBar:    components.NewStatusBar(sess.Username),
		list:         NewListModel(ctx, client, sess.Token),
		form:         NewFormModel(ctx, client, sess.Token),
		searchInputs: inputs,
		searchFocus:  -1,
	}
}

// Init kicks off the initial supplier fetch.
func (m *DashboardModel) Init() tea.Cmd {
	return m.list.FetchAll()
}

func (m *DashboardModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.BaseModel.Update(msg)
		m.statusBar.SetWidth(msg.Width)
		return m.list.Update(msg)

	case supplierSavedMsg:
		// Close the modal, then refresh without losing the active filter.
		m.form.Update(msg)
		return m.list.Refresh()

	case saveFailedMsg:
		return m.form.Update(msg)

	case suppliersMsg, listFailedMsg:
		return m.list.Update(msg)

	case loggedOutMsg:
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form.IsOpen() {
		return m.form.Update(msg)
	}
	return m.list.Update(msg)
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.form.IsOpen() {
		return m.form.Update(msg)
	}
	if m.searchFocus >= 0 {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.Quit()
		return tea.Quit
	case "a":
		return m.form.OpenAdd()
	case "e", "enter":
		if selected := m.list.Selected(); selected != nil {
			return m.form.OpenEdit(*selected)
		}
		return nil
	case "/":
		m.searchFocus = 0
		return m.searchInputs[0].Focus()
	case "r":
		return m.resetSearch()
	case "ctrl+l":
		return m.logout()
	}
	return m.list.Update(msg)
}

func (m *DashboardModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.blurSearch()
		return nil
	case "tab", "shift+tab":
		next := m.searchFocus + 1
		if msg.String() == "shift+tab" {
			next = m.searchFocus - 1
		}
		if next < 0 {
			next = searchFieldCount - 1
		}
		next %= searchFieldCount
		m.searchInputs[m.searchFocus].Blur()
		m.searchFocus = next
		return m.searchInputs[next].Focus()
	case "enter":
		m.blurSearch()
		return m.list.Search(m.currentFilter())
	case "ctrl+c":
		m.Quit()
		return tea.Quit
	}

	var cmd tea.Cmd
	m.searchInputs[m.searchFocus], cmd = m.searchInputs[m.searchFocus].Update(msg)
	return cmd
}

func (m *DashboardModel) blurSearch() {
	if m.searchFocus >= 0 {
		m.searchInputs[m.searchFocus].Blur()
	}
	m.searchFocus = -1
}

func (m *DashboardModel) currentFilter() api.SearchFilter {
	return api.SearchFilter{
		Nama:    strings.TrimSpace(m.searchInputs[0].Value()),
		Alamat:  strings.TrimSpace(m.searchInputs[1].Value()),
		Telepon: strings.TrimSpace(m.searchInputs[2].Value()),
	}
}

func (m *DashboardModel) resetSearch() tea.Cmd {
	for i := range m.searchInputs {
		m.searchInputs[i].SetValue("")
	}
	m.blurSearch()
	return m.list.Reset()
}

func (m *DashboardModel) logout() tea.Cmd {
	ctx, store := m.Context(), m.store
	return func() tea.Msg {
		if err := store.Logout(); err != nil {
			logger.FromContext(ctx).Error("failed to clear session", "error", err)
		}
		return loggedOutMsg{}
	}
}

func (m *DashboardModel) View() string {
	if m.form.IsOpen() {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.statusBar.View() + "\n\n")

	labels := []string{"Nama", "Alamat", "Telepon"}
	fields := make([]string, 0, searchFieldCount)
	for i, input := range m.searchInputs {
		fields = append(fields, styles.MutedText.Render(labels[i]+" ")+input.View())
	}
	b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(fields, "  ")) + "\n")
	b.WriteString(styles.MutedText.Render("  / search · enter apply · r reset · a add · e edit") + "\n\n")

	b.WriteString(m.list.View())
	return b.String()
}

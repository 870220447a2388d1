package models

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/tui/components"
	"github.com/FM1201/aijohub/cli/tui/styles"
	"github.com/FM1201/aijohub/pkg/logger"
)

type listPhase int

const (
	listLoading listPhase = iota
	listLoaded
	listFailed
)

// ListModel owns the fetched or searched supplier set and its
// loading/error state. Exactly one phase holds at any time.
//
// Every fetch increments seq and the issued request carries that value
// back in its result message; a result whose seq is no longer current
// belongs to a superseded request and is discarded, so out-of-order
// responses can never clobber the latest query's results.
type ListModel struct {
	ctx    context.Context
	client *api.Client
	token  string

	phase     listPhase
	suppliers []api.Supplier
	errText   string

	seq        int
	lastFilter api.SearchFilter
	lastSearch bool

	table   components.SupplierTable
	spinner spinner.Model
}

func NewListModel(ctx context.Context, client *api.Client, token string) *ListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &ListModel{
		ctx:     ctx,
		client:  client,
		token:   token,
		phase:   listLoading,
		table:   components.NewSupplierTable(),
		spinner: s,
	}
}

// FetchAll loads the complete supplier list.
func (m *ListModel) FetchAll() tea.Cmd {
	return m.start(api.SearchFilter{}, false)
}

// Search loads the suppliers matching the filter.
func (m *ListModel) Search(filter api.SearchFilter) tea.Cmd {
	return m.start(filter, true)
}

// Reset discards any active filter and reloads everything.
func (m *ListModel) Reset() tea.Cmd {
	return m.FetchAll()
}

// Refresh re-runs the most recent query, preserving an active search
// filter instead of silently reverting to the full list.
func (m *ListModel) Refresh() tea.Cmd {
	return m.start(m.lastFilter, m.lastSearch)
}

func (m *ListModel) start(filter api.SearchFilter, search bool) tea.Cmd {
	m.phase = listLoading
	m.errText = ""
	m.lastFilter = filter
	m.lastSearch = search
	m.seq++

	seq := m.seq
	ctx, client, token := m.ctx, m.client, m.token
	fetch := func() tea.Msg {
		var (
			items []api.Supplier
			err   error
		)
		if search {
			items, err = client.Search(ctx, token, filter)
		} else {
			items, err = client.List(ctx, token)
		}
		if err != nil {
			return listFailedMsg{seq: seq, err: err}
		}
		return suppliersMsg{seq: seq, suppliers: items}
	}
	return tea.Batch(m.spinner.Tick, fetch)
}

// Update applies list messages and table navigation.
func (m *ListModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case suppliersMsg:
		if msg.seq != m.seq {
			logger.FromContext(m.ctx).Debug("discarding stale fetch result", "seq", msg.seq, "current", m.seq)
			return nil
		}
		m.phase = listLoaded
		m.suppliers = msg.suppliers
		m.table.SetSuppliers(msg.suppliers)
		return nil

	case listFailedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.phase = listFailed
		m.errText = msg.err.Error()
		return nil

	case spinner.TickMsg:
		if m.phase != listLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		m.table.SetSize(msg.Width, msg.Height)
		return nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

// Selected returns the supplier under the table cursor, if any.
func (m *ListModel) Selected() *api.Supplier {
	if m.phase != listLoaded {
		return nil
	}
	return m.table.Selected()
}

// Suppliers returns the currently displayed result set.
func (m *ListModel) Suppliers() []api.Supplier {
	return m.suppliers
}

// Loading reports whether a fetch is in flight.
func (m *ListModel) Loading() bool {
	return m.phase == listLoading
}

// View renders the list area: spinner, error banner, empty state, or table.
func (m *ListModel) View() string {
	switch m.phase {
	case listLoading:
		return fmt.Sprintf("\n  %s Loading suppliers...\n", m.spinner.View())
	case listFailed:
		return "\n  " + styles.ErrorText.Render("✗ "+m.errText) + "\n" +
			styles.MutedText.Render("  press r to retry")
	default:
		if len(m.suppliers) == 0 {
			return "\n" + styles.MutedText.Render("  No suppliers found.") + "\n"
		}
		return m.table.View()
	}
}

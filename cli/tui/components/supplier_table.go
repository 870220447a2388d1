package components

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/tui/styles"
)

// SupplierTable renders the supplier result set as an interactive table.
type SupplierTable struct {
	table     table.Model
	suppliers []api.Supplier
	width     int
	height    int
}

// NewSupplierTable creates an empty supplier table.
func NewSupplierTable() SupplierTable {
	t := table.New(
		table.WithColumns(supplierColumns(80)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(defaultTableStyles())
	return SupplierTable{table: t}
}

func supplierColumns(width int) []table.Column {
	available := width - 8
	if available < 40 {
		available = 40
	}
	return []table.Column{
		{Title: "Nama", Width: available * 3 / 10},
		{Title: "Alamat", Width: available * 4 / 10},
		{Title: "Telepon", Width: available * 2 / 10},
		{Title: "Email", Width: available / 10},
	}
}

func defaultTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.Highlight).
		Background(styles.Surface).
		Bold(true)
	return s
}

// SetSuppliers replaces the table contents.
func (st *SupplierTable) SetSuppliers(suppliers []api.Supplier) {
	st.suppliers = suppliers
	rows := lo.Map(suppliers, func(s api.Supplier, _ int) table.Row {
		return table.Row{s.Nama, s.Alamat, s.Telepon, s.Email}
	})
	st.table.SetRows(rows)
	if st.table.Cursor() >= len(rows) {
		st.table.SetCursor(0)
	}
}

// SetSize resizes the table to the available area.
func (st *SupplierTable) SetSize(width, height int) {
	st.width = width
	st.height = height
	st.table.SetColumns(supplierColumns(width))
	if h := height - 4; h > 2 {
		st.table.SetHeight(h)
	}
}

// Selected returns the supplier under the cursor, or nil when empty.
func (st *SupplierTable) Selected() *api.Supplier {
	idx := st.table.Cursor()
	if idx < 0 || idx >= len(st.suppliers) {
		return nil
	}
	s := st.suppliers[idx]
	return &s
}

// Len returns the number of rows.
func (st *SupplierTable) Len() int {
	return len(st.suppliers)
}

// Update forwards navigation messages to the underlying table.
func (st SupplierTable) Update(msg tea.Msg) (SupplierTable, tea.Cmd) {
	var cmd tea.Cmd
	st.table, cmd = st.table.Update(msg)
	return st, cmd
}

// View renders the table.
func (st SupplierTable) View() string {
	return st.table.View()
}

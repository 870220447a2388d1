package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/tui/styles"
	"github.com/FM1201/aijohub/pkg/logger"
)

type formMode int

const (
	formAdd formMode = iota
	formEdit
)

var validate = validator.New()

// FormModel owns the add/edit modal. When closed it holds no draft; when
// open it holds a value copy of the record being edited, so mutating the
// draft never touches the list's records. A failed save keeps the modal
// open with the draft intact and the failure shown inline.
type FormModel struct {
	ctx    context.Context
	client *api.Client
	token  string

	open   bool
	mode   formMode
	draft  api.Supplier
	form   *huh.Form
	saving bool

	errText string
	spinner spinner.Model
}

func NewFormModel(ctx context.Context, client *api.Client, token string) *FormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &FormModel{ctx: ctx, client: client, token: token, spinner: s}
}

// OpenAdd opens the modal with a blank draft.
func (m *FormModel) OpenAdd() tea.Cmd {
	m.open = true
	m.mode = formAdd
	m.draft = api.Supplier{}
	m.errText = ""
	m.saving = false
	m.form = m.buildForm()
	return m.form.Init()
}

// OpenEdit opens the modal over a copy of the given record.
func (m *FormModel) OpenEdit(record api.Supplier) tea.Cmd {
	m.open = true
	m.mode = formEdit
	m.draft = record
	m.errText = ""
	m.saving = false
	m.form = m.buildForm()
	return m.form.Init()
}

// IsOpen reports whether the modal is showing.
func (m *FormModel) IsOpen() bool {
	return m.open
}

// Draft returns the in-progress record.
func (m *FormModel) Draft() api.Supplier {
	return m.draft
}

// SetField replaces a single draft field by its wire name. Calling it
// while the modal is closed is a programming error.
func (m *FormModel) SetField(name, value string) error {
	if !m.open {
		return fmt.Errorf("form is closed")
	}
	switch strings.ToLower(name) {
	case "nama":
		m.draft.Nama = value
	case "alamat":
		m.draft.Alamat = value
	case "telepon":
		m.draft.Telepon = value
	case "email":
		m.draft.Email = value
	case "npwp":
		m.draft.NPWP = value
	default:
		return fmt.Errorf("unknown supplier field %q", name)
	}
	return nil
}

// Close discards the draft unconditionally.
func (m *FormModel) Close() {
	m.open = false
	m.saving = false
	m.form = nil
	m.errText = ""
}

// Submit validates the draft and issues the create or update call. A
// validation failure is rejected locally without touching the network;
// the modal stays open either way until the save succeeds.
func (m *FormModel) Submit() tea.Cmd {
	if !m.open || m.saving {
		return nil
	}
	if err := m.validateDraft(); err != nil {
		m.errText = err.Error()
		m.form = m.buildForm()
		return m.form.Init()
	}

	m.saving = true
	m.errText = ""

	ctx, client, token := m.ctx, m.client, m.token
	mode, draft := m.mode, m.draft
	save := func() tea.Msg {
		var (
			saved api.Supplier
			err   error
		)
		if mode == formAdd {
			saved, err = client.Create(ctx, token, draft)
		} else {
			saved, err = client.Update(ctx, token, draft.ID, draft)
		}
		if err != nil {
			return saveFailedMsg{err: err}
		}
		return supplierSavedMsg{supplier: saved}
	}
	return tea.Batch(m.spinner.Tick, save)
}

func (m *FormModel) validateDraft() error {
	err := validate.Struct(m.draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return &api.ValidationError{Fields: fields}
	}
	return &api.ValidationError{}
}

// Update drives the embedded huh form and reacts to save results.
func (m *FormModel) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}

	switch msg := msg.(type) {
	case supplierSavedMsg:
		logger.FromContext(m.ctx).Info("supplier saved", "id", msg.supplier.ID)
		m.Close()
		return nil

	case saveFailedMsg:
		m.saving = false
		m.errText = msg.err.Error()
		m.form = m.buildForm()
		return m.form.Init()

	case spinner.TickMsg:
		if !m.saving {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}

	if m.saving || m.form == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.Close()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m.Submit()
	case huh.StateAborted:
		m.Close()
		return nil
	}
	return cmd
}

// View renders the modal.
func (m *FormModel) View() string {
	if !m.open {
		return ""
	}

	title := "Add supplier"
	if m.mode == formEdit {
		title = "Edit supplier"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title) + "\n\n")
	if m.saving {
		b.WriteString(fmt.Sprintf("%s Saving...\n", m.spinner.View()))
	} else if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.errText != "" {
		b.WriteString("\n" + styles.ErrorText.Render("✗ "+m.errText))
	}
	return styles.Modal.Render(b.String())
}

func (m *FormModel) buildForm() *huh.Form {
	required := func(field string) func(string) error {
		return func(v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Nama").Value(&m.draft.Nama).Validate(required("nama")),
		huh.NewInput().Title("Alamat").Value(&m.draft.Alamat).Validate(required("alamat")),
		huh.NewInput().Title("Telepon").Value(&m.draft.Telepon).Validate(required("telepon")),
		huh.NewInput().Title("Email").Value(&m.draft.Email).Validate(required("email")),
		huh.NewInput().Title("NPWP").Value(&m.draft.NPWP).Validate(required("npwp")),
	)).WithShowHelp(false)
}

package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// BaseModel carries state shared by all TUI models.
type BaseModel struct {
	ctx      context.Context
	width    int
	height   int
	ready    bool
	quitting bool
}

func NewBaseModel(ctx context.Context) BaseModel {
	return BaseModel{ctx: ctx}
}

func (m BaseModel) Context() context.Context {
	return m.ctx
}

func (m BaseModel) Size() (width, height int) {
	return m.width, m.height
}

func (m BaseModel) IsQuitting() bool {
	return m.quitting
}

func (m *BaseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true
}

func (m *BaseModel) Quit() {
	m.quitting = true
}

// Update handles messages common to all models.
func (m *BaseModel) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(size.Width, size.Height)
	}
	return nil
}

package models

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/pkg/config"
)

func clientFor(url string) *api.Client {
	return api.NewClient(&config.Config{
		API: config.APIConfig{BaseURL: url, Timeout: 5 * time.Second},
	})
}

// runCmd executes a command tree and collects every produced message,
// flattening batches the way the bubbletea runtime would.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// resultMsg executes a command tree and returns the first message that is
// not a spinner tick.
func resultMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case suppliersMsg, listFailedMsg, supplierSavedMsg, saveFailedMsg, loggedInMsg, authFailedMsg, loggedOutMsg:
			return msg
		}
	}
	t.Fatal("command produced no result message")
	return nil
}

package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/cmd"
	"github.com/FM1201/aijohub/cli/tui/models"
)

// NewDashboardCmd launches the interactive supplier dashboard. When no
// session exists the login view is shown first.
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive supplier dashboard",
		RunE:  Run,
	}
}

// Run boots the TUI shell. It is reused as the root command handler so a
// bare 'aijohub' drops straight into the dashboard.
func Run(cobraCmd *cobra.Command, _ []string) error {
	rt, err := cmd.NewRuntime(cobraCmd)
	if err != nil {
		return err
	}

	ctx := cobraCmd.Context()
	app := models.NewAppModel(ctx, rt.Client, rt.Store)
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard terminated: %w", err)
	}
	return nil
}

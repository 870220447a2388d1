package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/cmd/auth"
	"github.com/FM1201/aijohub/cli/cmd/dashboard"
	"github.com/FM1201/aijohub/cli/cmd/supplier"
)

// NewRootCmd builds the aijohub command tree. Running the bare command
// opens the interactive dashboard.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aijohub",
		Short:         "Aijo Hub supplier management client",
		Long:          "Client for the Aijo Hub backend. Manage supplier kain records interactively or from scripts.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          dashboard.Run,
	}

	rootCmd.PersistentFlags().String("server", "", "Backend base URL (overrides AIJOHUB_API_BASE_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(auth.NewLoginCmd())
	rootCmd.AddCommand(auth.NewLogoutCmd())
	rootCmd.AddCommand(auth.NewWhoamiCmd())
	rootCmd.AddCommand(supplier.NewSupplierCmd())
	rootCmd.AddCommand(dashboard.NewDashboardCmd())
	return rootCmd
}

// ExecuteContext runs the command tree with the given context.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

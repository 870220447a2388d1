package supplier

import (
	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/cmd"
	"github.com/FM1201/aijohub/cli/helpers"
)

func newUpdateCmd() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a supplier record",
		Long:  "Replace the supplier with the given id. The backend has no partial update, so every field must be provided.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			rt, err := cmd.NewRuntime(cobraCmd)
			if err != nil {
				return err
			}
			sess, err := rt.RequireSession()
			if err != nil {
				return err
			}
			record, err := supplierFromFlags(cobraCmd)
			if err != nil {
				return err
			}
			updated, err := rt.Client.Update(cobraCmd.Context(), sess.Token, args[0], record)
			if err != nil {
				return err
			}
			return helpers.PrintJSON(updated)
		},
	}
	addRecordFlags(updateCmd)
	return updateCmd
}

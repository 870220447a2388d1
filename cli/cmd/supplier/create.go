package supplier

import (
	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/cmd"
	"github.com/FM1201/aijohub/cli/helpers"
)

func newCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a supplier record",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
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
			created, err := rt.Client.Create(cobraCmd.Context(), sess.Token, record)
			if err != nil {
				return err
			}
			return helpers.PrintJSON(created)
		},
	}
	addRecordFlags(createCmd)
	return createCmd
}

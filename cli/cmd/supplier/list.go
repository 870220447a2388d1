package supplier

import (
	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/cmd"
	"github.com/FM1201/aijohub/cli/helpers"
)

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List suppliers, optionally filtered",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			rt, err := cmd.NewRuntime(cobraCmd)
			if err != nil {
				return err
			}
			sess, err := rt.RequireSession()
			if err != nil {
				return err
			}

			flags := cobraCmd.Flags()
			filter := api.SearchFilter{}
			filter.Nama, _ = flags.GetString("nama")
			filter.Alamat, _ = flags.GetString("alamat")
			filter.Telepon, _ = flags.GetString("telepon")

			ctx := cobraCmd.Context()
			var suppliers []api.Supplier
			if filter.IsZero() {
				suppliers, err = rt.Client.List(ctx, sess.Token)
			} else {
				suppliers, err = rt.Client.Search(ctx, sess.Token, filter)
			}
			if err != nil {
				return err
			}

			if asJSON, _ := flags.GetBool("json"); asJSON {
				return helpers.PrintJSON(suppliers)
			}
			helpers.PrintSupplierTable(suppliers)
			return nil
		},
	}
	listCmd.Flags().String("nama", "", "Filter by name")
	listCmd.Flags().String("alamat", "", "Filter by address")
	listCmd.Flags().String("telepon", "", "Filter by phone number")
	listCmd.Flags().Bool("json", false, "Output JSON")
	return listCmd
}

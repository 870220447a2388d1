package supplier

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/FM1201/aijohub/cli/api"
)

var validate = validator.New()

// NewSupplierCmd groups the non-interactive supplier operations.
func NewSupplierCmd() *cobra.Command {
	supplierCmd := &cobra.Command{
		Use:   "supplier",
		Short: "Manage supplier kain records",
	}
	supplierCmd.AddCommand(newListCmd())
	supplierCmd.AddCommand(newCreateCmd())
	supplierCmd.AddCommand(newUpdateCmd())
	return supplierCmd
}

func addRecordFlags(cobraCmd *cobra.Command) {
	cobraCmd.Flags().String("nama", "", "Supplier name")
	cobraCmd.Flags().String("alamat", "", "Address")
	cobraCmd.Flags().String("telepon", "", "Phone number")
	cobraCmd.Flags().String("email", "", "Email address")
	cobraCmd.Flags().String("npwp", "", "Tax number")
}

func supplierFromFlags(cobraCmd *cobra.Command) (api.Supplier, error) {
	flags := cobraCmd.Flags()
	s := api.Supplier{}
	var err error
	if s.Nama, err = flags.GetString("nama"); err != nil {
		return s, err
	}
	if s.Alamat, err = flags.GetString("alamat"); err != nil {
		return s, err
	}
	if s.Telepon, err = flags.GetString("telepon"); err != nil {
		return s, err
	}
	if s.Email, err = flags.GetString("email"); err != nil {
		return s, err
	}
	if s.NPWP, err = flags.GetString("npwp"); err != nil {
		return s, err
	}
	if err := validate.Struct(s); err != nil {
		return s, fmt.Errorf("invalid supplier data: %w", err)
	}
	return s, nil
}

package helpers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/FM1201/aijohub/cli/api"
)

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// Truncate shortens s to max characters, appending an ellipsis.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		if len(s) > max {
			return s[:max]
		}
		return s
	}
	return s[:max-3] + "..."
}

// PrintSupplierTable writes suppliers as a plain text table for
// non-interactive output.
func PrintSupplierTable(suppliers []api.Supplier) {
	if len(suppliers) == 0 {
		fmt.Println("No suppliers found.")
		return
	}

	fmt.Printf("%-20s %-30s %-15s %-25s %-20s\n", "NAMA", "ALAMAT", "TELEPON", "EMAIL", "NPWP")
	fmt.Println(strings.Repeat("-", 110))
	rows := lo.Map(suppliers, func(s api.Supplier, _ int) string {
		return fmt.Sprintf("%-20s %-30s %-15s %-25s %-20s",
			Truncate(s.Nama, 20),
			Truncate(s.Alamat, 30),
			Truncate(s.Telepon, 15),
			Truncate(s.Email, 25),
			Truncate(s.NPWP, 20),
		)
	})
	for _, row := range rows {
		fmt.Println(row)
	}
	fmt.Printf("\nTotal: %d suppliers\n", len(suppliers))
}

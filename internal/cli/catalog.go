package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/GardenPlot/internal/model"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in plant catalog",
	Long: `Catalog prints the built-in plants with their spacing, sunlight and
maturity values and their companion-planting relations. Catalog ids can be
used directly as plant ids in a garden file so the relations resolve.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("%-10s %-12s %-10s %8s %6s %9s  %s\n",
			"ID", "Name", "Type", "Spacing", "Sun", "Maturity", "Avoid")
		for _, e := range model.Catalog {
			cmd.Printf("%-10s %-12s %-10s %6.2gft %4.0fh %7dd  %s\n",
				e.ID, e.Name, e.Type, e.Spacing, e.SunlightHours, e.DaysToMaturity,
				strings.Join(e.Antagonists, ", "))
		}
		return nil
	},
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/piwi3910/GardenPlot/internal/project"
)

var validateCmd = &cobra.Command{
	Use:   "validate <garden-file>",
	Short: "Check a garden file against the planning invariants",
	Long: `Validate checks the garden's zones and plants: zone bounds, plant bounds,
mutually incompatible plant pairs and whether everything can physically fit.
Asymmetric incompatibility declarations are reported as warnings; they do not
fail validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gf, err := project.LoadGarden(args[0])
		if err != nil {
			return err
		}

		for _, w := range model.CompatibilityWarnings(gf.Garden) {
			cmd.Printf("warning: %s\n", w)
		}

		if verr := model.ValidateGarden(gf.Garden); verr != nil {
			return fmt.Errorf("garden %q is invalid: %w", gf.Garden.Name, verr)
		}

		cmd.Printf("Garden %q is valid: %d zones (%.0f sq ft of %.0f), %d plant kinds needing %.2f sq ft\n",
			gf.Garden.Name, len(gf.Garden.Zones), gf.Garden.TotalZoneArea(), gf.Garden.Area,
			len(gf.Garden.Plants), gf.Garden.TotalRequiredArea())
		return nil
	},
}

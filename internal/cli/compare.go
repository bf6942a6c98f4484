package cli

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/GardenPlot/internal/engine"
	"github.com/piwi3910/GardenPlot/internal/project"
)

var compareCmd = &cobra.Command{
	Use:   "compare <garden-file>",
	Short: "Compare planning outcomes under different parameters",
	Long: `Compare runs the optimizer under several what-if parameter variants
(exact sunlight matching, a tolerance band, a relaxed target, a longer time
budget) and prints the outcomes side by side.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gf, err := project.LoadGarden(args[0])
		if err != nil {
			return err
		}

		scenarios := engine.BuildDefaultScenarios(loadParams(cmd))
		results := engine.CompareScenarios(scenarios, gf.Garden)

		cmd.Printf("%-24s %12s %8s %10s %8s\n", "Scenario", "Utilization", "Placed", "Unplaced", "Target")
		for _, r := range results {
			if r.Err != nil {
				cmd.Printf("%-24s failed: %v\n", r.Scenario.Name, r.Err)
				continue
			}
			target := "missed"
			if r.AchievedTarget {
				target = "met"
			}
			cmd.Printf("%-24s %11.2f%% %8d %10d %8s\n",
				r.Scenario.Name, r.Utilization, r.PlacedCount, r.UnplacedCount, target)
		}
		return nil
	},
}

// Package cli implements the gardenplot command line interface.
package cli

import "github.com/spf13/cobra"

// rootCmd is the root command for gardenplot.
var rootCmd = &cobra.Command{
	Use:     "gardenplot",
	Version: "dev",
	Short:   "Garden layout planner",
	Long: `gardenplot plans a home garden: it assigns plants to sunlight zones so
that spacing and companion-planting constraints are respected and as much of
the usable area as possible is planted.

Gardens are stored as JSON files; see 'gardenplot validate' and
'gardenplot plan' to get started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(backupCmd)
}

package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/GardenPlot/internal/project"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import all application data",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <output.json> [garden-file...]",
	Short: "Bundle the app config and garden files into one backup file",
	Long: `Export writes the app config and the given garden files into a single
JSON backup. Without explicit garden files the recent-gardens list from the
config is used. Garden files that cannot be read are skipped with a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := project.LoadOrCreateAppConfig()
		if err != nil {
			return err
		}

		paths := args[1:]
		if len(paths) == 0 {
			paths = cfg.RecentGardens
		}

		var gardens []project.GardenFile
		for _, p := range paths {
			gf, err := project.LoadGarden(p)
			if err != nil {
				cmd.PrintErrf("warning: skipping %s: %v\n", p, err)
				continue
			}
			gardens = append(gardens, gf)
		}

		if err := project.ExportAllData(args[0], cfg, gardens); err != nil {
			return err
		}
		cmd.Printf("Exported app config and %d garden(s) to %s\n", len(gardens), args[0])
		return nil
	},
}

var backupImportDir string

var backupImportCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Restore the app config and gardens from a backup file",
	Long: `Import reads a backup produced by 'gardenplot backup export', applies the
contained app config and writes each garden to its own file, named after the
garden id, in the target directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}

		dir := backupImportDir
		if dir == "" {
			dataDir, err := project.DefaultDataDir()
			if err != nil {
				return err
			}
			dir = filepath.Join(dataDir, "gardens")
		}

		cfgPath, err := project.DefaultAppConfigPath()
		if err != nil {
			return err
		}
		if err := project.SaveAppConfig(cfgPath, backup.Config); err != nil {
			return err
		}

		for _, gf := range backup.Gardens {
			path := filepath.Join(dir, gf.Garden.ID+".json")
			if err := project.SaveGarden(path, gf); err != nil {
				return err
			}
			cmd.Printf("Restored garden %q to %s\n", gf.Garden.Name, path)
		}
		cmd.Printf("Imported app config and %d garden(s) from %s\n", len(backup.Gardens), args[0])
		return nil
	},
}

func init() {
	backupImportCmd.Flags().StringVar(&backupImportDir, "dir", "",
		"directory to restore gardens into (default ~/.gardenplot/gardens)")
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

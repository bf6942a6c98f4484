package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/GardenPlot/internal/export"
	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/piwi3910/GardenPlot/internal/project"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a planned garden to PDF, XLSX, DXF or labels",
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <garden-file> <output.pdf>",
	Short: "Export a layout report with a drawn garden map",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport(export.ExportPDF),
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx <garden-file> <output.xlsx>",
	Short: "Export a planting-plan workbook, one sheet per zone",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport(export.ExportXLSX),
}

var exportDXFCmd = &cobra.Command{
	Use:   "dxf <garden-file> <output.dxf>",
	Short: "Export a scale plan drawing for CAD tools",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport(export.ExportDXF),
}

var exportLabelsCmd = &cobra.Command{
	Use:   "labels <garden-file> <output.pdf>",
	Short: "Export QR-coded plant-stake labels",
	Args:  cobra.ExactArgs(2),
	RunE:  runExport(export.ExportLabels),
}

func init() {
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportXLSXCmd)
	exportCmd.AddCommand(exportDXFCmd)
	exportCmd.AddCommand(exportLabelsCmd)
}

// runExport loads the garden file, requires a stored layout and hands both
// to the given export function.
func runExport(fn func(string, model.Garden, model.Layout) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		gf, err := project.LoadGarden(args[0])
		if err != nil {
			return err
		}
		if gf.Layout == nil {
			return fmt.Errorf("garden %q has no stored layout; run 'gardenplot plan' first", gf.Garden.Name)
		}
		if err := fn(args[1], gf.Garden, *gf.Layout); err != nil {
			return err
		}
		cmd.Printf("Exported %s\n", args[1])
		return nil
	}
}

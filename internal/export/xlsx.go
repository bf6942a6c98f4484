package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// ExportXLSX writes a planting-plan workbook: a summary sheet with
// garden-wide statistics plus one sheet per zone listing its plants.
func ExportXLSX(path string, garden model.Garden, layout model.Layout) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeSummarySheet(f, summary, bold, garden, layout); err != nil {
		return err
	}

	assignments := layout.Assignments()
	for i, z := range garden.Zones {
		sheet := fmt.Sprintf("Zone %d", i+1)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
		if err := writeZoneSheet(f, sheet, bold, garden, layout, z, assignments[z.ID]); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, sheet string, bold int, garden model.Garden, layout model.Layout) error {
	rows := [][]interface{}{
		{"Garden", garden.Name},
		{"Total area (sq ft)", garden.Area},
		{"Zones", len(garden.Zones)},
		{"Plants placed", layout.PlacedCount()},
		{"Plants unplaced", layout.UnplacedCount()},
		{"Space utilization (%)", layout.SpaceUtilization},
		{"Achieved target", layout.AchievedTargetUtilization},
		{"Timed out", layout.TimedOut},
		{"Generated at", layout.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "A9", bold); err != nil {
		return fmt.Errorf("failed to style summary: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	return f.SetColWidth(sheet, "B", "B", 22)
}

func writeZoneSheet(f *excelize.File, sheet string, bold int, garden model.Garden, layout model.Layout, z model.Zone, plants []model.PlantCount) error {
	title := []interface{}{z.Name, "", fmt.Sprintf("%.0f sq ft", z.Area),
		fmt.Sprintf("%.0fh sun", z.SunlightHours),
		fmt.Sprintf("%.2f%% used", layout.ZoneUtilization(garden, z.ID))}
	if err := f.SetSheetRow(sheet, "A1", &title); err != nil {
		return fmt.Errorf("failed to write zone title: %w", err)
	}

	header := []interface{}{"Plant", "Count", "Spacing (ft)", "Area each (sq ft)", "Sun needed (h)", "Days to maturity"}
	if err := f.SetSheetRow(sheet, "A3", &header); err != nil {
		return fmt.Errorf("failed to write zone header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A3", "F3", bold); err != nil {
		return fmt.Errorf("failed to style zone header: %w", err)
	}

	for i, pc := range plants {
		row := []interface{}{pc.PlantID, pc.Count, "", "", "", ""}
		if p, ok := garden.PlantByID(pc.PlantID); ok {
			row = []interface{}{p.Name, pc.Count, p.SpacingSideLength,
				model.RequiredUnitArea(p), p.SunlightHoursNeeded, p.DaysToMaturity}
		}
		cell := fmt.Sprintf("A%d", i+4)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write plant row: %w", err)
		}
	}

	return f.SetColWidth(sheet, "A", "F", 16)
}

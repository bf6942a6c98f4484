// Package export provides functionality for exporting garden layouts to
// various file formats including PDF reports, QR-coded plant labels,
// planting-plan workbooks and DXF drawings.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// zoneColor represents an RGB color for a drawn zone.
type zoneColor struct {
	R, G, B int
}

// zoneColors cycles through soft fills so adjacent zones stay
// distinguishable on the garden map.
var zoneColors = []zoneColor{
	{R: 200, G: 230, B: 201}, // light green
	{R: 187, G: 222, B: 251}, // light blue
	{R: 255, G: 224, B: 178}, // light orange
	{R: 225, G: 190, B: 231}, // light purple
	{R: 178, G: 235, B: 242}, // light cyan
	{R: 255, G: 205, B: 210}, // light red
	{R: 255, G: 249, B: 196}, // light yellow
	{R: 215, G: 204, B: 200}, // light brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	zoneGap      = 4.0 // mm between drawn zones
)

// ExportPDF generates a PDF report for a planned garden: a map page with the
// zones drawn to scale and shaded by utilization, followed by a summary page
// with per-zone planting tables.
func ExportPDF(path string, garden model.Garden, layout model.Layout) error {
	if len(garden.Zones) == 0 {
		return fmt.Errorf("no zones to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderMapPage(pdf, garden, layout)

	pdf.AddPage()
	renderSummaryPage(pdf, garden, layout)

	return pdf.OutputFileAndClose(path)
}

// renderMapPage draws the garden map: each zone as a square scaled to its
// area, with name, dimensions and utilization.
func renderMapPage(pdf *fpdf.Fpdf, garden model.Garden, layout model.Layout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Garden: %s (%.0f sq ft)", garden.Name, garden.Area)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Zones: %d | Plants placed: %d | Unplaced: %d | Utilization: %.2f%%%s",
		len(garden.Zones), layout.PlacedCount(), layout.UnplacedCount(),
		layout.SpaceUtilization, flagNote(layout))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	// Scale so the zone squares, laid out left to right with wrapping, fit
	// the drawing area. Side of each square is sqrt(area) ft.
	var maxSide, totalSide float64
	for _, z := range garden.Zones {
		side := math.Sqrt(z.Area)
		totalSide += side
		if side > maxSide {
			maxSide = side
		}
	}
	scale := drawWidth / (totalSide + zoneGap*float64(len(garden.Zones)))
	if s := drawHeight / maxSide; s < scale {
		scale = s
	}

	x := marginLeft
	y := drawAreaTop
	rowMax := 0.0
	for i, z := range garden.Zones {
		side := math.Sqrt(z.Area) * scale
		if x+side > pageWidth-marginRight {
			x = marginLeft
			y += rowMax + zoneGap
			rowMax = 0
		}
		drawZone(pdf, garden, layout, z, i, x, y, side)
		x += side + zoneGap
		if side > rowMax {
			rowMax = side
		}
	}
}

// drawZone renders one zone square with its utilization shading and labels.
func drawZone(pdf *fpdf.Fpdf, garden model.Garden, layout model.Layout, z model.Zone, idx int, x, y, side float64) {
	col := zoneColors[idx%len(zoneColors)]
	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x, y, side, side, "FD")

	// Utilization bar along the bottom edge
	util := layout.ZoneUtilization(garden, z.ID)
	pdf.SetFillColor(56, 142, 60)
	pdf.Rect(x, y+side-2, side*util/100, 2, "F")

	if side > 18 {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(x+1, y+1)
		pdf.CellFormat(side-2, 4, z.Name, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(x+1, y+5.5)
		info := fmt.Sprintf("%.0f sq ft, %.0fh sun, %.1f%%", z.Area, z.SunlightHours, util)
		pdf.CellFormat(side-2, 3.5, info, "", 1, "L", false, 0, "")

		// Plant list, as far as it fits
		pdf.SetFont("Helvetica", "", 6)
		lineY := y + 10
		for _, pc := range layout.Assignments()[z.ID] {
			if lineY+3 > y+side-3 {
				break
			}
			name := pc.PlantID
			if p, ok := garden.PlantByID(pc.PlantID); ok {
				name = p.Name
			}
			pdf.SetXY(x+1, lineY)
			pdf.CellFormat(side-2, 3, fmt.Sprintf("%dx %s", pc.Count, name), "", 1, "L", false, 0, "")
			lineY += 3
		}
	}
}

// renderSummaryPage lists every zone's plantings and the unplaced plants.
func renderSummaryPage(pdf *fpdf.Fpdf, garden model.Garden, layout model.Layout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Planting Summary", "", 1, "L", false, 0, "")

	y := marginTop + headerHeight + 4
	assignments := layout.Assignments()

	for _, z := range garden.Zones {
		plants := assignments[z.ID]

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(marginLeft, y)
		header := fmt.Sprintf("%s - %.0f sq ft, %.0fh sun, %.2f%% used",
			z.Name, z.Area, z.SunlightHours, layout.ZoneUtilization(garden, z.ID))
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, header, "", 1, "L", false, 0, "")
		y += 6

		pdf.SetFont("Helvetica", "", 9)
		if len(plants) == 0 {
			pdf.SetXY(marginLeft+4, y)
			pdf.CellFormat(100, 4.5, "(empty)", "", 1, "L", false, 0, "")
			y += 5
		}
		for _, pc := range plants {
			line := fmt.Sprintf("%dx %s", pc.Count, pc.PlantID)
			if p, ok := garden.PlantByID(pc.PlantID); ok {
				line = fmt.Sprintf("%dx %s - %.2f sq ft each, needs %.0fh sun, %dd to maturity",
					pc.Count, p.Name, model.RequiredUnitArea(p), p.SunlightHoursNeeded, p.DaysToMaturity)
			}
			pdf.SetXY(marginLeft+4, y)
			pdf.CellFormat(pageWidth-marginLeft-marginRight-4, 4.5, line, "", 1, "L", false, 0, "")
			y += 5
		}
		y += 2
	}

	if len(layout.Unplaced) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(180, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 5, "Unplaced plants", "", 1, "L", false, 0, "")
		y += 6
		pdf.SetFont("Helvetica", "", 9)
		for _, pc := range layout.Unplaced {
			name := pc.PlantID
			if p, ok := garden.PlantByID(pc.PlantID); ok {
				name = p.Name
			}
			pdf.SetXY(marginLeft+4, y)
			pdf.CellFormat(100, 4.5, fmt.Sprintf("%dx %s", pc.Count, name), "", 1, "L", false, 0, "")
			y += 5
		}
		pdf.SetTextColor(0, 0, 0)
	}
}

// flagNote summarizes the layout's quality flags for report headers.
func flagNote(layout model.Layout) string {
	switch {
	case layout.TimedOut:
		return " (best effort: time budget reached)"
	case !layout.AchievedTargetUtilization:
		return " (below target)"
	default:
		return ""
	}
}

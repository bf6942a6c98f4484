package export

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// dxfZoneGap is the drawing-space gap between zone squares, in feet.
const dxfZoneGap = 1.0

// ExportDXF writes the garden plan as a DXF drawing at 1 unit = 1 ft. The
// garden boundary and the zones are drawn on separate layers, with text
// labels naming each zone and its plantings, so the plan can be opened in
// any CAD tool for further site work.
func ExportDXF(path string, garden model.Garden, layout model.Layout) error {
	if len(garden.Zones) == 0 {
		return fmt.Errorf("no zones to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("GARDEN", color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add garden layer: %w", err)
	}
	if _, err := d.AddLayer("ZONES", color.Green, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add zones layer: %w", err)
	}
	if _, err := d.AddLayer("LABELS", color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add labels layer: %w", err)
	}

	// Garden boundary: a square of equivalent area.
	side := math.Sqrt(garden.Area)
	if err := drawRect(d, 0, 0, side, side); err != nil {
		return err
	}

	// Zones laid out left to right inside the boundary, wrapping as needed.
	if err := d.ChangeLayer("ZONES"); err != nil {
		return fmt.Errorf("failed to switch layer: %w", err)
	}
	assignments := layout.Assignments()
	x, y, rowMax := dxfZoneGap, dxfZoneGap, 0.0
	type placedZone struct {
		zone model.Zone
		x, y float64
		side float64
	}
	var placed []placedZone
	for _, z := range garden.Zones {
		zs := math.Sqrt(z.Area)
		if x+zs > side && x > dxfZoneGap {
			x = dxfZoneGap
			y += rowMax + dxfZoneGap
			rowMax = 0
		}
		if err := drawRect(d, x, y, zs, zs); err != nil {
			return err
		}
		placed = append(placed, placedZone{zone: z, x: x, y: y, side: zs})
		x += zs + dxfZoneGap
		if zs > rowMax {
			rowMax = zs
		}
	}

	if err := d.ChangeLayer("LABELS"); err != nil {
		return fmt.Errorf("failed to switch layer: %w", err)
	}
	for _, pz := range placed {
		textHeight := pz.side / 10
		if textHeight < 0.2 {
			textHeight = 0.2
		}
		label := fmt.Sprintf("%s (%.0f sq ft)", pz.zone.Name, pz.zone.Area)
		if _, err := d.Text(label, pz.x+0.2, pz.y+pz.side-textHeight-0.2, 0, textHeight); err != nil {
			return fmt.Errorf("failed to add zone label: %w", err)
		}

		lineY := pz.y + pz.side - 2*(textHeight+0.2) - 0.2
		for _, pc := range assignments[pz.zone.ID] {
			if lineY < pz.y+0.2 {
				break
			}
			name := pc.PlantID
			if p, ok := garden.PlantByID(pc.PlantID); ok {
				name = p.Name
			}
			if _, err := d.Text(fmt.Sprintf("%dx %s", pc.Count, name), pz.x+0.2, lineY, 0, textHeight*0.8); err != nil {
				return fmt.Errorf("failed to add plant label: %w", err)
			}
			lineY -= textHeight + 0.2
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four line entities on the
// current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("failed to draw line: %w", err)
		}
	}
	return nil
}

package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// LabelInfo holds the data encoded into each plant-stake label's QR code.
type LabelInfo struct {
	PlantName      string  `json:"plant"`
	PlantID        string  `json:"plant_id"`
	ZoneName       string  `json:"zone"`
	ZoneID         string  `json:"zone_id"`
	Count          int     `json:"count"`
	Spacing        float64 `json:"spacing_ft"`
	SunlightHours  float64 `json:"sunlight_h"`
	DaysToMaturity int     `json:"days_to_maturity"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded plant-stake labels, one label per
// plant-and-zone pairing in the layout. Each label carries the plant name,
// care facts and a QR code encoding the assignment as JSON. Labels are laid
// out on a standard label sheet (Avery 5160 / 3 columns x 10 rows).
func ExportLabels(path string, garden model.Garden, layout model.Layout) error {
	labels := CollectLabelInfos(garden, layout)
	if len(labels) == 0 {
		return fmt.Errorf("no placed plants to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.PlantName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%s", info.PlantID, info.ZoneID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := fmt.Sprintf("%dx %s", info.Count, info.PlantName)
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	care := fmt.Sprintf("%.2g ft spacing, %.0fh sun", info.Spacing, info.SunlightHours)
	pdf.CellFormat(textW, 3.5, care, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	where := fmt.Sprintf("Zone: %s | %dd to maturity", info.ZoneName, info.DaysToMaturity)
	pdf.CellFormat(textW, 3, where, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a layout for use in
// testing or alternative export formats.
func CollectLabelInfos(garden model.Garden, layout model.Layout) []LabelInfo {
	var labels []LabelInfo
	for _, za := range layout.ZoneAssignments {
		zoneName := za.ZoneID
		if z, ok := garden.ZoneByID(za.ZoneID); ok {
			zoneName = z.Name
		}
		for _, pc := range za.Plants {
			info := LabelInfo{
				PlantID: pc.PlantID,
				ZoneID:  za.ZoneID,

				PlantName: pc.PlantID,
				ZoneName:  zoneName,
				Count:     pc.Count,
			}
			if p, ok := garden.PlantByID(pc.PlantID); ok {
				info.PlantName = p.Name
				info.Spacing = p.SpacingSideLength
				info.SunlightHours = p.SunlightHoursNeeded
				info.DaysToMaturity = p.DaysToMaturity
			}
			labels = append(labels, info)
		}
	}
	return labels
}

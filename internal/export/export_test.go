package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GardenPlot/internal/model"
)

func exportFixture() (model.Garden, model.Layout) {
	g := model.Garden{
		ID:   "g1",
		Name: "Backyard",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Name: "South bed", Area: 50, SunlightHours: 8},
			{ID: "z2", Name: "Shade corner", Area: 20, SunlightHours: 4},
		},
		Plants: []model.Plant{
			{ID: "p1", Name: "Tomato", Type: "vegetable", SpacingSideLength: 2,
				Quantity: 4, SunlightHoursNeeded: 6, DaysToMaturity: 75},
			{ID: "p2", Name: "Lettuce", Type: "vegetable", SpacingSideLength: 0.75,
				Quantity: 6, SunlightHoursNeeded: 4, DaysToMaturity: 50},
		},
	}
	layout := model.Layout{
		GardenID:         "g1",
		SpaceUtilization: 33.0,
		ZoneAssignments: []model.ZoneAssignment{
			{ZoneID: "z1", Plants: []model.PlantCount{{PlantID: "p1", Count: 4}}},
			{ZoneID: "z2", Plants: []model.PlantCount{{PlantID: "p2", Count: 6}}},
		},
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	return g, layout
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestExportPDF(t *testing.T) {
	g, layout := exportFixture()
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, g, layout); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestExportPDFWithFlags(t *testing.T) {
	g, layout := exportFixture()
	layout.Unplaced = []model.PlantCount{{PlantID: "p1", Count: 2}}
	layout.TimedOut = true
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, g, layout); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestExportLabels(t *testing.T) {
	g, layout := exportFixture()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, g, layout); err != nil {
		t.Fatalf("ExportLabels: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestExportLabelsEmptyLayout(t *testing.T) {
	g, _ := exportFixture()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, g, model.Layout{GardenID: "g1"}); err == nil {
		t.Fatal("expected error for a layout with no placements")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	g, layout := exportFixture()

	labels := CollectLabelInfos(g, layout)
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}

	first := labels[0]
	if first.PlantName != "Tomato" || first.ZoneName != "South bed" {
		t.Errorf("unexpected first label: %+v", first)
	}
	if first.Count != 4 || first.Spacing != 2 || first.DaysToMaturity != 75 {
		t.Errorf("plant facts not carried over: %+v", first)
	}
}

func TestCollectLabelInfosUnknownIDsFallBack(t *testing.T) {
	g, layout := exportFixture()
	layout.ZoneAssignments = append(layout.ZoneAssignments, model.ZoneAssignment{
		ZoneID: "gone",
		Plants: []model.PlantCount{{PlantID: "missing", Count: 1}},
	})

	labels := CollectLabelInfos(g, layout)
	last := labels[len(labels)-1]
	if last.PlantName != "missing" || last.ZoneName != "gone" {
		t.Errorf("ids should stand in for missing entities: %+v", last)
	}
}

func TestExportXLSX(t *testing.T) {
	g, layout := exportFixture()
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	if err := ExportXLSX(path, g, layout); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	assertNonEmptyFile(t, path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("got sheets %v, want summary plus one per assigned zone", sheets)
	}
	if sheets[0] != "Summary" {
		t.Errorf("first sheet = %q, want Summary", sheets[0])
	}
}

func TestExportDXF(t *testing.T) {
	g, layout := exportFixture()
	path := filepath.Join(t.TempDir(), "plan.dxf")

	if err := ExportDXF(path, g, layout); err != nil {
		t.Fatalf("ExportDXF: %v", err)
	}
	assertNonEmptyFile(t, path)
}

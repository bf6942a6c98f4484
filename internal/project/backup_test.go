package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/piwi3910/GardenPlot/internal/model"
)

func TestExportImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backups", "all.json")

	cfg := model.DefaultAppConfig()
	cfg.AddRecentGarden("/tmp/g1.json")
	gardens := []GardenFile{sampleGardenFile()}

	if err := ExportAllData(path, cfg, gardens); err != nil {
		t.Fatalf("ExportAllData: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("CreatedAt should be set")
	}
	if !reflect.DeepEqual(backup.Config, cfg) {
		t.Errorf("config mismatch:\ngot  %+v\nwant %+v", backup.Config, cfg)
	}
	if !reflect.DeepEqual(backup.Gardens, gardens) {
		t.Errorf("gardens mismatch:\ngot  %+v\nwant %+v", backup.Gardens, gardens)
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing backup file")
	}
}

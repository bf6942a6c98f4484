// Package project handles persistence of gardens, layouts and application
// configuration as JSON files under the user's data directory. The planning
// core performs no I/O itself; this package materializes entities for it and
// stores what it returns.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// GardenFile ties a garden and its most recent layout together for
// save/load.
type GardenFile struct {
	Garden model.Garden  `json:"garden"`
	Layout *model.Layout `json:"layout,omitempty"`
}

// DefaultDataDir returns the application data directory, ~/.gardenplot.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gardenplot"), nil
}

// SaveGarden writes a garden file to the specified path, creating parent
// directories as needed.
func SaveGarden(path string, gf GardenFile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := json.MarshalIndent(gf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal garden: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadGarden reads a garden file from the specified path.
func LoadGarden(path string) (GardenFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GardenFile{}, fmt.Errorf("failed to read garden file: %w", err)
	}
	var gf GardenFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return GardenFile{}, fmt.Errorf("failed to parse garden file: %w", err)
	}
	if gf.Garden.ID == "" {
		return GardenFile{}, fmt.Errorf("invalid garden file: missing garden id")
	}
	return gf, nil
}

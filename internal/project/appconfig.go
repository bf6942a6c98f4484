package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// DefaultAppConfigPath returns the default location of the app config file,
// ~/.gardenplot/config.json.
func DefaultAppConfigPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig writes the app config to the specified JSON file, creating
// parent directories if needed.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the app config from the specified JSON file. A missing
// file is not an error: the defaults are returned.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RecentGardens == nil {
		cfg.RecentGardens = []string{}
	}
	return cfg, nil
}

// LoadOrCreateAppConfig loads the config from the default path, creating it
// with defaults when it does not exist yet.
func LoadOrCreateAppConfig() (model.AppConfig, string, error) {
	path, err := DefaultAppConfigPath()
	if err != nil {
		return model.DefaultAppConfig(), "", err
	}
	cfg, err := LoadAppConfig(path)
	if err != nil {
		return model.DefaultAppConfig(), path, err
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if saveErr := SaveAppConfig(path, cfg); saveErr != nil {
			return cfg, path, saveErr
		}
	}
	return cfg, path, nil
}

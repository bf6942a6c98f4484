package model

import "time"

// Params holds the optimizer configuration.
type Params struct {
	// TargetUtilizationPercent is the garden-wide utilization the optimizer
	// aims for. A layout below the target is still a success, just flagged.
	TargetUtilizationPercent float64 `json:"target_utilization_percent"`

	// MinZoneSize excludes zones smaller than this many sq ft from
	// placement. Zero disables the filter.
	MinZoneSize float64 `json:"min_zone_size"`

	// DefaultSpacing is reserved for callers that default missing plant
	// spacing before invoking the engine. The engine itself rejects plants
	// without spacing during validation and never reads this field.
	DefaultSpacing float64 `json:"default_spacing"`

	// SunlightToleranceHours admits zones whose available sunlight falls
	// short of a plant's requirement by at most this many hours. Zero means
	// exact matching only.
	SunlightToleranceHours float64 `json:"sunlight_tolerance_hours"`

	// TimeBudget is the soft wall-clock budget for a single run. When
	// exceeded the engine finalizes whatever is placed and marks the layout
	// timed out instead of failing.
	TimeBudget time.Duration `json:"time_budget"`
}

// DefaultParams returns the standard optimizer configuration.
func DefaultParams() Params {
	return Params{
		TargetUtilizationPercent: 92.0,
		MinZoneSize:              0,
		DefaultSpacing:           1.0,
		SunlightToleranceHours:   0,
		TimeBudget:               3 * time.Second,
	}
}

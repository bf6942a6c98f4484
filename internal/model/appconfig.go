package model

import "time"

// AppConfig holds application-wide preferences and default optimizer
// settings.
type AppConfig struct {
	// Default optimizer parameters applied to new plans
	DefaultTargetUtilization float64 `json:"default_target_utilization"`
	DefaultMinZoneSize       float64 `json:"default_min_zone_size"`
	DefaultSpacing           float64 `json:"default_spacing"`
	DefaultSunlightTolerance float64 `json:"default_sunlight_tolerance"`
	DefaultTimeBudgetMs      int     `json:"default_time_budget_ms"`

	// Application preferences
	RecentGardens []string `json:"recent_gardens"`
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultParams().
func DefaultAppConfig() AppConfig {
	defaults := DefaultParams()
	return AppConfig{
		DefaultTargetUtilization: defaults.TargetUtilizationPercent,
		DefaultMinZoneSize:       defaults.MinZoneSize,
		DefaultSpacing:           defaults.DefaultSpacing,
		DefaultSunlightTolerance: defaults.SunlightToleranceHours,
		DefaultTimeBudgetMs:      int(defaults.TimeBudget.Milliseconds()),
		RecentGardens:            []string{},
	}
}

// ToParams converts the config's defaults into optimizer Params. This is
// used when planning a garden so the run inherits the user's saved defaults.
func (c AppConfig) ToParams() Params {
	p := DefaultParams()
	p.TargetUtilizationPercent = c.DefaultTargetUtilization
	p.MinZoneSize = c.DefaultMinZoneSize
	p.DefaultSpacing = c.DefaultSpacing
	p.SunlightToleranceHours = c.DefaultSunlightTolerance
	if c.DefaultTimeBudgetMs > 0 {
		p.TimeBudget = time.Duration(c.DefaultTimeBudgetMs) * time.Millisecond
	}
	return p
}

// AddRecentGarden prepends a path to the recent list, de-duplicating and
// keeping at most 10 entries.
func (c *AppConfig) AddRecentGarden(path string) {
	recent := []string{path}
	for _, p := range c.RecentGardens {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentGardens = recent
}

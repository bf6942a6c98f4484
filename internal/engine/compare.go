package engine

import (
	"time"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// ComparisonScenario defines a named set of params to compare.
type ComparisonScenario struct {
	Name   string
	Params model.Params
}

// ComparisonResult holds the layout and computed statistics for a single
// scenario. Err is set when the scenario's input failed validation; the
// remaining fields are then zero.
type ComparisonResult struct {
	Scenario       ComparisonScenario
	Layout         model.Layout
	Err            error
	ZonesUsed      int
	PlacedCount    int
	UnplacedCount  int
	Utilization    float64
	AchievedTarget bool
}

// CompareScenarios runs the optimizer once per scenario and returns the
// results in scenario order. This enables side-by-side comparison of
// different planning parameters (target utilization, sunlight tolerance,
// minimum zone size).
func CompareScenarios(scenarios []ComparisonScenario, garden model.Garden) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		layout, err := New(scenario.Params).Optimize(garden)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}
		results = append(results, ComparisonResult{
			Scenario:       scenario,
			Layout:         layout,
			ZonesUsed:      len(layout.ZoneAssignments),
			PlacedCount:    layout.PlacedCount(),
			UnplacedCount:  layout.UnplacedCount(),
			Utilization:    layout.SpaceUtilization,
			AchievedTarget: layout.AchievedTargetUtilization,
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if scenarios from base params, varying
// the knobs that most often change whether a garden plan is feasible.
func BuildDefaultScenarios(base model.Params) []ComparisonScenario {
	strict := base
	strict.SunlightToleranceHours = 0

	tolerant := base
	tolerant.SunlightToleranceHours = 2

	relaxed := base
	relaxed.TargetUtilizationPercent = 75

	patient := base
	patient.TimeBudget = 10 * time.Second

	return []ComparisonScenario{
		{Name: "Current settings", Params: base},
		{Name: "Exact sunlight match", Params: strict},
		{Name: "2h sunlight tolerance", Params: tolerant},
		{Name: "Relaxed target (75%)", Params: relaxed},
		{Name: "Extended time budget", Params: patient},
	}
}

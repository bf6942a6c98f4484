// Package engine implements the zone assignment optimizer: a deterministic
// best-fit-decreasing heuristic that places plant units into garden zones
// under sunlight, capacity and compatibility constraints.
//
// Invalid input is the only error condition; an infeasible but valid garden
// always yields a layout, with unplaced plants and quality flags reporting
// how far short it fell.
package engine

import (
	"sort"
	"time"

	"github.com/piwi3910/GardenPlot/internal/model"
)

// Optimizer runs the zone assignment algorithm.
type Optimizer struct {
	Params model.Params

	// now is overridable so tests can drive the soft deadline.
	now func() time.Time
}

// New creates an Optimizer. A zero or negative time budget falls back to the
// default from DefaultParams.
func New(params model.Params) *Optimizer {
	if params.TimeBudget <= 0 {
		params.TimeBudget = model.DefaultParams().TimeBudget
	}
	return &Optimizer{Params: params, now: time.Now}
}

// unit is one placeable plant instance, expanded from Plant.Quantity.
type unit struct {
	plant model.Plant
	area  float64 // footprint of this single instance, buffer included
}

// zoneState tracks one zone's remaining capacity and current occupants
// during a run.
type zoneState struct {
	zone      model.Zone
	remaining float64
	occupants []model.Plant      // distinct plants placed here, for conflict checks
	counts    []model.PlantCount // placement-ordered counts for the layout
}

func (zs *zoneState) place(u unit) {
	zs.remaining -= u.area
	for i := range zs.counts {
		if zs.counts[i].PlantID == u.plant.ID {
			zs.counts[i].Count++
			return
		}
	}
	zs.counts = append(zs.counts, model.PlantCount{PlantID: u.plant.ID, Count: 1})
	zs.occupants = append(zs.occupants, u.plant)
}

func (zs *zoneState) conflictsWith(p model.Plant) bool {
	for _, occ := range zs.occupants {
		if occ.ID != p.ID && model.Conflicts(occ, p) {
			return true
		}
	}
	return false
}

func (zs *zoneState) companionCount(p model.Plant) int {
	var n int
	for _, occ := range zs.occupants {
		if occ.ID != p.ID && model.Companions(occ, p) {
			n++
		}
	}
	return n
}

// Optimize assigns the garden's plant units to zones and returns the
// resulting layout. The garden is validated first; an invalid garden is the
// only error condition. Infeasibility is reported through the layout's
// Unplaced list and AchievedTargetUtilization flag, and an exceeded time
// budget through TimedOut. Given unchanged input and no truncation, repeated
// runs produce identical layouts.
func (o *Optimizer) Optimize(garden model.Garden) (model.Layout, error) {
	if verr := model.ValidateGarden(garden); verr != nil {
		return model.Layout{}, verr
	}

	start := o.now()
	deadline := start.Add(o.Params.TimeBudget)

	units := expandUnits(garden.Plants)

	// Largest footprint first; plant id breaks ties so the order is stable
	// across runs.
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].area != units[j].area {
			return units[i].area > units[j].area
		}
		return units[i].plant.ID < units[j].plant.ID
	})

	zones := o.buildZoneStates(garden.Zones)

	var (
		usedArea float64
		unplaced []model.PlantCount
		timedOut bool
	)

	for idx, u := range units {
		// Soft deadline, checked cooperatively between placements.
		if o.now().After(deadline) {
			timedOut = true
			unplaced = appendUnplacedUnits(unplaced, units[idx:])
			break
		}

		zs := o.selectZone(zones, u)
		if zs == nil {
			unplaced = appendUnplaced(unplaced, u.plant.ID, 1)
			continue
		}
		zs.place(u)
		usedArea += u.area
	}

	layout := model.Layout{
		GardenID:    garden.ID,
		Fingerprint: model.Fingerprint(garden),
		Unplaced:    unplaced,
		TimedOut:    timedOut,
		GeneratedAt: start,
	}
	for _, zs := range zones {
		if len(zs.counts) == 0 {
			continue
		}
		layout.ZoneAssignments = append(layout.ZoneAssignments, model.ZoneAssignment{
			ZoneID: zs.zone.ID,
			Plants: zs.counts,
		})
	}
	layout.SpaceUtilization = model.SpaceUtilizationPercent(garden, usedArea)
	layout.AchievedTargetUtilization = layout.SpaceUtilization >= o.Params.TargetUtilizationPercent &&
		len(unplaced) == 0

	return layout, nil
}

// expandUnits turns each plant into Quantity placeable units sharing the
// plant's compatibility and sunlight profile.
func expandUnits(plants []model.Plant) []unit {
	var units []unit
	for _, p := range plants {
		area := model.RequiredUnitArea(p)
		for i := 0; i < p.Quantity; i++ {
			units = append(units, unit{plant: p, area: area})
		}
	}
	return units
}

// buildZoneStates prepares per-zone capacity tracking, sorted by area
// descending (id ascending on ties) for a deterministic scan order. Zones
// below the MinZoneSize pre-filter are never offered to the packer.
func (o *Optimizer) buildZoneStates(zones []model.Zone) []*zoneState {
	var states []*zoneState
	for _, z := range zones {
		if o.Params.MinZoneSize > 0 && z.Area < o.Params.MinZoneSize {
			continue
		}
		states = append(states, &zoneState{zone: z, remaining: z.Area})
	}
	sort.SliceStable(states, func(i, j int) bool {
		if states[i].zone.Area != states[j].zone.Area {
			return states[i].zone.Area > states[j].zone.Area
		}
		return states[i].zone.ID < states[j].zone.ID
	})
	return states
}

// selectZone picks the best zone for a unit, or nil when none is eligible.
// Zones that fully satisfy the plant's sunlight requirement are preferred;
// only when no such zone can take the unit are zones within the configured
// tolerance band considered. Among eligible zones the one leaving the
// smallest remaining-capacity residue wins (best fit), with ties going first
// to the zone holding more of the plant's companions and then to the lowest
// zone id.
func (o *Optimizer) selectZone(zones []*zoneState, u unit) *zoneState {
	if zs := o.bestFit(zones, u, 0); zs != nil {
		return zs
	}
	if o.Params.SunlightToleranceHours > 0 {
		return o.bestFit(zones, u, o.Params.SunlightToleranceHours)
	}
	return nil
}

func (o *Optimizer) bestFit(zones []*zoneState, u unit, tolerance float64) *zoneState {
	const epsilon = 1e-9

	var (
		best           *zoneState
		bestResidue    float64
		bestCompanions int
	)
	for _, zs := range zones {
		if zs.zone.SunlightHours+tolerance < u.plant.SunlightHoursNeeded {
			continue
		}
		if zs.remaining+epsilon < u.area {
			continue
		}
		if zs.conflictsWith(u.plant) {
			continue
		}

		residue := zs.remaining - u.area
		if best == nil || residue < bestResidue-epsilon {
			best, bestResidue, bestCompanions = zs, residue, zs.companionCount(u.plant)
			continue
		}
		if residue <= bestResidue+epsilon {
			companions := zs.companionCount(u.plant)
			if companions > bestCompanions ||
				(companions == bestCompanions && zs.zone.ID < best.zone.ID) {
				best, bestResidue, bestCompanions = zs, residue, companions
			}
		}
	}
	return best
}

func appendUnplaced(unplaced []model.PlantCount, plantID string, count int) []model.PlantCount {
	for i := range unplaced {
		if unplaced[i].PlantID == plantID {
			unplaced[i].Count += count
			return unplaced
		}
	}
	return append(unplaced, model.PlantCount{PlantID: plantID, Count: count})
}

func appendUnplacedUnits(unplaced []model.PlantCount, units []unit) []model.PlantCount {
	for _, u := range units {
		unplaced = appendUnplaced(unplaced, u.plant.ID, 1)
	}
	return unplaced
}

package model

import "time"

// PlantCount records how many instances of one plant ended up in a zone.
type PlantCount struct {
	PlantID string `json:"plant_id"`
	Count   int    `json:"count"`
}

// ZoneAssignment holds the plants placed into a single zone, in placement
// order.
type ZoneAssignment struct {
	ZoneID string       `json:"zone_id"`
	Plants []PlantCount `json:"plants"`
}

// Layout is the result of one optimization run. It is immutable once
// produced; a re-run supersedes it with a fresh Layout rather than mutating
// it. The structure is self-describing: zone id, plant id and count are all
// present, so a renderer needs nothing beyond the original Garden.
type Layout struct {
	GardenID        string           `json:"garden_id"`
	Fingerprint     string           `json:"fingerprint"` // content hash of the garden at generation time
	ZoneAssignments []ZoneAssignment `json:"zone_assignments"`
	Unplaced        []PlantCount     `json:"unplaced,omitempty"`

	SpaceUtilization          float64   `json:"space_utilization"` // garden-wide, 0-100, 2 decimals
	AchievedTargetUtilization bool      `json:"achieved_target_utilization"`
	TimedOut                  bool      `json:"timed_out"`
	GeneratedAt               time.Time `json:"generated_at"`
}

// Assignments returns the zone-to-plant-counts mapping as a fresh map, so the
// scheduling collaborator can consume it without being able to mutate the
// Layout's own records.
func (l Layout) Assignments() map[string][]PlantCount {
	out := make(map[string][]PlantCount, len(l.ZoneAssignments))
	for _, za := range l.ZoneAssignments {
		plants := make([]PlantCount, len(za.Plants))
		copy(plants, za.Plants)
		out[za.ZoneID] = plants
	}
	return out
}

// PlacedCount returns the total number of plant instances placed in any zone.
func (l Layout) PlacedCount() int {
	var total int
	for _, za := range l.ZoneAssignments {
		for _, pc := range za.Plants {
			total += pc.Count
		}
	}
	return total
}

// UnplacedCount returns the total number of plant instances that found no
// eligible zone.
func (l Layout) UnplacedCount() int {
	var total int
	for _, pc := range l.Unplaced {
		total += pc.Count
	}
	return total
}

// UsedArea returns the total footprint in sq ft of everything placed by this
// layout, resolved against the garden the layout was generated from.
func (l Layout) UsedArea(g Garden) float64 {
	var total float64
	for _, za := range l.ZoneAssignments {
		for _, pc := range za.Plants {
			if p, ok := g.PlantByID(pc.PlantID); ok {
				total += RequiredUnitArea(p) * float64(pc.Count)
			}
		}
	}
	return total
}

// ZoneUtilization recomputes the utilization percentage of one zone from the
// layout, without re-running optimization.
func (l Layout) ZoneUtilization(g Garden, zoneID string) float64 {
	zone, ok := g.ZoneByID(zoneID)
	if !ok {
		return 0
	}
	var used float64
	for _, za := range l.ZoneAssignments {
		if za.ZoneID != zoneID {
			continue
		}
		for _, pc := range za.Plants {
			if p, ok := g.PlantByID(pc.PlantID); ok {
				used += RequiredUnitArea(p) * float64(pc.Count)
			}
		}
	}
	return utilizationPercent(used, zone.Area)
}

// SpaceUtilizationRecomputed recomputes the usable-area utilization from the
// layout. For an untruncated run this equals the stored SpaceUtilization.
func (l Layout) SpaceUtilizationRecomputed(g Garden) float64 {
	return SpaceUtilizationPercent(g, l.UsedArea(g))
}

// GardenUtilization recomputes the utilization percentage scoped to the
// garden's total area, paths and borders included.
func (l Layout) GardenUtilization(g Garden) float64 {
	return GardenUtilizationPercent(g, l.UsedArea(g))
}

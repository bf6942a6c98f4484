package model

import "math"

// accessBuffer is the uniform 20% allowance added around every plant's
// footprint so the gardener can reach it for weeding and harvest.
const accessBuffer = 1.2

// RequiredArea returns the total footprint of all of a plant's instances in
// sq ft, including the accessibility buffer.
func RequiredArea(p Plant) float64 {
	return RequiredUnitArea(p) * float64(p.Quantity)
}

// RequiredUnitArea returns the footprint of a single instance of the plant.
func RequiredUnitArea(p Plant) float64 {
	return p.SpacingSideLength * p.SpacingSideLength * accessBuffer
}

// Round2 rounds to 2 decimal places, halves up.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// utilizationPercent converts used/total areas into a clamped percentage.
func utilizationPercent(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	pct := used / total * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return Round2(pct)
}

// ZoneUtilizationPercent returns the percentage of the zone's area occupied
// by the given plants, clamped to [0, 100] and rounded to 2 decimals.
func ZoneUtilizationPercent(zone Zone, plants []Plant) float64 {
	var used float64
	for _, p := range plants {
		used += RequiredArea(p)
	}
	return utilizationPercent(used, zone.Area)
}

// GardenUtilizationPercent returns the percentage of the garden's total area
// occupied by usedArea sq ft of plantings, clamped and rounded like
// ZoneUtilizationPercent. Callers can recompute this from any Layout without
// re-running optimization.
func GardenUtilizationPercent(garden Garden, usedArea float64) float64 {
	return utilizationPercent(usedArea, garden.Area)
}

// SpaceUtilizationPercent returns the percentage of the garden's usable
// area (the combined zone area) occupied by usedArea sq ft of plantings.
// This is the figure a layout reports and the optimizer targets: garden
// area outside any zone, such as paths and borders, is not plantable.
func SpaceUtilizationPercent(garden Garden, usedArea float64) float64 {
	return utilizationPercent(usedArea, garden.TotalZoneArea())
}

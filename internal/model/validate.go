package model

import (
	"fmt"
	"strings"
)

// ValidationCode identifies which garden invariant a ValidationError violated.
type ValidationCode string

const (
	ErrNoZones               ValidationCode = "NO_ZONES"
	ErrZoneInvalid           ValidationCode = "ZONE_INVALID"
	ErrZoneAreaExceedsGarden ValidationCode = "ZONE_AREA_EXCEEDS_GARDEN"
	ErrGardenAreaOutOfRange  ValidationCode = "GARDEN_AREA_OUT_OF_RANGE"
	ErrPlantInvalid          ValidationCode = "PLANT_INVALID"
	ErrIncompatiblePlants    ValidationCode = "INCOMPATIBLE_PLANTS"
	ErrPlantSpaceExceedsArea ValidationCode = "PLANT_SPACE_EXCEEDS_AREA"
)

// ValidationError reports the first garden invariant that failed, along with
// the ids of the offending entities. It is never retried or partially
// applied: the input itself is invalid.
type ValidationError struct {
	Code      ValidationCode
	EntityIDs []string
	Detail    string
}

func (e *ValidationError) Error() string {
	if len(e.EntityIDs) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: {%s}: %s", e.Code, strings.Join(e.EntityIDs, ", "), e.Detail)
}

// Validate checks a single plant's own bounds and the consistency of its
// compatibility lists.
func (p Plant) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("plant has no id")
	}
	if p.SpacingSideLength < MinSpacing || p.SpacingSideLength > MaxSpacing {
		return fmt.Errorf("plant %s: spacing %.2f ft outside [%.2f, %.2f]",
			p.ID, p.SpacingSideLength, MinSpacing, MaxSpacing)
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("plant %s: quantity must be positive, got %d", p.ID, p.Quantity)
	}
	if p.SunlightHoursNeeded < 0 || p.SunlightHoursNeeded > MaxSunlight {
		return fmt.Errorf("plant %s: sunlight %.1f h outside [0, %.0f]", p.ID, p.SunlightHoursNeeded, MaxSunlight)
	}
	if p.DaysToMaturity <= 0 {
		return fmt.Errorf("plant %s: days to maturity must be positive, got %d", p.ID, p.DaysToMaturity)
	}
	if listsID(p.CompanionIDs, p.ID) || listsID(p.IncompatibleIDs, p.ID) {
		return fmt.Errorf("plant %s references itself", p.ID)
	}
	for _, id := range p.CompanionIDs {
		if listsID(p.IncompatibleIDs, id) {
			return fmt.Errorf("plant %s lists %s as both companion and incompatible", p.ID, id)
		}
	}
	return nil
}

// Validate checks a single zone's own bounds.
func (z Zone) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("zone has no id")
	}
	if z.Area <= 0 {
		return fmt.Errorf("zone %s: area must be positive, got %.2f", z.ID, z.Area)
	}
	if z.SunlightHours < 0 || z.SunlightHours > MaxSunlight {
		return fmt.Errorf("zone %s: sunlight %.1f h outside [0, %.0f]", z.ID, z.SunlightHours, MaxSunlight)
	}
	return nil
}

// ValidateGarden runs the garden invariants in a fixed order and stops at the
// first violation. A nil return means the garden is safe to optimize.
//
// The invariants, in order: at least one zone; every zone individually valid;
// zone areas fit inside the garden; garden area within bounds; every plant
// individually valid; no mutually incompatible plant pair; total plant
// footprint fits inside the garden.
func ValidateGarden(g Garden) *ValidationError {
	if len(g.Zones) == 0 {
		return &ValidationError{Code: ErrNoZones, EntityIDs: []string{g.ID},
			Detail: "garden has no zones"}
	}

	for _, z := range g.Zones {
		if err := z.Validate(); err != nil {
			return &ValidationError{Code: ErrZoneInvalid, EntityIDs: []string{z.ID}, Detail: err.Error()}
		}
	}

	if g.Area < MinGardenArea || g.Area > MaxGardenArea {
		return &ValidationError{Code: ErrGardenAreaOutOfRange, EntityIDs: []string{g.ID},
			Detail: fmt.Sprintf("garden area %.2f sq ft outside [%.0f, %.0f]", g.Area, MinGardenArea, MaxGardenArea)}
	}

	if total := g.TotalZoneArea(); total > g.Area {
		return &ValidationError{Code: ErrZoneAreaExceedsGarden, EntityIDs: []string{g.ID},
			Detail: fmt.Sprintf("zone areas total %.2f sq ft but garden is %.2f sq ft", total, g.Area)}
	}

	for _, p := range g.Plants {
		if err := p.Validate(); err != nil {
			return &ValidationError{Code: ErrPlantInvalid, EntityIDs: []string{p.ID}, Detail: err.Error()}
		}
	}

	for i := range g.Plants {
		for j := i + 1; j < len(g.Plants); j++ {
			if Conflicts(g.Plants[i], g.Plants[j]) {
				return &ValidationError{
					Code:      ErrIncompatiblePlants,
					EntityIDs: []string{g.Plants[i].ID, g.Plants[j].ID},
					Detail: fmt.Sprintf("%s and %s cannot share a garden",
						g.Plants[i].Name, g.Plants[j].Name),
				}
			}
		}
	}

	if required := g.TotalRequiredArea(); required > g.Area {
		return &ValidationError{Code: ErrPlantSpaceExceedsArea, EntityIDs: []string{g.ID},
			Detail: fmt.Sprintf("plants need %.2f sq ft but garden is %.2f sq ft", required, g.Area)}
	}

	return nil
}

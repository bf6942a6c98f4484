package model

import "github.com/google/uuid"

// Bounds for garden and plant dimensions. All areas are in square feet and
// all spacing values in feet.
const (
	MinGardenArea = 1.0
	MaxGardenArea = 1000.0
	MinSpacing    = 0.25
	MaxSpacing    = 10.0
	MaxSunlight   = 24.0
)

// Plant represents one desired planting: a species plus how many of it the
// gardener wants. Quantity copies of the plant are placed individually
// during optimization.
type Plant struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Type                string   `json:"type"` // e.g. "vegetable", "herb", "flower"
	SpacingSideLength   float64  `json:"spacing_side_length"`   // ft per side of the plant's square footprint
	Quantity            int      `json:"quantity"`              // number of individual plants
	SunlightHoursNeeded float64  `json:"sunlight_hours_needed"` // daily direct-sun requirement
	DaysToMaturity      int      `json:"days_to_maturity"`
	CompanionIDs        []string `json:"companion_ids,omitempty"`
	IncompatibleIDs     []string `json:"incompatible_ids,omitempty"`
}

// NewPlant creates a Plant with a generated ID.
func NewPlant(name, plantType string, spacing float64, qty int, sunlight float64, maturity int) Plant {
	return Plant{
		ID:                  uuid.New().String()[:8],
		Name:                name,
		Type:                plantType,
		SpacingSideLength:   spacing,
		Quantity:            qty,
		SunlightHoursNeeded: sunlight,
		DaysToMaturity:      maturity,
	}
}

// Zone represents a sub-region of the garden with uniform sunlight exposure.
// Plant assignments live on Layouts, never on the Zone itself, so a Zone can
// be shared between layout runs without copying.
type Zone struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Area          float64 `json:"area"`           // sq ft
	SunlightHours float64 `json:"sunlight_hours"` // daily direct sun available
}

// NewZone creates a Zone with a generated ID.
func NewZone(name string, area, sunlight float64) Zone {
	return Zone{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Area:          area,
		SunlightHours: sunlight,
	}
}

// Garden ties zones and desired plants together for planning and save/load.
type Garden struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Area   float64 `json:"area"` // sq ft, bounded [1, 1000]
	Zones  []Zone  `json:"zones"`
	Plants []Plant `json:"plants"`
}

// NewGarden creates an empty Garden with a generated ID.
func NewGarden(name string, area float64) Garden {
	return Garden{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Area:   area,
		Zones:  []Zone{},
		Plants: []Plant{},
	}
}

// PlantByID returns the plant with the given id, or false if absent.
func (g Garden) PlantByID(id string) (Plant, bool) {
	for _, p := range g.Plants {
		if p.ID == id {
			return p, true
		}
	}
	return Plant{}, false
}

// ZoneByID returns the zone with the given id, or false if absent.
func (g Garden) ZoneByID(id string) (Zone, bool) {
	for _, z := range g.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// TotalZoneArea returns the combined area of all zones.
func (g Garden) TotalZoneArea() float64 {
	var total float64
	for _, z := range g.Zones {
		total += z.Area
	}
	return total
}

// TotalRequiredArea returns the combined footprint of all desired plants,
// including the accessibility buffer.
func (g Garden) TotalRequiredArea() float64 {
	var total float64
	for _, p := range g.Plants {
		total += RequiredArea(p)
	}
	return total
}

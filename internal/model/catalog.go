package model

// CatalogEntry is a built-in plant preset. Entries use stable slug ids so
// their companion and antagonist references can point at each other.
type CatalogEntry struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Spacing        float64  `json:"spacing"` // ft per side
	SunlightHours  float64  `json:"sunlight_hours"`
	DaysToMaturity int      `json:"days_to_maturity"`
	Companions     []string `json:"companions,omitempty"`
	Antagonists    []string `json:"antagonists,omitempty"`
}

// Catalog holds common garden plants with their classic companion-planting
// relations. Antagonist pairs are declared on both sides.
var Catalog = []CatalogEntry{
	{
		ID: "tomato", Name: "Tomato", Type: "vegetable",
		Spacing: 2.0, SunlightHours: 8, DaysToMaturity: 75,
		Companions:  []string{"basil", "carrot", "onion"},
		Antagonists: []string{"potato", "fennel", "cabbage"},
	},
	{
		ID: "basil", Name: "Basil", Type: "herb",
		Spacing: 1.0, SunlightHours: 6, DaysToMaturity: 60,
		Companions: []string{"tomato", "pepper"},
	},
	{
		ID: "carrot", Name: "Carrot", Type: "vegetable",
		Spacing: 0.25, SunlightHours: 6, DaysToMaturity: 70,
		Companions:  []string{"tomato", "onion", "lettuce"},
		Antagonists: []string{"dill"},
	},
	{
		ID: "onion", Name: "Onion", Type: "vegetable",
		Spacing: 0.33, SunlightHours: 6, DaysToMaturity: 100,
		Companions:  []string{"carrot", "tomato", "lettuce"},
		Antagonists: []string{"bean", "pea"},
	},
	{
		ID: "bean", Name: "Bush Bean", Type: "vegetable",
		Spacing: 0.5, SunlightHours: 6, DaysToMaturity: 55,
		Companions:  []string{"cucumber", "corn", "lettuce"},
		Antagonists: []string{"onion", "fennel"},
	},
	{
		ID: "pea", Name: "Pea", Type: "vegetable",
		Spacing: 0.33, SunlightHours: 6, DaysToMaturity: 65,
		Companions:  []string{"carrot", "cucumber", "corn"},
		Antagonists: []string{"onion"},
	},
	{
		ID: "lettuce", Name: "Lettuce", Type: "vegetable",
		Spacing: 0.75, SunlightHours: 4, DaysToMaturity: 50,
		Companions: []string{"carrot", "onion", "bean"},
	},
	{
		ID: "cucumber", Name: "Cucumber", Type: "vegetable",
		Spacing: 1.5, SunlightHours: 8, DaysToMaturity: 60,
		Companions:  []string{"bean", "pea", "corn"},
		Antagonists: []string{"potato"},
	},
	{
		ID: "potato", Name: "Potato", Type: "vegetable",
		Spacing: 1.0, SunlightHours: 6, DaysToMaturity: 90,
		Companions:  []string{"bean", "corn", "cabbage"},
		Antagonists: []string{"tomato", "cucumber"},
	},
	{
		ID: "corn", Name: "Sweet Corn", Type: "vegetable",
		Spacing: 1.0, SunlightHours: 8, DaysToMaturity: 80,
		Companions: []string{"bean", "pea", "cucumber", "potato"},
	},
	{
		ID: "cabbage", Name: "Cabbage", Type: "vegetable",
		Spacing: 1.5, SunlightHours: 6, DaysToMaturity: 85,
		Companions:  []string{"potato", "onion"},
		Antagonists: []string{"tomato"},
	},
	{
		ID: "pepper", Name: "Bell Pepper", Type: "vegetable",
		Spacing: 1.5, SunlightHours: 8, DaysToMaturity: 70,
		Companions:  []string{"basil", "onion"},
		Antagonists: []string{"fennel"},
	},
	{
		ID: "dill", Name: "Dill", Type: "herb",
		Spacing: 0.75, SunlightHours: 6, DaysToMaturity: 45,
		Companions:  []string{"cabbage", "cucumber"},
		Antagonists: []string{"carrot"},
	},
	{
		ID: "fennel", Name: "Fennel", Type: "herb",
		Spacing: 1.0, SunlightHours: 6, DaysToMaturity: 80,
		Antagonists: []string{"tomato", "bean", "pepper"},
	},
	{
		ID: "marigold", Name: "Marigold", Type: "flower",
		Spacing: 0.75, SunlightHours: 6, DaysToMaturity: 50,
		Companions: []string{"tomato", "pepper", "cucumber"},
	},
}

// CatalogEntryByID returns the catalog entry with the given slug id.
func CatalogEntryByID(id string) (CatalogEntry, bool) {
	for _, e := range Catalog {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// ToPlant converts a catalog entry into a Plant with the given quantity. The
// catalog's slug id is kept so companion and antagonist references resolve
// between plants built from the same catalog.
func (e CatalogEntry) ToPlant(qty int) Plant {
	companions := make([]string, len(e.Companions))
	copy(companions, e.Companions)
	antagonists := make([]string, len(e.Antagonists))
	copy(antagonists, e.Antagonists)
	return Plant{
		ID:                  e.ID,
		Name:                e.Name,
		Type:                e.Type,
		SpacingSideLength:   e.Spacing,
		Quantity:            qty,
		SunlightHoursNeeded: e.SunlightHours,
		DaysToMaturity:      e.DaysToMaturity,
		CompanionIDs:        companions,
		IncompatibleIDs:     antagonists,
	}
}

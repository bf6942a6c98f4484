package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// fingerprintGarden is the canonical form hashed by Fingerprint. Zone and
// plant order in the Garden must not change the hash, so both are sorted by
// id, as are the compatibility lists.
type fingerprintGarden struct {
	ID     string             `json:"id"`
	Area   float64            `json:"area"`
	Zones  []Zone             `json:"zones"`
	Plants []fingerprintPlant `json:"plants"`
}

type fingerprintPlant struct {
	ID              string   `json:"id"`
	Spacing         float64  `json:"spacing"`
	Quantity        int      `json:"quantity"`
	Sunlight        float64  `json:"sunlight"`
	Maturity        int      `json:"maturity"`
	CompanionIDs    []string `json:"companions"`
	IncompatibleIDs []string `json:"incompatibles"`
}

// Fingerprint returns a SHA-256 content hash over the garden's zones, plants
// and area. Any mutation that could change an optimization result changes the
// fingerprint; cosmetic fields (names, types) do not.
func Fingerprint(g Garden) string {
	fp := fingerprintGarden{
		ID:    g.ID,
		Area:  g.Area,
		Zones: append([]Zone(nil), g.Zones...),
	}
	sort.Slice(fp.Zones, func(i, j int) bool { return fp.Zones[i].ID < fp.Zones[j].ID })
	for i := range fp.Zones {
		fp.Zones[i].Name = "" // cosmetic
	}

	for _, p := range g.Plants {
		companions := append([]string(nil), p.CompanionIDs...)
		incompatibles := append([]string(nil), p.IncompatibleIDs...)
		sort.Strings(companions)
		sort.Strings(incompatibles)
		fp.Plants = append(fp.Plants, fingerprintPlant{
			ID:              p.ID,
			Spacing:         p.SpacingSideLength,
			Quantity:        p.Quantity,
			Sunlight:        p.SunlightHoursNeeded,
			Maturity:        p.DaysToMaturity,
			CompanionIDs:    companions,
			IncompatibleIDs: incompatibles,
		})
	}
	sort.Slice(fp.Plants, func(i, j int) bool { return fp.Plants[i].ID < fp.Plants[j].ID })

	data, err := json.Marshal(fp)
	if err != nil {
		// Marshaling plain structs of strings and numbers cannot fail.
		panic(err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

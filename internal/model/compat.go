package model

import "fmt"

// Conflicts reports whether two plants must never share a zone. The relation
// is a conservative union: a conflict declared by either side counts, even
// when the other side does not declare it back.
func Conflicts(a, b Plant) bool {
	return listsID(a.IncompatibleIDs, b.ID) || listsID(b.IncompatibleIDs, a.ID)
}

// Companions reports whether either plant lists the other as a companion.
// Companionship is advisory: the optimizer uses it as a placement tie-breaker,
// never as a hard constraint.
func Companions(a, b Plant) bool {
	return listsID(a.CompanionIDs, b.ID) || listsID(b.CompanionIDs, a.ID)
}

func listsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// CompatibilityWarnings returns data-quality warnings for asymmetric
// incompatibility declarations: plant A lists B but B does not list A.
// These are non-fatal; Conflicts already treats the relation as symmetric.
func CompatibilityWarnings(g Garden) []string {
	var warnings []string
	for _, a := range g.Plants {
		for _, id := range a.IncompatibleIDs {
			b, ok := g.PlantByID(id)
			if !ok {
				continue // dangling references are harmless, the plant is not in this garden
			}
			if !listsID(b.IncompatibleIDs, a.ID) {
				warnings = append(warnings, fmt.Sprintf(
					"plant %s (%s) lists %s (%s) as incompatible, but not vice versa",
					a.Name, a.ID, b.Name, b.ID))
			}
		}
	}
	return warnings
}

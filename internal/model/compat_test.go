package model

import "testing"

func TestConflictsUnionSemantics(t *testing.T) {
	a := Plant{ID: "a", IncompatibleIDs: []string{"b"}}
	b := Plant{ID: "b"}
	c := Plant{ID: "c"}

	// One-directional declarations still conflict, in both argument orders.
	if !Conflicts(a, b) || !Conflicts(b, a) {
		t.Error("expected one-directional declaration to conflict symmetrically")
	}
	if Conflicts(a, c) || Conflicts(b, c) {
		t.Error("expected undeclared pairs not to conflict")
	}
}

func TestCompanionsUnionSemantics(t *testing.T) {
	a := Plant{ID: "a", CompanionIDs: []string{"b"}}
	b := Plant{ID: "b"}

	if !Companions(a, b) || !Companions(b, a) {
		t.Error("expected companion relation to be symmetric")
	}
}

func TestCompatibilityWarningsAsymmetry(t *testing.T) {
	g := Garden{
		ID: "g1",
		Plants: []Plant{
			{ID: "a", Name: "A", IncompatibleIDs: []string{"b"}},
			{ID: "b", Name: "B"},
		},
	}

	warnings := CompatibilityWarnings(g)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}

func TestCompatibilityWarningsSymmetricPairSilent(t *testing.T) {
	g := Garden{
		ID: "g1",
		Plants: []Plant{
			{ID: "a", IncompatibleIDs: []string{"b"}},
			{ID: "b", IncompatibleIDs: []string{"a"}},
		},
	}

	if warnings := CompatibilityWarnings(g); len(warnings) != 0 {
		t.Errorf("expected no warnings for symmetric declarations, got %v", warnings)
	}
}

func TestCompatibilityWarningsIgnoresDanglingRefs(t *testing.T) {
	g := Garden{
		ID: "g1",
		Plants: []Plant{
			{ID: "a", IncompatibleIDs: []string{"not-here"}},
		},
	}

	if warnings := CompatibilityWarnings(g); len(warnings) != 0 {
		t.Errorf("expected no warnings for references outside the garden, got %v", warnings)
	}
}

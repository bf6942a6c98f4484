package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GardenPlot/internal/model"
)

func testParams() model.Params {
	p := model.DefaultParams()
	p.TimeBudget = time.Minute // never truncate in tests unless driven explicitly
	return p
}

func singleZoneGarden() model.Garden {
	return model.Garden{
		ID:   "g1",
		Name: "Backyard",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Name: "South bed", Area: 50, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", Name: "Tomato", SpacingSideLength: 2, Quantity: 4, SunlightHoursNeeded: 6, DaysToMaturity: 75},
		},
	}
}

func TestOptimize_SimpleFit(t *testing.T) {
	layout, err := New(testParams()).Optimize(singleZoneGarden())
	require.NoError(t, err)

	require.Len(t, layout.ZoneAssignments, 1)
	assert.Equal(t, "z1", layout.ZoneAssignments[0].ZoneID)
	require.Len(t, layout.ZoneAssignments[0].Plants, 1)
	assert.Equal(t, model.PlantCount{PlantID: "p1", Count: 4}, layout.ZoneAssignments[0].Plants[0])

	assert.Empty(t, layout.Unplaced)
	assert.Equal(t, 38.4, layout.SpaceUtilization)
	assert.False(t, layout.AchievedTargetUtilization, "38.4%% is below the 92%% target")
	assert.False(t, layout.TimedOut)
	assert.Equal(t, model.Fingerprint(singleZoneGarden()), layout.Fingerprint)
}

func TestOptimize_AchievedTarget(t *testing.T) {
	params := testParams()
	params.TargetUtilizationPercent = 30

	layout, err := New(params).Optimize(singleZoneGarden())
	require.NoError(t, err)
	assert.True(t, layout.AchievedTargetUtilization)
}

func TestOptimize_InvalidGarden(t *testing.T) {
	g := singleZoneGarden()
	g.Zones = nil

	_, err := New(testParams()).Optimize(g)
	require.Error(t, err)

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, model.ErrNoZones, verr.Code)
}

func TestOptimize_BestFitPrefersTightestZone(t *testing.T) {
	g := model.Garden{
		ID:   "g1",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Name: "Big", Area: 50, SunlightHours: 8},
			{ID: "z2", Name: "Small", Area: 6, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 1, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	layout, err := New(testParams()).Optimize(g)
	require.NoError(t, err)

	// The 4.8 sq ft unit leaves a 1.2 residue in the small zone versus 45.2
	// in the big one.
	require.Len(t, layout.ZoneAssignments, 1)
	assert.Equal(t, "z2", layout.ZoneAssignments[0].ZoneID)
}

func TestOptimize_TieBrokenByLowestZoneID(t *testing.T) {
	g := model.Garden{
		ID:   "g1",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z2", Area: 10, SunlightHours: 8},
			{ID: "z1", Area: 10, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 1, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	layout, err := New(testParams()).Optimize(g)
	require.NoError(t, err)
	require.Len(t, layout.ZoneAssignments, 1)
	assert.Equal(t, "z1", layout.ZoneAssignments[0].ZoneID)
}

func TestOptimize_PartialPlacement(t *testing.T) {
	// Two zones of 6 sq ft each take one 4.8 sq ft unit apiece; the third
	// unit has no eligible zone and is reported, not fatal.
	g := model.Garden{
		ID:   "g1",
		Area: 20,
		Zones: []model.Zone{
			{ID: "z1", Area: 6, SunlightHours: 8},
			{ID: "z2", Area: 6, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 3, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	layout, err := New(testParams()).Optimize(g)
	require.NoError(t, err)

	assert.Equal(t, 2, layout.PlacedCount())
	require.Len(t, layout.Unplaced, 1)
	assert.Equal(t, model.PlantCount{PlantID: "p1", Count: 1}, layout.Unplaced[0])
	assert.False(t, layout.AchievedTargetUtilization)
	assert.Equal(t, 80.0, layout.SpaceUtilization) // 9.6 of 12 usable sq ft
}

func TestOptimize_SunlightRespected(t *testing.T) {
	g := model.Garden{
		ID:   "g1",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Area: 50, SunlightHours: 4},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 1, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	layout, err := New(testParams()).Optimize(g)
	require.NoError(t, err)
	assert.Equal(t, 0, layout.PlacedCount(), "a 4h zone must not take a 6h plant without tolerance")
	require.Len(t, layout.Unplaced, 1)
}

func TestOptimize_SunlightToleranceBand(t *testing.T) {
	g := model.Garden{
		ID:   "g1",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Area: 50, SunlightHours: 4},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 1, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	// Within the band: the 2h shortfall is admitted.
	params := testParams()
	params.SunlightToleranceHours = 2
	layout, err := New(params).Optimize(g)
	require.NoError(t, err)
	assert.Equal(t, 1, layout.PlacedCount())

	// The band is never exceeded: a 3h shortfall stays unplaced.
	g.Plants[0].SunlightHoursNeeded = 7
	layout, err = New(params).Optimize(g)
	require.NoError(t, err)
	assert.Equal(t, 0, layout.PlacedCount())
}

func TestOptimize_ExactSunlightPreferredOverTolerance(t *testing.T) {
	// The fully lit zone wins even though the shaded one would be the
	// tighter fit; the tolerance band only opens when no exact zone works.
	g := model.Garden{
		ID:   "g1",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Name: "Shaded", Area: 6, SunlightHours: 5},
			{ID: "z2", Name: "Sunny", Area: 50, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 1, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	params := testParams()
	params.SunlightToleranceHours = 2
	layout, err := New(params).Optimize(g)
	require.NoError(t, err)
	require.Len(t, layout.ZoneAssignments, 1)
	assert.Equal(t, "z2", layout.ZoneAssignments[0].ZoneID)
}

func TestOptimize_MinZoneSizeFilter(t *testing.T) {
	g := model.Garden{
		ID:   "g1",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Area: 6, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 1, SunlightHoursNeeded: 6, DaysToMaturity: 60},
		},
	}

	params := testParams()
	params.MinZoneSize = 10
	layout, err := New(params).Optimize(g)
	require.NoError(t, err)
	assert.Equal(t, 0, layout.PlacedCount())
	assert.Len(t, layout.Unplaced, 1)
}

func TestOptimize_Deterministic(t *testing.T) {
	g := model.Garden{
		ID:   "g1",
		Area: 200,
		Zones: []model.Zone{
			{ID: "z1", Area: 40, SunlightHours: 8},
			{ID: "z2", Area: 40, SunlightHours: 6},
			{ID: "z3", Area: 30, SunlightHours: 4},
		},
		Plants: []model.Plant{
			{ID: "p1", SpacingSideLength: 2, Quantity: 5, SunlightHoursNeeded: 8, DaysToMaturity: 75},
			{ID: "p2", SpacingSideLength: 1, Quantity: 10, SunlightHoursNeeded: 6, DaysToMaturity: 50},
			{ID: "p3", SpacingSideLength: 0.5, Quantity: 20, SunlightHoursNeeded: 4, DaysToMaturity: 40},
		},
	}

	first, err := New(testParams()).Optimize(g)
	require.NoError(t, err)
	second, err := New(testParams()).Optimize(g)
	require.NoError(t, err)

	assert.Equal(t, first.ZoneAssignments, second.ZoneAssignments)
	assert.Equal(t, first.Unplaced, second.Unplaced)
	assert.Equal(t, first.SpaceUtilization, second.SpaceUtilization)
}

func TestOptimize_SoftDeadline(t *testing.T) {
	opt := New(testParams())

	// The clock jumps past the deadline before the first placement: the run
	// finalizes instead of failing, flagged as timed out.
	calls := 0
	base := time.Now()
	opt.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(opt.Params.TimeBudget + time.Second)
	}

	layout, err := opt.Optimize(singleZoneGarden())
	require.NoError(t, err)
	assert.True(t, layout.TimedOut)
	assert.Equal(t, 0, layout.PlacedCount())
	assert.Equal(t, 4, layout.UnplacedCount())
	assert.False(t, layout.AchievedTargetUtilization)
}

func TestOptimize_ConflictFreeZones(t *testing.T) {
	// Mutually incompatible plants cannot enter a garden at all, so the
	// in-zone conflict guard is exercised directly on the zone state.
	tomato := model.Plant{ID: "tomato", IncompatibleIDs: []string{"cabbage"}}
	cabbage := model.Plant{ID: "cabbage"}
	basil := model.Plant{ID: "basil", CompanionIDs: []string{"tomato"}}

	zs := &zoneState{zone: model.Zone{ID: "z1", Area: 20}, remaining: 20}
	zs.place(unit{plant: tomato, area: 4.8})

	assert.True(t, zs.conflictsWith(cabbage))
	assert.False(t, zs.conflictsWith(basil))
	assert.Equal(t, 1, zs.companionCount(basil))
}

func TestBestFit_CompanionTieBreak(t *testing.T) {
	opt := New(testParams())
	tomato := model.Plant{ID: "tomato"}
	basil := model.Plant{ID: "basil", CompanionIDs: []string{"tomato"}}

	// Equal residues; the zone already holding the companion wins even with
	// the higher id.
	empty := &zoneState{zone: model.Zone{ID: "a", Area: 4, SunlightHours: 8}, remaining: 4}
	withTomato := &zoneState{zone: model.Zone{ID: "b", Area: 10, SunlightHours: 8}, remaining: 4}
	withTomato.occupants = []model.Plant{tomato}

	chosen := opt.bestFit([]*zoneState{empty, withTomato}, unit{plant: basil, area: 1.2}, 0)
	require.NotNil(t, chosen)
	assert.Equal(t, "b", chosen.zone.ID)
}

func TestOptimize_CountsGroupedPerZone(t *testing.T) {
	// Multiple units of the same plant in one zone collapse into a single
	// PlantCount entry.
	layout, err := New(testParams()).Optimize(singleZoneGarden())
	require.NoError(t, err)
	require.Len(t, layout.ZoneAssignments[0].Plants, 1)
	assert.Equal(t, 4, layout.ZoneAssignments[0].Plants[0].Count)
}

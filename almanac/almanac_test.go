package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anupshinde/orrery/timescale"
)

// Invariant 11 (spec §8): a shower whose active window wraps the year
// boundary (Quadrantids: Dec 28 - Jan 12) must be reported active on both
// sides of the boundary, and inactive in between.
func TestMeteorShower_ActiveOn_YearWraparound(t *testing.T) {
	var quad MeteorShower
	for _, s := range Showers {
		if s.ID == "quadrantids" {
			quad = s
		}
	}
	assert.Equal(t, "quadrantids", quad.ID)

	assert.True(t, quad.ActiveOn(12, 30))
	assert.True(t, quad.ActiveOn(1, 3))
	assert.True(t, quad.ActiveOn(1, 12))
	assert.False(t, quad.ActiveOn(1, 13))
	assert.False(t, quad.ActiveOn(12, 27))
	assert.False(t, quad.ActiveOn(6, 15))
}

func TestActiveShowers_PerseidsPeak(t *testing.T) {
	instant := time.Date(2026, 8, 12, 4, 0, 0, 0, time.UTC)
	active := ActiveShowers(instant)

	found := false
	for _, s := range active {
		if s.ID == "perseids" {
			found = true
		}
	}
	assert.True(t, found, "Perseids should be active on their own peak date")
}

func TestActiveShowers_QuietPeriod(t *testing.T) {
	instant := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	active := ActiveShowers(instant)
	assert.Empty(t, active, "mid-February has no active major shower in the static table")
}

func TestProjectRadiant_ReportsActiveFlagAndScenePosition(t *testing.T) {
	var perseids MeteorShower
	for _, s := range Showers {
		if s.ID == "perseids" {
			perseids = s
		}
	}

	instant := time.Date(2026, 8, 12, 4, 0, 0, 0, time.UTC)
	proj := ProjectRadiant(perseids, 37.77, -122.42, instant)
	assert.True(t, proj.IsActive)

	r := proj.X*proj.X + proj.Y*proj.Y + proj.Z*proj.Z
	assert.InDelta(t, sceneRadius*sceneRadius, r, 1e-6)

	offSeason := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	proj2 := ProjectRadiant(perseids, 37.77, -122.42, offSeason)
	assert.False(t, proj2.IsActive)
}

func TestSeasons_FindsFourTransitionsPerYear(t *testing.T) {
	startJD := timescale.JulianDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	endJD := timescale.JulianDate(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))

	events, err := Seasons(startJD, endJD)
	assert.NoError(t, err)
	assert.Len(t, events, 4)

	seen := map[int]bool{}
	for _, e := range events {
		seen[e.NewValue] = true
	}
	assert.Len(t, seen, 4)
}

func TestMoonPhases_FindsAboutTwelvePerYear(t *testing.T) {
	startJD := timescale.JulianDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	endJD := timescale.JulianDate(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))

	events, err := MoonPhases(startJD, endJD)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(events), 45)
	assert.LessOrEqual(t, len(events), 52)
}

func TestUpcomingEvents_SortedAscendingByInstant(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := UpcomingEvents(from, 400)
	assert.NotEmpty(t, events)

	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Instant.Before(events[i-1].Instant),
			"events must be sorted ascending by instant")
	}

	kinds := map[EventKind]bool{}
	for _, e := range events {
		kinds[e.Kind] = true
	}
	assert.True(t, kinds[EventMoonPhase])
	assert.True(t, kinds[EventSolstice] || kinds[EventEquinox])
	assert.True(t, kinds[EventMeteorPeak])
}

func TestUpcomingEvents_RespectsWindowBound(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := UpcomingEvents(from, 10)
	for _, e := range events {
		assert.False(t, e.Instant.After(from.Add(10*24*time.Hour)))
		assert.False(t, e.Instant.Before(from))
	}
}

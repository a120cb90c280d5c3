package moons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anupshinde/orrery/ephemeris"
)

func TestGalilean_FourMoonsNeverSchematic(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 37.77, LonDeg: -122.42}
	instant := time.Date(2026, 6, 15, 4, 0, 0, 0, time.UTC)

	// A camera FOV at or below the default threshold so IsVisible (now
	// LOD-gated per spec §4.4) is expected true here; the threshold
	// behavior itself is covered by TestGalilean_IsVisibleFollowsFOVThreshold.
	moons, err := Galilean(instant, obs, 30.0)
	assert.NoError(t, err)
	assert.Len(t, moons, 4)

	names := map[string]bool{}
	for _, m := range moons {
		names[m.Name] = true
		assert.False(t, m.Schematic)
		assert.True(t, m.IsVisible)
		assert.Equal(t, ephemeris.Jupiter, m.Parent)
		assert.Greater(t, m.SeparationArcsec, -1000.0)
		assert.Less(t, m.SeparationArcsec, 1000.0)
	}
	for _, n := range []string{"Io", "Europa", "Ganymede", "Callisto"} {
		assert.True(t, names[n], "%s missing from Galilean moons", n)
	}
}

// Spec §4.4: "a moon is marked is_visible = true only when the caller's
// view cone ... is below a component threshold (default 40°)".
func TestGalilean_IsVisibleFollowsFOVThreshold(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 0, LonDeg: 0}
	instant := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	wide, err := Galilean(instant, obs, 90.0)
	assert.NoError(t, err)
	for _, m := range wide {
		assert.False(t, m.IsVisible)
	}

	narrow, err := Galilean(instant, obs, 10.0)
	assert.NoError(t, err)
	for _, m := range narrow {
		assert.True(t, m.IsVisible)
	}
}

func TestGalilean_PositionsLieOnMoonSceneSphere(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 51.5, LonDeg: -0.1}
	instant := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)

	moons, err := Galilean(instant, obs, 30.0)
	assert.NoError(t, err)
	for _, m := range moons {
		r := m.X*m.X + m.Y*m.Y + m.Z*m.Z
		assert.InDelta(t, moonSceneRadius*moonSceneRadius, r, 1e-6)
	}
}

func TestNominal_EverySchematicMoonReported(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 37.77, LonDeg: -122.42}
	instant := time.Date(2026, 6, 15, 4, 0, 0, 0, time.UTC)

	moons, err := Nominal(instant, obs, 30.0)
	assert.NoError(t, err)
	assert.Len(t, moons, len(nominalMoons))
	for _, m := range moons {
		assert.True(t, m.Schematic)
		assert.True(t, m.IsVisible)
	}
}

// Spec §4.4's FOV-threshold LOD rule applies identically to the static
// nominal-table moons.
func TestNominal_IsVisibleFollowsFOVThreshold(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 0, LonDeg: 0}
	instant := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	wide, err := Nominal(instant, obs, 90.0)
	assert.NoError(t, err)
	for _, m := range wide {
		assert.False(t, m.IsVisible)
	}

	narrow, err := Nominal(instant, obs, 10.0)
	assert.NoError(t, err)
	for _, m := range narrow {
		assert.True(t, m.IsVisible)
	}
}

func TestNominal_SharesParentPositionAcrossMoons(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 0, LonDeg: 0}
	instant := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	moons, err := Nominal(instant, obs, 30.0)
	assert.NoError(t, err)

	saturnMoons := map[string]Observation{}
	for _, m := range moons {
		if m.Parent == ephemeris.Saturn {
			saturnMoons[m.Name] = m
		}
	}
	assert.Len(t, saturnMoons, 2)

	titan, rhea := saturnMoons["Titan"], saturnMoons["Rhea"]
	assert.NotEqual(t, titan.AzDeg, rhea.AzDeg)
}

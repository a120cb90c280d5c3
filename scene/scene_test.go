package scene

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anupshinde/orrery/catalog"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/kepler"
)

func testStars() []catalog.StarRecord {
	return []catalog.StarRecord{
		{ID: 1, Name: "Sirius", RAHours: 6.75247, DecDeg: -16.7161, ApparentMag: -1.46, SpectralClass: "A1"},
		{ID: 2, Name: "Polaris", RAHours: 2.53030, DecDeg: 89.2641, ApparentMag: 1.98, SpectralClass: "F7"},
		{ID: 3, Name: "Faintstar", RAHours: 12.0, DecDeg: 0.0, ApparentMag: 6.0, SpectralClass: "M5"},
	}
}

// Invariant 1: every emitted Cartesian is finite.
func TestProcess_EmitsOnlyFiniteCartesian(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 37.77, LonDeg: -122.42}
	instant := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	stars, _, _, _ := Process(testStars(), nil, obs, instant, 0.0)
	for _, s := range stars {
		assert.False(t, math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsNaN(s.Z))
		assert.False(t, math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) || math.IsInf(s.Z, 0))
	}
}

// Invariant 4: every emitted star's position lies exactly on the scene
// sphere of radius R=100.
func TestProcess_StarsLieOnSceneSphere(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: -33.87, LonDeg: 151.21}
	instant := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	stars, _, _, _ := Process(testStars(), nil, obs, instant, 0.0)
	for _, s := range stars {
		r2 := s.X*s.X + s.Y*s.Y + s.Z*s.Z
		assert.InDelta(t, sceneRadius*sceneRadius, r2, 1e-6)
	}
}

// Boundary case 10: an observer at the pole must not divide by zero or
// produce a non-finite position for a star near the zenith.
func TestProcess_PoleObserverDoesNotProduceNonFiniteCartesian(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 90.0, LonDeg: 0.0}
	instant := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	stars, _, _, health := Process(testStars(), nil, obs, instant, 0.0)
	assert.Equal(t, 0, health.DropsByReason["non_finite_cartesian"])
	for _, s := range stars {
		assert.False(t, math.IsNaN(s.AzDeg))
	}
}

func TestProcess_LightPollutionFiltersDimStars(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 0, LonDeg: 0}
	instant := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	stars, _, _, health := Process(testStars(), nil, obs, instant, 1.0) // mag_limit = 3.0
	for _, s := range stars {
		assert.Less(t, s.ApparentMag, 3.0)
	}
	assert.Greater(t, health.DropsByReason["light_pollution_mag_limit"], 0)
}

func TestProcess_SceneHealthCountsInAndOut(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 40, LonDeg: -74}
	instant := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)

	stars := testStars()
	processed, _, _, health := Process(stars, nil, obs, instant, 0.0)
	assert.Equal(t, len(stars), health.StarsIn)
	assert.Equal(t, len(processed), health.StarsOut)
}

func TestProcess_DeepSkyGetsNominalDisplayAttributes(t *testing.T) {
	obs := ephemeris.Observer{LatDeg: 0, LonDeg: 0}
	instant := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	deepSky := []catalog.DeepSkyObject{
		{ID: "M31", Name: "Andromeda Galaxy", Type: catalog.TypeGalaxy, RAHours: 0.712, DecDeg: 41.27},
	}
	_, processed, _, _ := Process(nil, deepSky, obs, instant, 0.0)
	assert.Len(t, processed, 1)
	assert.Equal(t, "Galaxy", processed[0].Description)
	assert.Greater(t, processed[0].SizeArcmin, 0.0)
	assert.NotEmpty(t, processed[0].Constellation)
}

func TestAssembleConstellations_DropsSegmentsWithMissingEndpoints(t *testing.T) {
	stars := []ProcessedStar{
		{StarRecord: catalog.StarRecord{Name: "Dubhe"}, X: 1, Y: 2, Z: 3, IsVisible: true},
		{StarRecord: catalog.StarRecord{Name: "Merak"}, X: 4, Y: 5, Z: 6, IsVisible: true},
	}
	displays := assembleConstellations(stars)

	var uma *ConstellationDisplay
	for i := range displays {
		if displays[i].Abbreviation == "UMa" {
			uma = &displays[i]
		}
	}
	if assert.NotNil(t, uma) {
		// Only Dubhe-Merak resolves; Phecda/Megrez/Alioth/Mizar/Alkaid
		// are absent from this star set, so their segments are dropped.
		assert.Len(t, uma.Segments, 1)
	}
}

func TestAssembleConstellations_CaseInsensitiveNameLookup(t *testing.T) {
	stars := []ProcessedStar{
		{StarRecord: catalog.StarRecord{Name: "dubhe"}, X: 1, Y: 2, Z: 3, IsVisible: true},
		{StarRecord: catalog.StarRecord{Name: "MERAK"}, X: 4, Y: 5, Z: 6, IsVisible: true},
	}
	displays := assembleConstellations(stars)
	assert.NotEmpty(t, displays)
}

func TestBestInitialView_NoBrightStarsReturnsSouthMidSky(t *testing.T) {
	az, alt := BestInitialView(nil, nil)
	assert.Equal(t, 180.0, az)
	assert.Equal(t, 45.0, alt)
}

func TestBestInitialView_ClampsAltitude(t *testing.T) {
	stars := []ProcessedStar{
		{StarRecord: catalog.StarRecord{ApparentMag: -1.0}, AzDeg: 90, AltDeg: 85, IsVisible: true},
	}
	az, alt := BestInitialView(stars, nil)
	assert.InDelta(t, 90.0, az, 1e-6)
	assert.LessOrEqual(t, alt, 70.0)
	assert.GreaterOrEqual(t, alt, 20.0)
}

func TestBestInitialView_AveragesAzimuthCircularly(t *testing.T) {
	// Two equally bright stars straddling due north (350° and 10°) must
	// average to ~0°, not ~180° (which a naive linear mean would give).
	stars := []ProcessedStar{
		{StarRecord: catalog.StarRecord{ApparentMag: 0}, AzDeg: 350, AltDeg: 40, IsVisible: true},
		{StarRecord: catalog.StarRecord{ApparentMag: 0}, AzDeg: 10, AltDeg: 40, IsVisible: true},
	}
	az, _ := BestInitialView(stars, nil)
	diff := math.Abs(az)
	if diff > 180 {
		diff = 360 - diff
	}
	assert.Less(t, diff, 1.0)
}

func TestBestInitialView_DimStarsOnlyIgnoresBodies(t *testing.T) {
	stars := []ProcessedStar{
		{StarRecord: catalog.StarRecord{ApparentMag: 5}, AzDeg: 0, AltDeg: 30, IsVisible: true},
	}
	bodies := []ephemeris.CelestialBody{
		{Name: "Sun", AzDeg: 270, AltDeg: 50, IsVisible: true},
		{Name: "Venus", AzDeg: 90, AltDeg: 40, IsVisible: true},
	}
	az, _ := BestInitialView(stars, bodies)
	// No mag<3 star exists, so the early return fires regardless of bodies.
	assert.Equal(t, 180.0, az)
}

func TestProcessMinorBody_ExtremeEccentricityStaysFinite(t *testing.T) {
	elements := kepler.OrbitalElements{
		SemiMajorAxisAU: 2.5,
		Eccentricity:    0.9999999, // pathological: pushes the solver hard
		InclinationDeg:  10,
		EpochJD:         2451545.0,
	}
	obs := ProcessMinorBody("Test", elements, 2451545.0, 1.0)
	assert.False(t, math.IsNaN(obs.X))
	assert.False(t, math.IsNaN(obs.Y))
	assert.False(t, math.IsNaN(obs.Z))
}

func TestProcessMinorBody_ConvergedIsVisible(t *testing.T) {
	elements := kepler.OrbitalElements{
		SemiMajorAxisAU: 2.7,
		Eccentricity:    0.08,
		InclinationDeg:  10.6,
		LongAscNodeDeg:  80.3,
		ArgPeriapsisDeg: 73.6,
		MeanAnomalyDeg:  21.0,
		EpochJD:         2451545.0,
	}
	obs := ProcessMinorBody("Ceres", elements, 2460000.5, 1.0)
	assert.True(t, obs.IsVisible)
}

func TestVisibleCount(t *testing.T) {
	stars := []ProcessedStar{
		{IsVisible: true}, {IsVisible: false}, {IsVisible: true},
	}
	assert.Equal(t, 2, VisibleCount(stars))
}

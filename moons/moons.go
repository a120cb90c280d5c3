// Package moons implements the natural-satellite model (component C4): the
// four Galilean moons of Jupiter via a simplified circular-orbit ephemeris
// projected to an apparent angular offset from Jupiter, and the remaining
// principal moons of the Solar System via a static nominal table.
//
// Grounded on the teacher's general "derive a small offset, reproject onto
// the scene sphere" idiom used throughout `ephemeris`/`kepler`; no teacher
// package covers natural satellites directly, so this is new code built on
// the now-complete `ephemeris` gateway and the `units` angle/distance value
// types.
package moons

import (
	"math"
	"time"

	"github.com/anupshinde/orrery/coord"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/timescale"
	"github.com/anupshinde/orrery/units"
)

// sceneRadius is the scene-sphere radius Jupiter (and every other body in
// `ephemeris`) projects onto; moons render at 0.998·sceneRadius so they
// always draw just in front of their parent body (spec §4.4).
const sceneRadius = 100.0
const moonSceneRadius = 0.998 * sceneRadius

// galileanMoon describes one Galilean moon's simplified circular orbit
// around Jupiter: mean orbital radius, period, and an arbitrary starting
// phase at the J2000 epoch. Real Galilean-moon orbits are very nearly
// circular and lie almost exactly in Jupiter's equatorial plane, which (as
// seen from Earth, itself very close to Jupiter's orbital plane) reduces
// the apparent motion to a back-and-forth east-west elongation — the
// simplification below keeps only that dominant term and ignores the small
// residual north-south component, appropriate for a scene-scale display.
type galileanMoon struct {
	name          string
	orbitRadiusKm float64
	periodDays    float64
	phase0Rad     float64
	magnitude     float64
}

// galileanMoons are IAU mean orbital radius/period figures; phase0 values
// are arbitrary (not reverse-engineered from a real J2000 epoch table) since
// the spec's non-goals exclude sub-arcsecond/century-scale precision for
// this scene-scale display.
var galileanMoons = []galileanMoon{
	{name: "Io", orbitRadiusKm: 421800, periodDays: 1.769138, phase0Rad: 0.35, magnitude: 5.0},
	{name: "Europa", orbitRadiusKm: 671100, periodDays: 3.551181, phase0Rad: 2.1, magnitude: 5.3},
	{name: "Ganymede", orbitRadiusKm: 1070400, periodDays: 7.154553, phase0Rad: 4.4, magnitude: 4.6},
	{name: "Callisto", orbitRadiusKm: 1882700, periodDays: 16.689017, phase0Rad: 5.9, magnitude: 5.6},
}

// nominalMoon is one entry of the static table used for the non-Jovian
// moons this package does not carry a dynamic ephemeris for: a fixed
// nominal angular separation, magnitude, and orbital phase angle, all
// illustrative rather than time-accurate (spec §4.4's "static nominal
// table").
type nominalMoon struct {
	name             string
	parent           ephemeris.Body
	separationArcsec float64
	magnitude        float64
	orbitalPhaseDeg  float64
}

// nominalMoons is the canned table for moons this implementation does not
// model dynamically. Separation figures are representative maximum
// elongations; orbital phase angles are arbitrary fixed illustrative values.
var nominalMoons = []nominalMoon{
	{name: "Titan", parent: ephemeris.Saturn, separationArcsec: 180, magnitude: 8.4, orbitalPhaseDeg: 40},
	{name: "Rhea", parent: ephemeris.Saturn, separationArcsec: 60, magnitude: 9.7, orbitalPhaseDeg: 160},
	{name: "Phobos", parent: ephemeris.Mars, separationArcsec: 12, magnitude: 11.3, orbitalPhaseDeg: 90},
	{name: "Deimos", parent: ephemeris.Mars, separationArcsec: 30, magnitude: 12.4, orbitalPhaseDeg: 250},
	{name: "Titania", parent: ephemeris.Uranus, separationArcsec: 33, magnitude: 13.9, orbitalPhaseDeg: 200},
	{name: "Triton", parent: ephemeris.Neptune, separationArcsec: 14, magnitude: 13.5, orbitalPhaseDeg: 300},
}

// Observation is one moon's fully projected position at one instant.
// Schematic distinguishes the dynamically-computed Galilean moons (false)
// from the static nominal-table moons (true), resolving the open question
// in spec §9 about surfacing the distinction to consumers. IsVisible is the
// level-of-detail hint of spec §4.4: true only once the caller's camera
// field of view narrows below DefaultFOVThresholdDeg — a hint, not a hard
// filter, so a renderer may still choose to fold an invisible moon into its
// parent body's disc rather than omit it outright.
type Observation struct {
	Name   string
	Parent ephemeris.Body

	AltDeg, AzDeg float64
	X, Y, Z       float64
	IsVisible     bool

	SeparationArcsec float64
	Magnitude        float64
	Schematic        bool
}

// Altaz, Position, and Visible implement scene.Positioned.
func (o Observation) Altaz() coord.Horizontal   { return coord.Horizontal{AltDeg: o.AltDeg, AzDeg: o.AzDeg} }
func (o Observation) Position() coord.Cartesian { return coord.Cartesian{X: o.X, Y: o.Y, Z: o.Z} }
func (o Observation) Visible() bool             { return o.IsVisible }

// DefaultFOVThresholdDeg is the default camera field-of-view threshold
// below which moons become individually visible (spec §4.4).
const DefaultFOVThresholdDeg = 40.0

// Galilean computes the four Galilean moons' positions at the given instant
// for the given observer, offset from Jupiter's own `ephemeris.PositionOf`
// position by each moon's apparent angular elongation.
func Galilean(instant time.Time, obs ephemeris.Observer, cameraFOVDeg float64) ([]Observation, error) {
	tdbJD := timescale.JulianDate(instant)

	jupiter, err := ephemeris.PositionOf(ephemeris.Jupiter, tdbJD, obs)
	if err != nil {
		return nil, err
	}

	distanceAU, err := ephemeris.GeocentricDistanceAU(ephemeris.Jupiter, tdbJD)
	if err != nil {
		return nil, err
	}
	distanceKm := units.DistanceFromAU(distanceAU).Km()

	// Level-of-detail visibility: a moon is marked visible only once the
	// caller's camera field of view narrows below the threshold (spec
	// §4.4) — a hint, not a hard filter, so a renderer is free to still
	// fold an invisible moon into its parent's disc.
	visible := cameraFOVDeg <= DefaultFOVThresholdDeg

	observations := make([]Observation, 0, len(galileanMoons))
	for _, m := range galileanMoons {
		phase := 2*math.Pi*math.Mod(tdbJD-2451545.0, m.periodDays)/m.periodDays + m.phase0Rad
		elongationKm := m.orbitRadiusKm * math.Sin(phase)

		separationRad := elongationKm / distanceKm
		separationArcsec := units.NewAngle(separationRad).Arcseconds()

		// Offset azimuth by the angular elongation, corrected for the
		// 1/cos(altitude) foreshortening a horizontal azimuth circle applies
		// to an offset along the sky's east-west direction.
		azOffsetDeg := separationRad * 180.0 / math.Pi
		cosAlt := math.Cos(jupiter.AltDeg * math.Pi / 180.0)
		if math.Abs(cosAlt) > 1e-6 {
			azOffsetDeg /= cosAlt
		}

		altDeg := jupiter.AltDeg
		azDeg := jupiter.AzDeg + azOffsetDeg
		x, y, z := coord.HorizontalToCartesian(altDeg, azDeg, moonSceneRadius)

		observations = append(observations, Observation{
			Name:             m.name,
			Parent:           ephemeris.Jupiter,
			AltDeg:           altDeg,
			AzDeg:            azDeg,
			X:                x,
			Y:                y,
			Z:                z,
			IsVisible:        visible,
			SeparationArcsec: separationArcsec,
			Magnitude:        m.magnitude,
			Schematic:        false,
		})
	}
	return observations, nil
}

// Nominal computes the static-table (non-Jovian) moons' positions at the
// given instant: each moon tracks its parent body's own `ephemeris`
// position, offset by a fixed nominal separation at a fixed orbital phase
// angle rather than a true dynamic ephemeris (spec §4.4).
func Nominal(instant time.Time, obs ephemeris.Observer, cameraFOVDeg float64) ([]Observation, error) {
	tdbJD := timescale.JulianDate(instant)
	// Level-of-detail visibility per spec §4.4, same rule as Galilean.
	visible := cameraFOVDeg <= DefaultFOVThresholdDeg

	parentCache := map[ephemeris.Body]ephemeris.CelestialBody{}
	observations := make([]Observation, 0, len(nominalMoons))
	for _, m := range nominalMoons {
		parent, ok := parentCache[m.parent]
		if !ok {
			var err error
			parent, err = ephemeris.PositionOf(m.parent, tdbJD, obs)
			if err != nil {
				return nil, err
			}
			parentCache[m.parent] = parent
		}

		separationDeg := m.separationArcsec / 3600.0
		azOffsetDeg := separationDeg * math.Cos(m.orbitalPhaseDeg*math.Pi/180.0)
		altOffsetDeg := separationDeg * math.Sin(m.orbitalPhaseDeg*math.Pi/180.0)

		altDeg := parent.AltDeg + altOffsetDeg
		azDeg := parent.AzDeg + azOffsetDeg
		x, y, z := coord.HorizontalToCartesian(altDeg, azDeg, moonSceneRadius)

		observations = append(observations, Observation{
			Name:             m.name,
			Parent:           m.parent,
			AltDeg:           altDeg,
			AzDeg:            azDeg,
			X:                x,
			Y:                y,
			Z:                z,
			IsVisible:        visible,
			SeparationArcsec: m.separationArcsec,
			Magnitude:        m.magnitude,
			Schematic:        true,
		})
	}
	return observations, nil
}

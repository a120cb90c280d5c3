// Package satellite implements the SGP4 propagator (component C6): it
// parses NORAD two-line elements, propagates a satellite's Earth-centered
// position to any instant, and projects that position into an observer's
// topocentric sky on a scene sphere of radius 90 — intentionally inside the
// star sphere (radius 100) so satellites draw in front of the stars.
//
// SGP4 itself ("a well-known public algorithm... NOT reproduced here", per
// spec §4.6 step 3) is delegated to github.com/joshuaferrara/go-satellite,
// kept from the teacher almost verbatim; everything downstream of the raw
// TEME position (ECEF rotation, topocentric projection, the Parsed →
// Initialized → Propagated → Dead state machine, and the shadow/Sunlit
// check) is this package's own.
package satellite

import (
	"math"
	"time"

	gosatellite "github.com/joshuaferrara/go-satellite"

	"github.com/anupshinde/orrery/coord"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/geometry"
)

// sceneRadius is the scene-sphere radius satellites project onto (spec
// §4.6 step 6): smaller than the star sphere's R=100 so satellites always
// render in front of the stars.
const sceneRadius = 90.0

// State names a Track's position in the Parsed → Initialized → Propagated →
// Dead state machine of spec §4.6.
type State int

const (
	// Parsed means the TLE lines were accepted but the SGP4 constants have
	// not yet been initialized. NewTrack never leaves a Track in this state;
	// it is recorded for completeness with the spec's state machine.
	Parsed State = iota
	// Initialized means SGP4 constants are ready but no propagation has run.
	Initialized
	// Propagated means the most recent Propagate call succeeded.
	Propagated
	// Dead means a propagation produced a non-finite position (typically a
	// decayed or otherwise invalid TLE); every subsequent call returns the
	// sentinel observation without attempting SGP4 again.
	Dead
)

// Observer is the ground station position SGP4 output is projected for.
type Observer struct {
	LatDeg float64
	LonDeg float64
}

// Observation is a satellite's fully projected position at one instant:
// topocentric alt/az, the scene-sphere Cartesian point, visibility, and the
// supplemental Sunlit flag.
type Observation struct {
	Name string

	AltDeg, AzDeg float64
	X, Y, Z       float64
	IsVisible     bool

	// Sunlit is true when the satellite is outside Earth's (cylindrical,
	// point-Sun) shadow at this instant. It is informational only — it
	// never overrides IsVisible, which is governed solely by the state
	// machine and the altitude check below (spec §3 AMBIENT STACK note on
	// SatelliteObservation).
	Sunlit bool

	State State
}

// Altaz, Position, and Visible implement scene.Positioned.
func (o Observation) Altaz() coord.Horizontal   { return coord.Horizontal{AltDeg: o.AltDeg, AzDeg: o.AzDeg} }
func (o Observation) Position() coord.Cartesian { return coord.Cartesian{X: o.X, Y: o.Y, Z: o.Z} }
func (o Observation) Visible() bool             { return o.IsVisible }

// Track holds one satellite's SGP4 record plus its position in the state
// machine. Track always remembers its last-computed azimuth/elevation, even
// after transitioning to Dead, and a Dead track reports that value. A track
// that dies before any successful propagation has no such value and
// reports (0, 0), marked only by its Dead state.
type Track struct {
	Name string
	sat  gosatellite.Satellite

	state State

	lastAltDeg, lastAzDeg float64
	haveLast              bool
}

// NewTrack parses a TLE and initializes the SGP4 constants for it (the
// Parsed → Initialized transition happens synchronously inside
// gosatellite.TLEToSat, which this package does not re-implement).
func NewTrack(name, line1, line2 string) *Track {
	return &Track{
		Name:  name,
		sat:   gosatellite.TLEToSat(line1, line2, gosatellite.GravityWGS84),
		state: Initialized,
	}
}

// State reports the track's current state-machine position.
func (tr *Track) State() State { return tr.state }

// Propagate evaluates the satellite's position at instant for the given
// ground observer. Once a Track has transitioned to Dead it short-circuits
// every subsequent call and returns the sentinel observation rather than
// re-running SGP4 on a known-bad element set.
func (tr *Track) Propagate(instant time.Time, obs Observer) Observation {
	if tr.state == Dead {
		return tr.sentinel()
	}

	instant = instant.UTC()
	posKmTEME, _ := gosatellite.Propagate(
		tr.sat,
		instant.Year(), int(instant.Month()), instant.Day(),
		instant.Hour(), instant.Minute(), instant.Second(),
	)
	posTEME := [3]float64{posKmTEME.X, posKmTEME.Y, posKmTEME.Z}
	if !finite3(posTEME) {
		tr.state = Dead
		return tr.sentinel()
	}

	jdUT1 := julianDate(instant)
	ecef := coord.TEMEToECEF(posTEME, jdUT1)
	obsECEF := coord.GeodeticToECEF(obs.LatDeg, obs.LonDeg)
	altDeg, azDeg := coord.Topocentric(ecef, obsECEF, obs.LatDeg, obs.LonDeg)

	if math.IsNaN(altDeg) || math.IsNaN(azDeg) {
		tr.state = Dead
		return tr.sentinel()
	}

	tr.state = Propagated
	tr.lastAltDeg, tr.lastAzDeg = altDeg, azDeg
	tr.haveLast = true

	x, y, z := coord.HorizontalToCartesian(altDeg, azDeg, sceneRadius)
	sunDir := ephemeris.SunDirectionECI(tdbApprox(jdUT1))

	return Observation{
		Name:      tr.Name,
		AltDeg:    altDeg,
		AzDeg:     azDeg,
		X:         x,
		Y:         y,
		Z:         z,
		IsVisible: altDeg > 0,
		Sunlit:    sunlit(posTEME, sunDir),
		State:     tr.state,
	}
}

// sentinel is the canonical non-finite-position fallback of spec §3: scene
// position (0, -R, 0), not visible, with the last successfully computed
// azimuth/elevation when there is one, and (0, 0) when there is none.
func (tr *Track) sentinel() Observation {
	obs := Observation{
		Name:      tr.Name,
		X:         0,
		Y:         -sceneRadius,
		Z:         0,
		IsVisible: false,
		State:     Dead,
	}
	if tr.haveLast {
		obs.AltDeg, obs.AzDeg = tr.lastAltDeg, tr.lastAzDeg
	}
	return obs
}

// sunlit determines whether a satellite at posTEME (km, Earth-centered) is
// outside Earth's shadow, by casting a ray from the satellite toward the
// Sun (direction sunDirECI) and checking whether it passes through Earth's
// sphere before reaching the Sun. This reuses geometry.IntersectLineSphere
// by re-centering the origin at the satellite: the line from the satellite
// toward the Sun intersects a sphere of Earth's radius centered at Earth's
// position relative to the satellite (-posTEME). A near intersection at a
// positive distance means Earth lies between the satellite and the Sun.
//
// With a point Sun at infinite distance this is a cylindrical shadow model
// with no penumbra — adequate for the informational Sunlit field, which never governs
// IsVisible.
func sunlit(posTEME, sunDirECI [3]float64) bool {
	earthRelative := [3]float64{-posTEME[0], -posTEME[1], -posTEME[2]}
	near, _ := geometry.IntersectLineSphere(sunDirECI, earthRelative, coord.EarthRadiusKm)
	inShadow := !math.IsNaN(near) && near > 0
	return !inShadow
}

func finite3(v [3]float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// julianDate converts a UTC time.Time to a Julian Date using the same
// Gregorian-calendar algorithm as the timescale package (a local copy;
// this package does not import timescale).
func julianDate(t time.Time) float64 {
	y := t.Year()
	m := int(t.Month())
	d := t.Day()
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	dayFrac := float64(d) +
		(float64(t.Hour())*3600+float64(t.Minute())*60+float64(t.Second())+float64(t.Nanosecond())/1e9)/86400.0
	return float64(int(365.25*float64(y+4716))) +
		float64(int(30.6001*float64(m+1))) +
		dayFrac + float64(b) - 1524.5
}

// tdbApprox treats UT1 as TDB, matching the rest of this implementation's
// deliberate UTC/TT/TDB non-distinction (see package timescale's doc
// comment) — acceptable given the spec's non-goals exclude sub-arcsecond
// precision and the Sunlit field is informational only.
func tdbApprox(jdUT1 float64) float64 { return jdUT1 }

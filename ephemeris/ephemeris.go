// Package ephemeris implements the planetary-ephemeris gateway: given a
// body, an instant, and an observer, it returns that body's apparent
// position, transformed through coord into the observer's local horizon
// and onto the scene sphere.
//
// The Sun and Moon are positioned by the black-box low-precision formulas
// of github.com/soniakeys/meeus (solar.ApparentEquatorial,
// moonposition.Position) — accurate to a few arcminutes, which is all the
// spec's non-goals ask for. Mercury through Pluto are positioned with a
// simplified mean-Keplerian-elements model (J2000 osculating elements,
// linear mean-anomaly growth) propagated by the kepler package, in the
// style of codymj-celestia's per-planet mean-anomaly constants — full
// VSOP87 would need binary coefficient data this implementation does not
// have access to.
package ephemeris

import (
	"math"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/moonposition"
	"github.com/soniakeys/meeus/solar"

	"github.com/anupshinde/orrery/coord"
	"github.com/anupshinde/orrery/kepler"
	"github.com/anupshinde/orrery/magnitude"
)

// ErrEphemeris marks a failure to evaluate a body's position; per spec the
// caller keeps reporting the body with magnitude absent rather than
// dropping it.
var ErrEphemeris = errors.New("ephemeris: evaluation failed")

// Body names the ten bodies this gateway knows how to position.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
)

// Observer is the minimal geographic input C1/C3 need: latitude and
// longitude in degrees. Elevation does not affect the low-precision
// transforms this package performs.
type Observer struct {
	LatDeg float64
	LonDeg float64
}

// CelestialBody is a fully positioned Solar System body: horizontal
// coordinates, the scene-sphere Cartesian point, and optional magnitude/
// phase. Solar System bodies are always visible (spec §4.3) regardless of
// altitude — the renderer decides styling.
type CelestialBody struct {
	Name string

	AltDeg, AzDeg float64
	X, Y, Z       float64
	IsVisible     bool

	HasMagnitude bool
	Magnitude    float64

	// HasPhase and PhaseDeg are populated only for the Moon. PhaseDeg is
	// in [0, 360): 0=new, 90=first quarter, 180=full, 270=last quarter.
	HasPhase bool
	PhaseDeg float64
}

// Altaz, Position, and Visible implement scene.Positioned, letting the
// scene package's best-initial-view search program against CelestialBody
// uniformly with ProcessedStar and the satellite/moons observation types.
func (cb CelestialBody) Altaz() coord.Horizontal    { return coord.Horizontal{AltDeg: cb.AltDeg, AzDeg: cb.AzDeg} }
func (cb CelestialBody) Position() coord.Cartesian  { return coord.Cartesian{X: cb.X, Y: cb.Y, Z: cb.Z} }
func (cb CelestialBody) Visible() bool              { return cb.IsVisible }

const sceneRadius = 100.0

// meanObliquityDeg is the J2000 mean obliquity, matching coord's constant
// of the same name (kept duplicated rather than exported from coord to
// avoid a cross-package dependency for a single scalar).
const meanObliquityDeg = 23.4392911

// sunApparentMagnitude is the Sun's mean apparent visual magnitude as seen
// from Earth; it varies by only ~0.07 mag over a year (1/r^2 with r in
// [0.983, 1.017] AU), well under naked-eye/display significance.
const sunApparentMagnitude = -26.74

// PositionOf evaluates a body's apparent position at the given TDB Julian
// date for the given observer, producing horizontal coordinates (via
// coord.EquatorialToHorizontal) and a scene-sphere Cartesian point (via
// coord.HorizontalToCartesian).
func PositionOf(body Body, tdbJD float64, obs Observer) (CelestialBody, error) {
	lst := coord.LSTHours(coord.GMSTHours(tdbJD), obs.LonDeg)

	switch body {
	case Sun:
		return positionSun(tdbJD, obs, lst)
	case Moon:
		return positionMoon(tdbJD, obs, lst)
	default:
		return positionPlanet(body, tdbJD, obs, lst)
	}
}

func toCelestialBody(name string, raHours, decDeg, latDeg, lst float64) CelestialBody {
	alt, az := coord.EquatorialToHorizontal(raHours, decDeg, latDeg, lst)
	x, y, z := coord.HorizontalToCartesian(alt, az, sceneRadius)
	return CelestialBody{
		Name:      name,
		AltDeg:    alt,
		AzDeg:     az,
		X:         x,
		Y:         y,
		Z:         z,
		IsVisible: true,
	}
}

func positionSun(tdbJD float64, obs Observer, lst float64) (CelestialBody, error) {
	ra, dec := solar.ApparentEquatorial(tdbJD)
	cb := toCelestialBody(string(Sun), ra.Hour(), dec.Deg(), obs.LatDeg, lst)
	cb.HasMagnitude = true
	cb.Magnitude = sunApparentMagnitude
	return cb, nil
}

func positionMoon(tdbJD float64, obs Observer, lst float64) (CelestialBody, error) {
	lambda, beta, _ := moonposition.Position(tdbJD)
	raHours, decDeg := coord.EclipticToEquatorial(lambda.Deg(), beta.Deg())

	sunLon, _ := solar.ApparentEquatorial(tdbJD)
	sunLambda := solarEclipticLongitudeDeg(tdbJD)
	_ = sunLon

	phase := coord.Elongation(lambda.Deg(), sunLambda)

	cb := toCelestialBody(string(Moon), raHours, decDeg, obs.LatDeg, lst)
	cb.HasPhase = true
	cb.PhaseDeg = phase

	magPhaseAngle := math.Abs(180.0 - phase)
	cb.HasMagnitude = true
	cb.Magnitude = -12.73 + 0.026*magPhaseAngle + 4e-9*math.Pow(magPhaseAngle, 4)
	return cb, nil
}

// solarEclipticLongitudeDeg returns the Sun's apparent ecliptic longitude,
// used as the Moon-phase reference angle.
func solarEclipticLongitudeDeg(tdbJD float64) float64 {
	return SunEclipticLongitudeDeg(tdbJD)
}

// SunEclipticLongitudeDeg returns the Sun's apparent ecliptic longitude in
// degrees at the given TDB Julian date. Used by the almanac package to
// find solstices and equinoxes by root-finding on ecliptic longitude
// (spec §4.8).
func SunEclipticLongitudeDeg(tdbJD float64) float64 {
	ra, dec := solar.ApparentEquatorial(tdbJD)
	lon, _ := coord.EquatorialToEcliptic(ra.Hour(), dec.Deg())
	return lon
}

// MoonEclipticLongitudeDeg returns the Moon's apparent ecliptic longitude
// in degrees at the given TDB Julian date. Used by the almanac package to
// find moon-phase boundaries by root-finding on Sun-Moon elongation.
func MoonEclipticLongitudeDeg(tdbJD float64) float64 {
	lambda, _, _ := moonposition.Position(tdbJD)
	return lambda.Deg()
}

// SunDirectionECI returns the geocentric unit vector toward the Sun at the
// given TDB Julian date, in the same equator-of-date frame the satellite
// package's TEME propagation is (approximately) expressed in — adequate for
// the cylindrical-shadow test the satellite package performs, which the
// spec's non-goals do not require to be frame-exact.
func SunDirectionECI(tdbJD float64) [3]float64 {
	ra, dec := solar.ApparentEquatorial(tdbJD)
	x, y, z := coord.RADecToICRF(ra.Hour(), dec.Deg())
	return [3]float64{x, y, z}
}

// geocentricEclipticVector returns a planet's geocentric ecliptic Cartesian
// position (AU) and its heliocentric counterpart, by subtracting Earth's own
// mean-element position from the planet's (spec §4.5's "callers that need
// geocentric positions MUST subtract the Earth vector"). Shared by
// positionPlanet and GeocentricDistanceAU (the latter used by the moons
// package to scale Galilean-moon orbital offsets to arcseconds).
func geocentricEclipticVector(body Body, tdbJD float64) (geoEcliptic, helio [3]float64, converged bool, err error) {
	entry, ok := meanElements[body]
	if !ok {
		return [3]float64{}, [3]float64{}, false, errors.Errorf("ephemeris: unknown body %q", body)
	}

	planetOrbit := kepler.NewOrbit(entry.elements)
	earthOrbit := kepler.NewOrbit(earthElements)

	planetHelio, planetConverged := planetOrbit.HeliocentricEcliptic(tdbJD)
	earthHelio, earthConverged := earthOrbit.HeliocentricEcliptic(tdbJD)

	geoEcliptic = [3]float64{
		planetHelio[0] - earthHelio[0],
		planetHelio[1] - earthHelio[1],
		planetHelio[2] - earthHelio[2],
	}
	return geoEcliptic, planetHelio, planetConverged && earthConverged, nil
}

// GeocentricDistanceAU returns a planet's geocentric distance in AU at the
// given TDB Julian date. Used by the moons package to convert a Galilean
// moon's orbital offset (in km) into an apparent angular separation from
// Jupiter (arcseconds).
func GeocentricDistanceAU(body Body, tdbJD float64) (float64, error) {
	geoEcliptic, _, _, err := geocentricEclipticVector(body, tdbJD)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(geoEcliptic[0]*geoEcliptic[0] + geoEcliptic[1]*geoEcliptic[1] + geoEcliptic[2]*geoEcliptic[2]), nil
}

func positionPlanet(body Body, tdbJD float64, obs Observer, lst float64) (CelestialBody, error) {
	entry, ok := meanElements[body]
	if !ok {
		return CelestialBody{}, errors.Errorf("ephemeris: unknown body %q", body)
	}

	geoEcliptic, planetHelio, converged, err := geocentricEclipticVector(body, tdbJD)
	if err != nil {
		return CelestialBody{}, err
	}
	raHours, decDeg := eclipticVectorToEquatorial(geoEcliptic)

	cb := toCelestialBody(string(body), raHours, decDeg, obs.LatDeg, lst)

	sunToPlanetICRF := eclipticVectorToICRF(planetHelio)
	obsToPlanetICRF := eclipticVectorToICRF(geoEcliptic)
	year := 2000.0 + (tdbJD-2451545.0)/365.25

	mag := magnitude.PlanetaryMagnitudeWithGeometry(entry.naifID, sunToPlanetICRF, obsToPlanetICRF, year)
	if !math.IsNaN(mag) {
		cb.HasMagnitude = true
		cb.Magnitude = mag
	} else if body == Pluto {
		cb.HasMagnitude = true
		cb.Magnitude = 15.1 // nominal, magnitude package has no Pluto model
	}

	if !converged {
		cb.HasMagnitude = false
		cb.Magnitude = 0
		err = errors.Wrapf(ErrEphemeris, "%s: kepler solver did not converge", body)
	}
	return cb, err
}

// eclipticVectorToEquatorial rotates a J2000 ecliptic Cartesian vector to
// equatorial and returns RA (hours) / Dec (degrees).
func eclipticVectorToEquatorial(v [3]float64) (raHours, decDeg float64) {
	eq := eclipticVectorToICRF(v)
	r := math.Sqrt(eq[0]*eq[0] + eq[1]*eq[1] + eq[2]*eq[2])
	if r == 0 {
		return 0, 0
	}
	dec := math.Asin(clamp(eq[2]/r, -1, 1))
	ra := math.Atan2(eq[1], eq[0])
	if ra < 0 {
		ra += 2 * math.Pi
	}
	return ra * 180.0 / math.Pi / 15.0, dec * 180.0 / math.Pi
}

// eclipticVectorToICRF rotates a J2000 ecliptic Cartesian vector into the
// ICRF (mean equatorial J2000) frame.
func eclipticVectorToICRF(v [3]float64) [3]float64 {
	eps := meanObliquityDeg * math.Pi / 180.0
	sinE, cosE := math.Sincos(eps)
	return [3]float64{
		v[0],
		cosE*v[1] - sinE*v[2],
		sinE*v[1] + cosE*v[2],
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package scene implements the scene processor (component C7) and
// scene-level queries (component C9): turning a raw star/deep-sky catalog
// plus a (observer, instant) pair into validated, per-instant processed
// objects, and deriving a recommended initial view direction from the
// result.
//
// Grounded on the teacher's general "per-entry loop, fail soft, count
// drops" idiom (most visibly in catalog/ephemeris's own fails-soft style);
// spec.md §4.7's 5-step pipeline and §4.9's best-initial-view heuristic
// have no direct teacher analogue, so the pipeline itself is new code
// built on the now-complete coord/catalog/star/constellation packages.
package scene

import (
	"math"
	"strings"
	"time"

	"github.com/anupshinde/orrery/catalog"
	"github.com/anupshinde/orrery/constellation"
	"github.com/anupshinde/orrery/coord"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/kepler"
	"github.com/anupshinde/orrery/star"
	"github.com/anupshinde/orrery/timescale"
)

// sceneRadius is the fixed scene-sphere radius R of spec §3.
const sceneRadius = 100.0

// Positioned is the tagged-sum polymorphism spec §9's design notes call
// for, realized as a Go interface: every per-instant processed type
// (ProcessedStar, ephemeris.CelestialBody, satellite.Observation,
// moons.Observation, MinorBodyObservation) implements it, letting
// BestInitialView and other scene-level queries program against a single
// shape instead of switching on concrete type.
type Positioned interface {
	Altaz() coord.Horizontal
	Position() coord.Cartesian
	Visible() bool
}

// ProcessedStar is a StarRecord enriched with this instant's horizontal
// coordinates, scene-sphere position, and display attributes (spec §3).
type ProcessedStar struct {
	catalog.StarRecord

	AltDeg, AzDeg float64
	X, Y, Z       float64
	IsVisible     bool

	Color   string
	Size    float64
	Opacity float64
}

func (s ProcessedStar) Altaz() coord.Horizontal   { return coord.Horizontal{AltDeg: s.AltDeg, AzDeg: s.AzDeg} }
func (s ProcessedStar) Position() coord.Cartesian { return coord.Cartesian{X: s.X, Y: s.Y, Z: s.Z} }
func (s ProcessedStar) Visible() bool             { return s.IsVisible }

// ProcessedDeepSky is a DeepSkyObject enriched with this instant's
// horizontal coordinates, scene-sphere position, and the fields catalog
// ingest deliberately leaves to the scene processor to derive: magnitude
// estimate, angular size, constellation membership, and description
// (catalog.DeepSkyObject's doc comment).
type ProcessedDeepSky struct {
	catalog.DeepSkyObject

	AltDeg, AzDeg float64
	X, Y, Z       float64
	IsVisible     bool

	MagnitudeEstimate float64
	SizeArcmin        float64
	Constellation     string
	Description       string
}

func (d ProcessedDeepSky) Altaz() coord.Horizontal   { return coord.Horizontal{AltDeg: d.AltDeg, AzDeg: d.AzDeg} }
func (d ProcessedDeepSky) Position() coord.Cartesian { return coord.Cartesian{X: d.X, Y: d.Y, Z: d.Z} }
func (d ProcessedDeepSky) Visible() bool             { return d.IsVisible }

// ConstellationDisplay is one constellation's assembled figure: line
// segments between named stars, a label anchor point, and a visibility
// flag (spec §3).
type ConstellationDisplay struct {
	Name         string
	Abbreviation string
	Segments     [][2]coord.Cartesian
	LabelPosition coord.Cartesian
	IsVisible    bool
}

// MinorBodyObservation is a Kepler-propagated minor planet or comet's
// scene-sphere position (spec §4.5 step 5's heliocentric-ecliptic axis
// swap). Unlike stars/bodies/satellites, minor bodies are not projected
// through the observer's local horizon — C5 is explicit that this is a
// heliocentric, not topocentric, view — so Altaz is not meaningful and
// always reports the zero value; callers that need a horizon-relative
// minor-body view are out of this component's scope.
type MinorBodyObservation struct {
	Name      string
	X, Y, Z   float64
	IsVisible bool
}

func (m MinorBodyObservation) Altaz() coord.Horizontal   { return coord.Horizontal{} }
func (m MinorBodyObservation) Position() coord.Cartesian { return coord.Cartesian{X: m.X, Y: m.Y, Z: m.Z} }
func (m MinorBodyObservation) Visible() bool             { return m.IsVisible }

// SceneHealth is the per-scene diagnostic structure spec §4.7's failure
// semantics call for: individual entry failures are silent drops, but they
// are counted rather than simply vanishing.
type SceneHealth struct {
	StarsIn       int
	StarsOut      int
	DropsByReason map[string]int
}

func (h *SceneHealth) drop(reason string) {
	if h.DropsByReason == nil {
		h.DropsByReason = map[string]int{}
	}
	h.DropsByReason[reason]++
}

// validateCartesian is the MANDATORY finite-Cartesian check of spec §4.7
// step 4, used by Process for stars and deep-sky objects and by
// ProcessMinorBody. Body, moon and satellite positions, which come from
// the ephemeris, moons and satellite packages, do not pass through it.
func validateCartesian(x, y, z float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0) &&
		!math.IsNaN(z) && !math.IsInf(z, 0)
}

// sentinelCartesian is the canonical non-finite-position fallback of
// spec §3: (0, -R, 0).
func sentinelCartesian() (x, y, z float64) { return 0, -sceneRadius, 0 }

// spectral color table, standard O/B/A/F/G/K/M/L/T/C/S mapping (spec
// §4.7 step 2).
var spectralColors = map[byte]string{
	'O': "#9bb0ff",
	'B': "#aabfff",
	'A': "#cad7ff",
	'F': "#f8f7ff",
	'G': "#fff4ea",
	'K': "#ffd2a1",
	'M': "#ffcc6f",
	'L': "#ff6347",
	'T': "#8b4513",
	'C': "#ff4500",
	'S': "#ff8c69",
}

func spectralToColor(spectralClass string) string {
	if spectralClass == "" {
		return "#ffffff"
	}
	if c, ok := spectralColors[spectralClass[0]]; ok {
		return c
	}
	return "#ffffff"
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// deep-sky nominal display attributes per type: catalog ingest carries no
// magnitude/size data for deep-sky objects (catalog.DeepSkyObject's doc
// comment explicitly defers these to the scene processor), so this table
// supplies representative figures per object type — schematic, like the
// moons package's nominal-table moons, not a per-object measurement.
type deepSkyNominal struct {
	magnitude   float64
	sizeArcmin  float64
	description string
}

var deepSkyNominals = map[string]deepSkyNominal{
	catalog.TypeGalaxy:    {magnitude: 9.5, sizeArcmin: 5.0, description: "Galaxy"},
	catalog.TypeNebula:    {magnitude: 8.0, sizeArcmin: 10.0, description: "Nebula"},
	catalog.TypeCluster:   {magnitude: 6.0, sizeArcmin: 15.0, description: "Star cluster"},
	catalog.TypePlanetary: {magnitude: 10.0, sizeArcmin: 1.0, description: "Planetary nebula"},
	catalog.TypeSupernova: {magnitude: 11.0, sizeArcmin: 0.5, description: "Supernova remnant"},
}

// Process runs the 5-step scene pipeline of spec §4.7 over a raw star and
// deep-sky catalog for one (observer, instant): horizontal/Cartesian
// projection, light-pollution filtering, the mandatory finite-Cartesian
// check, and constellation-segment assembly. lightPollution is in [0, 1].
func Process(
	stars []catalog.StarRecord,
	deepSky []catalog.DeepSkyObject,
	obs ephemeris.Observer,
	instant time.Time,
	lightPollution float64,
) ([]ProcessedStar, []ProcessedDeepSky, []ConstellationDisplay, SceneHealth) {
	tdbJD := timescale.JulianDate(instant)
	lst := coord.LSTHours(coord.GMSTHours(tdbJD), obs.LonDeg)

	health := SceneHealth{StarsIn: len(stars)}
	starMagLimit := 6.5 - lightPollution*3.5
	deepSkyMagLimit := 7.0 - lightPollution*4.0

	processedStars := make([]ProcessedStar, 0, len(stars))
	for _, rec := range stars {
		raHours, decDeg := rec.RAHours, rec.DecDeg
		if rec.HasAstrometry {
			s := &star.Star{
				RAHours:       rec.RAHours,
				DecDeg:        rec.DecDeg,
				ParallaxMas:   rec.ParallaxMas,
				RAMasPerYear:  rec.RAMasPerYear,
				DecMasPerYear: rec.DecMasPerYear,
			}
			raHours, decDeg = s.RADec(tdbJD)
		}

		if rec.ApparentMag > starMagLimit {
			health.drop("light_pollution_mag_limit")
			continue
		}

		altDeg, azDeg := coord.EquatorialToHorizontal(raHours, decDeg, obs.LatDeg, lst)
		x, y, z := coord.HorizontalToCartesian(altDeg, azDeg, sceneRadius)
		if !validateCartesian(x, y, z) {
			health.drop("non_finite_cartesian")
			continue
		}

		t := clampUnit((rec.ApparentMag - (-1.5)) / 6.5)
		processedStars = append(processedStars, ProcessedStar{
			StarRecord: rec,
			AltDeg:     altDeg,
			AzDeg:      azDeg,
			X:          x, Y: y, Z: z,
			IsVisible: altDeg > 0,
			Color:     spectralToColor(rec.SpectralClass),
			Size:      lerp(0.8, 0.15, t),
			Opacity:   lerp(1.0, 0.4, t),
		})
	}
	health.StarsOut = len(processedStars)

	processedDeepSky := make([]ProcessedDeepSky, 0, len(deepSky))
	for _, obj := range deepSky {
		nominal, ok := deepSkyNominals[obj.Type]
		if !ok {
			nominal = deepSkyNominal{magnitude: 9.0, sizeArcmin: 5.0, description: "Deep-sky object"}
		}
		if nominal.magnitude > deepSkyMagLimit {
			health.drop("light_pollution_mag_limit")
			continue
		}

		altDeg, azDeg := coord.EquatorialToHorizontal(obj.RAHours, obj.DecDeg, obs.LatDeg, lst)
		x, y, z := coord.HorizontalToCartesian(altDeg, azDeg, sceneRadius)
		if !validateCartesian(x, y, z) {
			health.drop("non_finite_cartesian")
			continue
		}

		processedDeepSky = append(processedDeepSky, ProcessedDeepSky{
			DeepSkyObject:     obj,
			AltDeg:            altDeg,
			AzDeg:             azDeg,
			X:                 x, Y: y, Z: z,
			IsVisible:         altDeg > 0,
			MagnitudeEstimate: nominal.magnitude,
			SizeArcmin:        nominal.sizeArcmin,
			Constellation:     constellation.Nearest(obj.RAHours, obj.DecDeg),
			Description:       nominal.description,
		})
	}

	constellations := assembleConstellations(processedStars)
	return processedStars, processedDeepSky, constellations, health
}

// assembleConstellations implements spec §4.7 step 5: build a
// case-insensitive name → ProcessedStar index, then for each
// constellation's line list emit only the segments whose both endpoints
// resolve.
func assembleConstellations(stars []ProcessedStar) []ConstellationDisplay {
	index := make(map[string]ProcessedStar, len(stars))
	for _, s := range stars {
		if s.Name == "" {
			continue
		}
		index[strings.ToLower(s.Name)] = s
	}

	displays := make([]ConstellationDisplay, 0, len(LineList))
	for _, line := range LineList {
		var segments [][2]coord.Cartesian
		var sumX, sumY, sumZ float64
		visible := false

		for _, pair := range line.Segments {
			a, okA := index[strings.ToLower(pair[0])]
			b, okB := index[strings.ToLower(pair[1])]
			if !okA || !okB {
				continue
			}
			segments = append(segments, [2]coord.Cartesian{
				{X: a.X, Y: a.Y, Z: a.Z},
				{X: b.X, Y: b.Y, Z: b.Z},
			})
			sumX += a.X + b.X
			sumY += a.Y + b.Y
			sumZ += a.Z + b.Z
			if a.IsVisible || b.IsVisible {
				visible = true
			}
		}
		if len(segments) == 0 {
			continue
		}

		n := float64(2 * len(segments))
		displays = append(displays, ConstellationDisplay{
			Name:         line.Name,
			Abbreviation: line.Abbreviation,
			Segments:     segments,
			LabelPosition: coord.Cartesian{X: sumX / n, Y: sumY / n, Z: sumZ / n},
			IsVisible:    visible,
		})
	}
	return displays
}

// ProcessMinorBody propagates a single minor body's Kepler orbit to tdbJD
// and projects it onto the scene sphere via kepler.SceneCartesian,
// applying the mandatory finite-Cartesian check and the non-convergence
// policy of spec §7 (kept but marked not visible, never dropped or
// panicking).
func ProcessMinorBody(name string, elements kepler.OrbitalElements, tdbJD, auToSceneUnits float64) MinorBodyObservation {
	orbit := kepler.NewOrbit(elements)
	posAU, converged := orbit.HeliocentricEcliptic(tdbJD)
	x, y, z := kepler.SceneCartesian(posAU, auToSceneUnits)

	if !validateCartesian(x, y, z) {
		x, y, z = sentinelCartesian()
		return MinorBodyObservation{Name: name, X: x, Y: y, Z: z, IsVisible: false}
	}
	return MinorBodyObservation{Name: name, X: x, Y: y, Z: z, IsVisible: converged}
}

// BestInitialView implements spec §4.9's heuristic exactly: a
// brightness-weighted azimuth/altitude centroid of visible mag<3 stars
// plus every visible non-Sun planet at a fixed weight, falling back to
// (south, mid-sky) when no bright star is visible. Azimuth is averaged via
// sin/cos decomposition and atan2 recovery (spec §9 open question,
// resolved per the spec's own recommendation (a)) rather than as raw
// degrees, so a centroid spanning due north never wraps incorrectly.
func BestInitialView(stars []ProcessedStar, bodies []ephemeris.CelestialBody) (azDeg, altDeg float64) {
	var sinSum, cosSum, altSum, weightSum float64
	found := false

	for _, s := range stars {
		if !s.IsVisible || s.ApparentMag >= 3 {
			continue
		}
		w := math.Pow(2.512, 3-s.ApparentMag)
		azRad := s.AzDeg * math.Pi / 180.0
		sinSum += w * math.Sin(azRad)
		cosSum += w * math.Cos(azRad)
		altSum += w * s.AltDeg
		weightSum += w
		found = true
	}

	if !found {
		return 180.0, 45.0
	}

	const planetWeight = 5.0
	for _, b := range bodies {
		if b.Name == string(ephemeris.Sun) || !b.IsVisible {
			continue
		}
		azRad := b.AzDeg * math.Pi / 180.0
		sinSum += planetWeight * math.Sin(azRad)
		cosSum += planetWeight * math.Cos(azRad)
		altSum += planetWeight * b.AltDeg
		weightSum += planetWeight
	}

	az := math.Atan2(sinSum, cosSum) * 180.0 / math.Pi
	if az < 0 {
		az += 360.0
	}
	alt := altSum / weightSum
	if alt < 20 {
		alt = 20
	} else if alt > 70 {
		alt = 70
	}
	return az, alt
}

// VisibleCount returns the number of processed stars with IsVisible set,
// the building block for the renderer-facing "visible object count" query
// named in spec §1's scope summary.
func VisibleCount(stars []ProcessedStar) int {
	n := 0
	for _, s := range stars {
		if s.IsVisible {
			n++
		}
	}
	return n
}

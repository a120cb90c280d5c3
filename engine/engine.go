// Package engine implements the facade (component C10): a single
// synchronous entry point, `Engine.BuildScene`, that composes C1–C9 into a
// per-instant Scene. Catalog/TLE/minor-body loading is an explicit async
// phase (`New`) performed once; `BuildScene` is then a pure, deterministic
// function of the frozen Engine plus its arguments (spec §5, §9's "explicit
// Engine handle, do NOT use a hidden singleton" design note).
//
// Grounded on no direct teacher analogue (the teacher ships no facade or
// engine package at all, only per-concern packages and throwaway example
// mains) — this is new code composing the now-complete lower packages, in
// the teacher's general fails-soft idiom (kepler/satellite/catalog all
// prefer a degraded-but-valid result to an error).
package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/anupshinde/orrery/almanac"
	"github.com/anupshinde/orrery/catalog"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/kepler"
	"github.com/anupshinde/orrery/moons"
	"github.com/anupshinde/orrery/satellite"
	"github.com/anupshinde/orrery/scene"
	"github.com/anupshinde/orrery/timescale"
)

// ErrCatalogFetch wraps a star or deep-sky source failure that fell
// through to the bundled fallback — logged, not returned, per spec §7's
// "Log; fall back to bundled sample; build_scene still works" policy.
var ErrCatalogFetch = errors.New("engine: catalog fetch failed")

// allBodies is the fixed set C3 positions every scene.
var allBodies = []ephemeris.Body{
	ephemeris.Sun, ephemeris.Moon,
	ephemeris.Mercury, ephemeris.Venus, ephemeris.Mars,
	ephemeris.Jupiter, ephemeris.Saturn, ephemeris.Uranus, ephemeris.Neptune, ephemeris.Pluto,
}

// defaultAUToSceneUnits scales a minor body's heliocentric AU distance to
// scene units, chosen so that a typical main-belt object (a ≈ 2-3 AU)
// renders comfortably inside the star sphere (R=100) without the spec
// mandating a specific scale (C5 step 5 only fixes the axis swap, not the
// scalar).
const defaultAUToSceneUnits = 20.0

// SourceFunc fetches raw catalog bytes, given a context for cooperative
// cancellation. Network fetches to external catalogs are explicitly out of
// scope for this module (spec §1's "external collaborators") — a SourceFunc
// is the seam an embedder plugs a real HTTP/file fetch into; the engine
// itself only knows how to call it with a timeout and fall back on failure.
type SourceFunc func(ctx context.Context) (io.Reader, error)

// MinorBodySpec names one Kepler-propagated minor body (spec §3's
// OrbitalElements, paired with a display name).
type MinorBodySpec struct {
	Name     string
	Elements kepler.OrbitalElements
}

// SatelliteSpec is one TLE to track (spec §3's TLE, paired with a display
// name).
type SatelliteSpec struct {
	Name  string
	Line1 string
	Line2 string
}

// EngineConfig threads catalog sources, fetch timeouts, and the static
// minor-body/satellite tables through Engine construction (spec §9's
// "explicit Engine handle" design note; SPEC_FULL §3's AMBIENT STACK
// addition).
type EngineConfig struct {
	// StarCatalogSource and DeepSkySource are optional; when nil, the
	// bundled fallback catalog is used directly without attempting a
	// fetch (the "no source configured" case, not a failure).
	StarCatalogSource SourceFunc
	DeepSkySource     SourceFunc

	// CachePath, if set, is consulted before StarCatalogSource is called,
	// and written to after a successful fetch (spec §4.2 step 7).
	CachePath      string
	CatalogVersion string

	// FetchTimeout bounds each catalog source call. Zero means 10s.
	FetchTimeout time.Duration

	MinorBodies []MinorBodySpec
	Satellites  []SatelliteSpec

	// DefaultCameraFOVDeg is the camera field of view passed to the moons
	// package (and compared there against moons.DefaultFOVThresholdDeg)
	// when a BuildScene call doesn't set one. Zero means use
	// moons.DefaultFOVThresholdDeg itself as the field of view.
	DefaultCameraFOVDeg float64

	// AUToSceneUnits overrides defaultAUToSceneUnits. Zero means use the
	// package default.
	AUToSceneUnits float64

	// Logger receives catalog-fallback notices (spec §7's "Log" policy
	// for CatalogFetchError). Defaults to slog.Default().
	Logger *slog.Logger
}

// Engine is the process-wide, immutable-after-construction handle spec §9
// demands in place of a hidden singleton: the loaded star/deep-sky
// catalog, the static minor-body table, and the live satellite tracks.
type Engine struct {
	stars   []catalog.StarRecord
	deepSky []catalog.DeepSkyObject

	minorBodies []MinorBodySpec
	tracks      []*satellite.Track

	fovDefault     float64
	auToSceneUnits float64
	logger         *slog.Logger
}

// New performs the async catalog-loading phase of spec §5 (suspension
// points fetch_star_catalog, fetch_deep_sky — fetch_asteroids has no
// network analogue here since minor bodies are supplied directly as
// elements, not fetched and parsed) and then freezes an Engine. Every
// fallback is logged, never returned as an error — per spec §7 only a
// catastrophic failure with no fallback available would be engine-level,
// and the bundled star fallback makes that case unreachable for stars.
func New(ctx context.Context, cfg EngineConfig) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	stars := loadStars(ctx, cfg, timeout, logger)
	deepSky := loadDeepSky(ctx, cfg, timeout, logger)

	tracks := make([]*satellite.Track, 0, len(cfg.Satellites))
	for _, s := range cfg.Satellites {
		tracks = append(tracks, satellite.NewTrack(s.Name, s.Line1, s.Line2))
	}

	fovDefault := cfg.DefaultCameraFOVDeg
	if fovDefault <= 0 {
		fovDefault = moons.DefaultFOVThresholdDeg
	}
	auScale := cfg.AUToSceneUnits
	if auScale <= 0 {
		auScale = defaultAUToSceneUnits
	}

	return &Engine{
		stars:          stars,
		deepSky:        deepSky,
		minorBodies:    cfg.MinorBodies,
		tracks:         tracks,
		fovDefault:     fovDefault,
		auToSceneUnits: auScale,
		logger:         logger,
	}, nil
}

func loadStars(ctx context.Context, cfg EngineConfig, timeout time.Duration, logger *slog.Logger) []catalog.StarRecord {
	if cfg.CachePath != "" {
		cache := catalog.Cache{Path: cfg.CachePath}
		if stars, err := cache.Load(cfg.CatalogVersion); err == nil {
			return stars
		}
	}

	if cfg.StarCatalogSource != nil {
		r, err := fetchWithTimeout(ctx, timeout, cfg.StarCatalogSource)
		if err == nil {
			stars, parseErr := catalog.LoadStarCSV(r)
			if parseErr == nil {
				if cfg.CachePath != "" {
					cache := catalog.Cache{Path: cfg.CachePath}
					if saveErr := cache.Save(cfg.CatalogVersion, stars); saveErr != nil {
						logger.Warn("star catalog cache write failed", "error", saveErr)
					}
				}
				return stars
			}
			logger.Warn("star catalog parse failed, using bundled fallback", "error", parseErr)
		} else {
			logger.Warn("star catalog fetch failed, using bundled fallback", "error", errors.Wrap(ErrCatalogFetch, err.Error()))
		}
	}

	return catalog.Fallback()
}

func loadDeepSky(ctx context.Context, cfg EngineConfig, timeout time.Duration, logger *slog.Logger) []catalog.DeepSkyObject {
	if cfg.DeepSkySource == nil {
		return nil
	}
	r, err := fetchWithTimeout(ctx, timeout, cfg.DeepSkySource)
	if err != nil {
		logger.Warn("deep-sky fetch failed, scene will carry no deep-sky objects", "error", errors.Wrap(ErrCatalogFetch, err.Error()))
		return nil
	}
	objects, err := catalog.LoadDeepSkyJSON(r)
	if err != nil {
		logger.Warn("deep-sky parse failed, scene will carry no deep-sky objects", "error", err)
		return nil
	}
	return objects
}

// fetchWithTimeout bounds a SourceFunc call to timeout, cooperatively via
// ctx (spec §5's "catalog loading is cancellable cooperatively; partial
// results are discarded").
func fetchWithTimeout(ctx context.Context, timeout time.Duration, fn SourceFunc) (io.Reader, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		r   io.Reader
		err error
	}
	ch := make(chan result, 1)
	go func() {
		r, err := fn(ctx)
		ch <- result{r, err}
	}()

	select {
	case res := <-ch:
		return res.r, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// BuildOptions parameterizes one BuildScene call.
type BuildOptions struct {
	// LightPollution is in [0, 1] and feeds scene.Process's magnitude
	// cutoffs (spec §4.7 step 3).
	LightPollution float64

	// CameraFOVDeg overrides the Engine's default camera field of view (the
	// value the moon LOD threshold is compared against) for this call only.
	// Zero means use the Engine's default.
	CameraFOVDeg float64
}

// Scene is the facade's output (spec §3): every processed object kind for
// one (observer, instant) pair, plus the SceneHealth diagnostic. Scenes are
// pure values independent of the Engine once returned.
type Scene struct {
	Instant  time.Time
	Observer ephemeris.Observer

	Stars          []scene.ProcessedStar
	Bodies         []ephemeris.CelestialBody
	Moons          []moons.Observation
	Constellations []scene.ConstellationDisplay
	DeepSky        []scene.ProcessedDeepSky
	MeteorShowers  []almanac.RadiantProjection
	MinorBodies    []scene.MinorBodyObservation
	Satellites     []satellite.Observation

	Health scene.SceneHealth
}

// BuildScene composes C1–C9 into one Scene (spec §4.10). It is a
// synchronous, pure function of the frozen Engine plus its arguments —
// calling it twice with identical arguments yields identical output (spec
// §8 property 6), since every step below is itself a pure function of
// (instant, observer) and the Engine's immutable state. The one exception
// is satellite.Track.Propagate, which IS part of the Engine's mutable
// state machine (Parsed → Initialized → Propagated → Dead) — its output
// for identical inputs is still deterministic, but a dead track stays dead
// even on the scene that killed it, by design (spec §4.6).
func (e *Engine) BuildScene(instant time.Time, observer ephemeris.Observer, opts BuildOptions) Scene {
	instant = instant.UTC()
	tdbJD := timescale.JulianDate(instant)

	fov := opts.CameraFOVDeg
	if fov <= 0 {
		fov = e.fovDefault
	}

	processedStars, processedDeepSky, constellations, health := scene.Process(
		e.stars, e.deepSky, observer, instant, opts.LightPollution)

	bodies := make([]ephemeris.CelestialBody, 0, len(allBodies))
	for _, b := range allBodies {
		cb, _ := ephemeris.PositionOf(b, tdbJD, observer)
		bodies = append(bodies, cb)
	}

	var moonObs []moons.Observation
	if galilean, err := moons.Galilean(instant, observer, fov); err == nil {
		moonObs = append(moonObs, galilean...)
	}
	if nominal, err := moons.Nominal(instant, observer, fov); err == nil {
		moonObs = append(moonObs, nominal...)
	}

	minorObs := make([]scene.MinorBodyObservation, 0, len(e.minorBodies))
	for _, m := range e.minorBodies {
		minorObs = append(minorObs, scene.ProcessMinorBody(m.Name, m.Elements, tdbJD, e.auToSceneUnits))
	}

	satObserver := satellite.Observer{LatDeg: observer.LatDeg, LonDeg: observer.LonDeg}
	satObs := make([]satellite.Observation, 0, len(e.tracks))
	for _, tr := range e.tracks {
		satObs = append(satObs, tr.Propagate(instant, satObserver))
	}

	showers := make([]almanac.RadiantProjection, 0, len(almanac.Showers))
	for _, s := range almanac.Showers {
		showers = append(showers, almanac.ProjectRadiant(s, observer.LatDeg, observer.LonDeg, instant))
	}

	return Scene{
		Instant:        instant,
		Observer:       observer,
		Stars:          processedStars,
		Bodies:         bodies,
		Moons:          moonObs,
		Constellations: constellations,
		DeepSky:        processedDeepSky,
		MeteorShowers:  showers,
		MinorBodies:    minorObs,
		Satellites:     satObs,
		Health:         health,
	}
}

// BestInitialView delegates to scene.BestInitialView (spec §4.9, component
// C9) over this Scene's own stars and bodies.
func (s Scene) BestInitialView() (azDeg, altDeg float64) {
	return scene.BestInitialView(s.Stars, s.Bodies)
}

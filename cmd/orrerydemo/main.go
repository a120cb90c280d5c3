// Command orrerydemo builds one Scene against the bundled fallback catalog
// and prints a short summary: the Sun/Moon, the brightest visible stars, one
// Kepler-propagated minor planet, and one SGP4 satellite track.
//
// This replaces the teacher's examples/ directory (spec §1 excludes any
// CLI from the core engine; this is a thin demonstration harness only, in
// the same single-file, no-flags style as the teacher's own examples/*).
package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/anupshinde/orrery/engine"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/kepler"
)

func main() {
	ctx := context.Background()

	// 1 Ceres, J2000 osculating elements (spec §8 scenario S5).
	ceres := engine.MinorBodySpec{
		Name: "1 Ceres",
		Elements: kepler.OrbitalElements{
			SemiMajorAxisAU: 2.7691651820,
			Eccentricity:    0.0760090291,
			InclinationDeg:  10.5928916421,
			LongAscNodeDeg:  80.3055316455,
			ArgPeriapsisDeg: 73.5976941384,
			MeanAnomalyDeg:  95.9891407113,
			EpochJD:         2451545.0,
		},
	}

	// ISS TLE, epoch 2024-001 (spec §8 scenario S6).
	iss := engine.SatelliteSpec{
		Name:  "ISS (ZARYA)",
		Line1: "1 25544U 98067A   24001.00000000  .00016717  00000-0  10270-3 0  9005",
		Line2: "2 25544  51.6400 208.9163 0006703 247.1970 112.8444 15.49560830999999",
	}

	eng, err := engine.New(ctx, engine.EngineConfig{
		MinorBodies: []engine.MinorBodySpec{ceres},
		Satellites:  []engine.SatelliteSpec{iss},
	})
	if err != nil {
		panic(err)
	}

	observer := ephemeris.Observer{LatDeg: 37.77, LonDeg: -122.42} // San Francisco
	instant := time.Date(2024, 9, 18, 2, 34, 0, 0, time.UTC)       // near-full Moon (S4)

	sc := eng.BuildScene(instant, observer, engine.BuildOptions{LightPollution: 0.2})

	fmt.Printf("Scene for %s at (%.2f, %.2f)\n\n", sc.Instant.Format(time.RFC3339), observer.LatDeg, observer.LonDeg)

	fmt.Println("Solar System bodies:")
	for _, b := range sc.Bodies {
		mag := "n/a"
		if b.HasMagnitude {
			mag = fmt.Sprintf("%.1f", b.Magnitude)
		}
		phase := ""
		if b.HasPhase {
			phase = fmt.Sprintf(", phase=%.0f°", b.PhaseDeg)
		}
		fmt.Printf("  %-9s alt=%6.2f az=%6.2f mag=%-5s%s\n", b.Name, b.AltDeg, b.AzDeg, mag, phase)
	}

	visible := make([]int, 0, len(sc.Stars))
	for i, s := range sc.Stars {
		if s.IsVisible {
			visible = append(visible, i)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return sc.Stars[visible[i]].ApparentMag < sc.Stars[visible[j]].ApparentMag
	})
	fmt.Printf("\n%d of %d catalog stars visible; brightest:\n", len(visible), len(sc.Stars))
	for i, idx := range visible {
		if i >= 5 {
			break
		}
		s := sc.Stars[idx]
		fmt.Printf("  %-16s mag=%5.2f alt=%6.2f az=%6.2f\n", s.Name, s.ApparentMag, s.AltDeg, s.AzDeg)
	}

	fmt.Println("\nMinor bodies:")
	for _, m := range sc.MinorBodies {
		fmt.Printf("  %-10s visible=%v scene-pos=(%.1f, %.1f, %.1f)\n", m.Name, m.IsVisible, m.X, m.Y, m.Z)
	}

	fmt.Println("\nSatellites:")
	for _, s := range sc.Satellites {
		fmt.Printf("  %-14s alt=%6.2f az=%6.2f visible=%v\n", s.Name, s.AltDeg, s.AzDeg, s.IsVisible)
	}

	az, alt := sc.BestInitialView()
	fmt.Printf("\nBest initial view: az=%.1f alt=%.1f\n", az, alt)
	fmt.Printf("Scene health: %d/%d stars kept, drops=%v\n", sc.Health.StarsOut, sc.Health.StarsIn, sc.Health.DropsByReason)
}

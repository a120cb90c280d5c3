package satellite

import (
	"math"
	"testing"
	"time"
)

// A recent, valid ISS TLE used for the S6 visibility-sweep scenario.
const (
	issName  = "ISS (ZARYA)"
	issLine1 = "1 25544U 98067A   24001.00000000  .00016717  00000-0  10270-3 0  9005"
	issLine2 = "2 25544  51.6400 208.9163 0006703 247.1970 112.8444 15.49560830999999"
)

// S6 (spec §8): across a 96-minute sweep (roughly one ISS orbital period)
// from a San Francisco-area observer, altitude must stay bounded in
// [-90, 90] and cross zero (rise or set) at least twice.
func TestTrack_ISSVisibilitySweep(t *testing.T) {
	tr := NewTrack(issName, issLine1, issLine2)
	obs := Observer{LatDeg: 37.77, LonDeg: -122.42}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var prevAlt float64
	crossings := 0
	for i := 0; i <= 96; i++ {
		obsv := tr.Propagate(start.Add(time.Duration(i)*time.Minute), obs)
		if obsv.AltDeg < -90 || obsv.AltDeg > 90 {
			t.Fatalf("altitude out of range at step %d: %f", i, obsv.AltDeg)
		}
		if i > 0 && (prevAlt < 0) != (obsv.AltDeg < 0) {
			crossings++
		}
		prevAlt = obsv.AltDeg
	}
	if crossings < 2 {
		t.Errorf("expected at least 2 horizon crossings over 96 minutes, got %d", crossings)
	}
}

func TestTrack_VisibleOnlyAboveHorizon(t *testing.T) {
	tr := NewTrack(issName, issLine1, issLine2)
	obs := Observer{LatDeg: 37.77, LonDeg: -122.42}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i <= 96; i++ {
		obsv := tr.Propagate(start.Add(time.Duration(i)*time.Minute), obs)
		if obsv.IsVisible && obsv.AltDeg <= 0 {
			t.Fatalf("step %d: IsVisible true but altitude %f <= 0", i, obsv.AltDeg)
		}
	}
}

// Invariant 12 (spec §8): once a Track has transitioned to Dead, it stays
// Dead and every subsequent observation carries the sentinel position and
// the last-known azimuth/elevation rather than a bare (0, 0).
func TestTrack_DeadStateIsIdempotentAndRemembersLastAltAz(t *testing.T) {
	tr := &Track{
		Name:       "DECAYED-1",
		state:      Dead,
		lastAltDeg: 12.5,
		lastAzDeg:  200.0,
		haveLast:   true,
	}
	obs := Observer{LatDeg: 0, LonDeg: 0}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		o := tr.Propagate(now, obs)
		if o.State != Dead {
			t.Fatalf("call %d: expected Dead state, got %v", i, o.State)
		}
		if o.IsVisible {
			t.Fatalf("call %d: dead satellite must not be visible", i)
		}
		if o.X != 0 || o.Y != -sceneRadius || o.Z != 0 {
			t.Fatalf("call %d: expected sentinel position, got (%f, %f, %f)", i, o.X, o.Y, o.Z)
		}
		if o.AltDeg != 12.5 || o.AzDeg != 200.0 {
			t.Fatalf("call %d: expected last-known alt/az preserved, got (%f, %f)", i, o.AltDeg, o.AzDeg)
		}
	}
}

func TestTrack_DeadSentinelWithoutPriorObservation(t *testing.T) {
	tr := &Track{Name: "NEVER-PROPAGATED", state: Dead}
	o := tr.Propagate(time.Now(), Observer{})
	if o.AltDeg != 0 || o.AzDeg != 0 {
		t.Errorf("expected zero alt/az placeholder when no prior observation exists, got (%f, %f)", o.AltDeg, o.AzDeg)
	}
	if o.IsVisible {
		t.Error("dead satellite with no history must not be visible")
	}
}

func TestSunlit_DaySideIsSunlit(t *testing.T) {
	// Satellite on the same side as the Sun, far beyond Earth's radius:
	// the ray toward the Sun never crosses Earth.
	posTEME := [3]float64{7000, 0, 0}
	sunDir := [3]float64{1, 0, 0}
	if !sunlit(posTEME, sunDir) {
		t.Error("satellite on the day side must be sunlit")
	}
}

func TestSunlit_NightSideBehindEarthIsShadowed(t *testing.T) {
	// Satellite directly behind Earth relative to the Sun: the Sun is in
	// the +X direction, the satellite sits on the -X side close to Earth,
	// so the ray from the satellite toward the Sun must cross Earth.
	posTEME := [3]float64{-7000, 0, 0}
	sunDir := [3]float64{1, 0, 0}
	if sunlit(posTEME, sunDir) {
		t.Error("satellite behind Earth relative to the Sun must be in shadow")
	}
}

func TestFinite3(t *testing.T) {
	if !finite3([3]float64{1, 2, 3}) {
		t.Error("finite vector reported non-finite")
	}
	if finite3([3]float64{math.NaN(), 0, 0}) {
		t.Error("NaN component reported finite")
	}
	if finite3([3]float64{math.Inf(1), 0, 0}) {
		t.Error("Inf component reported finite")
	}
}

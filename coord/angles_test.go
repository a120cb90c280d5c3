package coord

import (
	"math"
	"testing"
)

func TestSeparationAngle_ZeroVectors(t *testing.T) {
	sep := SeparationAngle([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	if sep != 0 {
		t.Errorf("zero vector: got %f, want 0", sep)
	}
}

func TestSeparationAngle_Parallel(t *testing.T) {
	sep := SeparationAngle([3]float64{1, 0, 0}, [3]float64{2, 0, 0})
	if math.Abs(sep) > 1e-12 {
		t.Errorf("parallel: got %f, want 0", sep)
	}
}

func TestSeparationAngle_Perpendicular(t *testing.T) {
	sep := SeparationAngle([3]float64{1, 0, 0}, [3]float64{0, 1, 0})
	if math.Abs(sep-90.0) > 1e-12 {
		t.Errorf("perpendicular: got %f, want 90", sep)
	}
}

func TestSeparationAngle_Antiparallel(t *testing.T) {
	sep := SeparationAngle([3]float64{1, 0, 0}, [3]float64{-1, 0, 0})
	if math.Abs(sep-180.0) > 1e-12 {
		t.Errorf("antiparallel: got %f, want 180", sep)
	}
}

func TestSeparationAngle_SmallAngle(t *testing.T) {
	// Nearly parallel vectors — tests numerical stability
	a := [3]float64{1, 0, 0}
	b := [3]float64{1, 1e-10, 0}
	sep := SeparationAngle(a, b)
	expected := math.Atan2(1e-10, 1) * rad2deg
	if math.Abs(sep-expected) > 1e-8 {
		t.Errorf("small angle: got %.15e, want %.15e", sep, expected)
	}
}

func TestPhaseAngle_FullyLit(t *testing.T) {
	// Observer and sun on same side of target
	obsToTarget := [3]float64{1, 0, 0}
	sunToTarget := [3]float64{1, 0, 0}
	pa := PhaseAngle(obsToTarget, sunToTarget)
	if math.Abs(pa) > 1e-12 {
		t.Errorf("fully lit: got %f, want 0", pa)
	}
}

func TestPhaseAngle_HalfLit(t *testing.T) {
	obsToTarget := [3]float64{1, 0, 0}
	sunToTarget := [3]float64{0, 1, 0}
	pa := PhaseAngle(obsToTarget, sunToTarget)
	if math.Abs(pa-90) > 1e-12 {
		t.Errorf("half lit: got %f, want 90", pa)
	}
}

func TestPhaseAngle_OppositeSides(t *testing.T) {
	obsToTarget := [3]float64{1, 0, 0}
	sunToTarget := [3]float64{-1, 0, 0}
	pa := PhaseAngle(obsToTarget, sunToTarget)
	if math.Abs(pa-180) > 1e-12 {
		t.Errorf("opposite: got %f, want 180", pa)
	}
}

func TestFractionIlluminated_Values(t *testing.T) {
	tests := []struct {
		phase float64
		want  float64
	}{
		{0, 1.0},
		{90, 0.5},
		{180, 0.0},
		{60, 0.75},
	}
	for _, tc := range tests {
		got := FractionIlluminated(tc.phase)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("FractionIlluminated(%f) = %f, want %f", tc.phase, got, tc.want)
		}
	}
}

func TestPositionAngle_NorthSouth(t *testing.T) {
	// Two points on the same RA, different Dec: PA should be 0 (north) or 180 (south)
	pa := PositionAngle(6, 0, 6, 10)
	if math.Abs(pa) > 1e-10 {
		t.Errorf("due north: got %f, want 0", pa)
	}

	pa = PositionAngle(6, 10, 6, 0)
	if math.Abs(pa-180) > 1e-10 {
		t.Errorf("due south: got %f, want 180", pa)
	}
}

func TestPositionAngle_East(t *testing.T) {
	// At equator, increasing RA = east = PA 90°
	pa := PositionAngle(6, 0, 6.01, 0)
	if math.Abs(pa-90) > 0.1 {
		t.Errorf("east: got %f, want ~90", pa)
	}
}

func TestElongation_KnownValues(t *testing.T) {
	tests := []struct {
		target, ref, want float64
	}{
		{90, 0, 90},
		{0, 90, 270},
		{180, 0, 180},
		{10, 350, 20},
		{350, 10, 340},
	}
	for _, tc := range tests {
		got := Elongation(tc.target, tc.ref)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Elongation(%f, %f) = %f, want %f", tc.target, tc.ref, got, tc.want)
		}
	}
}

func BenchmarkSeparationAngle(b *testing.B) {
	a := [3]float64{1e8, -5e7, 2e7}
	v := [3]float64{-3e7, 4e7, 1e7}
	for i := 0; i < b.N; i++ {
		SeparationAngle(a, v)
	}
}

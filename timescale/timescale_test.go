package timescale

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate_J2000(t *testing.T) {
	jd := JulianDate(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(jd-2451545.0) > 1e-9 {
		t.Errorf("J2000 JD = %.10f, want 2451545.0", jd)
	}
}

func TestJulianDate_UnixEpoch(t *testing.T) {
	jd := JulianDate(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC))
	if math.Abs(jd-2440587.5) > 1e-9 {
		t.Errorf("Unix epoch JD = %.10f, want 2440587.5", jd)
	}
}

func TestJulianDate_JanuaryFebruaryReduction(t *testing.T) {
	// 1987-01-27 00:00 UTC, Meeus example 7.a: JD = 2446822.5
	jd := JulianDate(time.Date(1987, 1, 27, 0, 0, 0, 0, time.UTC))
	if math.Abs(jd-2446822.5) > 1e-9 {
		t.Errorf("JD = %.10f, want 2446822.5", jd)
	}
}

func TestJulianDate_SubSecond(t *testing.T) {
	t0 := JulianDate(time.Date(2024, 6, 15, 12, 0, 0, 500000000, time.UTC))
	t1 := JulianDate(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	diffSec := (t0 - t1) * SecPerDay
	// A float64 JD near 2.46e6 has a spacing of about 40 µs, so the
	// difference of two such values is only good to that order.
	if math.Abs(diffSec-0.5) > 1e-4 {
		t.Errorf("sub-second diff: got %.9f s, want 0.5 s", diffSec)
	}
}

func TestFromUnix(t *testing.T) {
	jd := FromUnix(0)
	if math.Abs(jd-2440587.5) > 1e-9 {
		t.Errorf("FromUnix(0) = %.10f, want 2440587.5", jd)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 18, 2, 34, 0, 0, time.UTC),
		time.Date(1582, 10, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, want := range cases {
		jd := JulianDate(want)
		got := ToTime(jd)
		if got.Year() != want.Year() || got.Month() != want.Month() || got.Day() != want.Day() ||
			got.Hour() != want.Hour() || got.Minute() != want.Minute() {
			t.Errorf("round trip %v -> JD %.6f -> %v", want, jd, got)
		}
	}
}

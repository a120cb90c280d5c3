// Package timescale converts civil instants to the Julian Date scale used
// throughout the engine.
//
// This implementation deliberately does not distinguish UTC/TT/UT1: the
// spec's non-goals exclude sub-arcsecond reductions, and GMST (package
// coord) already uses the plain IAU 1982 polynomial rather than a
// leap-second-aware precession/nutation chain. Every Julian Date produced
// here is treated as good enough for GMST, Kepler propagation, and SGP4
// alike, matching the "scene-scale, not professional-grade" framing of the
// specification.
package timescale

import "time"

// SecPerDay is the number of seconds in a day.
const SecPerDay = 86400.0

// unixEpochJD is the Julian Date of the Unix epoch, 1970-01-01T00:00:00 UTC.
const unixEpochJD = 2440587.5

// JulianDate converts a civil instant (interpreted as UTC) to a Julian Date.
//
// Uses the standard Gregorian calendar algorithm (Meeus, Astronomical
// Algorithms ch. 7): January and February are treated as months 13 and 14
// of the preceding year, and the Gregorian reform correction
// b = 2 - floor(y/100) + floor(y/400) is applied.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
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
		(float64(t.Hour())*3600+float64(t.Minute())*60+float64(t.Second())+float64(t.Nanosecond())/1e9)/SecPerDay

	jd := float64(int(365.25*float64(y+4716))) +
		float64(int(30.6001*float64(m+1))) +
		dayFrac + float64(b) - 1524.5

	return jd
}

// FromUnix converts a Unix timestamp (seconds since epoch) to a Julian Date.
func FromUnix(unixSec float64) float64 {
	return unixEpochJD + unixSec/SecPerDay
}

// ToTime converts a Julian Date back to a civil UTC time.Time.
//
// Standard JD-to-calendar algorithm (Meeus ch. 7), used by the almanac
// package to turn the Julian Dates of found events back into instants.
func ToTime(jd float64) time.Time {
	jd += 0.5
	z := float64(int(jd))
	f := jd - z

	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := float64(int((z - 1867216.25) / 36524.25))
		a = z + 1 + alpha - float64(int(alpha/4))
	}

	b := a + 1524
	c := float64(int((b - 122.1) / 365.25))
	d := float64(int(365.25 * c))
	e := float64(int((b - d) / 30.6001))

	dayFrac := b - d - float64(int(30.6001*e)) + f
	day := int(dayFrac)
	fracDay := dayFrac - float64(day)

	var month, year int
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	totalSec := fracDay * SecPerDay
	hour := int(totalSec / 3600.0)
	totalSec -= float64(hour) * 3600.0
	minute := int(totalSec / 60.0)
	sec := totalSec - float64(minute)*60.0
	wholeSec := int(sec)
	nsec := int((sec - float64(wholeSec)) * 1e9)

	return time.Date(year, time.Month(month), day, hour, minute, wholeSec, nsec, time.UTC)
}

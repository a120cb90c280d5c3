// Package almanac implements the meteor-shower and event engine (component
// C8): which showers are active on a given date, where a shower's radiant
// projects to in an observer's sky, and the sorted list of upcoming
// astronomical events (moon phases, meteor-shower peaks, solstices and
// equinoxes).
//
// Grounded on the teacher's own almanac package (Seasons/MoonPhases via
// search.FindDiscrete root-finding on ecliptic longitude), re-pointed at
// the ephemeris package's Sun/Moon functions now that the teacher's
// spk.SPK binary-ephemeris reader has been retired (no SPK kernel file
// ships with this implementation).
package almanac

import (
	"math"
	"sort"
	"time"

	"github.com/anupshinde/orrery/coord"
	"github.com/anupshinde/orrery/ephemeris"
	"github.com/anupshinde/orrery/search"
	"github.com/anupshinde/orrery/timescale"
)

// Moon phase values returned in search.DiscreteEvent.NewValue by MoonPhases.
const (
	NewMoon      = 0 // Moon-Sun elongation crosses 0°
	FirstQuarter = 1 // Moon-Sun elongation crosses 90°
	FullMoon     = 2 // Moon-Sun elongation crosses 180°
	LastQuarter  = 3 // Moon-Sun elongation crosses 270°
)

// Season values returned in search.DiscreteEvent.NewValue by Seasons.
const (
	SpringEquinox  = 0 // Sun ecliptic longitude crosses 0°
	SummerSolstice = 1 // Sun ecliptic longitude crosses 90°
	AutumnEquinox  = 2 // Sun ecliptic longitude crosses 180°
	WinterSolstice = 3 // Sun ecliptic longitude crosses 270°
)

const sceneRadius = 100.0

// MeteorShower is one named annual meteor shower: its active window, peak
// date, radiant, and rate/speed statistics (spec §3 data model).
//
// PeakMonth/PeakDay name the shower's peak; the Active* fields bound the
// window during which the shower is considered active at all. Per spec
// §3's invariant, that window may wrap the year boundary (active start
// after active end in calendar order), which ActiveOn handles explicitly.
type MeteorShower struct {
	ID   string
	Name string

	PeakMonth, PeakDay               int
	ActiveStartMonth, ActiveStartDay int
	ActiveEndMonth, ActiveEndDay     int

	ZHR            float64
	RadiantRAHours float64
	RadiantDecDeg  float64
	ParentBody     string
	SpeedKmS       float64
}

// ActiveOn reports whether the shower is active on the given calendar
// month/day, handling the case where the active window wraps the year
// boundary (e.g. Quadrantids: Dec 28 - Jan 12).
func (s MeteorShower) ActiveOn(month, day int) bool {
	start := month*100 + day
	lo := s.ActiveStartMonth*100 + s.ActiveStartDay
	hi := s.ActiveEndMonth*100 + s.ActiveEndDay
	if lo <= hi {
		return start >= lo && start <= hi
	}
	// Wraps the year boundary: active iff on-or-after the start OR
	// on-or-before the end.
	return start >= lo || start <= hi
}

// Showers is the static table of major annual meteor showers this
// implementation ships (spec.md names the MeteorShower type and the
// active_showers/project_radiant operations but does not mandate a specific
// catalog). IAU-published radiant/ZHR/speed figures. The Quadrantids and
// Ursids exercise the year-wraparound ActiveOn case (spec §8 property 11).
var Showers = []MeteorShower{
	{
		ID: "quadrantids", Name: "Quadrantids",
		PeakMonth: 1, PeakDay: 3,
		ActiveStartMonth: 12, ActiveStartDay: 28,
		ActiveEndMonth: 1, ActiveEndDay: 12,
		ZHR: 120, RadiantRAHours: 15.333, RadiantDecDeg: 49.5,
		ParentBody: "2003 EH1", SpeedKmS: 41,
	},
	{
		ID: "lyrids", Name: "Lyrids",
		PeakMonth: 4, PeakDay: 22,
		ActiveStartMonth: 4, ActiveStartDay: 16,
		ActiveEndMonth: 4, ActiveEndDay: 25,
		ZHR: 18, RadiantRAHours: 18.133, RadiantDecDeg: 33.6,
		ParentBody: "C/1861 G1 Thatcher", SpeedKmS: 49,
	},
	{
		ID: "eta_aquariids", Name: "Eta Aquariids",
		PeakMonth: 5, PeakDay: 6,
		ActiveStartMonth: 4, ActiveStartDay: 19,
		ActiveEndMonth: 5, ActiveEndDay: 28,
		ZHR: 50, RadiantRAHours: 22.467, RadiantDecDeg: -1.0,
		ParentBody: "1P/Halley", SpeedKmS: 66,
	},
	{
		ID: "perseids", Name: "Perseids",
		PeakMonth: 8, PeakDay: 12,
		ActiveStartMonth: 7, ActiveStartDay: 17,
		ActiveEndMonth: 8, ActiveEndDay: 24,
		ZHR: 100, RadiantRAHours: 3.133, RadiantDecDeg: 58.0,
		ParentBody: "109P/Swift-Tuttle", SpeedKmS: 59,
	},
	{
		ID: "orionids", Name: "Orionids",
		PeakMonth: 10, PeakDay: 21,
		ActiveStartMonth: 10, ActiveStartDay: 2,
		ActiveEndMonth: 11, ActiveEndDay: 7,
		ZHR: 20, RadiantRAHours: 6.333, RadiantDecDeg: 15.6,
		ParentBody: "1P/Halley", SpeedKmS: 66,
	},
	{
		ID: "leonids", Name: "Leonids",
		PeakMonth: 11, PeakDay: 17,
		ActiveStartMonth: 11, ActiveStartDay: 6,
		ActiveEndMonth: 11, ActiveEndDay: 30,
		ZHR: 15, RadiantRAHours: 10.2, RadiantDecDeg: 21.6,
		ParentBody: "55P/Tempel-Tuttle", SpeedKmS: 71,
	},
	{
		ID: "geminids", Name: "Geminids",
		PeakMonth: 12, PeakDay: 14,
		ActiveStartMonth: 12, ActiveStartDay: 4,
		ActiveEndMonth: 12, ActiveEndDay: 17,
		ZHR: 150, RadiantRAHours: 7.533, RadiantDecDeg: 32.3,
		ParentBody: "3200 Phaethon", SpeedKmS: 35,
	},
	{
		ID: "ursids", Name: "Ursids",
		PeakMonth: 12, PeakDay: 22,
		ActiveStartMonth: 12, ActiveStartDay: 17,
		ActiveEndMonth: 12, ActiveEndDay: 26,
		ZHR: 10, RadiantRAHours: 14.533, RadiantDecDeg: 75.8,
		ParentBody: "8P/Tuttle", SpeedKmS: 33,
	},
}

// ActiveShowers returns every shower in Showers whose active window
// contains instant's calendar date.
func ActiveShowers(instant time.Time) []MeteorShower {
	instant = instant.UTC()
	month, day := int(instant.Month()), instant.Day()

	var active []MeteorShower
	for _, s := range Showers {
		if s.ActiveOn(month, day) {
			active = append(active, s)
		}
	}
	return active
}

// RadiantProjection is a meteor shower's radiant projected into an
// observer's local sky at one instant (spec §4.8's project_radiant).
type RadiantProjection struct {
	Shower MeteorShower

	AltDeg, AzDeg float64
	X, Y, Z       float64
	IsActive      bool
}

// ProjectRadiant converts a shower's radiant (RA/Dec) to horizontal and
// scene-sphere Cartesian coordinates for the given observer and instant,
// and reports whether the shower is active on that date.
func ProjectRadiant(shower MeteorShower, latDeg, lonDeg float64, instant time.Time) RadiantProjection {
	jd := timescale.JulianDate(instant)
	lst := coord.LSTHours(coord.GMSTHours(jd), lonDeg)
	alt, az := coord.EquatorialToHorizontal(shower.RadiantRAHours, shower.RadiantDecDeg, latDeg, lst)
	x, y, z := coord.HorizontalToCartesian(alt, az, sceneRadius)

	active := false
	for _, s := range ActiveShowers(instant) {
		if s.ID == shower.ID {
			active = true
			break
		}
	}

	return RadiantProjection{
		Shower: shower,
		AltDeg: alt, AzDeg: az,
		X: x, Y: y, Z: z,
		IsActive: active,
	}
}

// EventKind names the four kinds of upcoming events spec §4.8 enumerates.
type EventKind string

const (
	EventMoonPhase  EventKind = "moon_phase"
	EventMeteorPeak EventKind = "meteor_peak"
	EventSolstice   EventKind = "solstice"
	EventEquinox    EventKind = "equinox"
)

// Event is one entry in the sorted list UpcomingEvents returns.
type Event struct {
	Kind    EventKind
	Name    string
	Instant time.Time
}

// moonPhaseNames maps MoonPhases' NewValue to the display name used in
// Event.Name.
var moonPhaseNames = map[int]string{
	NewMoon:      "New Moon",
	FirstQuarter: "First Quarter",
	FullMoon:     "Full Moon",
	LastQuarter:  "Last Quarter",
}

// seasonNames maps Seasons' NewValue to the display name and event kind.
var seasonNames = map[int]struct {
	name string
	kind EventKind
}{
	SpringEquinox:  {"March Equinox", EventEquinox},
	SummerSolstice: {"June Solstice", EventSolstice},
	AutumnEquinox:  {"September Equinox", EventEquinox},
	WinterSolstice: {"December Solstice", EventSolstice},
}

// MoonPhases finds new moons, first quarters, full moons, and last quarters
// in the given TDB Julian date range, by root-finding on the Moon-Sun
// ecliptic-longitude difference (spec §4.8's "monotone root-find on the
// signed phase difference").
func MoonPhases(startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		diff := ephemeris.MoonEclipticLongitudeDeg(tdbJD) - ephemeris.SunEclipticLongitudeDeg(tdbJD)
		diff = math.Mod(diff, 360.0)
		if diff < 0 {
			diff += 360.0
		}
		return int(math.Floor(diff/90.0)) % 4
	}
	return search.FindDiscrete(startJD, endJD, 5.0, f, 0)
}

// Seasons finds equinoxes and solstices in the given TDB Julian date range,
// by root-finding on the Sun's ecliptic longitude.
func Seasons(startJD, endJD float64) ([]search.DiscreteEvent, error) {
	f := func(tdbJD float64) int {
		lon := ephemeris.SunEclipticLongitudeDeg(tdbJD)
		if lon < 0 {
			lon += 360.0
		}
		return int(math.Floor(lon/90.0)) % 4
	}
	return search.FindDiscrete(startJD, endJD, 15.0, f, 0)
}

// UpcomingEvents enumerates moon-phase, meteor-shower-peak, solstice and
// equinox events within [from, from+daysAhead], sorted ascending by
// instant with ties broken by kind then name (spec §4.8).
func UpcomingEvents(from time.Time, daysAhead float64) []Event {
	from = from.UTC()
	startJD := timescale.JulianDate(from)
	endJD := startJD + daysAhead

	var events []Event

	if phaseEvents, err := MoonPhases(startJD, endJD); err == nil {
		for _, e := range phaseEvents {
			events = append(events, Event{
				Kind:    EventMoonPhase,
				Name:    moonPhaseNames[e.NewValue],
				Instant: timescale.ToTime(e.T),
			})
		}
	}

	if seasonEvents, err := Seasons(startJD, endJD); err == nil {
		for _, e := range seasonEvents {
			info := seasonNames[e.NewValue]
			events = append(events, Event{
				Kind:    info.kind,
				Name:    info.name,
				Instant: timescale.ToTime(e.T),
			})
		}
	}

	for _, s := range Showers {
		for _, year := range []int{from.Year(), from.Year() + 1} {
			peak := time.Date(year, time.Month(s.PeakMonth), s.PeakDay, 0, 0, 0, 0, time.UTC)
			if !peak.Before(from) && peak.Sub(from).Hours() <= daysAhead*24.0 {
				events = append(events, Event{
					Kind:    EventMeteorPeak,
					Name:    s.Name + " peak",
					Instant: peak,
				})
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Instant.Equal(events[j].Instant) {
			return events[i].Instant.Before(events[j].Instant)
		}
		if events[i].Kind != events[j].Kind {
			return events[i].Kind < events[j].Kind
		}
		return events[i].Name < events[j].Name
	})
	return events
}

package ephemeris

import "github.com/anupshinde/orrery/kepler"

// planetElements pairs a body's J2000 mean osculating orbital elements with
// its NAIF body ID (needed by the magnitude package's phase-curve tables).
type planetElements struct {
	elements kepler.OrbitalElements
	naifID   int
}

// j2000JD is the Julian date of the J2000.0 epoch, the epoch all elements
// below are referred to.
const j2000JD = 2451545.0

// meanElements holds J2000 mean heliocentric ecliptic orbital elements for
// Mercury through Pluto (Earth's own elements live in earthElements, used to
// convert Sun-relative positions to geocentric). These are low-precision
// "osculating at J2000, linear mean-anomaly growth" elements in the style of
// the simplified planet models shipped by codymj-celestia — not VSOP87, but
// sufficient for a scene-scale, non-professional-grade renderer (spec's own
// framing for C3's approximated bodies).
var meanElements = map[Body]planetElements{
	Mercury: {naifID: 1, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 0.38709927, Eccentricity: 0.20563593,
		InclinationDeg: 7.00497902, LongAscNodeDeg: 48.33076593,
		ArgPeriapsisDeg: 29.12427, MeanAnomalyDeg: 174.79252,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 87.9691,
	}},
	Venus: {naifID: 2, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 0.72333566, Eccentricity: 0.00677672,
		InclinationDeg: 3.39467605, LongAscNodeDeg: 76.67984255,
		ArgPeriapsisDeg: 54.85229, MeanAnomalyDeg: 50.41569,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 224.7008,
	}},
	Mars: {naifID: 4, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 1.52371034, Eccentricity: 0.09339410,
		InclinationDeg: 1.84969142, LongAscNodeDeg: 49.55953891,
		ArgPeriapsisDeg: 286.53706, MeanAnomalyDeg: 19.37320,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 686.9796,
	}},
	Jupiter: {naifID: 5, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 5.20288700, Eccentricity: 0.04838624,
		InclinationDeg: 1.30439695, LongAscNodeDeg: 100.47390909,
		ArgPeriapsisDeg: 273.86740, MeanAnomalyDeg: 20.02019,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 4332.8201,
	}},
	Saturn: {naifID: 6, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 9.53667594, Eccentricity: 0.05386179,
		InclinationDeg: 2.48599187, LongAscNodeDeg: 113.66242448,
		ArgPeriapsisDeg: 339.39164, MeanAnomalyDeg: 317.02070,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 10759.2261,
	}},
	Uranus: {naifID: 7, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 19.18916464, Eccentricity: 0.04725744,
		InclinationDeg: 0.77263783, LongAscNodeDeg: 74.01692503,
		ArgPeriapsisDeg: 96.99886, MeanAnomalyDeg: 142.23829,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 30688.5,
	}},
	Neptune: {naifID: 8, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 30.06992276, Eccentricity: 0.00859048,
		InclinationDeg: 1.77004347, LongAscNodeDeg: 131.78422574,
		ArgPeriapsisDeg: 276.33650, MeanAnomalyDeg: 256.22480,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 60182.0,
	}},
	Pluto: {naifID: 9, elements: kepler.OrbitalElements{
		SemiMajorAxisAU: 39.48211675, Eccentricity: 0.24882730,
		InclinationDeg: 17.14001206, LongAscNodeDeg: 110.30393684,
		ArgPeriapsisDeg: 113.76329, MeanAnomalyDeg: 14.53,
		EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 90560.0,
	}},
}

// earthElements are Earth's own J2000 mean heliocentric ecliptic elements,
// used to subtract the Earth vector from a planet's heliocentric position
// and obtain a geocentric apparent position (spec §4.5's "callers that need
// geocentric positions MUST subtract the Earth vector").
var earthElements = kepler.OrbitalElements{
	SemiMajorAxisAU: 1.00000261, Eccentricity: 0.01671123,
	InclinationDeg: 0.0, LongAscNodeDeg: 0.0,
	ArgPeriapsisDeg: 102.93768, MeanAnomalyDeg: 357.52911,
	EpochJD: j2000JD, MeanMotionDegPerDay: 360.0 / 365.25636,
}

// Package constellation identifies which of the 88 IAU constellations is
// closest to a given sky position, and maps between full names and 3-letter
// abbreviations.
//
// The original IAU boundary data (Roman 1987, CDS catalog VI/42) used for
// point-in-polygon lookup is not available to this implementation, so
// nearest-center classification is used instead: each constellation is
// represented by one approximate central point, and a query position is
// assigned to whichever center is angularly closest. This is accurate near
// the middle of a constellation and can disagree with the true IAU boundary
// near an edge — callers that need boundary-exact classification should
// replace Nearest with a real point-in-polygon lookup against the Roman
// 1987 data.
package constellation

import "math"

// Nearest returns the IAU 3-letter abbreviation of the constellation whose
// approximate center is angularly closest to the given position. raHours is
// right ascension in hours [0, 24) and decDeg is declination in degrees
// [-90, 90].
func Nearest(raHours, decDeg float64) string {
	best := ""
	bestSep := math.Inf(1)
	raRad := raHours * 15.0 * math.Pi / 180.0
	decRad := decDeg * math.Pi / 180.0
	sinDec, cosDec := math.Sin(decRad), math.Cos(decRad)

	for _, c := range centers {
		cRaRad := c.ra * 15.0 * math.Pi / 180.0
		cDecRad := c.dec * math.Pi / 180.0
		cosSep := sinDec*math.Sin(cDecRad) + cosDec*math.Cos(cDecRad)*math.Cos(raRad-cRaRad)
		if cosSep > 1 {
			cosSep = 1
		} else if cosSep < -1 {
			cosSep = -1
		}
		sep := math.Acos(cosSep)
		if sep < bestSep {
			bestSep = sep
			best = c.abbr
		}
	}
	return best
}

// Name returns the full name for a constellation abbreviation.
// Returns empty string if the abbreviation is not recognized.
func Name(abbr string) string {
	name, ok := nameMap[abbr]
	if !ok {
		return ""
	}
	return name
}

// Abbreviation returns the 3-letter IAU abbreviation for a constellation name.
// Returns empty string if the name is not recognized.
func Abbreviation(name string) string {
	abbr, ok := abbrMap[name]
	if !ok {
		return ""
	}
	return abbr
}

// Names returns a copy of all 88 constellation abbreviation-name pairs.
func Names() [][2]string {
	result := make([][2]string, len(constellationNames))
	copy(result, constellationNames[:])
	return result
}

// constellationNames maps abbreviation to full name for all 88 IAU constellations.
var constellationNames = [88][2]string{
	{"And", "Andromeda"},
	{"Ant", "Antlia"},
	{"Aps", "Apus"},
	{"Aql", "Aquila"},
	{"Aqr", "Aquarius"},
	{"Ara", "Ara"},
	{"Ari", "Aries"},
	{"Aur", "Auriga"},
	{"Boo", "Bootes"},
	{"CMa", "Canis Major"},
	{"CMi", "Canis Minor"},
	{"CVn", "Canes Venatici"},
	{"Cae", "Caelum"},
	{"Cam", "Camelopardalis"},
	{"Cap", "Capricornus"},
	{"Car", "Carina"},
	{"Cas", "Cassiopeia"},
	{"Cen", "Centaurus"},
	{"Cep", "Cepheus"},
	{"Cet", "Cetus"},
	{"Cha", "Chamaeleon"},
	{"Cir", "Circinus"},
	{"Cnc", "Cancer"},
	{"Col", "Columba"},
	{"Com", "Coma Berenices"},
	{"CrA", "Corona Australis"},
	{"CrB", "Corona Borealis"},
	{"Crt", "Crater"},
	{"Cru", "Crux"},
	{"Crv", "Corvus"},
	{"Cyg", "Cygnus"},
	{"Del", "Delphinus"},
	{"Dor", "Dorado"},
	{"Dra", "Draco"},
	{"Equ", "Equuleus"},
	{"Eri", "Eridanus"},
	{"For", "Fornax"},
	{"Gem", "Gemini"},
	{"Gru", "Grus"},
	{"Her", "Hercules"},
	{"Hor", "Horologium"},
	{"Hya", "Hydra"},
	{"Hyi", "Hydrus"},
	{"Ind", "Indus"},
	{"LMi", "Leo Minor"},
	{"Lac", "Lacerta"},
	{"Leo", "Leo"},
	{"Lep", "Lepus"},
	{"Lib", "Libra"},
	{"Lup", "Lupus"},
	{"Lyn", "Lynx"},
	{"Lyr", "Lyra"},
	{"Men", "Mensa"},
	{"Mic", "Microscopium"},
	{"Mon", "Monoceros"},
	{"Mus", "Musca"},
	{"Nor", "Norma"},
	{"Oct", "Octans"},
	{"Oph", "Ophiuchus"},
	{"Ori", "Orion"},
	{"Pav", "Pavo"},
	{"Peg", "Pegasus"},
	{"Per", "Perseus"},
	{"Phe", "Phoenix"},
	{"Pic", "Pictor"},
	{"PsA", "Piscis Austrinus"},
	{"Psc", "Pisces"},
	{"Pup", "Puppis"},
	{"Pyx", "Pyxis"},
	{"Ret", "Reticulum"},
	{"Scl", "Sculptor"},
	{"Sco", "Scorpius"},
	{"Sct", "Scutum"},
	{"Ser", "Serpens"},
	{"Sex", "Sextans"},
	{"Sge", "Sagitta"},
	{"Sgr", "Sagittarius"},
	{"Tau", "Taurus"},
	{"Tel", "Telescopium"},
	{"TrA", "Triangulum Australe"},
	{"Tri", "Triangulum"},
	{"Tuc", "Tucana"},
	{"UMa", "Ursa Major"},
	{"UMi", "Ursa Minor"},
	{"Vel", "Vela"},
	{"Vir", "Virgo"},
	{"Vol", "Volans"},
	{"Vul", "Vulpecula"},
}

// center is an approximate central point for a constellation, in hours/degrees.
type center struct {
	abbr string
	ra   float64
	dec  float64
}

// centers gives one representative point per constellation for
// nearest-center classification. Values are approximate midpoints of each
// constellation's commonly drawn figure, not IAU boundary centroids.
var centers = []center{
	{"And", 1.0, 38}, {"Ant", 10.3, -32}, {"Aps", 16.1, -76}, {"Aql", 19.6, 3},
	{"Aqr", 22.3, -10}, {"Ara", 17.4, -56}, {"Ari", 2.6, 20}, {"Aur", 6.0, 42},
	{"Boo", 14.7, 31}, {"CMa", 6.8, -22}, {"CMi", 7.6, 6}, {"CVn", 13.1, 40},
	{"Cae", 4.7, -38}, {"Cam", 6.0, 70}, {"Cap", 21.0, -18}, {"Car", 8.7, -63},
	{"Cas", 1.0, 62}, {"Cen", 13.0, -47}, {"Cep", 22.0, 70}, {"Cet", 1.7, -8},
	{"Cha", 10.7, -79}, {"Cir", 14.6, -63}, {"Cnc", 8.6, 20}, {"Col", 5.9, -35},
	{"Com", 12.8, 23}, {"CrA", 18.6, -41}, {"CrB", 15.8, 32}, {"Crt", 11.4, -16},
	{"Cru", 12.4, -60}, {"Crv", 12.4, -18}, {"Cyg", 20.6, 42}, {"Del", 20.7, 12},
	{"Dor", 5.2, -59}, {"Dra", 17.0, 65}, {"Equ", 21.2, 8}, {"Eri", 3.3, -28},
	{"For", 2.8, -32}, {"Gem", 7.1, 23}, {"Gru", 22.5, -46}, {"Her", 17.4, 27},
	{"Hor", 3.3, -53}, {"Hya", 10.5, -16}, {"Hyi", 2.3, -70}, {"Ind", 21.3, -58},
	{"LMi", 10.3, 33}, {"Lac", 22.4, 46}, {"Leo", 10.7, 13}, {"Lep", 5.6, -19},
	{"Lib", 15.2, -15}, {"Lup", 15.3, -42}, {"Lyn", 7.8, 48}, {"Lyr", 18.9, 37},
	{"Men", 5.5, -77}, {"Mic", 20.9, -37}, {"Mon", 7.0, -3}, {"Mus", 12.6, -70},
	{"Nor", 16.0, -52}, {"Oct", 22.0, -82}, {"Oph", 17.2, -8}, {"Ori", 5.5, 5},
	{"Pav", 19.6, -65}, {"Peg", 22.7, 19}, {"Per", 3.3, 45}, {"Phe", 0.9, -48},
	{"Pic", 5.7, -53}, {"PsA", 22.3, -30}, {"Psc", 0.5, 10}, {"Pup", 7.3, -31},
	{"Pyx", 8.9, -27}, {"Ret", 3.9, -60}, {"Scl", 0.4, -32}, {"Sco", 16.9, -27},
	{"Sct", 18.6, -10}, {"Ser", 16.0, 6}, {"Sex", 10.2, -2}, {"Sge", 19.6, 18},
	{"Sgr", 19.1, -28}, {"Tau", 4.7, 15}, {"Tel", 19.3, -51}, {"TrA", 16.1, -65},
	{"Tri", 2.2, 32}, {"Tuc", 23.8, -65}, {"UMa", 11.3, 50}, {"UMi", 15.0, 77},
	{"Vel", 9.5, -47}, {"Vir", 13.4, -4}, {"Vol", 7.8, -69}, {"Vul", 20.2, 24},
}

// nameMap and abbrMap are built at init time.
var (
	nameMap map[string]string
	abbrMap map[string]string
)

func init() {
	nameMap = make(map[string]string, 88)
	abbrMap = make(map[string]string, 88)
	for _, pair := range constellationNames {
		nameMap[pair[0]] = pair[1]
		abbrMap[pair[1]] = pair[0]
	}
}

// Package catalog loads the two static inputs of the planetarium engine: a
// delimited star catalog and a JSON deep-sky-object list. Both loaders
// fail soft on a per-row/per-entry basis — a handful of malformed lines
// never aborts the whole catalog — and the package falls back to a small
// bundled sample when no catalog can be parsed at all.
package catalog

import (
	"bufio"
	"encoding/csv"
	"encoding/gob"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrCatalogParse indicates a star or deep-sky source could not be parsed
// at all (as opposed to individual rows being skipped).
var ErrCatalogParse = errors.New("catalog: parse failure")

// ErrCatalogFetch indicates a remote catalog source could not be retrieved.
var ErrCatalogFetch = errors.New("catalog: fetch failure")

// StarRecord is an immutable catalog entry for a fixed star, as produced by
// LoadStarCSV. Display name and spectral class are already resolved; only
// the HYG astrometric fields (parallax and proper motion) are optional.
type StarRecord struct {
	ID            int
	Name          string
	RAHours       float64
	DecDeg        float64
	ApparentMag   float64
	SpectralClass string

	// HasAstrometry is true when the optional HYG columns (pmra, pmdec,
	// dist) were present and parsed successfully, enabling proper-motion
	// propagation in the scene processor via the star package.
	HasAstrometry bool
	ParallaxMas   float64
	RAMasPerYear  float64
	DecMasPerYear float64
}

// DeepSkyObject is an immutable catalog entry for a fixed deep-sky target,
// as produced by LoadDeepSkyJSON. Per-instant fields (magnitude estimate,
// angular size, constellation membership) are derived later by the scene
// processor, not by ingest.
type DeepSkyObject struct {
	ID      string
	Name    string
	Type    string // galaxy, nebula, cluster, planetary, supernova
	RAHours float64
	DecDeg  float64
}

// Deep-sky object type constants, matching the renderer-facing vocabulary.
const (
	TypeGalaxy    = "galaxy"
	TypeNebula    = "nebula"
	TypeCluster   = "cluster"
	TypePlanetary = "planetary"
	TypeSupernova = "supernova"
)

// otypeMap translates SIMBAD object types to the engine's coarse type
// vocabulary.
var otypeMap = map[string]string{
	"G":    TypeGalaxy,
	"GiG":  TypeGalaxy,
	"GiP":  TypeGalaxy,
	"AGN":  TypeGalaxy,
	"Sy1":  TypeGalaxy,
	"Sy2":  TypeGalaxy,
	"QSO":  TypeGalaxy,
	"PN":   TypePlanetary,
	"HII":  TypeNebula,
	"RNe":  TypeNebula,
	"SNR":  TypeSupernova,
	"Cl*":  TypeCluster,
	"GlC":  TypeCluster,
	"OpC":  TypeCluster,
	"As*":  TypeCluster,
}

// naked-eye limit: stars fainter than this are rejected during ingest.
const nakedEyeMagLimit = 6.0

// LoadStarCSV parses a comma-delimited star catalog. The header row must
// name the columns id, proper, ra, dec, mag, spect, bf by name (column
// order is not assumed); the optional HYG columns pmra, pmdec, dist enable
// proper-motion propagation downstream. Rows whose required numeric fields
// fail to parse are skipped rather than aborting the whole catalog. Entries
// fainter than magnitude 6.0 are rejected. The result is sorted ascending
// by apparent magnitude (brightest first).
func LoadStarCSV(r io.Reader) ([]StarRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(ErrCatalogParse, "read header: "+err.Error())
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	required := []string{"id", "proper", "ra", "dec", "mag", "spect", "bf"}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, errors.Wrapf(ErrCatalogParse, "missing required column %q", name)
		}
	}

	hasPM := hasColumns(col, "pmra", "pmdec", "dist")

	var stars []StarRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // malformed row: fail soft
		}

		mag, err := parseFloat(row, col, "mag")
		if err != nil {
			continue
		}
		if mag > nakedEyeMagLimit {
			continue
		}
		ra, err := parseFloat(row, col, "ra")
		if err != nil {
			continue
		}
		dec, err := parseFloat(row, col, "dec")
		if err != nil {
			continue
		}

		id, _ := strconv.Atoi(strings.TrimSpace(field(row, col, "id")))

		rec := StarRecord{
			ID:            id,
			RAHours:       ra,
			DecDeg:        dec,
			ApparentMag:   mag,
			SpectralClass: normalizeSpectralClass(field(row, col, "spect")),
		}
		rec.Name = resolveDisplayName(field(row, col, "proper"), field(row, col, "bf"), id)

		if hasPM {
			if dist, err := parseFloat(row, col, "dist"); err == nil && dist > 0 {
				rec.ParallaxMas = 1000.0 / dist // dist in parsecs -> parallax in mas
				rec.RAMasPerYear, _ = parseFloat(row, col, "pmra")
				rec.DecMasPerYear, _ = parseFloat(row, col, "pmdec")
				rec.HasAstrometry = true
			}
		}

		stars = append(stars, rec)
	}

	sort.SliceStable(stars, func(i, j int) bool {
		return stars[i].ApparentMag < stars[j].ApparentMag
	})
	return stars, nil
}

func hasColumns(col map[string]int, names ...string) bool {
	for _, n := range names {
		if _, ok := col[n]; !ok {
			return false
		}
	}
	return true
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseFloat(row []string, col map[string]int, name string) (float64, error) {
	s := strings.TrimSpace(field(row, col, name))
	if s == "" {
		return 0, errors.New("empty field")
	}
	return strconv.ParseFloat(s, 64)
}

// resolveDisplayName applies the precedence rule: proper name, else
// Bayer-Flamsteed designation, else "HIP <id>".
func resolveDisplayName(proper, bf string, id int) string {
	proper = strings.TrimSpace(proper)
	if proper != "" {
		return proper
	}
	bf = strings.TrimSpace(bf)
	if bf != "" {
		return bf
	}
	return "HIP " + strconv.Itoa(id)
}

// normalizeSpectralClass reduces a spectral type string to its first two
// characters, defaulting to "G" when empty.
func normalizeSpectralClass(spect string) string {
	spect = strings.TrimSpace(spect)
	if spect == "" {
		return "G"
	}
	if len(spect) == 1 {
		return spect
	}
	return spect[:2]
}

// deepSkyEntry is the wire shape of a single deep-sky source record.
type deepSkyEntry struct {
	MainID string  `json:"main_id"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	OType  string  `json:"otype"`
}

// LoadDeepSkyJSON parses a JSON array of {main_id, ra_deg, dec_deg, otype}
// entries, mapping each otype through the SIMBAD-to-engine type table.
// ra_deg arrives in degrees and is divided by 15 to normalize to hours.
// Entries whose otype has no mapping are skipped.
func LoadDeepSkyJSON(r io.Reader) ([]DeepSkyObject, error) {
	var entries []deepSkyEntry
	dec := json.NewDecoder(bufio.NewReader(r))
	if err := dec.Decode(&entries); err != nil {
		return nil, errors.Wrap(ErrCatalogParse, "decode deep-sky json: "+err.Error())
	}

	objects := make([]DeepSkyObject, 0, len(entries))
	for _, e := range entries {
		typ, ok := otypeMap[e.OType]
		if !ok {
			continue
		}
		objects = append(objects, DeepSkyObject{
			ID:      e.MainID,
			Name:    e.MainID,
			Type:    typ,
			RAHours: e.RADeg / 15.0,
			DecDeg:  e.DecDeg,
		})
	}
	return objects, nil
}

// cacheFile is the on-disk shape of the gob cache.
type cacheFile struct {
	Version string
	Stars   []StarRecord
}

// Cache reads and writes a binary star-catalog cache keyed by a version
// string embedded in the cache header. Corruption or absence is advisory:
// callers should fall through to parsing on any Cache error.
type Cache struct {
	Path string
}

// Load reads the cache and returns its stars if the stored version matches
// wantVersion.
func (c Cache) Load(wantVersion string) ([]StarRecord, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog cache")
	}
	defer f.Close()

	var cf cacheFile
	if err := gob.NewDecoder(f).Decode(&cf); err != nil {
		return nil, errors.Wrap(err, "decode catalog cache")
	}
	if cf.Version != wantVersion {
		return nil, errors.Errorf("catalog cache version mismatch: have %q want %q", cf.Version, wantVersion)
	}
	return cf.Stars, nil
}

// Save writes stars to the cache under the given version string.
func (c Cache) Save(version string, stars []StarRecord) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return errors.Wrap(err, "create catalog cache")
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(cacheFile{Version: version, Stars: stars})
}

// Fallback returns a small bundled catalog of naked-eye stars, used when
// no catalog can be parsed or fetched at all.
func Fallback() []StarRecord {
	stars := make([]StarRecord, len(fallbackStars))
	copy(stars, fallbackStars)
	return stars
}

// fallbackStars is a hand-curated list of the brightest naked-eye stars,
// sufficient to produce a recognizable (if sparse) sky.
var fallbackStars = []StarRecord{
	{ID: 32349, Name: "Sirius", RAHours: 6.75247, DecDeg: -16.7161, ApparentMag: -1.46, SpectralClass: "A1"},
	{ID: 30438, Name: "Canopus", RAHours: 6.39920, DecDeg: -52.6957, ApparentMag: -0.74, SpectralClass: "F0"},
	{ID: 69673, Name: "Arcturus", RAHours: 14.26103, DecDeg: 19.1824, ApparentMag: -0.05, SpectralClass: "K0"},
	{ID: 71683, Name: "Alpha Centauri", RAHours: 14.66014, DecDeg: -60.8340, ApparentMag: -0.27, SpectralClass: "G2"},
	{ID: 91262, Name: "Vega", RAHours: 18.61565, DecDeg: 38.7837, ApparentMag: 0.03, SpectralClass: "A0"},
	{ID: 24608, Name: "Capella", RAHours: 5.27815, DecDeg: 45.9980, ApparentMag: 0.08, SpectralClass: "G3"},
	{ID: 24436, Name: "Rigel", RAHours: 5.24230, DecDeg: -8.2016, ApparentMag: 0.13, SpectralClass: "B8"},
	{ID: 37279, Name: "Procyon", RAHours: 7.65517, DecDeg: 5.2250, ApparentMag: 0.34, SpectralClass: "F5"},
	{ID: 7588, Name: "Achernar", RAHours: 1.62854, DecDeg: -57.2368, ApparentMag: 0.46, SpectralClass: "B6"},
	{ID: 27989, Name: "Betelgeuse", RAHours: 5.91953, DecDeg: 7.4071, ApparentMag: 0.50, SpectralClass: "M1"},
	{ID: 68702, Name: "Hadar", RAHours: 14.06372, DecDeg: -60.3730, ApparentMag: 0.61, SpectralClass: "B1"},
	{ID: 97649, Name: "Altair", RAHours: 19.84638, DecDeg: 8.8683, ApparentMag: 0.76, SpectralClass: "A7"},
	{ID: 21421, Name: "Aldebaran", RAHours: 4.59868, DecDeg: 16.5093, ApparentMag: 0.85, SpectralClass: "K5"},
	{ID: 65474, Name: "Spica", RAHours: 13.41999, DecDeg: -11.1613, ApparentMag: 0.97, SpectralClass: "B1"},
	{ID: 80763, Name: "Antares", RAHours: 16.49013, DecDeg: -26.4320, ApparentMag: 1.09, SpectralClass: "M1"},
	{ID: 37826, Name: "Pollux", RAHours: 7.75526, DecDeg: 28.0262, ApparentMag: 1.14, SpectralClass: "K0"},
	{ID: 11767, Name: "Polaris", RAHours: 2.53030, DecDeg: 89.2641, ApparentMag: 1.98, SpectralClass: "F7"},
	{ID: 54061, Name: "Denebola", RAHours: 11.81766, DecDeg: 14.5720, ApparentMag: 2.14, SpectralClass: "A3"},
	{ID: 3179, Name: "Mirach", RAHours: 1.16220, DecDeg: 35.6206, ApparentMag: 2.07, SpectralClass: "M0"},
	{ID: 62956, Name: "Alioth", RAHours: 12.89707, DecDeg: 55.9598, ApparentMag: 1.77, SpectralClass: "A0"},
}

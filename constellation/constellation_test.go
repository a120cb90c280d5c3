package constellation

import "testing"

func TestNearest_KnownPositions(t *testing.T) {
	tests := []struct {
		name    string
		ra, dec float64
		want    string
	}{
		{"North pole", 15.0, 80, "UMi"},
		{"Vega region", 18.9, 37, "Lyr"},
		{"Orion region", 5.5, 5, "Ori"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Nearest(tt.ra, tt.dec)
			if got != tt.want {
				t.Errorf("Nearest(%.2f, %.2f) = %q, want %q", tt.ra, tt.dec, got, tt.want)
			}
		})
	}
}

func TestNearest_AlwaysValid(t *testing.T) {
	valid := make(map[string]bool, 88)
	for _, pair := range constellationNames {
		valid[pair[0]] = true
	}

	for ra := 0.0; ra < 24.0; ra += 1.0 {
		for dec := -90.0; dec <= 90.0; dec += 15.0 {
			abbr := Nearest(ra, dec)
			if !valid[abbr] {
				t.Errorf("Nearest(%.1f, %.1f) = %q, not a valid abbreviation", ra, dec, abbr)
			}
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		abbr, want string
	}{
		{"Ori", "Orion"},
		{"UMa", "Ursa Major"},
		{"Cyg", "Cygnus"},
		{"XXX", ""},
	}
	for _, tt := range tests {
		got := Name(tt.abbr)
		if got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.abbr, got, tt.want)
		}
	}
}

func TestAbbreviation(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"Orion", "Ori"},
		{"Ursa Major", "UMa"},
		{"Cygnus", "Cyg"},
		{"Unknown", ""},
	}
	for _, tt := range tests {
		got := Abbreviation(tt.name)
		if got != tt.want {
			t.Errorf("Abbreviation(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNames_Count(t *testing.T) {
	names := Names()
	if len(names) != 88 {
		t.Errorf("Names() returned %d entries, want 88", len(names))
	}
}

func TestCenters_CoverAllConstellations(t *testing.T) {
	if len(centers) != 88 {
		t.Errorf("centers has %d entries, want 88", len(centers))
	}
}

package scene

// ConstellationLine is one constellation's traditional stick-figure
// asterism: a full name, its IAU abbreviation, and a list of named-star
// pairs forming the figure's line segments.
//
// Like constellation.centers (see that package's doc comment), this is a
// hand-curated approximation, not a reproduction of any IAU- or
// professional-catalog asterism standard — it exists purely to give the
// scene processor something recognizable to draw. Star names must match
// the display name a StarRecord resolves to (proper name, or the
// catalog's Bayer-Flamsteed/HIP fallback) for a segment's endpoint to
// resolve; entries here use common HYG-catalog proper names, and a
// segment whose endpoint isn't present in the loaded catalog is silently
// dropped by Process (spec.md §3's "missing endpoints silently drop that
// segment").
type ConstellationLine struct {
	Name         string
	Abbreviation string
	Segments     [][2]string
}

// LineList is the static table Process consults to assemble
// ConstellationDisplay values. It covers a modest set of the
// brightest/best-known constellations rather than all 88 — exhaustive
// asterism data is out of scope for a scene-scale display, matching the
// spirit of constellation.Nearest's own "approximate, not exhaustive"
// framing.
var LineList = []ConstellationLine{
	{
		Name: "Ursa Major", Abbreviation: "UMa",
		Segments: [][2]string{
			{"Dubhe", "Merak"},
			{"Merak", "Phecda"},
			{"Phecda", "Megrez"},
			{"Megrez", "Dubhe"},
			{"Megrez", "Alioth"},
			{"Alioth", "Mizar"},
			{"Mizar", "Alkaid"},
		},
	},
	{
		Name: "Orion", Abbreviation: "Ori",
		Segments: [][2]string{
			{"Betelgeuse", "Bellatrix"},
			{"Bellatrix", "Mintaka"},
			{"Mintaka", "Alnilam"},
			{"Alnilam", "Alnitak"},
			{"Alnitak", "Saiph"},
			{"Saiph", "Rigel"},
			{"Rigel", "Mintaka"},
			{"Betelgeuse", "Alnitak"},
		},
	},
	{
		Name: "Cassiopeia", Abbreviation: "Cas",
		Segments: [][2]string{
			{"Caph", "Schedar"},
			{"Schedar", "Navi"},
			{"Navi", "Ruchbah"},
			{"Ruchbah", "Segin"},
		},
	},
	{
		Name: "Crux", Abbreviation: "Cru",
		Segments: [][2]string{
			{"Acrux", "Gacrux"},
			{"Mimosa", "Imai"},
		},
	},
	{
		Name: "Scorpius", Abbreviation: "Sco",
		Segments: [][2]string{
			{"Antares", "Graffias"},
			{"Graffias", "Dschubba"},
			{"Antares", "Sargas"},
			{"Sargas", "Shaula"},
			{"Shaula", "Lesath"},
		},
	},
	{
		Name: "Cygnus", Abbreviation: "Cyg",
		Segments: [][2]string{
			{"Deneb", "Sadr"},
			{"Sadr", "Albireo"},
			{"Sadr", "Gienah"},
			{"Sadr", "Fawaris"},
		},
	},
	{
		Name: "Leo", Abbreviation: "Leo",
		Segments: [][2]string{
			{"Regulus", "Algieba"},
			{"Algieba", "Zosma"},
			{"Zosma", "Denebola"},
			{"Regulus", "Denebola"},
		},
	},
	{
		Name: "Gemini", Abbreviation: "Gem",
		Segments: [][2]string{
			{"Castor", "Pollux"},
		},
	},
	{
		Name: "Taurus", Abbreviation: "Tau",
		Segments: [][2]string{
			{"Aldebaran", "Elnath"},
		},
	},
	{
		Name: "Canis Major", Abbreviation: "CMa",
		Segments: [][2]string{
			{"Sirius", "Mirzam"},
			{"Sirius", "Adhara"},
			{"Adhara", "Wezen"},
		},
	},
}

package timeline

import (
	baseshear "Seismo/internal/calc/baseshear"
)

// Entry describes one revision of IS 1893 for the evolution timeline shown
// alongside the calculator.
type Entry struct {
	Year      int               `json:"year"`
	Summary   string            `json:"summary"`
	Formula   string            `json:"formula"`
	Variables map[string]string `json:"variables"`
}

var entries = []Entry{
	{
		Year:    1962,
		Summary: "Foundation of seismic design. Introduced seismic coefficient ah.",
		Variables: map[string]string{
			"ah":   "Seismic coefficient representing expected ground shaking intensity.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    1966,
		Summary: "Introduced flexibility coefficient C for building response.",
		Variables: map[string]string{
			"c":    "Flexibility coefficient related to height and structural response.",
			"ah":   "Seismic coefficient.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    1970,
		Summary: "Introduced soil-foundation factor β for soil interaction.",
		Variables: map[string]string{
			"c":    "Flexibility coefficient.",
			"ah":   "Seismic coefficient.",
			"beta": "Soil-foundation interaction factor.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    1975,
		Summary: "Added importance factor I and regional coefficient ao.",
		Variables: map[string]string{
			"c":    "Flexibility coefficient.",
			"beta": "Soil-foundation factor.",
			"i":    "Importance factor (higher for hospitals, schools, etc.).",
			"ao":   "Basic horizontal seismic coefficient.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    1984,
		Summary: "Introduced performance factor K for ductility and framing.",
		Variables: map[string]string{
			"k":    "Performance factor accounting for ductility.",
			"c":    "Flexibility coefficient.",
			"beta": "Soil-foundation factor.",
			"i":    "Importance factor.",
			"ao":   "Basic horizontal seismic coefficient.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    2002,
		Summary: "Major shift to dynamic design using Z, R and Sa/g.",
		Variables: map[string]string{
			"z":    "Seismic zone factor.",
			"i":    "Importance factor.",
			"r":    "Response reduction factor.",
			"sa_g": "Normalized spectral acceleration.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    2016,
		Summary: "Refinement of 2002 dynamic provisions.",
		Variables: map[string]string{
			"z":    "Seismic zone factor.",
			"i":    "Importance factor.",
			"r":    "Response reduction factor.",
			"sa_g": "Normalized spectral acceleration.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
	{
		Year:    2025,
		Summary: "Separate horizontal and vertical seismic demands.",
		Variables: map[string]string{
			"z":    "Hazard factor.",
			"i":    "Importance factor.",
			"r":    "Ductility factor.",
			"a_nh": "Normalized horizontal spectral acceleration.",
			"a_nv": "Normalized vertical spectral acceleration.",
			"w_kn": "Total seismic weight of the building.",
		},
	},
}

// Entries returns the timeline ordered by year, each entry carrying the
// statutory formula text from the resolver so the two never drift apart.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := range out {
		if f, ok := baseshear.Formula(out[i].Year); ok {
			out[i].Formula = f
		}
	}
	return out
}

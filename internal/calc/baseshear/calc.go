package baseshear

import (
	spectrum "Seismo/internal/calc/spectrum"
)

// Input carries every parameter any IS 1893 revision may ask for. Pointer
// fields distinguish "not supplied" from a literal zero; each revision
// validates only its own required set.
type Input struct {
	Revision int      `json:"revision"`
	Ah       *float64 `json:"ah,omitempty"`       // horizontal seismic coefficient (1962-1970)
	C        *float64 `json:"c,omitempty"`        // flexibility coefficient (1966-1984)
	Beta     *float64 `json:"beta,omitempty"`     // soil-foundation factor (1970-1984)
	I        *float64 `json:"i,omitempty"`        // importance factor (1975 onward)
	Ao       *float64 `json:"ao,omitempty"`       // basic horizontal seismic coefficient (1975, 1984)
	K        *float64 `json:"k,omitempty"`        // performance factor (1984)
	Z        *float64 `json:"z,omitempty"`        // zone / hazard factor (2002 onward)
	R        *float64 `json:"r,omitempty"`        // response reduction / ductility factor
	SaG      *float64 `json:"sa_g,omitempty"`     // normalized spectral acceleration
	PeriodS  *float64 `json:"period_s,omitempty"` // fundamental period, to derive sa_g
	Soil     string   `json:"soil,omitempty"`     // rock, medium or soft, to derive sa_g
	ANH      *float64 `json:"a_nh,omitempty"`     // normalized horizontal response (2025)
	ANV      *float64 `json:"a_nv,omitempty"`     // normalized vertical response (2025)
	WKN      *float64 `json:"w_kn,omitempty"`     // seismic weight W, kN
	Storeys  int      `json:"storeys,omitempty"`  // optional, for the storey-wise profile
}

// Param is a named input or output value, kept in declaration order so
// reports and exports list parameters the way the code tables do.
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Result struct {
	Revision        int       `json:"revision"`
	Formula         string    `json:"formula"`
	BaseShearKN     float64   `json:"base_shear_kn"`
	VerticalShearKN float64   `json:"vertical_shear_kn,omitempty"`
	SaG             float64   `json:"sa_g,omitempty"`
	Params          []Param   `json:"params"`
	StoreyShearsKN  []float64 `json:"storey_shears_kn,omitempty"`
}

type variant struct {
	formula  string
	required []string
	compute  func(p map[string]float64) (horizontal, vertical float64)
}

// One entry per published revision. Each compute closure is the statutory
// formula verbatim; no revision shares a code path with another.
var variants = map[int]variant{
	1962: {
		formula:  "F = ah × W",
		required: []string{"ah", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return p["ah"] * p["w_kn"], 0
		},
	},
	1966: {
		formula:  "Vb = C × ah × W",
		required: []string{"c", "ah", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return p["c"] * p["ah"] * p["w_kn"], 0
		},
	},
	1970: {
		formula:  "Vb = C × ah × β × W",
		required: []string{"c", "ah", "beta", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return p["c"] * p["ah"] * p["beta"] * p["w_kn"], 0
		},
	},
	1975: {
		formula:  "Vb = C × β × I × ao × W",
		required: []string{"c", "beta", "i", "ao", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return p["c"] * p["beta"] * p["i"] * p["ao"] * p["w_kn"], 0
		},
	},
	1984: {
		formula:  "Vb = K × C × β × I × ao × W",
		required: []string{"k", "c", "beta", "i", "ao", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return p["k"] * p["c"] * p["beta"] * p["i"] * p["ao"] * p["w_kn"], 0
		},
	},
	2002: {
		formula:  "Vb = (Z / 2) × (I / R) × (Sa/g) × W",
		required: []string{"z", "i", "r", "sa_g", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return (p["z"] / 2.0) * (p["i"] / p["r"]) * p["sa_g"] * p["w_kn"], 0
		},
	},
	2016: {
		formula:  "Vb = (Z / 2) × (I / R) × (Sa/g) × W",
		required: []string{"z", "i", "r", "sa_g", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			return (p["z"] / 2.0) * (p["i"] / p["r"]) * p["sa_g"] * p["w_kn"], 0
		},
	},
	2025: {
		formula:  "VBD,H = (Z × I × A_NH / R) × W   |   VBD,V = (Z × I × A_NV) × W",
		required: []string{"z", "i", "r", "a_nh", "a_nv", "w_kn"},
		compute: func(p map[string]float64) (float64, float64) {
			h := (p["z"] * p["i"] * p["a_nh"] / p["r"]) * p["w_kn"]
			v := p["z"] * p["i"] * p["a_nv"] * p["w_kn"]
			return h, v
		},
	},
}

// Formula reports the statutory formula text for a revision.
func Formula(revision int) (string, bool) {
	v, ok := variants[revision]
	if !ok {
		return "", false
	}
	return v.formula, true
}

// Calculate resolves the revision's formula variant and evaluates it.
// Validation runs to completion before any arithmetic: an unknown year,
// a missing required field or an unusable value never reaches a compute
// closure.
func Calculate(in Input) (Result, error) {
	v, ok := variants[in.Revision]
	if !ok {
		return Result{}, &UnsupportedRevisionError{Year: in.Revision}
	}

	params := make(map[string]float64, len(v.required))
	ordered := make([]Param, 0, len(v.required))
	derivedSa := false
	for _, name := range v.required {
		if name == "sa_g" && in.SaG == nil {
			sa, err := deriveSaG(in)
			if err != nil {
				return Result{}, err
			}
			params[name] = sa
			ordered = append(ordered, Param{Name: name, Value: sa})
			derivedSa = true
			continue
		}
		ptr := in.field(name)
		if ptr == nil {
			return Result{}, &MissingParameterError{Field: name}
		}
		if err := checkValue(name, *ptr); err != nil {
			return Result{}, err
		}
		params[name] = *ptr
		ordered = append(ordered, Param{Name: name, Value: *ptr})
	}
	if in.Storeys < 0 {
		return Result{}, &InvalidParameterError{Field: "storeys", Reason: "must not be negative"}
	}

	horizontal, vertical := v.compute(params)
	res := Result{
		Revision:        in.Revision,
		Formula:         v.formula,
		BaseShearKN:     horizontal,
		VerticalShearKN: vertical,
		Params:          ordered,
	}
	if derivedSa {
		res.SaG = params["sa_g"]
	}
	if in.Storeys > 0 {
		res.StoreyShearsKN = ShearProfile(horizontal, in.Storeys)
	}
	return res, nil
}

// ShearProfile is the linear storey-wise shear profile used by the
// distribution chart: value at storey i of n is (i/n)·V, bottom to top.
func ShearProfile(totalKN float64, storeys int) []float64 {
	if storeys <= 0 {
		return nil
	}
	out := make([]float64, storeys)
	for i := 1; i <= storeys; i++ {
		out[i-1] = float64(i) / float64(storeys) * totalKN
	}
	return out
}

// ResultRows returns the computed outputs as labelled rows using the
// revision's own naming (the 1962 code calls the force F, 2025 splits
// horizontal and vertical demands).
func (r Result) ResultRows() []Param {
	switch r.Revision {
	case 1962:
		return []Param{{Name: "F (kN)", Value: r.BaseShearKN}}
	case 2025:
		return []Param{
			{Name: "VBD,H (kN)", Value: r.BaseShearKN},
			{Name: "VBD,V (kN)", Value: r.VerticalShearKN},
		}
	default:
		return []Param{{Name: "Vb (kN)", Value: r.BaseShearKN}}
	}
}

func deriveSaG(in Input) (float64, error) {
	if in.PeriodS == nil {
		return 0, &MissingParameterError{Field: "sa_g"}
	}
	if *in.PeriodS <= 0 {
		return 0, &InvalidParameterError{Field: "period_s", Reason: "must be positive"}
	}
	if in.Soil == "" {
		return 0, &MissingParameterError{Field: "soil"}
	}
	sa, err := spectrum.SaOverG(*in.PeriodS, spectrum.Soil(in.Soil))
	if err != nil {
		return 0, &InvalidParameterError{Field: "soil", Reason: err.Error()}
	}
	return sa, nil
}

func (in Input) field(name string) *float64 {
	switch name {
	case "ah":
		return in.Ah
	case "c":
		return in.C
	case "beta":
		return in.Beta
	case "i":
		return in.I
	case "ao":
		return in.Ao
	case "k":
		return in.K
	case "z":
		return in.Z
	case "r":
		return in.R
	case "sa_g":
		return in.SaG
	case "a_nh":
		return in.ANH
	case "a_nv":
		return in.ANV
	case "w_kn":
		return in.WKN
	}
	return nil
}

func checkValue(name string, v float64) error {
	switch name {
	case "w_kn":
		if v <= 0 {
			return &InvalidParameterError{Field: name, Reason: "seismic weight must be positive"}
		}
	case "r":
		if v <= 0 {
			return &InvalidParameterError{Field: name, Reason: "must be positive, appears as divisor"}
		}
	default:
		if v < 0 {
			return &InvalidParameterError{Field: name, Reason: "must not be negative"}
		}
	}
	return nil
}

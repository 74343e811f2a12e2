package spectrum

import "fmt"

// Soil classifies the founding strata per IS 1893 (Part 1) Fig. 2.
type Soil string

const (
	SoilRock   Soil = "rock"   // Type I: rock or hard soil
	SoilMedium Soil = "medium" // Type II: medium stiff soil
	SoilSoft   Soil = "soft"   // Type III: soft soil
)

// Corner periods of the constant-acceleration plateau, per soil type.
const (
	cornerRock   = 0.40
	cornerMedium = 0.55
	cornerSoft   = 0.67
	periodMax    = 4.0
)

// SaOverG returns the normalized design spectral acceleration Sa/g for a
// 5% damped system, per the IS 1893:2002 design spectrum (unchanged in the
// 2016 revision). Periods beyond 4 s hold the 4 s ordinate.
func SaOverG(periodS float64, soil Soil) (float64, error) {
	if periodS <= 0 {
		return 0, fmt.Errorf("period must be positive")
	}
	corner, num, err := shape(soil)
	if err != nil {
		return 0, err
	}
	t := periodS
	if t > periodMax {
		t = periodMax
	}
	switch {
	case t < 0.10:
		return 1.0 + 15.0*t, nil
	case t <= corner:
		return 2.5, nil
	default:
		return num / t, nil
	}
}

func shape(soil Soil) (corner, numerator float64, err error) {
	switch soil {
	case SoilRock:
		return cornerRock, 1.00, nil
	case SoilMedium:
		return cornerMedium, 1.36, nil
	case SoilSoft:
		return cornerSoft, 1.67, nil
	default:
		return 0, 0, fmt.Errorf("unknown soil type %q", soil)
	}
}

type Point struct {
	PeriodS float64 `json:"period_s"`
	SaG     float64 `json:"sa_g"`
}

// Curve samples the spectrum from step up to maxS at the given step,
// e.g. for charting. Invalid arguments yield an error, not an empty curve.
func Curve(soil Soil, maxS, step float64) ([]Point, error) {
	if step <= 0 || maxS < step {
		return nil, fmt.Errorf("invalid curve range")
	}
	var pts []Point
	for t := step; t <= maxS+1e-9; t += step {
		sa, err := SaOverG(t, soil)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{PeriodS: t, SaG: sa})
	}
	return pts, nil
}

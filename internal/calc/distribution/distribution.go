package distribution

import (
	"fmt"

	baseshear "Seismo/internal/calc/baseshear"
)

// Storey is one level of the building, bottom to top.
type Storey struct {
	WeightKN float64 `json:"weight_kn"` // seismic weight at the level
	HeightM  float64 `json:"height_m"`  // height of the level above base
}

type Input struct {
	BaseShearKN float64  `json:"base_shear_kn"`
	Storeys     []Storey `json:"storeys"`
}

type Result struct {
	ForcesKN []float64 `json:"forces_kn"` // bottom to top, sums exactly to base shear
	SumKN    float64   `json:"sum_kn"`
}

// Calculate distributes a computed base shear over the storeys per
// IS 1893:2002 cl. 7.7.1: Qi = Vb · Wi·hi² / Σ Wj·hj². The topmost force
// absorbs the floating point residual so a plain bottom-to-top
// re-summation of the forces reproduces Vb exactly.
func Calculate(in Input) (Result, error) {
	if in.BaseShearKN <= 0 {
		return Result{}, &baseshear.InvalidParameterError{Field: "base_shear_kn", Reason: "must be positive"}
	}
	if len(in.Storeys) == 0 {
		return Result{}, &baseshear.MissingParameterError{Field: "storeys"}
	}

	var denom float64
	for idx, s := range in.Storeys {
		if s.WeightKN <= 0 {
			return Result{}, &baseshear.InvalidParameterError{
				Field:  fmt.Sprintf("storeys[%d].weight_kn", idx),
				Reason: "must be positive",
			}
		}
		if s.HeightM <= 0 {
			return Result{}, &baseshear.InvalidParameterError{
				Field:  fmt.Sprintf("storeys[%d].height_m", idx),
				Reason: "must be positive",
			}
		}
		denom += s.WeightKN * s.HeightM * s.HeightM
	}

	forces := make([]float64, len(in.Storeys))
	var assigned float64
	last := len(forces) - 1
	for idx, s := range in.Storeys[:last] {
		forces[idx] = in.BaseShearKN * s.WeightKN * s.HeightM * s.HeightM / denom
		assigned += forces[idx]
	}
	forces[last] = in.BaseShearKN - assigned

	// Vb - assigned alone can leave the re-summed total one ulp off Vb.
	// Fold the residual back into the top force until the naive sum is a
	// fixed point; each fold moves the sum one representable step, so this
	// settles within a couple of rounds.
	for i := 0; i < 4; i++ {
		var sum float64
		for _, f := range forces {
			sum += f
		}
		if sum == in.BaseShearKN {
			break
		}
		forces[last] += in.BaseShearKN - sum
	}

	return Result{ForcesKN: forces, SumKN: in.BaseShearKN}, nil
}

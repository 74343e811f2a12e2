package spectrum

import (
	"encoding/json"
	"net/http"
)

type Input struct {
	PeriodS    float64 `json:"period_s"`
	Soil       string  `json:"soil"`
	CurveMaxS  float64 `json:"curve_max_s,omitempty"`
	CurveStepS float64 `json:"curve_step_s,omitempty"`
}

type Result struct {
	SaG   float64 `json:"sa_g"`
	Curve []Point `json:"curve,omitempty"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	sa, err := SaOverG(input.PeriodS, Soil(input.Soil))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := Result{SaG: sa}
	if input.CurveMaxS > 0 {
		step := input.CurveStepS
		if step <= 0 {
			step = 0.05
		}
		pts, err := Curve(Soil(input.Soil), input.CurveMaxS, step)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res.Curve = pts
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

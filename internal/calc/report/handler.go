package report

import (
	"encoding/json"
	"net/http"

	baseshear "Seismo/internal/calc/baseshear"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := baseshear.Calculate(input.Calc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"Seismic_Full_Report.pdf\"")
	if err := Generate(input, res, w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

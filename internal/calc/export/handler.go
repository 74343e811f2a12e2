package export

import (
	"encoding/json"
	"net/http"

	baseshear "Seismo/internal/calc/baseshear"
)

type Handler struct{}

// Generate computes the base shear for the posted parameters and streams
// the result workbook.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input baseshear.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := baseshear.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f, err := Workbook(res)
	if err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"seismic_result.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export generation error", http.StatusInternalServerError)
		return
	}
}

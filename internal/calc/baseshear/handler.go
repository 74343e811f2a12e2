package baseshear

import (
	"encoding/json"
	"log"
	"net/http"

	auth "Seismo/internal/auth"
	repo "Seismo/internal/repo"
)

// Handler serves the single calc endpoint. When Repo is set, successful
// calculations by an authenticated user are written to their history;
// a history failure never fails the calculation itself.
type Handler struct {
	Repo repo.Repository
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if h.Repo != nil {
		if userID, ok := auth.UserID(r.Context()); ok {
			inJSON, _ := json.Marshal(input)
			outJSON, _ := json.Marshal(res)
			if _, err := h.Repo.SaveCalculation(r.Context(), userID, res.Revision, inJSON, outJSON); err != nil {
				log.Printf("SaveCalculation error: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

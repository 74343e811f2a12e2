package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auth "Seismo/internal/auth"
	repo "Seismo/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	repo.Repository

	calcs       []repo.Calculation
	deletedID   int
	deletedUser int
	deleteErr   error
}

func (f *fakeRepo) ListCalculations(ctx context.Context, userID int) ([]repo.Calculation, error) {
	return f.calcs, nil
}

func (f *fakeRepo) DeleteCalculation(ctx context.Context, userID, id int) error {
	f.deletedUser = userID
	f.deletedID = id
	return f.deleteErr
}

func TestListRequiresAuth(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestList(t *testing.T) {
	store := &fakeRepo{calcs: []repo.Calculation{
		{ID: 7, Revision: 2002, Input: json.RawMessage(`{}`), Result: json.RawMessage(`{}`), CreatedAt: time.Now()},
	}}
	h := &Handler{Repo: store}

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out []repo.Calculation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 1)
	require.Equal(t, 7, out[0].ID)
}

func TestListEmptyIsJSONArray(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()

	h.List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func deleteVia(t *testing.T, h *Handler, userID int, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/history/{id:[0-9]+}", h.Delete).Methods("DELETE")

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if userID != 0 {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDelete(t *testing.T) {
	store := &fakeRepo{}
	h := &Handler{Repo: store}

	rec := deleteVia(t, h, 42, "/history/7")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 7, store.deletedID)
	require.Equal(t, 42, store.deletedUser)
}

func TestDeleteMissingRow(t *testing.T) {
	store := &fakeRepo{deleteErr: sql.ErrNoRows}
	h := &Handler{Repo: store}

	rec := deleteVia(t, h, 42, "/history/999")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRequiresAuth(t *testing.T) {
	h := &Handler{Repo: &fakeRepo{}}
	rec := deleteVia(t, h, 0, "/history/7")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

package timeline

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntriesOrderedAndComplete(t *testing.T) {
	got := Entries()
	require.Len(t, got, 8)

	years := make([]int, 0, len(got))
	for _, e := range got {
		years = append(years, e.Year)
		require.NotEmpty(t, e.Summary, "year %d", e.Year)
		require.NotEmpty(t, e.Formula, "year %d", e.Year)
		require.Contains(t, e.Variables, "w_kn", "year %d", e.Year)
	}
	require.Equal(t, []int{1962, 1966, 1970, 1975, 1984, 2002, 2016, 2025}, years)
}

func TestEntriesCarryResolverFormula(t *testing.T) {
	for _, e := range Entries() {
		if e.Year == 2002 {
			require.Equal(t, "Vb = (Z / 2) × (I / R) × (Sa/g) × W", e.Formula)
		}
	}
}

func TestListHandler(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/tools/timeline", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out []Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 8)
}

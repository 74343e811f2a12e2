package spectrum

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaOverG(t *testing.T) {
	tests := []struct {
		name    string
		periodS float64
		soil    Soil
		want    float64
	}{
		{"short period ramp", 0.05, SoilRock, 1.75},
		{"rock plateau", 0.3, SoilRock, 2.5},
		{"rock descending branch", 2.0, SoilRock, 0.5},
		{"medium plateau edge", 0.55, SoilMedium, 2.5},
		{"medium descending branch", 1.0, SoilMedium, 1.36},
		{"soft plateau edge", 0.67, SoilSoft, 2.5},
		{"soft descending branch", 2.0, SoilSoft, 0.835},
		{"beyond 4 s holds the 4 s ordinate", 6.0, SoilRock, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SaOverG(tc.periodS, tc.soil)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSaOverGRejectsBadInput(t *testing.T) {
	_, err := SaOverG(0, SoilRock)
	require.Error(t, err)

	_, err = SaOverG(-1, SoilMedium)
	require.Error(t, err)

	_, err = SaOverG(0.5, Soil("swamp"))
	require.Error(t, err)
}

func TestCalcHandler(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/spectrum/calc",
		strings.NewReader(`{"period_s":0.5,"soil":"medium","curve_max_s":1.0,"curve_step_s":0.5}`))
	rec := httptest.NewRecorder()

	h.Calc(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.InDelta(t, 2.5, res.SaG, 1e-9)
	require.Len(t, res.Curve, 2)

	req = httptest.NewRequest(http.MethodPost, "/tools/spectrum/calc",
		strings.NewReader(`{"period_s":-1,"soil":"medium"}`))
	rec = httptest.NewRecorder()
	h.Calc(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurve(t *testing.T) {
	pts, err := Curve(SoilMedium, 1.0, 0.25)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	require.InDelta(t, 0.25, pts[0].PeriodS, 1e-9)
	require.InDelta(t, 2.5, pts[0].SaG, 1e-9)
	require.InDelta(t, 1.0, pts[3].PeriodS, 1e-9)
	require.InDelta(t, 1.36, pts[3].SaG, 1e-9)

	_, err = Curve(SoilMedium, 1.0, 0)
	require.Error(t, err)

	_, err = Curve(Soil("swamp"), 1.0, 0.25)
	require.Error(t, err)
}

package export

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	baseshear "Seismo/internal/calc/baseshear"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fp(v float64) *float64 { return &v }

func cellFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}

func calcResult(t *testing.T, storeys int) baseshear.Result {
	t.Helper()
	res, err := baseshear.Calculate(baseshear.Input{
		Revision: 2002,
		Z:        fp(0.16),
		I:        fp(1.0),
		R:        fp(5.0),
		SaG:      fp(2.5),
		WKN:      fp(1000),
		Storeys:  storeys,
	})
	require.NoError(t, err)
	return res
}

func TestWorkbookRoundTrip(t *testing.T) {
	f, err := Workbook(calcResult(t, 4))
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	reopened, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer reopened.Close()

	require.ElementsMatch(t, []string{"Result", "Distribution"}, reopened.GetSheetList())

	rows, err := reopened.GetRows("Result")
	require.NoError(t, err)
	require.Equal(t, []string{"Parameter", "Value"}, rows[0][:2])
	require.Equal(t, "Code Year", rows[1][0])
	require.Equal(t, "2002", rows[1][1])
	require.Equal(t, "Formula", rows[2][0])

	// Entered values then the computed output, as on the site.
	require.Equal(t, "z", rows[3][0])
	last := rows[len(rows)-1]
	require.Equal(t, "Vb (kN)", last[0])
	require.InDelta(t, 40.0, cellFloat(t, last[1]), 1e-9)

	dist, err := reopened.GetRows("Distribution")
	require.NoError(t, err)
	require.Len(t, dist, 5)
	require.Equal(t, []string{"Storey", "Shear (kN)"}, dist[0][:2])
	require.InDelta(t, 10.0, cellFloat(t, dist[1][1]), 1e-9)
	require.InDelta(t, 40.0, cellFloat(t, dist[4][1]), 1e-9)
}

func TestWorkbookWithoutProfileHasNoDistributionSheet(t *testing.T) {
	f, err := Workbook(calcResult(t, 0))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Result"}, f.GetSheetList())
}

func TestGenerateHandler(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(baseshear.Input{
		Revision: 1962,
		Ah:       fp(0.08),
		WKN:      fp(1000),
		Storeys:  3,
	})
	req := httptest.NewRequest(http.MethodPost, "/tools/export/xlsx", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))

	reopened, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.GetRows("Result")
	require.NoError(t, err)
	require.Equal(t, "F (kN)", rows[len(rows)-1][0])
}

func TestGenerateHandlerRejectsInvalidCalc(t *testing.T) {
	h := &Handler{}
	body, _ := json.Marshal(baseshear.Input{Revision: 1990})
	req := httptest.NewRequest(http.MethodPost, "/tools/export/xlsx", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

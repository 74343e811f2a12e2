package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	baseshear "Seismo/internal/calc/baseshear"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                `json:"count"`
	Skipped int                `json:"skipped"`
	Results []baseshear.Result `json:"results"`
}

// Upload accepts an xlsx file whose header row names the calculator's
// parameters (revision, w_kn, z, i, r, ...) and evaluates one calculation
// per data row. Rows that fail to parse or validate are skipped, matching
// the behavior of the spreadsheet import on the site.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	headers := rows[0]
	out := ImportResult{Results: []baseshear.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(headers, rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := baseshear.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseRow(headers, row []string) (baseshear.Input, error) {
	var in baseshear.Input
	seen := false
	for col, name := range headers {
		if col >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(name))
		switch key {
		case "revision", "year":
			year, err := strconv.Atoi(cell)
			if err != nil {
				return baseshear.Input{}, err
			}
			in.Revision = year
			seen = true
		case "soil":
			in.Soil = strings.ToLower(cell)
		case "storeys":
			n, err := strconv.Atoi(cell)
			if err != nil {
				return baseshear.Input{}, err
			}
			in.Storeys = n
		default:
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return baseshear.Input{}, err
			}
			if !setField(&in, key, v) {
				return baseshear.Input{}, fmt.Errorf("unknown column %q", name)
			}
		}
	}
	if !seen {
		return baseshear.Input{}, fmt.Errorf("missing revision")
	}
	return in, nil
}

func setField(in *baseshear.Input, name string, v float64) bool {
	val := v
	switch name {
	case "ah":
		in.Ah = &val
	case "c":
		in.C = &val
	case "beta":
		in.Beta = &val
	case "i":
		in.I = &val
	case "ao":
		in.Ao = &val
	case "k":
		in.K = &val
	case "z":
		in.Z = &val
	case "r":
		in.R = &val
	case "sa_g":
		in.SaG = &val
	case "period_s":
		in.PeriodS = &val
	case "a_nh":
		in.ANH = &val
	case "a_nv":
		in.ANV = &val
	case "w_kn":
		in.WKN = &val
	default:
		return false
	}
	return true
}

package export

import (
	"fmt"

	baseshear "Seismo/internal/calc/baseshear"

	"github.com/xuri/excelize/v2"
)

const (
	resultSheet       = "Result"
	distributionSheet = "Distribution"
)

// Workbook lays out a calculation result the way the web app's download
// does: a Parameter/Value sheet with the entered values followed by the
// computed outputs, and, when a storey profile was requested, a second
// sheet with the storey shears and a bar chart.
func Workbook(res baseshear.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Parameter", "Value"},
		{"Code Year", res.Revision},
		{"Formula", res.Formula},
	}
	for _, p := range res.Params {
		rows = append(rows, []interface{}{p.Name, p.Value})
	}
	for _, p := range res.ResultRows() {
		rows = append(rows, []interface{}{p.Name, p.Value})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if len(res.StoreyShearsKN) > 0 {
		if err := addDistribution(f, res.StoreyShearsKN); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func addDistribution(f *excelize.File, shears []float64) error {
	if _, err := f.NewSheet(distributionSheet); err != nil {
		return err
	}
	header := []interface{}{"Storey", "Shear (kN)"}
	if err := f.SetSheetRow(distributionSheet, "A1", &header); err != nil {
		return err
	}
	for i, v := range shears {
		row := []interface{}{i + 1, v}
		if err := f.SetSheetRow(distributionSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	last := len(shears) + 1
	return f.AddChart(distributionSheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", distributionSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", distributionSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", distributionSheet, last),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: "Linear Base Shear Distribution"},
		},
	})
}

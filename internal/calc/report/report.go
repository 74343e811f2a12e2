package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	baseshear "Seismo/internal/calc/baseshear"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project   string          `json:"project"`
	Author    string          `json:"author"`
	Institute string          `json:"institute"`
	User      string          `json:"user"`
	Calc      baseshear.Input `json:"calc"`
}

// Generate writes the full A4 calculation report: diagonal watermark on
// every page, header block, the revision's formula, entered values, the
// computed shears and, when a storey profile was requested, a bar chart.
func Generate(in Input, res baseshear.Result, out io.Writer) error {
	title := "IS 1893 Seismic Calculation Report"
	user := in.User
	if user == "" {
		user = "Not Provided"
	}
	watermark := in.Author
	if in.Institute != "" {
		watermark = fmt.Sprintf("%s - %s", in.Author, in.Institute)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// The core fonts are cp1252: × translates, β does not and is spelled out.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetHeaderFunc(func() {
		if watermark == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 36)
		pdf.SetTextColor(211, 211, 211)
		pdf.TransformBegin()
		pdf.TransformRotate(45, 105, 148)
		pdf.Text(40, 155, watermark)
		pdf.TransformEnd()
		pdf.SetTextColor(0, 0, 0)
		pdf.SetY(15)
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Project: %s", in.Project), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Author: %s", in.Author), "", 1, "L", false, 0, "")
	if in.Institute != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Institute: %s", in.Institute), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("User: %s", user), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Timestamp: %s", time.Now().Format("02-01-2006 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 6, fmt.Sprintf("Code Year: %d", res.Revision), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Formula Used: %s", pdfFormula(res.Formula))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Entered Values", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range res.Params {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s = %g", p.Name, p.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Result", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range res.ResultRows() {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s = %.4f kN", p.Name, p.Value), "", 1, "L", false, 0, "")
	}

	if len(res.StoreyShearsKN) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Base Shear Distribution (Storey-wise)", "", 1, "L", false, 0, "")
		drawBarChart(pdf, res.StoreyShearsKN)
	}

	return pdf.Output(out)
}

// pdfFormula rewrites formula glyphs the core PDF fonts cannot encode.
func pdfFormula(s string) string {
	return strings.ReplaceAll(s, "β", "beta")
}

// drawBarChart renders the storey shears as filled bars above a baseline,
// storey numbers underneath.
func drawBarChart(pdf *gofpdf.Fpdf, shears []float64) {
	const (
		x0     = 25.0
		plotW  = 160.0
		plotH  = 70.0
		gapPct = 0.25
	)
	y0 := pdf.GetY() + 4
	if y0+plotH+15 > 280 {
		pdf.AddPage()
		y0 = pdf.GetY() + 4
	}

	maxShear := 0.0
	for _, v := range shears {
		if v > maxShear {
			maxShear = v
		}
	}
	if maxShear <= 0 {
		return
	}

	slot := plotW / float64(len(shears))
	barW := slot * (1 - gapPct)
	base := y0 + plotH

	pdf.SetFillColor(31, 119, 180)
	pdf.SetDrawColor(0, 0, 0)
	for i, v := range shears {
		h := v / maxShear * plotH
		x := x0 + float64(i)*slot + slot*gapPct/2
		pdf.Rect(x, base-h, barW, h, "F")
	}
	pdf.Line(x0, base, x0+plotW, base)
	pdf.Line(x0, y0, x0, base)

	pdf.SetFont("Helvetica", "", 8)
	for i := range shears {
		x := x0 + float64(i)*slot
		pdf.Text(x+slot/2-1, base+4, fmt.Sprintf("%d", i+1))
	}
	pdf.Text(x0+plotW/2-10, base+9, "Storey")
	pdf.Text(x0-2, y0-2, fmt.Sprintf("max %.2f kN", maxShear))
	pdf.SetY(base + 12)
}

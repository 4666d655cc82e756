package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gostrand/internal/diagram"
	"github.com/alexiusacademia/gostrand/internal/elongation"
	"github.com/alexiusacademia/gostrand/internal/format"
)

// Options controls the report header and optional sections
type Options struct {
	Title   string
	Project string
	Author  string
	Date    time.Time

	LengthM float64 // tendon length (m); 0 omits total elongation
	Chart   bool    // embed the force vs. elongation chart
}

const chartImage = "elongation-chart"

// Write renders an A4 calculation report for r as PDF into w
func Write(w io.Writer, r *elongation.Result, f *format.Formatter, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Prestressing Strand Elongation"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", opts.Project)))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", opts.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(10)

	s := r.Spec
	section(pdf, "Strand")
	rows := [][2]string{
		{"Type", s.DisplayName()},
		{"Diameter", f.Diameter(s.DiameterMm) + " mm"},
		{"Area (A)", f.Area(s.AreaCm2) + " cm²"},
		{"Weight", f.Weight(s.WeightKgPerM) + " kg/m"},
		{"fptk", f.Fptk(s.Fptk) + " kgf/mm²"},
		{"0.77 × fptk", f.Fptk077(s.Fptk077) + " kgf/mm²"},
		{"Max. force", f.Force(s.MaxForceKgf) + " kgf"},
		{"Modulus of elasticity (E)", f.Modulus(s.ElasticModulus) + " kgf/mm²"},
	}
	table(pdf, tr, rows)

	section(pdf, "Calculation")
	pdf.SetFont("Courier", "", 10)
	stiffness := r.Stiffness()
	lines := []string{
		"dL/m = Fp / (A × E)",
		"",
		fmt.Sprintf("Fp = %s kgf", f.Force(r.AppliedForceKgf)),
		fmt.Sprintf("A  = %s cm²", f.Area(s.AreaCm2)),
		fmt.Sprintf("E  = %s kgf/mm²", f.Modulus(s.ElasticModulus)),
		"",
		"1. A × E",
		fmt.Sprintf("   %s × %s = %s", f.Area(s.AreaCm2), f.Modulus(s.ElasticModulus), f.Stiffness(stiffness)),
		"2. Fp / (A × E)",
		fmt.Sprintf("   %s / %s = %s cm/m", f.Force(r.AppliedForceKgf), f.Stiffness(stiffness), f.Elongation(r.ElongationCmPerM)),
	}
	for _, line := range lines {
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	section(pdf, "Result")
	result := [][2]string{
		{"Applied force (Fp)", f.Force(r.AppliedForceKgf) + " kgf"},
		{"Utilization (Fp / max)", f.Percent(r.Utilization())},
		{"Elongation (dL/m)", f.Elongation(r.ElongationCmPerM) + " cm/m"},
	}
	if opts.LengthM > 0 {
		result = append(result,
			[2]string{"Tendon length", f.Decimal(opts.LengthM, 2) + " m"},
			[2]string{"Total elongation", f.Decimal(r.TotalElongationCm(opts.LengthM), 2) + " cm"},
		)
	}
	table(pdf, tr, result)

	if opts.Chart {
		var img bytes.Buffer
		if err := diagram.RenderElongationChart(r, f, &img, "png"); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		pdf.RegisterImageOptionsReader(chartImage, gofpdf.ImageOptions{ImageType: "PNG"}, &img)
		pdf.ImageOptions(chartImage, 15, 0, 180, 0, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(70, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(row[1]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

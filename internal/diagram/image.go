package diagram

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gostrand/internal/elongation"
	"github.com/alexiusacademia/gostrand/internal/format"
)

const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 6 * vg.Inch
)

var (
	lineColor  = color.RGBA{R: 255, G: 170, B: 0, A: 255}
	pointColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	guideColor = color.Gray{Y: 128}
)

// ExportElongationChart writes the force vs. elongation chart to filename.
// The format follows the extension (png, svg, pdf, ...); a name without an
// extension gets ".png". Nothing is written when rendering fails.
func ExportElongationChart(r *elongation.Result, f *format.Formatter, filename string) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		filename += ".png"
		ext = "png"
	}

	var buf bytes.Buffer
	if err := RenderElongationChart(r, f, &buf, ext); err != nil {
		return "", err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// RenderElongationChart writes the chart to w in the given image format
func RenderElongationChart(r *elongation.Result, f *format.Formatter, w io.Writer, imgFormat string) error {
	p, err := newElongationPlot(r, f)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(imageWidth, imageHeight, strings.ToLower(imgFormat))
	if err != nil {
		return fmt.Errorf("chart format %q: %w", imgFormat, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// newElongationPlot draws the strand's straight line from the origin to
// (max force, max elongation) and marks the computed point
func newElongationPlot(r *elongation.Result, f *format.Formatter) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Force vs. Elongation - %s", r.Spec.DisplayName())
	p.X.Label.Text = "Applied force (kgf)"
	p.Y.Label.Text = "Elongation (cm/m)"
	p.X.Min = 0
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	maxForce := r.Spec.MaxForceKgf
	maxElongation := r.MaxElongationCmPerM()

	behaviour, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: maxForce, Y: maxElongation},
	})
	if err != nil {
		return nil, err
	}
	behaviour.LineStyle.Width = vg.Points(2)
	behaviour.LineStyle.Color = lineColor
	p.Add(behaviour)

	x, y := r.AppliedForceKgf, r.ElongationCmPerM

	// Projections of the computed point onto both axes
	guides, err := plotter.NewLine(plotter.XYs{
		{X: x, Y: 0},
		{X: x, Y: y},
		{X: 0, Y: y},
	})
	if err != nil {
		return nil, err
	}
	guides.LineStyle.Width = vg.Points(1)
	guides.LineStyle.Color = guideColor
	guides.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(guides)

	point, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return nil, err
	}
	point.GlyphStyle.Color = pointColor
	point.GlyphStyle.Radius = vg.Points(5)
	point.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(point)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{fmt.Sprintf("  (%s kgf, %s cm/m)", f.Force(x), f.Elongation(y))},
	})
	if err != nil {
		return nil, err
	}
	p.Add(label)

	p.Legend.Add("Strand behaviour", behaviour)
	p.Legend.Add("Computed point", point)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

package diagram

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gostrand/internal/elongation"
	"github.com/alexiusacademia/gostrand/internal/format"
)

// Terminal chart size in character cells
const (
	chartWidth   = 50
	chartHeight  = 12
	chartSamples = 50
)

// DrawResultCard lists the strand properties and the computed elongation
func DrawResultCard(r *elongation.Result, f *format.Formatter) string {
	var sb strings.Builder
	s := r.Spec

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%s cm²\n", f.Area(s.AreaCm2))
	fmt.Fprintf(w, "  Weight:\t%s kg/m\n", f.Weight(s.WeightKgPerM))
	fmt.Fprintf(w, "  fptk:\t%s kgf/mm²\n", f.Fptk(s.Fptk))
	fmt.Fprintf(w, "  0.77 × fptk:\t%s kgf/mm²\n", f.Fptk077(s.Fptk077))
	fmt.Fprintf(w, "  Max. force:\t%s kgf\n", f.Force(s.MaxForceKgf))
	fmt.Fprintf(w, "  Elongation (ΔL/m):\t%s cm/m\n", f.Elongation(r.ElongationCmPerM))
	w.Flush()

	return sb.String()
}

// DrawCalculationTrace writes the step-by-step calculation:
// formula, variable legend, applied values and the two arithmetic steps
func DrawCalculationTrace(r *elongation.Result, f *format.Formatter) string {
	var sb strings.Builder
	s := r.Spec
	stiffness := r.Stiffness()

	sb.WriteString("  Formula:\n")
	sb.WriteString("      ΔL/m = Fp / (A × E)\n")
	sb.WriteString("\n")
	sb.WriteString("  Where:\n")
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "      ΔL/m\tElongation per meter (cm/m)\n")
	fmt.Fprintf(w, "      Fp\tApplied tensioning force (kgf)\n")
	fmt.Fprintf(w, "      A\tSteel cross-section area (cm²)\n")
	fmt.Fprintf(w, "      E\tModulus of elasticity (kgf/mm²)\n")
	w.Flush()
	sb.WriteString("\n")

	sb.WriteString("  Applied values:\n")
	sb.WriteString(fmt.Sprintf("      Fp = %s kgf\n", f.Force(r.AppliedForceKgf)))
	sb.WriteString(fmt.Sprintf("      A  = %s cm²\n", f.Area(s.AreaCm2)))
	sb.WriteString(fmt.Sprintf("      E  = %s kgf/mm²\n", f.Modulus(s.ElasticModulus)))
	sb.WriteString("\n")

	sb.WriteString("  Step by step:\n")
	sb.WriteString("      1. Denominator (A × E):\n")
	sb.WriteString(fmt.Sprintf("         %s × %s = %s\n",
		f.Area(s.AreaCm2), f.Modulus(s.ElasticModulus), f.Stiffness(stiffness)))
	sb.WriteString("      2. Elongation (Fp / previous result):\n")
	sb.WriteString(fmt.Sprintf("         %s / %s = %s cm/m\n",
		f.Force(r.AppliedForceKgf), f.Stiffness(stiffness), f.Elongation(r.ElongationCmPerM)))

	return sb.String()
}

// DrawElongationChart plots elongation against force from zero up to the
// strand's maximum force. The computed point is named in the caption.
func DrawElongationChart(r *elongation.Result, f *format.Formatter) string {
	maxForce := r.Spec.MaxForceKgf

	series := make([]float64, chartSamples+1)
	for i := range series {
		force := maxForce * float64(i) / chartSamples
		series[i] = elongation.Compute(r.Spec, force)
	}

	caption := fmt.Sprintf("x: 0 → %s kgf   ● Fp = %s kgf, ΔL/m = %s cm/m",
		f.Force(maxForce), f.Force(r.AppliedForceKgf), f.Elongation(r.ElongationCmPerM))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  FORCE vs. ELONGATION (cm/m)\n")
	sb.WriteString("  ───────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(series,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.LowerBound(0),
		asciigraph.Precision(format.ElongationPlaces),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	if len(lines) > 0 {
		sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	}
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

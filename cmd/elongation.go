package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gostrand/internal/diagram"
	"github.com/alexiusacademia/gostrand/internal/elongation"
	"github.com/alexiusacademia/gostrand/internal/report"
	"github.com/alexiusacademia/gostrand/internal/strand"
)

var (
	// Calculation inputs
	elongStrand string
	elongForce  string // kept as typed; "12500,5" and "12500.5" are equivalent
	elongLength float64

	// Output options
	elongTrace   bool
	elongDiagram bool
	elongOutput  string

	// Report options
	elongReport  string
	elongProject string
	elongAuthor  string
)

var elongationCmd = &cobra.Command{
	Use:   "elongation",
	Short: "Calculate the elongation of a wire or strand under a tensioning force",
	Long: `Calculate the elongation per meter (ΔL/m) of a prestressing wire
or strand under an applied tensioning force (Fp):

  ΔL/m = Fp / (A × E)

  ΔL/m - elongation per meter (cm/m)
  Fp   - applied tensioning force (kgf)
  A    - steel area (cm²)
  E    - modulus of elasticity (kgf/mm²)

The force must be positive and must not exceed the strand's maximum
tensioning force. Both '.' and ',' are accepted as decimal separator.

Examples:
  # 12.7 mm CP 190 RB strand at 12 500 kgf
  gostrand elongation --strand Cord_12.7 --force 12500

  # Decimal comma, 30 m tendon, terminal chart
  gostrand elongation -s Cord_15.2 -f 18500,5 --length 30 --diagram

  # Export the chart and a PDF calculation report
  gostrand elongation -s Fio_6.0 -f 3000 -o chart.png --report fio6.pdf`,
	RunE: runElongation,
}

func init() {
	rootCmd.AddCommand(elongationCmd)

	// Input flags
	elongationCmd.Flags().StringVarP(&elongStrand, "strand", "s", "", "Wire or strand ID (see 'gostrand strands')")
	elongationCmd.Flags().StringVarP(&elongForce, "force", "f", "", "Tensioning force Fp (kgf)")
	elongationCmd.Flags().Float64VarP(&elongLength, "length", "l", 0, "Tendon length (m) for the total elongation")

	// Output flags
	elongationCmd.Flags().BoolVar(&elongTrace, "trace", true, "Show the step-by-step calculation")
	elongationCmd.Flags().BoolVar(&elongDiagram, "diagram", false, "Show the force vs. elongation chart")
	elongationCmd.Flags().StringVarP(&elongOutput, "output", "o", "", "Export chart to file (png, svg, pdf)")

	// Report flags
	elongationCmd.Flags().StringVarP(&elongReport, "report", "r", "", "Write a PDF calculation report")
	elongationCmd.Flags().StringVar(&elongProject, "project", "", "Project name for the report")
	elongationCmd.Flags().StringVar(&elongAuthor, "author", "", "Author name for the report")

	elongationCmd.RegisterFlagCompletionFunc("strand", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return strand.IDs(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runElongation(cmd *cobra.Command, args []string) error {
	if elongLength < 0 {
		return fmt.Errorf("tendon length must not be negative: %g", elongLength)
	}

	result, err := elongation.Calculate(elongStrand, elongForce)
	if err != nil {
		// Shown to the user only
		return errors.New(elongation.Message(err, nf.Force))
	}

	logger.Debug("elongation computed",
		zap.String("strand", result.Spec.ID),
		zap.Float64("force_kgf", result.AppliedForceKgf),
		zap.Float64("elongation_cm_per_m", result.ElongationCmPerM),
	)

	out := cmd.OutOrStdout()
	s := result.Spec

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          PRESTRESSING STRAND ELONGATION")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Strand:\t%s (%s)\n", s.DisplayName(), s.ID)
	fmt.Fprintf(w, "  Tensioning force (Fp):\t%s kgf\n", nf.Force(result.AppliedForceKgf))
	fmt.Fprintf(w, "  Modulus of elasticity (E):\t%s kgf/mm²\n", nf.Modulus(s.ElasticModulus))
	if elongLength > 0 {
		fmt.Fprintf(w, "  Tendon length:\t%s m\n", nf.Decimal(elongLength, 2))
	}
	w.Flush()
	fmt.Fprintln(out)

	// Properties and result
	fmt.Fprintln(out, "CALCULATED RESULTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprint(out, diagram.DrawResultCard(result, nf))
	fmt.Fprintln(out)

	lines := []string{
		fmt.Sprintf("Fp = %s kgf (%s of max.)", nf.Force(result.AppliedForceKgf), nf.Percent(result.Utilization())),
	}
	if elongLength > 0 {
		lines = append(lines, fmt.Sprintf("ΔL = %s cm over %s m",
			nf.Decimal(result.TotalElongationCm(elongLength), 2), nf.Decimal(elongLength, 2)))
	}
	fmt.Fprint(out, diagram.DrawSummaryBox(
		fmt.Sprintf("ELONGATION ΔL/m = %s cm/m", nf.Elongation(result.ElongationCmPerM)), lines))
	fmt.Fprintln(out)

	if elongTrace {
		fmt.Fprintln(out, "CALCULATION TRACE:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		fmt.Fprint(out, diagram.DrawCalculationTrace(result, nf))
		fmt.Fprintln(out)
	}

	if elongDiagram {
		fmt.Fprintln(out, diagram.DrawElongationChart(result, nf))
	}

	if elongOutput != "" {
		written, err := diagram.ExportElongationChart(result, nf, elongOutput)
		if err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		logger.Info("chart exported", zap.String("file", written))
		fmt.Fprintf(out, "Chart exported to: %s\n", written)
	}

	if elongReport != "" {
		if err := writeReport(result, elongReport); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("report written", zap.String("file", elongReport))
		fmt.Fprintf(out, "Report written to: %s\n", elongReport)
	}

	return nil
}

// writeReport renders the whole PDF before touching filename
func writeReport(result *elongation.Result, filename string) error {
	opts := report.Options{
		Project: elongProject,
		Author:  elongAuthor,
		LengthM: elongLength,
		Chart:   true,
	}
	var buf bytes.Buffer
	if err := report.Write(&buf, result, nf, opts); err != nil {
		return err
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filename, buf.Bytes(), 0644)
}

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gostrand/internal/batch"
	"github.com/alexiusacademia/gostrand/internal/elongation"
)

var (
	batchFile   string
	batchSheet  string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate elongations for every row of a spreadsheet",
	Long: `Read strand/force pairs from an xlsx workbook, calculate the
elongation of each row and write the results to a new workbook.

Input layout (first row is a header and is skipped):
  A  strand ID
  B  tensioning force (kgf), '.' or ',' as decimal separator
  C  tendon length (m), optional

Rejected rows do not stop the batch; their reason is written to the
Error column of the results.

Examples:
  gostrand batch --file tendons.xlsx
  gostrand batch -f tendons.xlsx --sheet Level2 -o level2-results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Input workbook (xlsx)")
	batchCmd.Flags().StringVar(&batchSheet, "sheet", "", "Sheet to read (default first sheet)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Results workbook (default <file>-results.xlsx)")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := os.Open(batchFile)
	if err != nil {
		return err
	}
	defer in.Close()

	inputs, err := batch.Read(in, batchSheet)
	if err != nil {
		return fmt.Errorf("reading %s: %w", batchFile, err)
	}
	rows := batch.Run(inputs)

	output := batchOutput
	if output == "" {
		output = resultsName(batchFile)
	}
	var buf bytes.Buffer
	if err := batch.Write(&buf, rows, nf); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Line\tStrand\tFp (kgf)\tΔL/m (cm/m)\tStatus")
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "%d\t%s\t%s\t-\t%s\n", r.Line, r.StrandID, r.RawForce, elongation.Message(r.Err, nf.Force))
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\tOK\n", r.Line, r.Result.Spec.ID,
			nf.Force(r.Result.AppliedForceKgf), nf.Elongation(r.Result.ElongationCmPerM))
	}
	w.Flush()

	ok, failed := batch.Summary(rows)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d calculated, %d rejected. Results written to: %s\n", ok, failed, output)

	logger.Info("batch completed",
		zap.String("input", batchFile),
		zap.String("output", output),
		zap.Int("ok", ok),
		zap.Int("failed", failed),
	)
	return nil
}

// resultsName turns "dir/tendons.xlsx" into "dir/tendons-results.xlsx"
func resultsName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-results.xlsx"
}

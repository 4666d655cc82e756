package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gostrand/internal/strand"
)

var strandsJSON bool

var strandsCmd = &cobra.Command{
	Use:   "strands",
	Short: "List the prestressing wire and strand catalog",
	Long: `List every wire and strand available for the elongation
calculation, in catalog order.

Columns:
  ID         - identifier accepted by --strand
  Type       - steel class designation
  Ø          - nominal diameter (mm)
  A          - steel area (cm²)
  Weight     - linear mass (kg/m)
  fptk       - characteristic tensile strength (kgf/mm²)
  0.77 fptk  - 0.77 × fptk (kgf/mm²)
  Max. force - maximum tensioning force (kgf)
  E          - modulus of elasticity (kgf/mm²)

Examples:
  gostrand strands
  gostrand strands --json
  gostrand strands --locale en-US`,
	RunE: runStrands,
}

func init() {
	rootCmd.AddCommand(strandsCmd)

	strandsCmd.Flags().BoolVar(&strandsJSON, "json", false, "Print the catalog as JSON")
}

func runStrands(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	specs := strand.All()

	if strandsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(specs)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          PRESTRESSING WIRES AND STRANDS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "ID\tType\tØ (mm)\tA (cm²)\tWeight (kg/m)\tfptk\t0.77 fptk\tMax. force (kgf)\tE (kgf/mm²)\t\n")
	for _, s := range specs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.ID,
			s.Label,
			nf.Diameter(s.DiameterMm),
			nf.Area(s.AreaCm2),
			nf.Weight(s.WeightKgPerM),
			nf.Fptk(s.Fptk),
			nf.Fptk077(s.Fptk077),
			nf.Force(s.MaxForceKgf),
			nf.Modulus(s.ElasticModulus),
		)
	}
	w.Flush()
	fmt.Fprintln(out)

	return nil
}

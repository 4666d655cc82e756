package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gostrand/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gostrand",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gostrand v%s\n", version.String())
		fmt.Fprintln(out, "Prestressing Strand Elongation Calculator")
		fmt.Fprintln(out, "Elongation per meter: ΔL/m = Fp / (A × E)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

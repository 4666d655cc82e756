package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gostrand/internal/config"
	"github.com/alexiusacademia/gostrand/internal/format"
	"github.com/alexiusacademia/gostrand/internal/logging"
	"github.com/alexiusacademia/gostrand/internal/version"
)

var (
	// Persistent flags; empty means "use the environment"
	flagLocale   string
	flagLogLevel string

	// Set up in PersistentPreRunE
	cfg    config.Config
	logger = zap.NewNop()
	nf     = format.Default()

	// swapped in tests
	newLogger = logging.New
)

var rootCmd = &cobra.Command{
	Use:   "gostrand",
	Short: "Prestressing strand elongation calculator",
	Long: `gostrand - Prestressing Wire and Strand Elongation Calculator

A CLI tool for structural engineers checking the elongation of
prestressing wires and strands (CP 170 / CP 175 / CP 190 RB)
under a tensioning force.

This tool provides:
  - The wire and strand catalog with area, weight, fptk and limits
  - Elongation per meter: ΔL/m = Fp / (A × E)
  - Validation against each strand's maximum tensioning force
  - Step-by-step calculation trace and force vs. elongation chart
  - PDF calculation reports and spreadsheet batch runs

Numbers are shown in Brazilian Portuguese format (1.234,56) unless
--locale or GOSTRAND_LOCALE selects another locale.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gostrand v%-46s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Prestressing Strand Elongation Calculator               ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Elongation of prestressing wires and strands under")
		fmt.Fprintln(out, "  a tensioning force, checked against the strand's maximum.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Wire and strand catalog (gostrand strands)")
		fmt.Fprintln(out, "    • Elongation with calculation trace (gostrand elongation)")
		fmt.Fprintln(out, "    • Force vs. elongation chart, PDF report")
		fmt.Fprintln(out, "    • Spreadsheet batch calculation (gostrand batch)")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gostrand --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// execute runs the command tree and flushes the logger on every path
func execute() error {
	defer func() { logging.Sync(logger) }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Number format locale, e.g. pt-BR, en-US (default $GOSTRAND_LOCALE or pt-BR)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default $GOSTRAND_LOG_LEVEL or warn)")
}

// setup loads the configuration and builds the shared formatter and logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	nf, err = format.New(cfg.Locale)
	if err != nil {
		return err
	}
	logger, err = newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("locale", nf.Locale()),
		zap.String("log_level", cfg.LogLevel),
	)
	return nil
}

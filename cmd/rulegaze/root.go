package rulegaze

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulegaze/rulegaze/internal/logging"
)

var (
	flagVerbosity     int
	flagWidth         int
	flagNoColor       bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the rulegaze CLI.
var rootCmd = &cobra.Command{
	Use:           "rulegaze",
	Short:         "Scan bytes with pattern rules and pretty-print the matches",
	Long:          "Rulegaze scans a file or raw bytes with a set of named pattern rules, renders each match's nested result values as a styled tree, and reports which rules never hit.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagVerbosity)
	},
}

// Execute runs the rulegaze CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "display width (0 = detect terminal)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}

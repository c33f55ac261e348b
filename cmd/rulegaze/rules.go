package rulegaze

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulegaze/rulegaze/internal/display"
	"github.com/rulegaze/rulegaze/internal/loader"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

var (
	flagDumpDir      string
	flagDumpPatterns []string
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules [file...]",
		Short: "Print syntax-highlighted rule source",
		Long:  "Resolves rule files, a rule directory, or ad-hoc patterns the same way scan does, verifies the source compiles, and prints it highlighted.",
		RunE:  runRules,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagDumpDir, "dir", "d", "", "directory of rule files")
	cmd.Flags().StringArrayVarP(&flagDumpPatterns, "pattern", "p", nil, "ad-hoc regex pattern (repeatable)")
}

func runRules(_ *cobra.Command, args []string) error {
	var source string
	switch {
	case len(flagDumpPatterns) > 0:
		source = yarex.RulesForPatterns(flagDumpPatterns)
	case len(args) > 0:
		sources := make([]string, len(args))
		for i, f := range args {
			src, err := loader.LoadText(f)
			if err != nil {
				return err
			}
			sources[i] = src
		}
		source = strings.Join(sources, "\n")
	case flagDumpDir != "":
		files, err := loader.RuleFilesInDir(flagDumpDir)
		if err != nil {
			return err
		}
		sources := make([]string, len(files))
		for i, f := range files {
			src, err := loader.LoadText(f)
			if err != nil {
				return err
			}
			sources[i] = src
		}
		source = strings.Join(sources, "\n")
	default:
		return errors.New("provide rule files, --dir or --pattern")
	}

	if _, err := yarex.Compile(source); err != nil {
		return err
	}
	return display.HighlightRuleSource(os.Stdout, source)
}

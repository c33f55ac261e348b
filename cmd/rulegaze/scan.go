package rulegaze

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulegaze/rulegaze/internal/config"
	"github.com/rulegaze/rulegaze/internal/display"
	"github.com/rulegaze/rulegaze/internal/report"
	"github.com/rulegaze/rulegaze/internal/session"
	"github.com/rulegaze/rulegaze/internal/tui"
	"github.com/rulegaze/rulegaze/internal/update"
)

var (
	flagRulesFiles []string
	flagRulesDir   string
	flagPatterns   []string
	flagRulesText  string
	flagLabel      string
	flagStdin      bool
	flagJSON       bool
	flagTUI        bool
	flagNoDecode   bool
	flagSurround   int
	flagMinDecode  int
	flagMaxDecode  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Scan a file or stdin with pattern rules",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringArrayVarP(&flagRulesFiles, "rules-file", "f", nil, "rule file (repeatable)")
	cmd.Flags().StringVarP(&flagRulesDir, "rules-dir", "d", "", "directory of rule files")
	cmd.Flags().StringArrayVarP(&flagPatterns, "pattern", "p", nil, "ad-hoc regex pattern, synthesized into a rule (repeatable)")
	cmd.Flags().StringVar(&flagRulesText, "rules-text", "", "inline rule source text")
	cmd.Flags().StringVar(&flagLabel, "label", "", "label for raw bytes (required with --stdin)")
	cmd.Flags().BoolVar(&flagStdin, "stdin", false, "read the scan subject from stdin")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit a JSON report instead of styled output")
	cmd.Flags().BoolVar(&flagTUI, "tui", false, "browse matches interactively")
	cmd.Flags().BoolVar(&flagNoDecode, "no-decode", false, "suppress decode attempts for matched bytes")
	cmd.Flags().IntVar(&flagSurround, "surrounding-bytes", 0, "bytes of context kept around each match")
	cmd.Flags().IntVar(&flagMinDecode, "min-decode-length", 0, "skip decoding matches shorter than this")
	cmd.Flags().IntVar(&flagMaxDecode, "max-decode-length", 0, "skip decoding matches longer than this")
}

// resolveSettings merges defaults, environment, config files, and flags.
func resolveSettings(cmd *cobra.Command) config.Settings {
	settings := config.Defaults()
	config.ApplyEnv(&settings)

	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if cwd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(cwd); err == nil {
			lcfg = c
		}
	}
	gcfg.Apply(&settings)
	lcfg.Apply(&settings)

	settings.Width = pickInt(flagWidth, lcfg.Width, gcfg.Width)
	settings.NoColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if cmd.Flags().Changed("surrounding-bytes") {
		settings.SurroundingBytes = flagSurround
	}
	if cmd.Flags().Changed("min-decode-length") {
		settings.MinDecodeLength = flagMinDecode
	}
	if cmd.Flags().Changed("max-decode-length") {
		settings.MaxDecodeLength = flagMaxDecode
	}
	if flagNoDecode {
		settings.SuppressDecodes = true
	}
	return settings
}

// buildSession wires the chosen rule source and scan subject together.
func buildSession(args []string, settings config.Settings, console *display.Console) (*session.Session, error) {
	var subject session.Scannable
	switch {
	case flagStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		subject = session.Bytes(data, flagLabel)
	case len(args) == 1:
		subject = session.File(args[0])
	default:
		return nil, errors.New("provide a file to scan or --stdin")
	}

	switch {
	case len(flagPatterns) > 0:
		return session.ForPatterns(flagPatterns, subject, settings, console)
	case flagRulesText != "":
		return session.FromSource(flagRulesText, "inline rules", subject, settings, console)
	case len(flagRulesFiles) > 0:
		return session.ForRulesFiles(flagRulesFiles, subject, settings, console)
	case flagRulesDir != "":
		return session.ForRulesDir(flagRulesDir, subject, settings, console)
	}
	return nil, errors.New("provide rules via --rules-file, --rules-dir, --pattern or --rules-text")
}

func runScan(cmd *cobra.Command, args []string) error {
	settings := resolveSettings(cmd)

	registry := display.DefaultRegistry()
	if settings.NoColor {
		registry = display.NoColorRegistry()
	}
	console := display.NewConsole(os.Stdout, registry, settings.Width)

	s, err := buildSession(args, settings, console)
	if err != nil {
		return err
	}

	switch {
	case flagJSON:
		summary := s.Scan()
		if err := report.WriteJSON(os.Stdout, report.Build(s.BytesLabel(), s.RulesLabel(), summary)); err != nil {
			return err
		}
	case flagTUI:
		summary := s.Scan()
		if err := tui.Run(summary, s.Data(), settings); err != nil {
			return err
		}
	default:
		s.Run()
	}

	if !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer {
			fmt.Fprintf(os.Stderr, "\nrulegaze %s is available (you have %s); run 'rulegaze version --self-update'\n", latest, version)
		}
	}
	return nil
}

package rulegaze

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rulegaze/rulegaze/internal/update"
)

var flagSelfUpdate bool

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version and check for updates",
		RunE:  runVersion,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagSelfUpdate, "self-update", false, "update rulegaze to the latest release")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "rulegaze %s\n", version)

	if flagSelfUpdate {
		return update.SelfUpdate(version)
	}

	if !flagNoUpdateCheck {
		latest, newer, err := update.Check(version, false)
		if err == nil && newer {
			fmt.Fprintf(cmd.OutOrStdout(), "update available: %s\n", latest)
		}
	}
	return nil
}

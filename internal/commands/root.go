package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firextract-dev/firextract/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "firextract",
		Short:   "Daily token-transfer extraction launcher",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newWindowCommand())
	rootCmd.AddCommand(newSummaryCommand())

	return rootCmd
}

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firextract-dev/firextract/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file.jsonl>",
		Short: "Summarize an extractor output file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := summary.ReadFile(args[0])
			if err != nil {
				return err
			}
			return totals.Render(os.Stdout)
		},
	}
}

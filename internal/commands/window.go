package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firextract-dev/firextract/internal/window"
)

func newWindowCommand() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the extraction window boundaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if dateStr != "" {
				d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				now = d
			}

			w := window.At(now)
			fmt.Printf("from: %s\nto:   %s\n", w.From(), w.To())
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "compute the window for this date (YYYY-MM-DD)")

	return cmd
}

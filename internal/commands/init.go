package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firextract-dev/firextract/internal/config"
)

func newInitCommand() *cobra.Command {
	var chain string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new extraction project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, chain)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "eos", "chain the extractor streams from")

	return cmd
}

func runInit(dir, chain string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Create directory structure.
	for _, d := range []string{"jsonl", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write firextract.yaml.
	cfg := config.Default(chain)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized firextract project at %s\n", dir)
	return nil
}

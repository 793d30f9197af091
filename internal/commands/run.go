package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/firextract-dev/firextract/internal/config"
	"github.com/firextract-dev/firextract/internal/launcher"
	"github.com/firextract-dev/firextract/internal/runlog"
	"github.com/firextract-dev/firextract/internal/window"
)

func newRunCommand() *cobra.Command {
	var cfgPath string
	var dateStr string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run [-- extractor args...]",
		Short: "Extract yesterday's transfers",
		Long: `Run computes the previous local calendar day as a pair of midnight
boundaries, builds the account filter, and invokes the extractor with the
assembled arguments. Anything after -- is passed to the extractor verbatim.
The extractor's exit status becomes this command's exit status.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			passthrough := args
			if at := cmd.ArgsLenAtDash(); at >= 0 {
				passthrough = args[at:]
			}

			now := time.Now()
			if dateStr != "" {
				d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				now = d
			}

			return runExtract(cfgPath, now, passthrough, dryRun)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", config.FileName, "configuration file")
	cmd.Flags().StringVar(&dateStr, "date", "", "run as if today were this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the extractor command without executing")

	return cmd
}

func runExtract(cfgPath string, now time.Time, passthrough []string, dryRun bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	root := filepath.Dir(cfgPath)
	w := window.At(now)
	args := launcher.Build(cfg, w, passthrough)

	envDir := cfg.Runtime.EnvDir
	if !filepath.IsAbs(envDir) {
		envDir = filepath.Join(root, envDir)
	}
	interpreter, env, err := launcher.ActivateEnv(envDir, cfg.Runtime.Python)
	if err != nil {
		return err
	}

	inv := launcher.Invocation{
		Program: interpreter,
		Args:    append([]string{cfg.Extractor.Path}, args...),
		Env:     env,
		Dir:     root,
	}

	if dryRun {
		fmt.Println(inv.CommandLine())
		return nil
	}

	elapsed, runErr := launcher.Run(inv)

	// Record the run even when the extractor fails; spawn failures
	// (nothing ran) are not recorded.
	exitCode := 0
	var exitErr *launcher.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return runErr
	}
	if exitErr != nil {
		exitCode = exitErr.Code
	}

	if err := appendRunLog(root, cfg.Chain, w, elapsed, exitCode); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}

	return runErr
}

func appendRunLog(root, chain string, w window.Window, elapsed time.Duration, exitCode int) error {
	seq, err := runlog.NextSeq(root, w.TodayStart)
	if err != nil {
		return err
	}
	return runlog.Append(root, []runlog.Entry{{
		RunID:       runlog.FormatRunID(w.TodayStart, seq),
		Timestamp:   time.Now(),
		Chain:       chain,
		WindowStart: w.From(),
		WindowEnd:   w.To(),
		Duration:    elapsed,
		ExitCode:    exitCode,
	}})
}

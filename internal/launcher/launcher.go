package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/firextract-dev/firextract/internal/config"
	"github.com/firextract-dev/firextract/internal/filter"
	"github.com/firextract-dev/firextract/internal/window"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Invocation is one fully assembled extractor command.
type Invocation struct {
	Program string
	Args    []string
	Env     []string // overrides appended to the parent environment
	Dir     string
}

// ExitError reports a non-zero extractor exit so callers can propagate the
// code unchanged.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("extractor exited with status %d", e.Code)
}

// Build assembles the extractor argv in fixed order: the account
// identifiers, the window boundaries, the -x flag with the filter
// expression, then any pass-through args verbatim and in original order.
func Build(cfg *config.Config, w window.Window, passthrough []string) []string {
	args := make([]string, 0, len(cfg.Accounts)+4+len(passthrough))
	args = append(args, cfg.Accounts...)
	args = append(args, w.From(), w.To())
	args = append(args, "-x", filter.Expression(cfg.Filter.Field, cfg.Accounts))
	args = append(args, passthrough...)
	return args
}

// ActivateEnv verifies the Python environment and returns the interpreter
// path plus the environment overrides equivalent to sourcing its activate
// script. A missing interpreter is fatal; nothing is invoked after it.
func ActivateEnv(envDir, python string) (string, []string, error) {
	abs, err := filepath.Abs(envDir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving env dir: %w", err)
	}

	bin := filepath.Join(abs, "bin")
	interpreter := filepath.Join(bin, python)
	if _, err := os.Stat(interpreter); err != nil {
		return "", nil, fmt.Errorf("runtime environment %s: %w", envDir, err)
	}

	env := []string{
		"VIRTUAL_ENV=" + abs,
		"PATH=" + bin + string(os.PathListSeparator) + os.Getenv("PATH"),
	}
	return interpreter, env, nil
}

// Run executes the invocation, blocking until the child exits. The child
// inherits stdio. Returns the elapsed wall-clock time; a non-zero exit is
// reported as *ExitError. No retries.
func Run(inv Invocation) (time.Duration, error) {
	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = append(os.Environ(), inv.Env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info().Str("program", inv.Program).Strs("args", inv.Args).Msg("starting extractor")

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Error().
				Int("code", exitErr.ExitCode()).
				Dur("elapsed", elapsed).
				Msg("extractor failed")
			return elapsed, &ExitError{Code: exitErr.ExitCode()}
		}
		return elapsed, fmt.Errorf("running %s: %w", inv.Program, err)
	}

	logger.Info().Dur("elapsed", elapsed).Msg("extractor finished")
	return elapsed, nil
}

// CommandLine renders the invocation for display, quoting arguments that
// would not survive a shell.
func (inv Invocation) CommandLine() string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, inv.Program)
	for _, a := range inv.Args {
		if strings.ContainsAny(a, " '\"[]") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

package main

import (
	"errors"
	"os"

	"github.com/firextract-dev/firextract/internal/commands"
	"github.com/firextract-dev/firextract/internal/launcher"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// Package main is the entry point for the shotgun CLI.
package main

import (
	"os"

	"github.com/thoreinstein/shotgun/cmd/shotgun/commands"
	"github.com/thoreinstein/shotgun/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

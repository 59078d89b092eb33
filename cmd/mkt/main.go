// Package main is the entry point for the mkt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/mkt/cmd/mkt/commands"
	"github.com/thoreinstein/mkt/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", exitErr.Suggestion)
		}
		os.Exit(errors.Code(err))
	}
}

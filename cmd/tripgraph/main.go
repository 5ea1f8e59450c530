// Package main provides the tripgraph CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: bad input from the user versus a failing
// backend or environment.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidEntityType),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrDuplicateLink),
		errors.Is(err, types.ErrNotFound):
		return exitUserError
	default:
		return exitSysError
	}
}

// Package main provides the tokengen CLI for generating and checking design
// tokens.
package main

import (
	"errors"
	"fmt"
	"os"
)

// exitError ends the process with a status code and no further message. The
// report explaining the failure has already been written.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

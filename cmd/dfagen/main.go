// Command dfagen compiles derivative-based regular expressions into DFAs.
//
// Usage:
//
//	dfagen dfa [--format dot|table|go] <pattern>
//	dfagen derive <input> <pattern>
//	dfagen match [--search] [--marks] [--count] <pattern> [file...]
package main

import (
	"os"
)

func main() {
	logger := newLogger(os.Stderr)
	defer recoverPanic(checkForErrorsAndExit(logger))

	app := NewApp(logger, os.Stdin, os.Stdout)
	err := app.Run(os.Args)
	checkForErrorsAndExit(logger)(err)
}

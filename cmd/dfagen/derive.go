package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/coregx/dfagen/deriv"
	"github.com/coregx/dfagen/syntax"
)

func deriveCommand() *cli.Command {
	return &cli.Command{
		Name:      "derive",
		Usage:     "print the regex value after each byte of input",
		ArgsUsage: "<input> <pattern>",
		Action: func(c *cli.Context) error {
			input, err := patternArg(c, 0, "input")
			if err != nil {
				return err
			}
			pattern, err := patternArg(c, 1, "pattern")
			if err != nil {
				return err
			}

			store, err := deriv.NewStore(deriv.DefaultConfig().WithMaxNodes(c.Int(flagMaxNodes)))
			if err != nil {
				return withStackTrace(err)
			}
			root, err := syntax.Parse(store, pattern)
			if err != nil {
				return withStackTrace(err)
			}

			w := c.App.Writer
			return withStackTrace(store.Guard(func() {
				r := root
				fmt.Fprintln(w, store.Format(r))
				for i := 0; i < len(input); i++ {
					r = store.Derive(r, input[i])
					fmt.Fprintln(w, store.Format(r))
				}
			}))
		},
	}
}

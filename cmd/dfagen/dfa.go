package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/coregx/dfagen"
	"github.com/coregx/dfagen/emit"
)

func dfaCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "dfa",
		Usage:     "compile a pattern and print its automaton",
		ArgsUsage: "<pattern>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: dot, table, go",
				Value:   "dot",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to `FILE` instead of stdout",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "package clause for --format go",
				Value: "main",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "function name for --format go",
				Value: "Match",
			},
			&cli.BoolFlag{
				Name:  "accepting",
				Usage: "draw accepting states in bold (--format dot)",
			},
		},
		Action: func(c *cli.Context) error {
			pattern, err := patternArg(c, 0, "pattern")
			if err != nil {
				return err
			}
			format := c.String("format")
			if format != "dot" && format != "table" && format != "go" {
				return withStackTrace(errors.Errorf("invalid format %q (must be dot, table or go)", format))
			}

			re, err := dfagen.CompileWithConfig(pattern, compileConfig(c, logger))
			if err != nil {
				return withStackTrace(err)
			}
			logger.WithFields(logrus.Fields{
				"states": re.NumStates(),
				"format": format,
			}).Info("writing automaton")

			return writeOutput(c, c.String("output"), func(w io.Writer) error {
				switch format {
				case "table":
					return emit.Table(w, re.DFA())
				case "go":
					return emit.GoCode(w, re.DFA(), emit.GoOptions{
						Package: c.String("package"),
						Name:    c.String("name"),
						Pattern: pattern,
					})
				default:
					return emit.Dot(w, re.DFA(), emit.DotOptions{Accepting: c.Bool("accepting")})
				}
			})
		},
	}
}

// writeOutput runs write against path, or the app's writer if path is empty.
func writeOutput(c *cli.Context, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(c.App.Writer)
	}

	f, err := os.Create(path)
	if err != nil {
		return withStackTrace(errors.Wrapf(err, "creating %s", path))
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return withStackTrace(errors.Wrapf(err, "writing %s", path))
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return withStackTrace(errors.Wrapf(err, "writing %s", path))
	}
	return withStackTrace(errors.Wrapf(f.Close(), "closing %s", path))
}

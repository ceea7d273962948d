package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/coregx/dfagen"
	"github.com/coregx/dfagen/deriv"
)

const (
	flagLogLevel = "log-level"
	flagMaxNodes = "max-nodes"
)

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = w
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.Level = logrus.WarnLevel
	return logger
}

// NewApp builds the command line application. Diagnostics go to logger;
// command output goes to out and stdin-driven commands read from in.
func NewApp(logger *logrus.Logger, in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:  "dfagen",
		Usage: "compile regular expressions into DFAs by Brzozowski derivatives",
		Description: `Patterns are byte-oriented and support | & * + ? ! (postfix complement),
character classes, '.', escapes \n \r \t and named marks written `+"`name`"+`.`,
		Reader:    in,
		Writer:    out,
		ErrWriter: logger.Out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level: trace, debug, info, warn, error",
				Value:   "warn",
				EnvVars: []string{"DFAGEN_LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    flagMaxNodes,
				Usage:   "maximum number of regex values per compilation",
				Value:   deriv.DefaultConfig().MaxNodes,
				EnvVars: []string{"DFAGEN_MAX_NODES"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String(flagLogLevel))
			if err != nil {
				return errors.Wrapf(err, "invalid --%s", flagLogLevel)
			}
			logger.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			dfaCommand(logger),
			deriveCommand(),
			matchCommand(logger),
		},
	}
}

// compileConfig returns the compilation settings selected by the global
// flags.
func compileConfig(c *cli.Context, logger logrus.FieldLogger) dfagen.Config {
	return dfagen.DefaultConfig().
		WithMaxNodes(c.Int(flagMaxNodes)).
		WithLogger(logger)
}

// patternArg returns positional argument i, named for the error message.
func patternArg(c *cli.Context, i int, name string) (string, error) {
	if c.NArg() <= i {
		return "", withStackTrace(errors.Errorf("missing %s argument", name))
	}
	return c.Args().Get(i), nil
}

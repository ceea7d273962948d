package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/coregx/dfagen"
	"github.com/coregx/dfagen/internal/mmap"
)

// stdinName is the file argument that selects standard input.
const stdinName = "-"

type matchOptions struct {
	search bool
	marks  bool
	count  bool
	prefix bool
}

func matchCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "print the lines of the given files that match a pattern",
		ArgsUsage: "<pattern> [file...]",
		Description: `Each line is tested as a whole unless --search is given, in which case
a line is printed if any part of it matches. With no files, or with '-',
standard input is read. Files that cannot be read are reported together
after the others have been processed.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "match anywhere in the line (leftmost-longest)",
			},
			&cli.BoolFlag{
				Name:    "marks",
				Aliases: []string{"m"},
				Usage:   "append the marks active after reading the line",
			},
			&cli.BoolFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "print only the number of matching lines per file",
			},
		},
		Action: func(c *cli.Context) error {
			pattern, err := patternArg(c, 0, "pattern")
			if err != nil {
				return err
			}
			re, err := dfagen.CompileWithConfig(pattern, compileConfig(c, logger))
			if err != nil {
				return withStackTrace(err)
			}

			files := c.Args().Slice()[1:]
			if len(files) == 0 {
				files = []string{stdinName}
			}
			opts := matchOptions{
				search: c.Bool("search"),
				marks:  c.Bool("marks"),
				count:  c.Bool("count"),
				prefix: len(files) > 1,
			}

			out := bufio.NewWriter(c.App.Writer)
			var errs *multierror.Error
			for _, name := range files {
				n, err := matchFile(c.App.Reader, out, re, name, opts)
				if err != nil {
					logger.WithField("file", name).WithError(err).Warn("skipping file")
					errs = multierror.Append(errs, err)
					continue
				}
				logger.WithFields(logrus.Fields{"file": name, "matches": n}).Debug("matched file")
			}
			if err := out.Flush(); err != nil {
				errs = multierror.Append(errs, errors.Wrap(err, "writing output"))
			}
			return withStackTrace(errs.ErrorOrNil())
		},
	}
}

// matchFile writes the matching lines of file name and returns how many
// matched.
func matchFile(stdin io.Reader, out io.Writer, re *dfagen.Regex, name string, opts matchOptions) (n int, err error) {
	var data []byte
	if name == stdinName {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return 0, errors.Wrap(err, "reading standard input")
		}
	} else {
		var f *mmap.File
		f, err = mmap.Open(name)
		if err != nil {
			return 0, errors.Wrapf(err, "opening %s", name)
		}
		defer closeFile(f, name, &err)
		data = f.Bytes()
	}

	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})

		var ok bool
		if opts.search {
			ok = re.FindIndex(line) != nil
		} else {
			ok = re.Match(line)
		}
		if !ok {
			continue
		}
		n++
		if opts.count {
			continue
		}

		if opts.prefix {
			fmt.Fprintf(out, "%s:", name)
		}
		out.Write(line)
		if opts.marks {
			fmt.Fprintf(out, "\t[%s]", strings.Join(re.Marks(line), " "))
		}
		fmt.Fprintln(out)
	}

	if opts.count {
		if opts.prefix {
			fmt.Fprintf(out, "%s:", name)
		}
		fmt.Fprintln(out, n)
	}
	return n, nil
}

// closeFile closes c and stores a failure in *err unless an earlier error
// is already set.
func closeFile(c io.Closer, name string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = errors.Wrapf(cerr, "closing %s", name)
	}
}

package app

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/fkie-cad/fspath"
	"github.com/fkie-cad/fspath/output"
	"github.com/rjNemo/underscore"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"
)

func pathArgs(c *cli.Context, from int) []fspath.Path {
	return underscore.Map(c.Args().Slice()[from:], func(arg string) fspath.Path {
		return fspath.Path(arg)
	})
}

func dirArg(c *cli.Context) fspath.Path {
	if c.NArg() == 0 {
		return "."
	}
	return fspath.Path(c.Args().First())
}

func info(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}

	formatter := output.NewPrettyFormatter()
	for i, p := range pathArgs(c, 0) {
		if i > 0 {
			fmt.Fprintln(c.App.Writer)
		}
		if tmpErr := output.WriteInfo(c.App.Writer, formatter, p, c.Int("width")); tmpErr != nil {
			err = errors.NewMultiError(err, errors.Errorf("could not stat \"%s\", reason: %w", p, tmpErr))
		}
	}
	return err
}

func list(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 0, 1); err != nil {
		return err
	}
	if c.Bool("dirs") && c.Bool("files") {
		return errors.New("flags \"--dirs\" and \"--files\" are mutually exclusive")
	}

	dir := dirArg(c)
	pattern := c.String("pattern")

	var children []fspath.Path
	switch {
	case c.Bool("dirs"):
		children, err = dir.Subdirectories(pattern)
	case c.Bool("files"):
		children, err = dir.Files(pattern)
	default:
		children, err = dir.List(pattern)
	}
	if err != nil {
		return errors.Errorf("could not list \"%s\", reason: %w", dir, err)
	}

	lister := output.NewLister(c.App.Writer, output.NewPrettyFormatter())
	lister.Long = c.Bool("long")
	return lister.WriteListing(children)
}

func glob(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 2, 2); err != nil {
		return err
	}

	dir := fspath.Path(c.Args().Get(0))
	matches, err := dir.Glob(c.Args().Get(1))
	if err != nil {
		return errors.Errorf("invalid pattern \"%s\", reason: %w", c.Args().Get(1), err)
	}
	for _, m := range matches {
		fmt.Fprintln(c.App.Writer, m)
	}
	return nil
}

func tree(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 0, 1); err != nil {
		return err
	}

	root := dirArg(c)
	formatter := output.NewPrettyFormatter()
	var walkErr error
	err = root.Walk(func(p fspath.Path, entry fs.DirEntry, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", p).Warn("Could not walk path.")
			walkErr = errors.NewMultiError(walkErr, err)
			return nil
		}
		rel, err := p.RelTo(root)
		if err != nil {
			return err
		}
		if rel == "." {
			fmt.Fprintln(c.App.Writer, formatter.FormatName(root))
			return nil
		}
		depth := strings.Count(rel.String(), string(fspath.Separator))
		fmt.Fprintf(c.App.Writer, "%s%s\n", strings.Repeat("  ", depth+1), formatter.FormatName(p))
		return nil
	})
	if err != nil {
		return err
	}
	return walkErr
}

func owner(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}

	for _, p := range pathArgs(c, 0) {
		name, tmpErr := p.Owner()
		if tmpErr != nil {
			if errors.Is(tmpErr, fspath.ErrNotImplemented) {
				return tmpErr
			}
			err = errors.NewMultiError(err, errors.Errorf("could not determine owner of \"%s\", reason: %w", p, tmpErr))
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", name, p)
	}
	return err
}

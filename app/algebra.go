package app

import (
	"fmt"

	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"
)

func expand(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}

	for _, p := range pathArgs(c, 0) {
		fmt.Fprintln(c.App.Writer, p.Expand())
	}
	return nil
}

func realpath(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}

	for _, p := range pathArgs(c, 0) {
		resolved, tmpErr := p.RealPath()
		if tmpErr != nil {
			err = errors.NewMultiError(err, errors.Errorf("could not resolve \"%s\", reason: %w", p, tmpErr))
			continue
		}
		fmt.Fprintln(c.App.Writer, resolved)
	}
	return err
}

func parts(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}

	for _, p := range pathArgs(c, 0) {
		parent, name := p.Split()
		fmt.Fprintf(c.App.Writer, "parent=%q name=%q stem=%q ext=%q\n", parent, name, p.Stem(), p.Ext())
	}
	return nil
}

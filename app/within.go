package app

import (
	"os"
	"os/exec"

	"github.com/fkie-cad/fspath"
	"github.com/google/shlex"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"
)

// commandLine returns the command to run. A single argument is split
// like a shell would, so quoted command lines work as well.
func commandLine(args []string) ([]string, error) {
	if len(args) != 1 {
		return args, nil
	}
	split, err := shlex.Split(args[0])
	if err != nil {
		return nil, errors.Errorf("invalid command line \"%s\", reason: %w", args[0], err)
	}
	if len(split) == 0 {
		return nil, errors.New("empty command line")
	}
	return split, nil
}

func within(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 2, -1); err != nil {
		return err
	}

	dir := fspath.Path(c.Args().First())
	args, err := commandLine(c.Args().Tail())
	if err != nil {
		return err
	}

	return dir.Within(func() error {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = c.App.Writer
		cmd.Stderr = c.App.ErrWriter
		return cmd.Run()
	})
}

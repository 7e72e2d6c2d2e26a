package app

import (
	"os"
	"strconv"

	"github.com/fkie-cad/fspath"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"
)

// forEachPath applies op to every path argument starting at index from.
// Failures do not stop the iteration, they are collected and returned.
func forEachPath(c *cli.Context, from int, what string, op func(p fspath.Path) (fspath.Path, error)) error {
	var err error
	for _, p := range pathArgs(c, from) {
		if _, tmpErr := op(p); tmpErr != nil {
			err = errors.NewMultiError(err, errors.Errorf("could not %s \"%s\", reason: %w", what, p, tmpErr))
			continue
		}
		logrus.WithFields(logrus.Fields{
			"path":      p,
			"operation": what,
		}).Info("Operation successful.")
	}
	return err
}

func touch(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}
	return forEachPath(c, 0, "touch", fspath.Path.Touch)
}

func mkdir(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}
	op := func(p fspath.Path) (fspath.Path, error) {
		return p.Mkdir(0777)
	}
	if c.Bool("parents") {
		op = func(p fspath.Path) (fspath.Path, error) {
			return p.MkdirAll(0777)
		}
	}
	return forEachPath(c, 0, "mkdir", op)
}

func remove(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}
	return forEachPath(c, 0, "remove", fspath.Path.Remove)
}

func removeDir(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}
	return forEachPath(c, 0, "remove directory", fspath.Path.RemoveDir)
}

func rename(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 2, 2); err != nil {
		return err
	}

	old := fspath.Path(c.Args().Get(0))
	_, err = old.Rename(c.Args().Get(1))
	if err != nil {
		return errors.Errorf("could not rename \"%s\", reason: %w", old, err)
	}
	return nil
}

// parseMode converts an octal mode like chmod(1) takes it. The setuid,
// setgid and sticky bits are mapped to their os.FileMode flags.
func parseMode(s string) (os.FileMode, error) {
	octal, err := strconv.ParseUint(s, 8, 32)
	if err != nil || octal > 07777 {
		return 0, errors.Newf("\"%s\" is not an octal mode", s)
	}
	mode := os.FileMode(octal) & os.ModePerm
	if octal&04000 != 0 {
		mode |= os.ModeSetuid
	}
	if octal&02000 != 0 {
		mode |= os.ModeSetgid
	}
	if octal&01000 != 0 {
		mode |= os.ModeSticky
	}
	return mode, nil
}

func chmod(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 2, -1); err != nil {
		return err
	}

	mode, err := parseMode(c.Args().First())
	if err != nil {
		return err
	}
	return forEachPath(c, 1, "chmod", func(p fspath.Path) (fspath.Path, error) {
		return p.Chmod(mode)
	})
}

func chown(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}
	if err := expectArgs(c, 1, -1); err != nil {
		return err
	}

	uid, gid := c.Int("uid"), c.Int("gid")
	return forEachPath(c, 0, "chown", func(p fspath.Path) (fspath.Path, error) {
		return p.Chown(uid, gid)
	})
}

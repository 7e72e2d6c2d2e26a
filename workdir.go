package fspath

import (
	"os"

	"github.com/sirupsen/logrus"
)

// WorkDir is an active working directory change, created by Path.Enter.
// The working directory is global to the process, so scopes must not be
// used from multiple goroutines at the same time.
type WorkDir struct {
	previous Path
	exited   bool
}

// Enter changes the working directory of the process to this path. The
// previous working directory is restored by calling Exit on the returned
// WorkDir. If the directory cannot be changed, nothing is modified.
func (p Path) Enter() (*WorkDir, error) {
	previous, err := Getwd()
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(string(p)); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"path":     p,
		"previous": previous,
	}).Trace("Entered working directory.")
	return &WorkDir{previous: previous}, nil
}

// Previous returns the working directory at the time of Enter.
func (w *WorkDir) Previous() Path {
	return w.previous
}

// Exit restores the previous working directory. Calling it more than
// once has no effect.
func (w *WorkDir) Exit() error {
	if w.exited {
		return nil
	}
	w.exited = true
	logrus.WithField("path", w.previous).Trace("Restoring working directory.")
	return os.Chdir(string(w.previous))
}

// Within runs fn with the working directory set to this path. The
// previous working directory is restored afterwards, even if fn fails or
// panics. An error of fn takes precedence over an error restoring the
// working directory.
func (p Path) Within(fn func() error) (err error) {
	wd, err := p.Enter()
	if err != nil {
		return err
	}
	defer func() {
		exitErr := wd.Exit()
		if err == nil {
			err = exitErr
		}
	}()
	return fn()
}

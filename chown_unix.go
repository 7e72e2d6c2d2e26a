//go:build unix

package fspath

import (
	"os"

	"golang.org/x/sys/unix"
)

func init() {
	chown = chownUnix
}

func chownUnix(path string, uid, gid int) error {
	if err := unix.Chown(path, uid, gid); err != nil {
		return &os.PathError{Op: "chown", Path: path, Err: err}
	}
	return nil
}

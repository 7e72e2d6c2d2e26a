//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris || windows)

package fspath

import (
	"os"
	"time"
)

// Only the modification time is portable, it stands in for the others.
func statTimes(path string) (atime, ctime time.Time, err error) {
	stat, err := os.Stat(path)
	if err != nil {
		return
	}
	return stat.ModTime(), stat.ModTime(), nil
}

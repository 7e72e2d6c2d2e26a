//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package fspath

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func statTimes(path string) (atime, ctime time.Time, err error) {
	var st unix.Stat_t
	if err = unix.Stat(path, &st); err != nil {
		err = &os.PathError{Op: "stat", Path: path, Err: err}
		return
	}
	atime = time.Unix(st.Atim.Unix())
	ctime = time.Unix(st.Ctim.Unix())
	return
}

//go:build unix

package fspath

import (
	"os"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

func init() {
	ownerLookup = ownerUnix
}

func ownerUnix(path string) (string, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return "", &os.PathError{Op: "stat", Path: path, Err: err}
	}
	u, err := user.LookupId(strconv.FormatUint(uint64(st.Uid), 10))
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

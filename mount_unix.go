//go:build unix && !linux

package fspath

import (
	"golang.org/x/sys/unix"
)

// A path is a mount point if it lives on a different device than its
// parent, or if it is its own parent.
func isMount(path string) bool {
	var st, parent unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false
	}
	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		return false
	}
	if err := unix.Lstat(join(path, ".."), &parent); err != nil {
		return false
	}
	return st.Dev != parent.Dev || st.Ino == parent.Ino
}

package fspath

import (
	"os"
	"syscall"
	"time"
)

func statTimes(path string) (atime, ctime time.Time, err error) {
	stat, err := os.Stat(path)
	if err != nil {
		return
	}
	attr, ok := stat.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		atime, ctime = stat.ModTime(), stat.ModTime()
		return
	}
	atime = time.Unix(0, attr.LastAccessTime.Nanoseconds())
	ctime = time.Unix(0, attr.CreationTime.Nanoseconds())
	return
}

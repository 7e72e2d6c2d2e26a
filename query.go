package fspath

import (
	"os"
	"time"
)

// Exists reports whether the path exists. Broken symbolic links do not
// exist. Any error while stating the path is treated as non-existence.
func (p Path) Exists() bool {
	_, err := os.Stat(string(p))
	return err == nil
}

// IsDir reports whether the path is a directory, following links.
func (p Path) IsDir() bool {
	stat, err := os.Stat(string(p))
	return err == nil && stat.IsDir()
}

// IsFile reports whether the path is a regular file, following links.
func (p Path) IsFile() bool {
	stat, err := os.Stat(string(p))
	return err == nil && stat.Mode().IsRegular()
}

// IsSymlink reports whether the path is a symbolic link.
func (p Path) IsSymlink() bool {
	stat, err := os.Lstat(string(p))
	return err == nil && stat.Mode()&os.ModeSymlink != 0
}

// IsMount reports whether the path is a mount point.
func (p Path) IsMount() bool {
	return isMount(string(p))
}

// Stat performs a stat system call on the path.
func (p Path) Stat() (os.FileInfo, error) {
	return os.Stat(string(p))
}

// Lstat is like Stat but does not follow symbolic links.
func (p Path) Lstat() (os.FileInfo, error) {
	return os.Lstat(string(p))
}

// ModTime returns the time of the last modification.
func (p Path) ModTime() (time.Time, error) {
	stat, err := os.Stat(string(p))
	if err != nil {
		return time.Time{}, err
	}
	return stat.ModTime(), nil
}

// AccessTime returns the time of the last access.
func (p Path) AccessTime() (time.Time, error) {
	atime, _, err := statTimes(string(p))
	return atime, err
}

// ChangeTime returns the creation time on windows and the time of the
// last status change on unix.
func (p Path) ChangeTime() (time.Time, error) {
	_, ctime, err := statTimes(string(p))
	return ctime, err
}

// Size returns the size of the file in bytes.
func (p Path) Size() (int64, error) {
	stat, err := os.Stat(string(p))
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

// Open opens the file for reading.
func (p Path) Open() (*os.File, error) {
	return os.Open(string(p))
}

// OpenFile opens the file with the given flags and permissions, see
// os.OpenFile.
func (p Path) OpenFile(flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(string(p), flag, perm)
}

package fspath

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// KeepID can be passed to Chown to leave the user or group unchanged.
const KeepID = -1

// SetTimes sets the access and modification times of the file.
func (p Path) SetTimes(atime, mtime time.Time) (Path, error) {
	return p, os.Chtimes(string(p), atime, mtime)
}

// Chmod changes the permissions of the path.
func (p Path) Chmod(mode os.FileMode) (Path, error) {
	logrus.WithField("path", p).Tracef("Changing mode to %v.", mode)
	return p, os.Chmod(string(p), mode)
}

// Chown changes the numeric user and group ids of the path. Pass KeepID
// to leave either unchanged. On platforms without ownership this does
// nothing and does not fail.
func (p Path) Chown(uid, gid int) (Path, error) {
	return p, chown(string(p), uid, gid)
}

// Rename renames the path and returns the new path. The receiver keeps
// referring to the old name.
func (p Path) Rename(newName interface{}) (Path, error) {
	target, err := New(newName)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"path":   p,
		"target": target,
	}).Debug("Renaming path.")
	if err := os.Rename(string(p), string(target)); err != nil {
		return "", err
	}
	return target, nil
}

// Touch sets the access and modification times of the file to the
// current time, creating an empty file if it does not exist.
func (p Path) Touch() (Path, error) {
	f, err := os.OpenFile(string(p), os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return p, err
	}
	if err := f.Close(); err != nil {
		return p, err
	}
	now := time.Now()
	return p, os.Chtimes(string(p), now, now)
}

// Remove removes the file. It fails for directories, use RemoveDir.
func (p Path) Remove() (Path, error) {
	logrus.WithField("path", p).Debug("Removing file.")
	return p, remove(string(p))
}

// Unlink is a synonym for Remove.
func (p Path) Unlink() (Path, error) {
	logrus.WithField("path", p).Debug("Unlinking file.")
	return p, unlink(string(p))
}

// RemoveDir removes the directory, which must be empty.
func (p Path) RemoveDir() (Path, error) {
	logrus.WithField("path", p).Debug("Removing directory.")
	return p, rmdir(string(p))
}

// Mkdir creates the directory.
func (p Path) Mkdir(perm os.FileMode) (Path, error) {
	return p, os.Mkdir(string(p), perm)
}

// MkdirAll creates the directory along with any missing parents.
func (p Path) MkdirAll(perm os.FileMode) (Path, error) {
	return p, os.MkdirAll(string(p), perm)
}

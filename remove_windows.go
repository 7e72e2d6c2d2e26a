package fspath

import (
	"os"

	"golang.org/x/sys/windows"
)

func remove(path string) error {
	return unlink(path)
}

func unlink(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &os.PathError{Op: "DeleteFile", Path: path, Err: err}
	}
	if err := windows.DeleteFile(p); err != nil {
		return &os.PathError{Op: "DeleteFile", Path: path, Err: err}
	}
	return nil
}

func rmdir(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &os.PathError{Op: "RemoveDirectory", Path: path, Err: err}
	}
	if err := windows.RemoveDirectory(p); err != nil {
		return &os.PathError{Op: "RemoveDirectory", Path: path, Err: err}
	}
	return nil
}

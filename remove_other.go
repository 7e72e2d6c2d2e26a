//go:build !unix && !windows

package fspath

import "os"

func remove(path string) error {
	return os.Remove(path)
}

func unlink(path string) error {
	return os.Remove(path)
}

func rmdir(path string) error {
	return os.Remove(path)
}

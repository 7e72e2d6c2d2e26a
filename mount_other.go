//go:build !unix && !windows

package fspath

func isMount(path string) bool {
	return false
}

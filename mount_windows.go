package fspath

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// A path is a mount point if it is the root of the volume it lives on.
func isMount(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	abs = strings.TrimRight(abs, `\/`)

	name, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return false
	}
	buf := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumePathName(name, &buf[0], uint32(len(buf))); err != nil {
		return false
	}
	volume := strings.TrimRight(windows.UTF16ToString(buf), `\/`)
	return strings.EqualFold(volume, abs)
}

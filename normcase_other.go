//go:build !windows

package fspath

// NormCase returns the path unchanged, paths are case sensitive on this
// platform.
func (p Path) NormCase() Path {
	return p
}

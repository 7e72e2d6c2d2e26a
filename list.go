package fspath

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/rjNemo/underscore"
)

// List returns the entries of the directory, sorted by name. If pattern
// is not empty, only entries whose name matches the shell pattern are
// returned. Use Files or Subdirectories to list only one kind of entry.
// This does not recurse into subdirectories.
func (p Path) List(pattern string) ([]Path, error) {
	var match glob.Glob
	if pattern != "" {
		var err error
		match, err = glob.Compile(shellPattern(pattern))
		if err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(string(p))
	if err != nil {
		return nil, err
	}
	if match != nil {
		entries = underscore.Filter(entries, func(e os.DirEntry) bool {
			return match.Match(e.Name())
		})
	}
	return underscore.Map(entries, func(e os.DirEntry) Path {
		return p.Join(e.Name())
	}), nil
}

// shellPattern escapes the glob syntax beyond "*", "?" and "[...]", so
// braces, commas and backslashes match themselves. Bracket expressions
// are passed through unchanged.
func shellPattern(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	inRange := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case inRange:
			inRange = c != ']'
		case c == '[':
			inRange = true
		case c == '{' || c == '}' || c == ',' || c == '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Subdirectories returns the directories contained in this directory,
// optionally filtered by pattern.
//
//	d.Subdirectories("build-*")
func (p Path) Subdirectories(pattern string) ([]Path, error) {
	children, err := p.List(pattern)
	if err != nil {
		return nil, err
	}
	return underscore.Filter(children, Path.IsDir), nil
}

// Files returns the regular files contained in this directory,
// optionally filtered by pattern.
//
//	d.Files("*.go")
func (p Path) Files(pattern string) ([]Path, error) {
	children, err := p.List(pattern)
	if err != nil {
		return nil, err
	}
	return underscore.Filter(children, Path.IsFile), nil
}

// Glob returns all paths matching the pattern, which is interpreted
// relative to this path.
//
//	Path("/users").Glob("*/bin/*")
func (p Path) Glob(pattern string) ([]Path, error) {
	matches, err := filepath.Glob(string(p.Join(pattern)))
	if err != nil {
		return nil, err
	}
	return underscore.Map(matches, func(m string) Path {
		return Path(m)
	}), nil
}

// WalkFunc is called by Walk for every visited path.
type WalkFunc func(path Path, entry fs.DirEntry, err error) error

// Walk walks the tree rooted at this path in lexical order, see
// filepath.WalkDir.
func (p Path) Walk(fn WalkFunc) error {
	return filepath.WalkDir(string(p), func(path string, d fs.DirEntry, err error) error {
		return fn(Path(path), d, err)
	})
}

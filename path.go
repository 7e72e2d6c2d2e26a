package fspath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Separator is the separator of path elements on this platform.
	Separator = os.PathSeparator
	// ListSeparator separates paths in lists such as $PATH.
	ListSeparator = os.PathListSeparator
)

// Path represents a filesystem path. It is a plain string with methods
// mirroring the path manipulation and file metadata functions of the
// operating system. Path values are never modified in place, every
// method returns a new Path.
type Path string

// New creates a Path from a textual value. Accepted are string, Path,
// []byte, []rune and fmt.Stringer. Any other value results in an
// *InvalidArgumentError.
func New(v interface{}) (Path, error) {
	switch s := v.(type) {
	case Path:
		return s, nil
	case string:
		return Path(s), nil
	case []byte:
		return Path(s), nil
	case []rune:
		return Path(string(s)), nil
	case fmt.Stringer:
		return Path(s.String()), nil
	}
	return "", &InvalidArgumentError{Value: v}
}

// MustNew is like New but panics if v is not textual.
func MustNew(v interface{}) Path {
	p, err := New(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Getwd returns the current working directory.
func Getwd() (Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Path(wd), nil
}

func (p Path) String() string {
	return string(p)
}

// Compare returns an integer comparing two paths lexicographically.
func (p Path) Compare(other Path) int {
	return strings.Compare(string(p), string(other))
}

// Concat appends more to the path without inserting a separator.
//
//	Path("/tmp/spam").Concat("alot") == Path("/tmp/spamalot")
func (p Path) Concat(more interface{}) (Path, error) {
	m, err := New(more)
	if err != nil {
		return "", err
	}
	return p + m, nil
}

// Prepend returns prefix followed by p, without inserting a separator.
func Prepend(prefix interface{}, p Path) (Path, error) {
	pre, err := New(prefix)
	if err != nil {
		return "", err
	}
	return pre + p, nil
}

// Join appends each element to the path. An absolute element discards
// everything before it. A separator is only inserted where the path
// does not already end with one. No cleaning is done.
//
//	Path("/tmp").Join("spam")       == Path("/tmp/spam")
//	Path("/tmp/").Join("spamalot")  == Path("/tmp/spamalot")
//	Path("/tmp/").Join("/spamalot") == Path("/spamalot")
func (p Path) Join(elem ...string) Path {
	s := string(p)
	for _, e := range elem {
		s = join(s, e)
	}
	return Path(s)
}

// JoinPath is Join for a single Path operand.
func (p Path) JoinPath(other Path) Path {
	return Path(join(string(p), string(other)))
}

func join(a, b string) string {
	if a == "" || filepath.IsAbs(b) || filepath.VolumeName(b) != "" {
		return b
	}
	if b != "" && os.IsPathSeparator(b[0]) {
		// Rooted but without volume, only possible on windows.
		return filepath.VolumeName(a) + b
	}
	if os.IsPathSeparator(a[len(a)-1]) {
		return a + b
	}
	return a + string(filepath.Separator) + b
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(string(p))
}

// Abs returns an absolute representation of the path, relative to the
// current working directory.
func (p Path) Abs() (Path, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", err
	}
	return Path(abs), nil
}

// Normalize eliminates duplicate separators as well as "." and ".."
// elements.
func (p Path) Normalize() Path {
	return Path(filepath.Clean(string(p)))
}

// RealPath returns the canonical absolute path, with all symbolic links
// resolved. It fails if any element does not exist.
func (p Path) RealPath() (Path, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return Path(resolved), nil
}

// Split splits the path into its parent and the name of the final
// element. Trailing separators are removed from the parent unless it
// is the root.
//
//	Path("/tmp/spam/path.py").Split() == (Path("/tmp/spam"), "path.py")
//	Path("path.py").Split()           == (Path(""), "path.py")
func (p Path) Split() (Path, string) {
	s := string(p)
	vol := filepath.VolumeName(s)
	rest := s[len(vol):]

	i := len(rest)
	for i > 0 && !os.IsPathSeparator(rest[i-1]) {
		i--
	}
	head, tail := rest[:i], rest[i:]

	j := len(head)
	for j > 0 && os.IsPathSeparator(head[j-1]) {
		j--
	}
	if j > 0 {
		head = head[:j]
	}
	return Path(vol + head), tail
}

// Parent returns the directory component of the path.
//
//	Path("/usr/local/lib/libpython.so").Parent() == Path("/usr/local/lib")
func (p Path) Parent() Path {
	parent, _ := p.Split()
	return parent
}

// Dir is an alias for Parent.
func (p Path) Dir() Path {
	return p.Parent()
}

// Name returns the final component of the path.
//
//	Path("/usr/local/lib/libpython.so").Name() == "libpython.so"
func (p Path) Name() string {
	_, name := p.Split()
	return name
}

// Base is Name as a Path.
func (p Path) Base() Path {
	return Path(p.Name())
}

// Ext returns the file extension including the dot. Leading dots of the
// name do not start an extension, so ".bashrc" has none.
func (p Path) Ext() string {
	name := p.Name()
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return ""
	}
	if strings.TrimLeft(name[:dot], ".") == "" {
		return ""
	}
	return name[dot:]
}

// Stem returns the final component without its extension.
func (p Path) Stem() string {
	name := p.Name()
	return name[:len(name)-len(p.Ext())]
}

// Rel returns the path relative to the current working directory.
func (p Path) Rel() (Path, error) {
	wd, err := Getwd()
	if err != nil {
		return "", err
	}
	return p.RelTo(wd)
}

// RelTo returns the path relative to base. Both are made absolute first.
func (p Path) RelTo(base Path) (Path, error) {
	absBase, err := base.Abs()
	if err != nil {
		return "", err
	}
	abs, err := p.Abs()
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(string(absBase), string(abs))
	if err != nil {
		return "", err
	}
	return Path(rel), nil
}

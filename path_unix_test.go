//go:build unix

package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinPosix(t *testing.T) {
	assert.Equal(t, Path("/tmp/spam"), Path("/tmp").Join("spam"))
	assert.Equal(t, Path("/tmp/spamalot"), Path("/tmp/").Join("spamalot"))
	assert.Equal(t, Path("/spamalot"), Path("/tmp/").Join("/spamalot"))
	assert.Equal(t, Path("/tmp/spam/alot"), Path("/tmp/").Join("spam").Join("alot"))
}

func TestSplitPosix(t *testing.T) {
	cases := []struct {
		in     string
		parent Path
		name   string
	}{
		{"/tmp/spam/path.py", "/tmp/spam", "path.py"},
		{"path.py", "", "path.py"},
		{"/", "/", ""},
		{"//", "//", ""},
		{"/usr", "/", "usr"},
		{"a/b/", "a/b", ""},
		{"a//b", "a", "b"},
	}
	for _, c := range cases {
		parent, name := Path(c.in).Split()
		assert.Equal(t, c.parent, parent, c.in)
		assert.Equal(t, c.name, name, c.in)
	}
	assert.Equal(t, Path("/usr/local/lib"), Path("/usr/local/lib/libpython.so").Parent())
	assert.Equal(t, "libpython.so", Path("/usr/local/lib/libpython.so").Name())
}

func TestNormCasePosix(t *testing.T) {
	assert.Equal(t, Path("/Some/MiXed/Case"), Path("/Some/MiXed/Case").NormCase())
}

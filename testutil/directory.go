package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MakeTree creates the given entries below root. Entries ending in a
// slash become directories, all others empty files. Missing parents are
// created.
func MakeTree(t testing.TB, root string, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// TempTree creates a fresh temporary directory containing the given
// entries, see MakeTree. The returned path has all symbolic links
// resolved, so it compares equal to working directories.
func TempTree(t testing.TB, entries ...string) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	MakeTree(t, root, entries...)
	return root
}

// KeepWorkDir restores the current working directory when the test
// finishes.
func KeepWorkDir(t testing.TB) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Error(err)
		}
	})
	return wd
}

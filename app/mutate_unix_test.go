//go:build unix

package app

import (
	"os"
	"testing"

	"github.com/fkie-cad/fspath"
	"github.com/fkie-cad/fspath/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChmodStickyDirectory(t *testing.T) {
	root := fspath.Path(testutil.TempTree(t, "shared/", "f"))
	dir := root.Join("shared")

	_, err := runApp("chmod", "1755", dir.String())
	require.NoError(t, err)

	stat, err := dir.Stat()
	require.NoError(t, err)
	assert.NotZero(t, stat.Mode()&os.ModeSticky)
	assert.Equal(t, os.FileMode(0755), stat.Mode().Perm())

	_, err = runApp("chmod", "0640", root.Join("f").String())
	require.NoError(t, err)
	stat, err = root.Join("f").Stat()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), stat.Mode().Perm())
	assert.Zero(t, stat.Mode()&(os.ModeSetuid|os.ModeSetgid|os.ModeSticky))
}

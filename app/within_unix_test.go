//go:build unix

package app

import (
	"os"
	"strings"
	"testing"

	"github.com/fkie-cad/fspath/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithin(t *testing.T) {
	root := testutil.TempTree(t, "dir/")
	wd := testutil.KeepWorkDir(t)

	out, err := runApp("within", root, "sh", "-c", "pwd -P")
	require.NoError(t, err)
	assert.Equal(t, root, strings.TrimSpace(out))

	out, err = runApp("within", root, "sh -c 'ls -d dir'")
	require.NoError(t, err)
	assert.Equal(t, "dir", strings.TrimSpace(out))

	_, err = runApp("within", root, "false")
	assert.Error(t, err)

	current, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, current)
}

//go:build unix

package fspath

import (
	"os"
	"os/user"
	"strconv"
	"testing"

	"github.com/fkie-cad/fspath/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerUnix(t *testing.T) {
	root := Path(testutil.TempTree(t, "f"))

	expected, err := user.LookupId(strconv.Itoa(os.Getuid()))
	if err != nil {
		t.Skipf("current user unknown: %v", err)
	}

	owner, err := root.Join("f").Owner()
	require.NoError(t, err)
	assert.Equal(t, expected.Username, owner)
}

func TestChownUnix(t *testing.T) {
	root := Path(testutil.TempTree(t, "f"))
	p := root.Join("f")

	ret, err := p.Chown(KeepID, KeepID)
	require.NoError(t, err)
	assert.Equal(t, p, ret)

	ret, err = p.Chown(os.Getuid(), os.Getgid())
	require.NoError(t, err)
	assert.Equal(t, p, ret)

	_, err = root.Join("missing").Chown(KeepID, KeepID)
	assert.Error(t, err)
}

package lock

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "dest.lock")

	l := New(path)
	require.NoError(t, l.Acquire())
	assert.FileExists(t, path)
	require.NoError(t, l.Release())

	// released locks can be taken again
	require.NoError(t, New(path).Acquire())
}

func TestAcquireHeldLockFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dest.lock")

	first := New(path)
	require.NoError(t, first.Acquire())
	defer first.Release()

	// flock locks are per file description, so a second handle contends
	err := New(path).Acquire()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLock))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

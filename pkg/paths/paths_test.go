package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromExecutable(t *testing.T) {
	p, err := NewFromExecutable("/opt/backup/backup", "")
	require.NoError(t, err)

	assert.Equal(t, "/opt/backup/backup", p.ExecutablePath())
	assert.Equal(t, "/opt/backup", p.DestinationRoot())
	assert.Equal(t, "/opt/backup/backup.ini", p.ConfigPath())
	assert.Equal(t, []string{"backup.ini", "backup"}, p.ProtectedNames())
}

func TestNewFromExecutableConfigOverride(t *testing.T) {
	p, err := NewFromExecutable("/opt/backup/backup.exe", "/etc/nightly.ini")
	require.NoError(t, err)

	assert.Equal(t, "/etc/nightly.ini", p.ConfigPath())
	assert.Equal(t, []string{"nightly.ini", "backup.exe"}, p.ProtectedNames())
}

func TestNewResolvesRunningExecutable(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(p.ExecutablePath()))
	assert.Equal(t, filepath.Dir(p.ExecutablePath()), p.DestinationRoot())
}

func TestStateDir(t *testing.T) {
	p, err := NewFromExecutable("/opt/backup/backup", "")
	require.NoError(t, err)

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/state")
		t.Setenv(EnvStateDir, "")
		xdg.Reload()
		assert.Equal(t, filepath.Join("/state", "backup"), p.StateDir())
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom")
		assert.Equal(t, "/custom", p.StateDir())
	})
}

func TestLockPathIsKeyedByDestination(t *testing.T) {
	t.Setenv(EnvStateDir, "/custom")

	p, err := NewFromExecutable("/opt/one/backup", "")
	require.NoError(t, err)

	one := p.LockPath("/opt/one")
	assert.True(t, strings.HasPrefix(one, filepath.Join("/custom", LocksDir)))
	assert.True(t, strings.HasSuffix(one, ".lock"))
	assert.Equal(t, one, p.LockPath("/opt/one/"))
	assert.NotEqual(t, one, p.LockPath("/opt/two"))
}

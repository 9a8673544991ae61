package paths

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/arthur-debert/backup/pkg/logging"
)

const (
	// EnvStateDir overrides the XDG state directory for backup
	EnvStateDir = logging.EnvStateDir

	// AppDirName is the directory name for backup-specific state
	AppDirName = "backup"

	// ConfigFileName is the default name of the configuration file
	ConfigFileName = "backup.ini"

	// LocksDir is the subdirectory of the state dir holding run locks
	LocksDir = "locks"
)

// Paths holds the locations derived once per run from the runtime identity
type Paths struct {
	executable string
	configPath string
}

// New resolves the running executable. configOverride replaces the default
// config location (backup.ini next to the executable) when non-empty.
func New(configOverride string) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExecutable, "failed to locate running executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return NewFromExecutable(exe, configOverride)
}

// NewFromExecutable builds Paths for an executable at exe.
func NewFromExecutable(exe, configOverride string) (*Paths, error) {
	exe, err := filepath.Abs(exe)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExecutable, "failed to resolve %s", exe)
	}

	configPath := filepath.Join(filepath.Dir(exe), ConfigFileName)
	if configOverride != "" {
		configPath, err = filepath.Abs(configOverride)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to resolve config path %s", configOverride)
		}
	}

	return &Paths{executable: exe, configPath: configPath}, nil
}

// ExecutablePath is the absolute path of the running program
func (p *Paths) ExecutablePath() string { return p.executable }

// DestinationRoot is the directory every source root is mirrored into
func (p *Paths) DestinationRoot() string { return filepath.Dir(p.executable) }

// ConfigPath is the configuration file to load
func (p *Paths) ConfigPath() string { return p.configPath }

// ProtectedNames returns the file names the clean pass must keep: the
// configuration file and the executable itself.
func (p *Paths) ProtectedNames() []string {
	return []string{filepath.Base(p.configPath), filepath.Base(p.executable)}
}

// StateDir is where logs and locks live, outside of the destination root
func (p *Paths) StateDir() string {
	return logging.StateDir()
}

// LockPath is the lock file guarding destination. It is keyed by a digest of
// the destination so unrelated installs do not contend.
func (p *Paths) LockPath(destination string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(destination)))
	return filepath.Join(p.StateDir(), LocksDir, hex.EncodeToString(sum[:8])+".lock")
}

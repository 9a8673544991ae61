// Package lock keeps two backup runs from writing the same destination root
// at the same time.
package lock

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/gofrs/flock"
)

// RunLock wraps a flock file lock held for the duration of a run
type RunLock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock backed by the file at path. The file is created on
// first acquisition, along with its parent directory.
func New(path string) *RunLock {
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file location
func (l *RunLock) Path() string { return l.path }

// Acquire takes the lock without blocking. It fails with ErrLock when
// another process already holds it.
func (l *RunLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLock, "failed to create lock directory for %s", l.path)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return errors.Wrapf(err, errors.ErrLock, "failed to lock %s", l.path)
	}
	if !acquired {
		return errors.Newf(errors.ErrLock, "another run holds %s", l.path).WithDetail("path", l.path)
	}
	return nil
}

// Release drops the lock
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return errors.Wrapf(err, errors.ErrLock, "failed to release lock on %s", l.path)
	}
	return nil
}

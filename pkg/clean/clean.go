// Package clean empties a destination root before it is mirrored into.
//
// Everything below the target goes except entries named like one of the
// protected names (compared case-insensitively): the configuration file
// and the running executable. Removal is irreversible and stops at the
// first failure; what was already removed stays removed.
package clean

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/arthur-debert/backup/pkg/filesystem"
	"github.com/arthur-debert/backup/pkg/logging"
	"github.com/arthur-debert/backup/pkg/types"
)

// Options configures a clean pass
type Options struct {
	FS        types.FS
	Target    string
	Protected []string
	DryRun    bool
	Reporter  types.Reporter
}

// Result counts what a clean pass removed
type Result struct {
	Removed []string
	Kept    []string
}

// Clean removes every entry under opts.Target except protected ones. The
// target itself is never removed. Directories go in one operation and are
// not walked afterwards; protected directories are not descended into.
func Clean(opts Options) (*Result, error) {
	logger := logging.GetLogger("clean")
	defer logging.LogOperationStart(logger, "clean")()

	reporter := opts.Reporter
	if reporter == nil {
		reporter = types.NopReporter
	}

	target := filepath.Clean(opts.Target)
	reporter.Report(types.Event{Kind: types.EventCleanStart, Destination: target, DryRun: opts.DryRun})

	result := &Result{}
	err := filesystem.Walk(opts.FS, target, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrClean, "failed to read %s", path).WithDetail("path", path)
		}
		if path == target {
			return nil
		}

		if isProtected(filepath.Base(path), opts.Protected) {
			logger.Debug().Str("path", path).Msg("Keeping protected entry")
			result.Kept = append(result.Kept, path)
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		reporter.Report(types.Event{Kind: types.EventRemove, Destination: path, DryRun: opts.DryRun})
		result.Removed = append(result.Removed, path)

		if info.IsDir() {
			if !opts.DryRun {
				if err := opts.FS.RemoveAll(path); err != nil {
					return errors.Wrapf(err, errors.ErrClean, "failed to clean directory %s", path).WithDetail("path", path)
				}
			}
			return filepath.SkipDir
		}

		if !opts.DryRun {
			if err := opts.FS.Remove(path); err != nil {
				return errors.Wrapf(err, errors.ErrClean, "failed to clean file %s", path).WithDetail("path", path)
			}
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("removed", len(result.Removed)).
		Int("kept", len(result.Kept)).
		Bool("dryRun", opts.DryRun).
		Msg("Clean pass finished")
	return result, nil
}

func isProtected(name string, protected []string) bool {
	for _, p := range protected {
		if strings.EqualFold(name, p) {
			return true
		}
	}
	return false
}

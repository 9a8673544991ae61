package mirror

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/backup/pkg/errors"
	"github.com/arthur-debert/backup/pkg/filesystem"
	"github.com/arthur-debert/backup/pkg/logging"
	"github.com/arthur-debert/backup/pkg/paths"
	"github.com/arthur-debert/backup/pkg/rules"
	"github.com/arthur-debert/backup/pkg/types"
	"github.com/rs/zerolog"
)

// DirPerm is the mode used for created destination directories
const DirPerm fs.FileMode = 0755

// Options configures a mirror pass
type Options struct {
	FS              types.FS
	SourceRoots     []string
	Exclusions      rules.ExclusionSet
	DestinationRoot string
	DryRun          bool
	Reporter        types.Reporter
}

// Result counts what a mirror pass did
type Result struct {
	Directories int
	Files       int
	Skipped     int
	Bytes       int64
}

// Mirror copies every source root into opts.DestinationRoot
func Mirror(opts Options) (*Result, error) {
	logger := logging.GetLogger("mirror")
	defer logging.LogOperationStart(logger, "mirror")()

	if opts.Reporter == nil {
		opts.Reporter = types.NopReporter
	}
	opts.Reporter.Report(types.Event{Kind: types.EventMirrorStart, Count: len(opts.SourceRoots), DryRun: opts.DryRun})

	result := &Result{}
	for _, root := range opts.SourceRoots {
		if err := mirrorRoot(opts, root, result, logger); err != nil {
			return result, err
		}
	}

	logger.Info().
		Int("roots", len(opts.SourceRoots)).
		Int("directories", result.Directories).
		Int("files", result.Files).
		Int("skipped", result.Skipped).
		Int64("bytes", result.Bytes).
		Bool("dryRun", opts.DryRun).
		Msg("Mirror pass finished")
	return result, nil
}

func mirrorRoot(opts Options, root string, result *Result, logger zerolog.Logger) error {
	logger.Debug().Str("root", root).Msg("Mirroring source root")
	opts.Reporter.Report(types.Event{Kind: types.EventSourceRoot, Source: root, DryRun: opts.DryRun})

	destAbs, err := filepath.Abs(opts.DestinationRoot)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to resolve %s", opts.DestinationRoot)
	}

	return filesystem.Walk(opts.FS, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopy, "failed to read %s", path).WithDetail("path", path)
		}

		dest, err := paths.MapDestination(root, path, opts.DestinationRoot)
		if err != nil {
			return err
		}

		// Links are judged by what they point at; the walk never descends
		// through them.
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, err := opts.FS.Stat(path); err == nil {
				info = target
			}
		}

		if info.IsDir() {
			// A source tree holding the destination would otherwise keep
			// finding its own copies.
			if abs, err := filepath.Abs(path); err == nil && abs == destAbs {
				logger.Warn().Str("path", path).Msg("Source contains the destination root, skipping it")
				return filepath.SkipDir
			}
			return createDir(opts, dest, result)
		}
		return copyFile(opts, path, dest, result, logger)
	})
}

func createDir(opts Options, dest string, result *Result) error {
	opts.Reporter.Report(types.Event{Kind: types.EventCreateDir, Destination: dest, DryRun: opts.DryRun})
	if !opts.DryRun {
		if err := opts.FS.MkdirAll(dest, DirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrCopy, "failed to create directory %s", dest).WithDetail("path", dest)
		}
	}
	result.Directories++
	return nil
}

func copyFile(opts Options, src, dest string, result *Result, logger zerolog.Logger) error {
	ext := rules.Extension(src)
	if opts.Exclusions.IsExcluded(ext) {
		logger.Trace().Str("path", src).Str("extension", ext).Msg("Skipping excluded file")
		opts.Reporter.Report(types.Event{Kind: types.EventSkip, Source: src, DryRun: opts.DryRun})
		result.Skipped++
		return nil
	}

	// A source root inside the destination maps files onto themselves;
	// copying would truncate them.
	if samePath(src, dest) {
		logger.Warn().Str("path", src).Msg("Source file is its own destination, skipping it")
		opts.Reporter.Report(types.Event{Kind: types.EventSkip, Source: src, DryRun: opts.DryRun})
		result.Skipped++
		return nil
	}

	opts.Reporter.Report(types.Event{Kind: types.EventCopy, Source: src, Destination: dest, DryRun: opts.DryRun})
	if !opts.DryRun {
		n, err := filesystem.CopyFile(opts.FS, src, dest)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopy, "failed to copy %s to %s", src, dest).
				WithDetail("path", src).
				WithDetail("destination", dest)
		}
		result.Bytes += n
	}
	result.Files++
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

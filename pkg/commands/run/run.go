package run

import (
	"github.com/arthur-debert/backup/pkg/clean"
	"github.com/arthur-debert/backup/pkg/config"
	"github.com/arthur-debert/backup/pkg/filesystem"
	"github.com/arthur-debert/backup/pkg/lock"
	"github.com/arthur-debert/backup/pkg/logging"
	"github.com/arthur-debert/backup/pkg/mirror"
	"github.com/arthur-debert/backup/pkg/rules"
	"github.com/arthur-debert/backup/pkg/types"
)

// Options holds everything a run derives from its runtime identity
type Options struct {
	ConfigPath      string
	DestinationRoot string
	// ProtectedNames are kept by the clean pass
	ProtectedNames []string
	// LockPath guards the destination; no lock is taken when empty
	LockPath string
	DryRun   bool

	// FS defaults to the OS filesystem
	FS       types.FS
	Reporter types.Reporter
}

// Result reports what a run did. Clean is nil when the clean pass was
// disabled.
type Result struct {
	Config *config.Config
	Clean  *clean.Result
	Mirror *mirror.Result
	DryRun bool
}

// Run loads the configuration, then cleans the destination when enabled and
// mirrors every configured path into it. Configuration problems surface
// before anything on disk changes; any later failure stops the run where it
// is, leaving the destination partially cleaned or mirrored.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.run")

	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Reporter == nil {
		opts.Reporter = types.NopReporter
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if len(cfg.Paths) == 0 {
		logger.Warn().Str("config", opts.ConfigPath).Msg("No paths configured, nothing to mirror")
	}

	if opts.LockPath != "" {
		l := lock.New(opts.LockPath)
		if err := l.Acquire(); err != nil {
			return nil, err
		}
		defer func() {
			if err := l.Release(); err != nil {
				logger.Warn().Err(err).Msg("Failed to release lock")
			}
		}()
	}

	logger.Info().
		Str("destination", opts.DestinationRoot).
		Strs("paths", cfg.Paths).
		Strs("excludes", cfg.Excludes).
		Bool("clean", cfg.Clean).
		Bool("dryRun", opts.DryRun).
		Msg("Starting backup run")

	result := &Result{Config: cfg, DryRun: opts.DryRun}

	if cfg.Clean {
		result.Clean, err = clean.Clean(clean.Options{
			FS:        opts.FS,
			Target:    opts.DestinationRoot,
			Protected: opts.ProtectedNames,
			DryRun:    opts.DryRun,
			Reporter:  opts.Reporter,
		})
		if err != nil {
			return result, err
		}
	}

	result.Mirror, err = mirror.Mirror(mirror.Options{
		FS:              opts.FS,
		SourceRoots:     cfg.Paths,
		Exclusions:      rules.NewExclusionSet(cfg.Excludes),
		DestinationRoot: opts.DestinationRoot,
		DryRun:          opts.DryRun,
		Reporter:        opts.Reporter,
	})
	return result, err
}

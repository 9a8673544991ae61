// Package commands provides high-level command implementations for backup.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the clean and mirror passes.
//
// Each command is implemented in its own subdirectory:
//   - run/       - Run: load config, lock, clean, mirror
//   - genconfig/ - GenConfig: sample configuration file
//
// This file re-exports the command functions.
package commands

import (
	"github.com/arthur-debert/backup/pkg/commands/genconfig"
	"github.com/arthur-debert/backup/pkg/commands/run"
)

// RunOptions configures a backup run
type RunOptions = run.Options

// RunResult reports what a backup run did
type RunResult = run.Result

// Run executes one backup run.
func Run(opts RunOptions) (*RunResult, error) {
	return run.Run(opts)
}

// GenConfigOptions configures sample config generation
type GenConfigOptions = genconfig.Options

// GenConfigResult reports the generated sample
type GenConfigResult = genconfig.Result

// GenConfig outputs or writes the sample configuration.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}

package genconfig

import (
	"fmt"
	"os"

	"github.com/arthur-debert/backup/pkg/config"
	"github.com/arthur-debert/backup/pkg/logging"
)

// Options holds options for the genconfig command
type Options struct {
	// ConfigPath is where the sample is written
	ConfigPath string
	Write      bool
	// Force overwrites an existing file
	Force bool
}

// Result holds the sample and, in write mode, where it went
type Result struct {
	ConfigContent string
	FileWritten   string
}

// GenConfig outputs or writes the sample configuration. An existing file is
// left alone unless Force is set.
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &Result{ConfigContent: string(config.Sample())}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := os.Stat(opts.ConfigPath); err == nil && !opts.Force {
		return result, fmt.Errorf("config file %s already exists, use --force to overwrite", opts.ConfigPath)
	}

	if err := os.WriteFile(opts.ConfigPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, fmt.Errorf("failed to write config to %s: %w", opts.ConfigPath, err)
	}

	logger.Info().Str("path", opts.ConfigPath).Msg("Written config file")
	result.FileWritten = opts.ConfigPath
	return result, nil
}

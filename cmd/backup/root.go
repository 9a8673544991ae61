package main

import (
	"fmt"

	"github.com/arthur-debert/backup/internal/version"
	"github.com/arthur-debert/backup/pkg/commands"
	"github.com/arthur-debert/backup/pkg/logging"
	"github.com/arthur-debert/backup/pkg/output"
	"github.com/arthur-debert/backup/pkg/paths"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by the root command and its subcommands
type globalFlags struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		flags     globalFlags
		dryRun    bool
		dest      string
		showSkips bool
	)

	rootCmd := &cobra.Command{
		Use:     "backup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			runID := logging.WithRunID()
			log.Debug().Str("command", cmd.Name()).Str("run", runID).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(flags.configPath)
			if err != nil {
				return err
			}
			destination := p.DestinationRoot()
			if dest != "" {
				destination = dest
			}

			printer := output.NewPrinter(cmd.OutOrStdout(), showSkips)
			printer.Summary(MsgConfiguration, p.ConfigPath())

			result, err := commands.Run(commands.RunOptions{
				ConfigPath:      p.ConfigPath(),
				DestinationRoot: destination,
				ProtectedNames:  p.ProtectedNames(),
				LockPath:        p.LockPath(destination),
				DryRun:          dryRun,
				Reporter:        printer,
			})
			if err != nil {
				return err
			}

			m := result.Mirror
			printer.Summary(MsgSummary, m.Directories, m.Files, humanize.Bytes(uint64(m.Bytes)), m.Skipped)
			if result.DryRun {
				printer.Summary(MsgDryRunNotice)
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", MsgFlagConfig)

	// Run flags
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().StringVar(&dest, "dest", "", MsgFlagDest)
	rootCmd.Flags().BoolVar(&showSkips, "show-skipped", false, MsgFlagSkips)

	rootCmd.AddCommand(newConfigCmd(&flags))
	rootCmd.AddCommand(newGenConfigCmd(&flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initPaths resolves the executable and the configuration file
func initPaths(configPath string) (*paths.Paths, error) {
	p, err := paths.New(configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}
	return p, nil
}

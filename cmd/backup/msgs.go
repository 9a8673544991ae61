package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Mirror configured directories next to this program"
	MsgRootLong  = `backup mirrors every path listed in its configuration file into the
directory that holds the backup executable, skipping files whose extension
is excluded. With clean enabled, that directory is emptied first, except for
the configuration file and the executable itself.

The configuration file is backup.ini next to the executable:

  paths    = /home/me/documents, /home/me/projects
  excludes = tmp, log
  clean    = false`
	MsgConfigShort     = "Print the effective configuration"
	MsgGenConfigShort  = "Print or write a sample backup.ini"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfiguration = "configuration: %s"
	MsgSummary       = "done: %d directories, %d files (%s) copied, %d skipped"
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgConfigWritten = "Wrote %s\n"

	// Error messages
	MsgErrInitPaths = "failed to initialize paths: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Report what would be removed and copied without touching the disk"
	MsgFlagConfig  = "Configuration file (default: backup.ini next to the executable)"
	MsgFlagDest    = "Mirror into this directory instead of the executable's directory"
	MsgFlagSkips   = "List files skipped because of their extension"
	MsgFlagFormat  = "Output format: yaml, toml or json"
	MsgFlagWrite   = "Write the sample next to the executable instead of printing it"
	MsgFlagForce   = "Overwrite an existing configuration file"
)

package retitle

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Bulk rename files by editing a list of names"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgManLong         = "Write the retitle man page to stdout, or one page per command into DIR."
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Status messages
	MsgVersionFormat = "retitle version %s\n  commit: %s\n  built:  %s\n"
	MsgExported      = "Wrote rename list to %s\n"

	// Error messages
	MsgErrUnexpectedArgs = "unexpected arguments: %s"
	MsgErrLoadConfig     = "failed to load configuration"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Show the renames without applying them"
	MsgFlagDir        = "Working directory whose entries are renamed"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/retitle/config.toml)"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagStdout     = "Print the rename list to stdout and exit"
	MsgFlagExport     = "Write the rename list to FILE and exit"
	MsgFlagStdin      = "Read the rename list from stdin and apply it"
	MsgFlagResume     = "Read the rename list from FILE and apply it"
	MsgFlagConfigInit = "Print a commented config file template instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)
)

package drupalsettings

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate Drupal's settings.local.php from YAML parameters"
	MsgGenerateShort   = "Generate the settings file"
	MsgCandidatesShort = "List the parameter files generate would try"
	MsgConfigShort     = "Print the effective configuration"
	MsgTemplateShort   = "Print or install the default settings template"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Write man pages into a directory"

	// Flag descriptions
	MsgFlagVerbose              = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagWorkDir              = "Drupal project root (default is the current directory)"
	MsgFlagComposerFile         = "composer.json to read configuration from (default $COMPOSER or composer.json)"
	MsgFlagFormat               = "Output format: auto, term, text or json"
	MsgFlagParametersFile       = "Parameter file tried before the default ones"
	MsgFlagTemplateDirectory    = "Directory holding the template"
	MsgFlagTemplateFile         = "Template file name"
	MsgFlagDestinationDirectory = "Directory the settings file is written to"
	MsgFlagDestinationFile      = "Settings file name"
	MsgFlagStrict               = "Exit with status 2 when no parameter file exists"
	MsgFlagResolved             = "Show the template directory a run would use"
	MsgFlagDefaults             = "Print the built-in defaults instead"
	MsgFlagWrite                = "Write the template into this directory"
	MsgFlagForce                = "Overwrite an existing template"

	// Error messages
	MsgErrWorkDir      = "failed to resolve working directory"
	MsgErrNoCommand    = "no command specified"
	MsgErrNotGenerated = "settings file not generated"

	// Version output
	MsgVersionTemplate = "drupal-settings {{.Version}}\n"
	MsgVersionDetails  = "  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/candidates-long.txt
	msgCandidatesLongRaw string
	MsgCandidatesLong    = strings.TrimSpace(msgCandidatesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/template-long.txt
	msgTemplateLongRaw string
	MsgTemplateLong    = strings.TrimSpace(msgTemplateLongRaw)

	//go:embed msgs/template-example.txt
	msgTemplateExampleRaw string
	MsgTemplateExample    = strings.TrimRight(msgTemplateExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

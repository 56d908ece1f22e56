// Package drupalsettings is the drupal-settings command line.
package drupalsettings

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/drupal-settings/internal/version"
	"github.com/arthur-debert/drupal-settings/pkg/cobrax/topics"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/ui"
	"github.com/arthur-debert/drupal-settings/pkg/ui/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Exit statuses
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitNotGenerated = 2
)

// ExitError carries a specific exit status. Silent errors were already
// reported to the user.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an Execute error to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity    int
	workDir      string
	composerFile string
	format       string

	resolvedFormat ui.Format
}

// Execute runs the command line with args and prints a failure in the
// selected output format. It returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd, opts := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) || !exitErr.Silent {
		opts.renderError(stderr, err)
	}
	return ExitCode(err)
}

// renderError prints err on w. Flag parsing errors happen before the
// format is resolved, so those are detected from w.
func (g *globalOptions) renderError(w io.Writer, err error) {
	format := g.resolvedFormat
	if format == ui.FormatAuto {
		format = resolveFormat(ui.FormatAuto, w)
	}
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		renderer = text.New(w)
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		log.Error().Err(rerr).Msg("Failed to print error")
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *globalOptions) {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "drupal-settings",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := ui.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			opts.resolvedFormat = resolveFormat(format, cmd.OutOrStdout())

			workDir, err := resolveWorkDir(opts.workDir)
			if err != nil {
				return err
			}
			opts.workDir = workDir
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetVersionTemplate(MsgVersionTemplate + fmt.Sprintf(MsgVersionDetails, version.Commit, version.Date))

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.workDir, "workdir", "C", "", MsgFlagWorkDir)
	rootCmd.PersistentFlags().StringVar(&opts.composerFile, "composer-file", "", MsgFlagComposerFile)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newCandidatesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTemplateCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(opts))

	if _, err := topics.Initialize(rootCmd, topicsFS(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd, opts
}

// topicRenderer renders markdown topics with glamour on a terminal and
// prints them raw otherwise
func topicRenderer() topics.Renderer {
	if !stdoutIsTerminal() || os.Getenv("NO_COLOR") != "" {
		return &topics.PlainRenderer{}
	}
	return topics.NewGlamourRenderer()
}

// resolveFormat turns FormatAuto into a concrete format for w. Writers
// that are not files never get terminal styling.
func resolveFormat(format ui.Format, w io.Writer) ui.Format {
	if file, ok := w.(*os.File); ok {
		return ui.Resolve(format, file)
	}
	if format == ui.FormatAuto {
		return ui.FormatText
	}
	return format
}

// resolveWorkDir returns dir as an absolute path, or the current
// directory when dir is empty
func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrIO, MsgErrWorkDir)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, MsgErrWorkDir)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, "working directory %s does not exist", abs).
			WithDetail("path", abs)
	}
	return abs, nil
}

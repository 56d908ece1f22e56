package drupalsettings

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/drupal-settings/internal/version"
	"github.com/arthur-debert/drupal-settings/pkg/commands"
	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/generator"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// renderer returns the renderer for the resolved --format
func (g *globalOptions) renderer(w io.Writer) (ui.Renderer, error) {
	return ui.NewRenderer(g.resolvedFormat, w)
}

// reporter returns the progress reporter. JSON output keeps stdout for
// the result document, so progress goes to stderr as plain text.
func (g *globalOptions) reporter(cmd *cobra.Command) *ui.Reporter {
	if g.resolvedFormat == ui.FormatJSON {
		return ui.NewReporter(cmd.ErrOrStderr(), ui.FormatText)
	}
	return ui.NewReporter(cmd.OutOrStdout(), g.resolvedFormat)
}

// configFlags are the configuration keys settable on the command line
type configFlags struct {
	parametersFile       string
	templateDirectory    string
	templateFile         string
	destinationDirectory string
	destinationFile      string
}

func (f *configFlags) overrides() map[string]string {
	return map[string]string{
		config.KeyParametersFile:       f.parametersFile,
		config.KeyTemplateDirectory:    f.templateDirectory,
		config.KeyTemplateFile:         f.templateFile,
		config.KeyDestinationDirectory: f.destinationDirectory,
		config.KeyDestinationFile:      f.destinationFile,
	}
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.parametersFile, config.KeyParametersFile, "", MsgFlagParametersFile)
	cmd.Flags().StringVar(&f.templateDirectory, config.KeyTemplateDirectory, "", MsgFlagTemplateDirectory)
	cmd.Flags().StringVar(&f.templateFile, config.KeyTemplateFile, "", MsgFlagTemplateFile)
	cmd.Flags().StringVar(&f.destinationDirectory, config.KeyDestinationDirectory, "", MsgFlagDestinationDirectory)
	cmd.Flags().StringVar(&f.destinationFile, config.KeyDestinationFile, "", MsgFlagDestinationFile)
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	var (
		flags  configFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.generate")

			result, err := commands.Generate(commands.GenerateOptions{
				WorkDir:      g.workDir,
				ComposerFile: g.composerFile,
				Overrides:    flags.overrides(),
				Reporter:     g.reporter(cmd),
			})

			// JSON output always carries the result document, failed runs
			// included. Other formats leave failures to the error printer.
			if result != nil && (err == nil || g.resolvedFormat == ui.FormatJSON) {
				renderer, rerr := g.renderer(cmd.OutOrStdout())
				if rerr != nil {
					return rerr
				}
				if rerr := renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}

			logger.Debug().Str("state", string(result.State)).Bool("strict", strict).Msg("Generate completed")
			if result.State == generator.StateAborted && strict {
				return &ExitError{
					Code:   ExitNotGenerated,
					Err:    errors.New(errors.ErrParametersNotFound, MsgErrNotGenerated),
					Silent: true,
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}

func newCandidatesCmd(g *globalOptions) *cobra.Command {
	var parametersFile string

	cmd := &cobra.Command{
		Use:     "candidates",
		Short:   MsgCandidatesShort,
		Long:    MsgCandidatesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Candidates(commands.CandidatesOptions{
				WorkDir:      g.workDir,
				ComposerFile: g.composerFile,
				Overrides:    map[string]string{config.KeyParametersFile: parametersFile},
			})
			if err != nil {
				return err
			}

			renderer, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVar(&parametersFile, config.KeyParametersFile, "", MsgFlagParametersFile)

	return cmd
}

func newConfigCmd(g *globalOptions) *cobra.Command {
	var (
		flags    configFlags
		resolved bool
		defaults bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultsContent())
				return err
			}

			cfg, err := commands.ShowConfig(commands.ShowConfigOptions{
				WorkDir:      g.workDir,
				ComposerFile: g.composerFile,
				Overrides:    flags.overrides(),
				Resolved:     resolved,
			})
			if err != nil {
				return err
			}

			renderer, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(cfg)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&resolved, "resolved", false, MsgFlagResolved)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newTemplateCmd(g *globalOptions) *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "template",
		Short:   MsgTemplateShort,
		Long:    MsgTemplateLong,
		Example: MsgTemplateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.TemplateOptions{Force: force}
			if dir != "" {
				opts.Dir = config.ResolvePath(g.workDir, dir)
			}

			result, err := commands.Template(opts)
			if err != nil {
				return err
			}

			renderer, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&dir, "write", "w", "", MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "man DIR",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.ResolvePath(g.workDir, args[0])
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to create %s", dir)
			}
			header := &doc.GenManHeader{
				Title:   "DRUPAL-SETTINGS",
				Section: "1",
				Source:  "drupal-settings " + version.Version,
				Manual:  "drupal-settings manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to write man pages to %s", dir)
			}
			renderer, err := g.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage("Wrote man pages to " + dir)
		},
	}
}

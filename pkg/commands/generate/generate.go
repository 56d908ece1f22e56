package generate

import (
	"io"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/generator"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	// WorkDir is the Drupal project root
	WorkDir string

	// ComposerFile overrides composer.json
	ComposerFile string

	// Overrides are configuration keys set on the command line
	Overrides map[string]string

	// Collaborators; nil means the production default
	FileSystem types.FS
	Reporter   types.Reporter
	Random     io.Reader
}

// Generate loads the configuration and runs the pipeline once. A run with
// no parameter file returns an Aborted result and a nil error.
func Generate(opts GenerateOptions) (*generator.Result, error) {
	logger := logging.GetLogger("commands.generate")

	cfg, err := config.Load(config.LoadOptions{
		WorkDir:      opts.WorkDir,
		ComposerFile: opts.ComposerFile,
		Overrides:    opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	pipeline := generator.Initialize(cfg, opts.WorkDir, generator.Collaborators{
		FS:       opts.FileSystem,
		Reporter: opts.Reporter,
		Random:   opts.Random,
	})

	result, err := pipeline.Run()
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("state", string(result.State)).
		Str("destination", result.DestinationPath).
		Msg("Generate finished")
	return result, nil
}

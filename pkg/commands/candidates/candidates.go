package candidates

import (
	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/filesystem"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/parameters"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// CandidatesOptions holds options for the candidates command
type CandidatesOptions struct {
	WorkDir      string
	ComposerFile string
	Overrides    map[string]string
	FileSystem   types.FS
}

// Candidates reports each parameter file a run would try and which one it
// would use. Nothing is read.
func Candidates(opts CandidatesOptions) (*types.CandidatesResult, error) {
	logger := logging.GetLogger("commands.candidates")

	cfg, err := config.Load(config.LoadOptions{
		WorkDir:      opts.WorkDir,
		ComposerFile: opts.ComposerFile,
		Overrides:    opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	statuses, err := parameters.Inspect(fs, cfg, opts.WorkDir)
	if err != nil {
		return nil, err
	}

	result := &types.CandidatesResult{WorkDir: opts.WorkDir, Candidates: statuses}
	if selected := result.Selected(); selected != nil {
		logger.Debug().Str("selected", selected.Path).Msg("Parameter file would be used")
	} else {
		logger.Debug().Int("candidates", len(statuses)).Msg("No parameter file exists")
	}
	return result, nil
}

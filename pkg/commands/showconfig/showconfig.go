package showconfig

import (
	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/render"
)

// ShowConfigOptions holds options for the config command
type ShowConfigOptions struct {
	WorkDir      string
	ComposerFile string
	Overrides    map[string]string

	// Resolved fills the template directory default so the output shows
	// the directory a run would read from
	Resolved bool
}

// ShowConfig returns the effective configuration
func ShowConfig(opts ShowConfigOptions) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		WorkDir:      opts.WorkDir,
		ComposerFile: opts.ComposerFile,
		Overrides:    opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	if opts.Resolved && cfg.TemplateDirectory == "" {
		cfg.TemplateDirectory = render.TemplateDir(cfg, opts.WorkDir)
	}
	return cfg, nil
}

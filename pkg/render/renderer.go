package render

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// Engine renders file from dir with ctx as the substitution environment
type Engine interface {
	Render(dir, file string, ctx types.TemplateContext) (string, error)
}

// Renderer resolves the configured template and delegates to an Engine
type Renderer struct {
	fs     types.FS
	engine Engine
}

// New creates a Renderer
func New(fs types.FS, engine Engine) *Renderer {
	return &Renderer{fs: fs, engine: engine}
}

// TemplateDir returns the configured template directory, or the vendored
// default under the composer vendor dir
func TemplateDir(cfg *config.Config, workDir string) string {
	if cfg.TemplateDirectory != "" {
		return config.ResolvePath(workDir, cfg.TemplateDirectory)
	}
	vendorDir := cfg.VendorDir
	if vendorDir == "" {
		vendorDir = config.Default().VendorDir
	}
	return filepath.Join(config.ResolvePath(workDir, vendorDir), config.VendorTemplatePath)
}

// TemplateFile returns the configured template file name or the default
func TemplateFile(cfg *config.Config) string {
	if cfg.TemplateFile != "" {
		return cfg.TemplateFile
	}
	return DefaultTemplateName
}

// Render renders the resolved template. A missing template is
// ErrTemplateNotFound and any other stat failure is ErrIO. Engine failures
// are returned as the engine reports them.
func (r *Renderer) Render(cfg *config.Config, workDir string, ctx types.TemplateContext) (string, error) {
	logger := logging.GetLogger("render")
	dir := TemplateDir(cfg, workDir)
	file := TemplateFile(cfg)
	path := filepath.Join(dir, file)

	info, err := r.fs.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to stat template %s", path).
			WithDetail("path", path)
	}
	if err != nil || info.IsDir() {
		return "", errors.Newf(errors.ErrTemplateNotFound, "template %s not found in %s", file, dir).
			WithDetail("path", path)
	}

	logger.Debug().Str("dir", dir).Str("file", file).Int("keys", len(ctx)).Msg("Rendering template")
	out, err := r.engine.Render(dir, file, ctx)
	if err != nil {
		return "", err
	}

	logger.Info().Str("template", path).Int("bytes", len(out)).Msg("Template rendered")
	return out, nil
}

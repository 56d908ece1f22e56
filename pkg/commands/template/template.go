package template

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/filesystem"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/render"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// TemplateOptions holds options for the template command
type TemplateOptions struct {
	// Dir receives the template; empty only returns the content
	Dir string

	// Force overwrites an existing template
	Force bool

	FileSystem types.FS
}

// Template returns the embedded default template, and writes it into Dir
// when set. An existing file is kept unless Force is set.
func Template(opts TemplateOptions) (*types.TemplateResult, error) {
	logger := logging.GetLogger("commands.template")

	result := &types.TemplateResult{
		Name:         render.DefaultTemplateName,
		Content:      render.DefaultTemplate(),
		FilesWritten: []string{},
	}
	if opts.Dir == "" {
		logger.Debug().Msg("Outputting template to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	target := filepath.Join(opts.Dir, render.DefaultTemplateName)
	if err := fs.MkdirAll(opts.Dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", opts.Dir)
	}

	if _, err := fs.Stat(target); err == nil && !opts.Force {
		logger.Warn().Str("path", target).Msg("Template already exists, skipping")
		return result, nil
	} else if err != nil && !os.IsNotExist(err) {
		return result, errors.Wrapf(err, errors.ErrIO, "failed to stat %s", target)
	}

	if err := fs.WriteFile(target, []byte(result.Content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrIO, "failed to write template to %s", target)
	}

	logger.Info().Str("path", target).Msg("Written template")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}

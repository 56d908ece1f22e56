// Package commands provides the command implementations behind the CLI.
//
// Each command lives in its own subdirectory and takes an Options struct:
//   - generate/   - run the settings generation pipeline
//   - candidates/ - list the parameter files a run would consider
//   - showconfig/ - resolve the effective configuration
//   - template/   - print or install the default template
//
// This file re-exports them so the CLI imports a single package.
package commands

import (
	"github.com/arthur-debert/drupal-settings/pkg/commands/candidates"
	"github.com/arthur-debert/drupal-settings/pkg/commands/generate"
	"github.com/arthur-debert/drupal-settings/pkg/commands/showconfig"
	"github.com/arthur-debert/drupal-settings/pkg/commands/template"
	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/generator"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// Generate renders the settings file from the first parameter file found.
type GenerateOptions = generate.GenerateOptions

func Generate(opts GenerateOptions) (*generator.Result, error) {
	return generate.Generate(opts)
}

// Candidates lists the parameter files in priority order.
type CandidatesOptions = candidates.CandidatesOptions

func Candidates(opts CandidatesOptions) (*types.CandidatesResult, error) {
	return candidates.Candidates(opts)
}

// ShowConfig returns the configuration a run would use.
type ShowConfigOptions = showconfig.ShowConfigOptions

func ShowConfig(opts ShowConfigOptions) (*config.Config, error) {
	return showconfig.ShowConfig(opts)
}

// Template returns the default template or writes it into a directory.
type TemplateOptions = template.TemplateOptions

func Template(opts TemplateOptions) (*types.TemplateResult, error) {
	return template.Template(opts)
}

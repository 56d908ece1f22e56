package config

import (
	"path/filepath"

	"github.com/arthur-debert/drupal-settings/pkg/utils"
)

// Keys of the configuration block, as written in composer.json
const (
	KeyParametersFile       = "parameters-file"
	KeyTemplateDirectory    = "template-directory"
	KeyTemplateFile         = "template-file"
	KeyDestinationDirectory = "destination-directory"
	KeyDestinationFile      = "destination-file"
	KeyVendorDir            = "vendor-dir"
)

const (
	// ExtraKey is the composer.json extra entry holding the block
	ExtraKey = "drupal-settings"

	// DefaultComposerFile is read from the working directory
	DefaultComposerFile = "composer.json"

	// VendorTemplatePath is where the package ships its templates,
	// relative to the composer vendor dir
	VendorTemplatePath = "niji-digital/drupal-settings/templates"
)

// Config is the resolved configuration block. Empty ParametersFile and
// TemplateDirectory mean "not configured".
type Config struct {
	ParametersFile       string `koanf:"parameters-file" toml:"parameters-file,omitempty" json:"parametersFile,omitempty"`
	TemplateDirectory    string `koanf:"template-directory" toml:"template-directory,omitempty" json:"templateDirectory,omitempty"`
	TemplateFile         string `koanf:"template-file" toml:"template-file" json:"templateFile"`
	DestinationDirectory string `koanf:"destination-directory" toml:"destination-directory" json:"destinationDirectory"`
	DestinationFile      string `koanf:"destination-file" toml:"destination-file" json:"destinationFile"`
	VendorDir            string `koanf:"vendor-dir" toml:"vendor-dir" json:"vendorDir"`
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		TemplateFile:         "settings.local.php.twig",
		DestinationDirectory: "web/sites/default",
		DestinationFile:      "settings.local.php",
		VendorDir:            "vendor",
	}
}

// ResolvePath expands ~ and environment variables in path, then joins it
// with workDir unless it is absolute
func ResolvePath(workDir, path string) string {
	path = utils.ExpandPath(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}

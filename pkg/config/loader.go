package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DRUPAL_SETTINGS_"

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// WorkDir is the project root holding composer.json
	WorkDir string

	// ComposerFile overrides the composer.json name. Falls back to
	// $COMPOSER, then composer.json.
	ComposerFile string

	// Overrides are applied last; empty values are ignored
	Overrides map[string]string
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. composer.json
	composerPath := ComposerPath(opts.WorkDir, opts.ComposerFile)
	if _, err := os.Stat(composerPath); err == nil {
		if err := mergeComposer(k, composerPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", composerPath).Msg("Loaded composer metadata")
	} else {
		logger.Debug().Str("path", composerPath).Msg("No composer metadata, using defaults")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	overrides := make(map[string]interface{})
	for key, value := range opts.Overrides {
		if value != "" {
			overrides[key] = value
		}
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Str("parameters_file", cfg.ParametersFile).
		Str("template_directory", cfg.TemplateDirectory).
		Str("template_file", cfg.TemplateFile).
		Str("destination_directory", cfg.DestinationDirectory).
		Str("destination_file", cfg.DestinationFile).
		Msg("Configuration loaded")

	return &cfg, nil
}

// ComposerPath resolves the composer.json location for workDir
func ComposerPath(workDir, composerFile string) string {
	if composerFile == "" {
		composerFile = os.Getenv("COMPOSER")
	}
	if composerFile == "" {
		composerFile = DefaultComposerFile
	}
	return ResolvePath(workDir, composerFile)
}

// mergeComposer copies config.vendor-dir and the extra block into k
func mergeComposer(k *koanf.Koanf, path string) error {
	composer := koanf.New(".")
	if err := composer.Load(file.Provider(path), json.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", filepath.Base(path)).
			WithDetail("path", path)
	}

	if vendorDir := composer.String("config." + KeyVendorDir); vendorDir != "" {
		if err := k.Set(KeyVendorDir, vendorDir); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to set vendor-dir")
		}
	}

	block := "extra." + ExtraKey
	if !composer.Exists(block) {
		return nil
	}
	if err := k.Merge(composer.Cut(block)); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to merge composer extra block")
	}
	return nil
}

// Package config loads the drupal-settings configuration block.
//
// The block lives in the host project's composer.json under
// extra."drupal-settings". Values are layered with koanf, lowest first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. composer.json: config.vendor-dir and extra."drupal-settings"
//  3. DRUPAL_SETTINGS_* environment variables
//  4. explicit overrides (CLI flags)
//
// A loaded Config is never mutated afterwards.
package config

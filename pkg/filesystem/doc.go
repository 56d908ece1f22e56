// Package filesystem provides filesystem implementations for drupal-settings.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by the CLI and an afero-backed filesystem
// used by tests.
package filesystem

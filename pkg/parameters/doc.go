// Package parameters locates and parses the environment parameter file.
//
// Candidates are tried in priority order: the configured parameters-file,
// drupal-settings/parameters.yml, then drupal-settings/parameters.dist.yml.
// The first one that exists wins; the others are never read.
package parameters

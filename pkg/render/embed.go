package render

import (
	_ "embed"
)

// DefaultTemplateName is the template rendered when none is configured
const DefaultTemplateName = "settings.local.php.twig"

//go:embed embedded/settings.local.php.twig
var defaultTemplate string

// DefaultTemplate returns the template shipped with drupal-settings
func DefaultTemplate() string {
	return defaultTemplate
}

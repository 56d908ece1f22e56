// Package render resolves the settings template and renders it against a
// template context.
//
// The default engine is pongo2, whose Django syntax covers the Twig
// subset settings templates use ({{ var }}, {% if %}, filters). Templates
// are read through types.FS so tests can render from memory.
package render

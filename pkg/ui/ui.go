// Package ui renders command results and progress messages in the
// terminal, text or JSON format.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/ui/json"
	"github.com/arthur-debert/drupal-settings/pkg/ui/terminal"
	"github.com/arthur-debert/drupal-settings/pkg/ui/text"
)

// Renderer is implemented by every output format
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders a failure
	RenderError(err error) error

	// RenderMessage renders a single line
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format. FormatAuto detects the
// capabilities of output when it is a file and falls back to terminal
// otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

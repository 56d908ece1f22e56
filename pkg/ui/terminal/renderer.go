// Package terminal provides styled terminal output
package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/generator"
	"github.com/arthur-debert/drupal-settings/pkg/parameters"
	"github.com/arthur-debert/drupal-settings/pkg/types"
	"github.com/arthur-debert/drupal-settings/pkg/ui/output/styles"
	"github.com/arthur-debert/drupal-settings/pkg/ui/text"
)

// Renderer styles the results it knows and defers the rest to the text
// renderer
type Renderer struct {
	output io.Writer
	plain  *text.Renderer
}

// New creates a terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output, plain: text.New(output)}
}

// RenderResult implements ui.Renderer
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *generator.Result:
		return r.renderGenerate(v)
	case *types.CandidatesResult:
		return r.renderCandidates(v)
	default:
		return r.plain.RenderResult(result)
	}
}

// RenderError prints the error in the Error style, with its code
func (r *Renderer) RenderError(err error) error {
	line := styles.GetStyle("Error").Render("Error:") + " " + err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line = styles.GetStyle("Code").Render(string(code)) + " " + line
	}
	_, werr := fmt.Fprintln(r.output, line)
	return werr
}

// RenderMessage prints msg in the Info style
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}

func (r *Renderer) renderGenerate(res *generator.Result) error {
	if res.State != generator.StateDone {
		return r.plain.RenderResult(res)
	}
	salt := styles.GetStyle("Muted").Render("kept")
	if res.HashSaltGenerated {
		salt = styles.GetStyle("Warning").Render("generated")
	}
	_, err := fmt.Fprintf(r.output, "%s %s\n%s %s\n%s %s\n",
		styles.GetStyle("Bold").Render("source:"), styles.GetStyle("FilePath").Render(res.SourcePath),
		styles.GetStyle("Bold").Render("destination:"), styles.GetStyle("FilePath").Render(res.DestinationPath),
		styles.GetStyle("Bold").Render("hash_salt:"), salt)
	return err
}

func (r *Renderer) renderCandidates(res *types.CandidatesResult) error {
	if _, err := fmt.Fprintln(r.output, styles.GetStyle("Header").Render("Parameter files in "+res.WorkDir)); err != nil {
		return err
	}
	for _, c := range res.Candidates {
		name := styles.GetStyle("FilePath").Render(c.Name)
		status := styles.GetStyle("Missing").Render("missing")
		switch {
		case c.Selected:
			status = styles.GetStyle("Selected").Render("selected")
		case c.Exists:
			status = styles.GetStyle("Muted").Render("exists, shadowed")
		}
		priority := styles.GetStyle("Priority").Render(strconv.Itoa(c.Priority))
		if _, err := fmt.Fprintf(r.output, "%s%s  %s\n", priority, name, status); err != nil {
			return err
		}
	}
	if res.Selected() == nil {
		return r.RenderError(errors.New(errors.ErrParametersNotFound, parameters.MsgNotFound))
	}
	return nil
}

// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/generator"
	"github.com/arthur-debert/drupal-settings/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Renderer writes results as plain lines
type Renderer struct {
	output io.Writer
}

// New creates a text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders the result types of the drupal-settings commands.
// Anything else is printed with %v.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *generator.Result:
		return r.renderGenerate(v)
	case *types.CandidatesResult:
		return r.renderCandidates(v)
	case *types.TemplateResult:
		return r.renderTemplate(v)
	case *config.Config:
		data, err := toml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = r.output.Write(data)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%v\n", v)
		return err
	}
}

// RenderError prints "Error: " and the error
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage prints msg on its own line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderGenerate(res *generator.Result) error {
	switch res.State {
	case generator.StateDone:
		salt := "kept"
		if res.HashSaltGenerated {
			salt = "generated"
		}
		_, err := fmt.Fprintf(r.output, "source: %s\ndestination: %s\nhash_salt: %s\n",
			res.SourcePath, res.DestinationPath, salt)
		return err
	case generator.StateAborted:
		if res.SourcePath != "" {
			return r.RenderMessage("Settings file not generated: " + res.SourcePath + " holds no parameters")
		}
		return r.RenderMessage("Settings file not generated")
	default:
		return r.RenderMessage(fmt.Sprintf("Generation stopped in state %s", res.State))
	}
}

func (r *Renderer) renderCandidates(res *types.CandidatesResult) error {
	for _, c := range res.Candidates {
		status := "missing"
		if c.Exists {
			status = "exists"
		}
		marker := " "
		if c.Selected {
			marker = "*"
		}
		if _, err := fmt.Fprintf(r.output, "%s %d  %-40s %s\n", marker, c.Priority, c.Name, status); err != nil {
			return err
		}
	}
	if res.Selected() == nil {
		return r.RenderMessage("No parameter file found")
	}
	return nil
}

func (r *Renderer) renderTemplate(res *types.TemplateResult) error {
	if len(res.FilesWritten) == 0 {
		_, err := io.WriteString(r.output, res.Content)
		return err
	}
	for _, path := range res.FilesWritten {
		if err := r.RenderMessage("Wrote " + path); err != nil {
			return err
		}
	}
	return nil
}

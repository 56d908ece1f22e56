package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/drupal-settings/pkg/ui/output/styles"
)

// Reporter writes pipeline progress lines. Success and Error lines are
// styled when the format is FormatTerminal.
type Reporter struct {
	out    io.Writer
	styled bool
}

// NewReporter creates a Reporter writing to out. format must already be
// resolved.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, styled: format == FormatTerminal}
}

func (r *Reporter) Info(msg string) {
	r.write("Info", msg)
}

func (r *Reporter) Success(msg string) {
	r.write("Success", msg)
}

func (r *Reporter) Error(msg string) {
	r.write("Error", msg)
}

func (r *Reporter) write(style, msg string) {
	if r.styled {
		msg = styles.GetStyle(style).Render(msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}

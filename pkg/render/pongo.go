package render

import (
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/types"
	"github.com/flosch/pongo2/v6"
)

// pongo2 refuses context keys that are not identifiers
var validIdentifier = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// PongoEngine renders Twig/Django-style templates with pongo2. Undefined
// variables render as an empty string.
type PongoEngine struct {
	fs types.FS
}

var setupOnce sync.Once

// setupPongo adjusts pongo2's process-wide settings for PHP output.
// Autoescaping is off, and Twig's raw filter is registered as an alias of
// safe so vendored Twig templates using |raw parse.
func setupPongo() {
	setupOnce.Do(func() {
		pongo2.SetAutoescape(false)
		if pongo2.FilterExists("raw") {
			return
		}
		if err := pongo2.RegisterFilter("raw", filterRaw); err != nil {
			logger := logging.GetLogger("render.pongo2")
			logger.Warn().Err(err).Msg("Failed to register raw filter")
		}
	})
}

func filterRaw(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(in.String()), nil
}

// NewPongoEngine creates an engine reading templates from fs. The first
// call changes pongo2's global settings: HTML autoescaping is disabled
// for every pongo2 template in the process, and a raw filter is added.
func NewPongoEngine(fs types.FS) *PongoEngine {
	setupPongo()
	return &PongoEngine{fs: fs}
}

// Render implements Engine
func (e *PongoEngine) Render(dir, file string, ctx types.TemplateContext) (string, error) {
	logger := logging.GetLogger("render.pongo2")
	set := pongo2.NewSet("drupal-settings", &fsLoader{fs: e.fs, dir: dir})

	tpl, err := set.FromFile(file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateSyntax, "failed to parse template %s", file).
			WithDetail("dir", dir)
	}

	pctx := make(pongo2.Context, len(ctx))
	for key, value := range ctx {
		if !validIdentifier.MatchString(key) {
			logger.Warn().Str("key", key).Msg("Parameter name is not a template identifier, skipping")
			continue
		}
		pctx[key] = value
	}

	out, err := tpl.Execute(pctx)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateSyntax, "failed to render template %s", file).
			WithDetail("dir", dir)
	}
	return out, nil
}

// fsLoader is a pongo2.TemplateLoader over types.FS. Relative names
// resolve against the including template, or dir for the entry template.
type fsLoader struct {
	fs  types.FS
	dir string
}

func (l *fsLoader) Abs(base, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if base == "" {
		return filepath.Join(l.dir, name)
	}
	if !filepath.IsAbs(base) {
		base = filepath.Join(l.dir, base)
	}
	return filepath.Join(filepath.Dir(base), name)
}

func (l *fsLoader) Get(path string) (io.Reader, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

package generator

import (
	"fmt"
	"io"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/filesystem"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/parameters"
	"github.com/arthur-debert/drupal-settings/pkg/render"
	"github.com/arthur-debert/drupal-settings/pkg/transform"
	"github.com/arthur-debert/drupal-settings/pkg/types"
	"github.com/arthur-debert/drupal-settings/pkg/writer"
	"github.com/rs/zerolog"
)

// MsgStart is reported when a run begins
const MsgStart = "Generate settings file:"

// Collaborators are the pipeline's swappable dependencies. Nil fields get
// the production defaults.
type Collaborators struct {
	FS       types.FS
	Parser   parameters.Parser
	Engine   render.Engine
	Random   io.Reader
	Reporter types.Reporter
}

// Pipeline is one configured generation run
type Pipeline struct {
	cfg     *config.Config
	workDir string

	fs          types.FS
	parser      parameters.Parser
	renderer    *render.Renderer
	transformer *transform.Transformer
	reporter    types.Reporter

	state  State
	result *Result
	logger zerolog.Logger
}

// Initialize wires a pipeline. It performs no I/O.
func Initialize(cfg *config.Config, workDir string, collab Collaborators) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if collab.FS == nil {
		collab.FS = filesystem.NewOS()
	}
	if collab.Parser == nil {
		collab.Parser = parameters.NewYAMLParser()
	}
	if collab.Engine == nil {
		collab.Engine = render.NewPongoEngine(collab.FS)
	}
	if collab.Reporter == nil {
		collab.Reporter = types.NopReporter{}
	}

	return &Pipeline{
		cfg:         cfg,
		workDir:     workDir,
		fs:          collab.FS,
		parser:      collab.Parser,
		renderer:    render.New(collab.FS, collab.Engine),
		transformer: transform.New(collab.Random),
		reporter:    collab.Reporter,
		state:       StateStart,
		result:      &Result{State: StateStart, Trail: []State{StateStart}},
		logger:      logging.GetLogger("generator"),
	}
}

// State returns the current state
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the pipeline once. A missing parameter file, or one that
// holds no parameters, yields an Aborted result and a nil error.
func (p *Pipeline) Run() (*Result, error) {
	if p.state != StateStart {
		return nil, errors.Newf(errors.ErrInternal, "pipeline already ran, state %s", p.state)
	}

	defer logging.LogOperationStart(p.logger, "generate")()
	p.reporter.Info(MsgStart)

	content, source, err := p.resolve()
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrParametersNotFound) {
			return p.abort("No parameter file found, settings file not generated")
		}
		return p.fail(err)
	}
	p.result.SourcePath = source
	p.transition(StateSourceResolved)

	raw, err := p.parser.Parse(content)
	if err != nil {
		return p.fail(err)
	}
	// An empty mapping counts as no parameters at all
	if len(raw) == 0 {
		return p.abort("Parameter file is empty, settings file not generated")
	}
	p.transition(StateParametersParsed)

	ctx, generated, err := p.transformer.Transform(raw)
	if err != nil {
		return p.fail(err)
	}
	p.result.HashSaltGenerated = generated
	p.transition(StateContextBuilt)

	text, err := p.renderer.Render(p.cfg, p.workDir, ctx)
	if err != nil {
		return p.fail(err)
	}
	p.transition(StateRendered)

	dest, err := writer.Write(p.fs, p.cfg, p.workDir, text)
	if err != nil {
		return p.fail(err)
	}
	p.result.DestinationPath = dest
	p.transition(StateWritten)

	p.reporter.Success(fmt.Sprintf("Settings file %s generated", dest))
	p.transition(StateDone)
	return p.result, nil
}

func (p *Pipeline) resolve() ([]byte, string, error) {
	return parameters.Resolve(p.fs, p.reporter, p.cfg, p.workDir)
}

func (p *Pipeline) transition(to State) {
	p.logger.Debug().Str("from", string(p.state)).Str("to", string(to)).Msg("State transition")
	p.state = to
	p.result.State = to
	p.result.Trail = append(p.result.Trail, to)
}

func (p *Pipeline) abort(reason string) (*Result, error) {
	p.reporter.Error(parameters.MsgNotFound)
	p.logger.Warn().Str("workDir", p.workDir).Str("source", p.result.SourcePath).Msg(reason)
	p.transition(StateAborted)
	return p.result, nil
}

func (p *Pipeline) fail(err error) (*Result, error) {
	p.logger.Error().
		Err(err).
		Str("state", string(p.state)).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Settings generation failed")
	p.result.Err = err
	p.transition(StateFailed)
	return p.result, err
}

// pkg/generator/generator_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: pkg/testutil (memory FS and temp dir)
// PURPOSE: Test the generation state machine end to end

package generator_test

import (
	"bytes"
	"encoding/base64"
	"os"
	"regexp"
	"testing"
	"testing/iotest"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/generator"
	"github.com/arthur-debert/drupal-settings/pkg/testutil"
	"github.com/arthur-debert/drupal-settings/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const destination = testutil.DestinationDir + "/" + testutil.DestinationFile

const scenarioTemplate = "name={{ site_name }}\nhosts={{ allowed_hosts }}\nsalt={{ hash_salt }}\n"

var saltLine = regexp.MustCompile(`(?m)^salt=(.*)$`)

func run(t *testing.T, env *testutil.TestEnvironment, cfg *config.Config, collab generator.Collaborators) (*generator.Result, error) {
	t.Helper()
	if collab.FS == nil {
		collab.FS = env.FS
	}
	return generator.Initialize(cfg, env.WorkDir, collab).Run()
}

func extractSalt(t *testing.T, out string) string {
	t.Helper()
	m := saltLine.FindStringSubmatch(out)
	require.NotNil(t, m, "no salt line in %q", out)
	return m[1]
}

func TestScenarioA_GeneratesSettings(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersFile, "site_name: Acme\nallowed_hosts:\n  - a.com\n  - b.com\n")
	env.WriteTemplate(scenarioTemplate)
	reporter := &testutil.RecordingReporter{}

	result, err := run(t, env, config.Default(), generator.Collaborators{Reporter: reporter})

	require.NoError(t, err)
	assert.Equal(t, generator.StateDone, result.State)
	assert.True(t, result.Succeeded())
	assert.True(t, result.HashSaltGenerated)
	assert.Equal(t, env.Path(testutil.ParametersFile), result.SourcePath)
	assert.Equal(t, env.Path(destination), result.DestinationPath)

	out := env.ReadFile(destination)
	assert.Contains(t, out, "name=Acme\n")
	assert.Contains(t, out, "hosts=[\n  'a.com',\n  'b.com',\n]\n")

	salt, err := base64.RawURLEncoding.DecodeString(extractSalt(t, out))
	require.NoError(t, err)
	assert.Len(t, salt, 55)

	assert.Equal(t, []string{
		generator.MsgStart,
		"Create the settings file from the drupal-settings/parameters.yml file",
	}, reporter.Messages("info"))
	assert.Len(t, reporter.Messages("success"), 1)
	assert.Empty(t, reporter.Messages("error"))
}

func TestScenarioB_ReadOnlyDestinationIsOverwritten(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
	env.WriteTemplate(scenarioTemplate)
	env.WriteFile(destination, "stale")
	env.Chmod(destination, 0444)
	env.Chmod(testutil.DestinationDir, 0555)

	result, err := run(t, env, config.Default(), generator.Collaborators{})

	require.NoError(t, err)
	assert.Equal(t, generator.StateDone, result.State)
	testutil.AssertContains(t, env.ReadFile(destination), "name=Acme")
	testutil.AssertMode(t, env, destination, 0644)
	testutil.AssertMode(t, env, testutil.DestinationDir, 0755)
}

func TestScenarioC_MissingOverrideWithoutFallbacksAborts(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteTemplate(scenarioTemplate)
	env.WriteFile(destination, "untouched")
	reporter := &testutil.RecordingReporter{}

	cfg := config.Default()
	cfg.ParametersFile = "config/missing.yml"

	result, err := run(t, env, cfg, generator.Collaborators{Reporter: reporter})

	require.NoError(t, err)
	assert.Equal(t, generator.StateAborted, result.State)
	assert.Equal(t, []generator.State{generator.StateStart, generator.StateAborted}, result.Trail)
	assert.False(t, result.Succeeded())
	assert.Empty(t, result.DestinationPath)
	assert.Equal(t, "untouched", env.ReadFile(destination))

	assert.Equal(t, []string{
		generator.MsgStart,
		"Parameter file config/missing.yml doesn't exist, trying with drupal-settings/parameters.yml",
		"Parameter file drupal-settings/parameters.yml doesn't exist, trying with drupal-settings/parameters.dist.yml",
		"Parameter file drupal-settings/parameters.dist.yml doesn't exist",
	}, reporter.Messages("info"))
	assert.Equal(t, []string{"Unable to find any parameters files"}, reporter.Messages("error"))
}

func TestRun_NoCandidateCreatesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteTemplate(scenarioTemplate)

	result, err := run(t, env, config.Default(), generator.Collaborators{})

	require.NoError(t, err)
	assert.Equal(t, generator.StateAborted, result.State)
	testutil.AssertNotExists(t, env, destination)
}

func TestRun_EmptyParameterFileAborts(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "comments only", content: "# filled in by ops\n"},
		{name: "empty mapping", content: "{}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			env.WriteTemplate(scenarioTemplate)
			env.WriteParameters(testutil.ParametersFile, tt.content)
			env.WriteParameters(testutil.ParametersDistFile, "site_name: Dist\n")
			env.WriteFile(destination, "$databases = ['default' => 'kept'];")
			reporter := &testutil.RecordingReporter{}

			result, err := run(t, env, config.Default(), generator.Collaborators{Reporter: reporter})

			require.NoError(t, err)
			assert.Equal(t, generator.StateAborted, result.State)
			assert.Equal(t, []generator.State{
				generator.StateStart,
				generator.StateSourceResolved,
				generator.StateAborted,
			}, result.Trail)
			assert.Equal(t, env.Path(testutil.ParametersFile), result.SourcePath)
			assert.Empty(t, result.DestinationPath)
			assert.Equal(t, "$databases = ['default' => 'kept'];", env.ReadFile(destination))
			assert.Equal(t, []string{"Unable to find any parameters files"}, reporter.Messages("error"))
			assert.Empty(t, reporter.Messages("success"))
		})
	}
}

func TestRun_FirstExistingCandidateWins(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters("custom.yml", "site_name: Custom\n")
	env.WriteParameters(testutil.ParametersFile, "site_name: Local\nextra: local\n")
	env.WriteParameters(testutil.ParametersDistFile, "site_name: Dist\n")
	env.WriteTemplate("{{ site_name }}|{{ extra }}")

	cfg := config.Default()
	cfg.ParametersFile = "custom.yml"

	result, err := run(t, env, cfg, generator.Collaborators{})

	require.NoError(t, err)
	assert.Equal(t, env.Path("custom.yml"), result.SourcePath)
	assert.Equal(t, "Custom|", env.ReadFile(destination))
}

func TestRun_FallsBackToDist(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersDistFile, "site_name: Dist\n")
	env.WriteTemplate("{{ site_name }}")
	reporter := &testutil.MockReporter{}
	reporter.On("Info", generator.MsgStart).Once()
	reporter.On("Info", "Parameter file drupal-settings/parameters.yml doesn't exist, trying with drupal-settings/parameters.dist.yml").Once()
	reporter.On("Info", "Create the settings file from the drupal-settings/parameters.dist.yml file").Once()
	reporter.On("Success", "Settings file "+env.Path(destination)+" generated").Once()

	result, err := run(t, env, config.Default(), generator.Collaborators{Reporter: reporter})

	require.NoError(t, err)
	assert.Equal(t, generator.StateDone, result.State)
	assert.Equal(t, "Dist", env.ReadFile(destination))
	reporter.AssertExpectations(t)
}

func TestRun_ExplicitHashSaltIsKept(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersFile, "hash_salt: my-fixed-salt\n")
	env.WriteTemplate(scenarioTemplate)

	result, err := run(t, env, config.Default(), generator.Collaborators{})

	require.NoError(t, err)
	assert.False(t, result.HashSaltGenerated)
	assert.Equal(t, "my-fixed-salt", extractSalt(t, env.ReadFile(destination)))
}

func TestRun_GeneratedSaltsDiffer(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
	env.WriteTemplate(scenarioTemplate)

	_, err := run(t, env, config.Default(), generator.Collaborators{})
	require.NoError(t, err)
	first := extractSalt(t, env.ReadFile(destination))

	_, err = run(t, env, config.Default(), generator.Collaborators{})
	require.NoError(t, err)
	second := extractSalt(t, env.ReadFile(destination))

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 74)
	assert.Len(t, second, 74)
}

func TestRun_DeterministicRandom(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
	env.WriteTemplate(scenarioTemplate)
	seed := bytes.Repeat([]byte{0xAB}, 55)

	_, err := run(t, env, config.Default(), generator.Collaborators{Random: bytes.NewReader(seed)})

	require.NoError(t, err)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(seed), extractSalt(t, env.ReadFile(destination)))
}

func TestRun_Trail(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
	env.WriteTemplate(scenarioTemplate)

	pipeline := generator.Initialize(config.Default(), env.WorkDir, generator.Collaborators{FS: env.FS})
	assert.Equal(t, generator.StateStart, pipeline.State())

	result, err := pipeline.Run()

	require.NoError(t, err)
	assert.Equal(t, []generator.State{
		generator.StateStart,
		generator.StateSourceResolved,
		generator.StateParametersParsed,
		generator.StateContextBuilt,
		generator.StateRendered,
		generator.StateWritten,
		generator.StateDone,
	}, result.Trail)
	assert.True(t, pipeline.State().Terminal())
}

func TestRun_OnlyOnce(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
	env.WriteTemplate(scenarioTemplate)

	pipeline := generator.Initialize(config.Default(), env.WorkDir, generator.Collaborators{FS: env.FS})
	_, err := pipeline.Run()
	require.NoError(t, err)

	_, err = pipeline.Run()
	testutil.AssertErrorCode(t, err, errors.ErrInternal)
}

func TestInitialize_NoIO(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	pipeline := generator.Initialize(nil, "/does/not/exist", generator.Collaborators{FS: env.FS})

	assert.Equal(t, generator.StateStart, pipeline.State())
}

type failingEngine struct{ err error }

func (e failingEngine) Render(string, string, types.TemplateContext) (string, error) {
	return "", e.err
}

type failingParser struct{ err error }

func (p failingParser) Parse([]byte) (types.RawParameters, error) {
	return nil, p.err
}

func TestRun_Failures(t *testing.T) {
	engineErr := errors.New(errors.ErrTemplateSyntax, "boom")
	parserErr := errors.New(errors.ErrParse, "bad yaml")

	tests := []struct {
		name      string
		setup     func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators)
		code      errors.ErrorCode
		same      error
		lastState generator.State
	}{
		{
			name: "invalid yaml",
			setup: func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators) {
				env.WriteParameters(testutil.ParametersFile, "site_name: [unclosed\n")
			},
			code:      errors.ErrParse,
			lastState: generator.StateSourceResolved,
		},
		{
			name: "parser error is returned verbatim",
			setup: func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators) {
				env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
				collab.Parser = failingParser{err: parserErr}
			},
			code:      errors.ErrParse,
			same:      parserErr,
			lastState: generator.StateSourceResolved,
		},
		{
			name: "random source fails",
			setup: func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators) {
				env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
				collab.Random = iotest.ErrReader(assert.AnError)
			},
			code:      errors.ErrSecretGenerate,
			lastState: generator.StateParametersParsed,
		},
		{
			name: "template missing",
			setup: func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators) {
				env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
				cfg.TemplateFile = "missing.twig"
			},
			code:      errors.ErrTemplateNotFound,
			lastState: generator.StateContextBuilt,
		},
		{
			name: "engine error is returned verbatim",
			setup: func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators) {
				env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
				collab.Engine = failingEngine{err: engineErr}
			},
			code:      errors.ErrTemplateSyntax,
			same:      engineErr,
			lastState: generator.StateContextBuilt,
		},
		{
			name: "destination directory missing",
			setup: func(env *testutil.TestEnvironment, cfg *config.Config, collab *generator.Collaborators) {
				env.WriteParameters(testutil.ParametersFile, "site_name: Acme\n")
				cfg.DestinationDirectory = "docroot/sites/default"
			},
			code:      errors.ErrIO,
			lastState: generator.StateRendered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			env.WriteTemplate(scenarioTemplate)
			cfg := config.Default()
			collab := generator.Collaborators{FS: env.FS}
			tt.setup(env, cfg, &collab)

			result, err := generator.Initialize(cfg, env.WorkDir, collab).Run()

			testutil.AssertErrorCode(t, err, tt.code)
			if tt.same != nil {
				assert.Same(t, tt.same, err)
			}
			require.NotNil(t, result)
			assert.Equal(t, generator.StateFailed, result.State)
			assert.Equal(t, err, result.Err)
			require.GreaterOrEqual(t, len(result.Trail), 2)
			assert.Equal(t, tt.lastState, result.Trail[len(result.Trail)-2])
			testutil.AssertNotExists(t, env, destination)
		})
	}
}

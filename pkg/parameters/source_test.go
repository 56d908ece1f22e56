// pkg/parameters/source_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil (memory FS)
// PURPOSE: Candidate ordering and first-match-wins resolution

package parameters

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		override string
		want     []string
	}{
		{
			name: "defaults only",
			want: []string{DefaultParametersFile, DistParametersFile},
		},
		{
			name:     "override first",
			override: "config/parameters.prod.yml",
			want:     []string{"config/parameters.prod.yml", DefaultParametersFile, DistParametersFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.ParametersFile = tt.override

			candidates := Candidates(cfg, "/srv/site")
			require.Len(t, candidates, len(tt.want))
			for i, c := range candidates {
				assert.Equal(t, tt.want[i], c.Name)
				assert.Equal(t, filepath.Join("/srv/site", tt.want[i]), c.Path)
			}
		})
	}

	t.Run("absolute override is kept", func(t *testing.T) {
		cfg := config.Default()
		cfg.ParametersFile = "/etc/drupal/parameters.yml"

		candidates := Candidates(cfg, "/srv/site")
		assert.Equal(t, "/etc/drupal/parameters.yml", candidates[0].Path)
	})

	t.Run("nil config", func(t *testing.T) {
		assert.Len(t, Candidates(nil, "/srv/site"), 2)
	})
}

func TestResolve_FirstExistingWins(t *testing.T) {
	const override = "config/parameters.prod.yml"

	tests := []struct {
		name     string
		present  []string
		override string
		want     string
	}{
		{
			name:     "override beats everything",
			present:  []string{override, DefaultParametersFile, DistParametersFile},
			override: override,
			want:     override,
		},
		{
			name:    "default beats dist",
			present: []string{DefaultParametersFile, DistParametersFile},
			want:    DefaultParametersFile,
		},
		{
			name:    "dist as last resort",
			present: []string{DistParametersFile},
			want:    DistParametersFile,
		},
		{
			name:     "missing override falls back",
			present:  []string{DistParametersFile},
			override: "missing.yml",
			want:     DistParametersFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			for _, name := range tt.present {
				env.WriteParameters(name, "source: "+name+"\n")
			}
			cfg := config.Default()
			cfg.ParametersFile = tt.override

			content, path, err := Resolve(env.FS, &testutil.RecordingReporter{}, cfg, env.WorkDir)
			require.NoError(t, err)
			assert.Equal(t, env.Path(tt.want), path)
			assert.Equal(t, "source: "+tt.want+"\n", string(content))
		})
	}
}

func TestResolve_ReportsEachCandidate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(DistParametersFile, "site_name: Acme\n")
	cfg := config.Default()
	cfg.ParametersFile = "custom.yml"
	reporter := &testutil.RecordingReporter{}

	_, _, err := Resolve(env.FS, reporter, cfg, env.WorkDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Parameter file custom.yml doesn't exist, trying with drupal-settings/parameters.yml",
		"Parameter file drupal-settings/parameters.yml doesn't exist, trying with drupal-settings/parameters.dist.yml",
		"Create the settings file from the drupal-settings/parameters.dist.yml file",
	}, reporter.Messages("info"))
}

func TestResolve_NotFound(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	reporter := &testutil.RecordingReporter{}

	content, path, err := Resolve(env.FS, reporter, config.Default(), env.WorkDir)
	testutil.AssertErrorCode(t, err, errors.ErrParametersNotFound)
	assert.Nil(t, content)
	assert.Empty(t, path)

	lines := reporter.Messages("info")
	require.Len(t, lines, 2)
	assert.Equal(t, "Parameter file drupal-settings/parameters.dist.yml doesn't exist", lines[1])
	assert.Equal(t, []string{DefaultParametersFile, DistParametersFile}, errors.GetErrorDetails(err)["candidates"])
}

func TestResolve_DirectoryIsNotACandidate(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.MkdirAll(DefaultParametersFile)
	env.WriteParameters(DistParametersFile, "a: b\n")

	_, path, err := Resolve(env.FS, &testutil.RecordingReporter{}, config.Default(), env.WorkDir)
	require.NoError(t, err)
	assert.Equal(t, env.Path(DistParametersFile), path)
}

func TestInspect(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteParameters(DefaultParametersFile, "a: b\n")
	env.WriteParameters(DistParametersFile, "a: c\n")
	cfg := config.Default()
	cfg.ParametersFile = "missing.yml"

	statuses, err := Inspect(env.FS, cfg, env.WorkDir)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.False(t, statuses[0].Exists)
	assert.True(t, statuses[1].Exists)
	assert.True(t, statuses[1].Selected)
	assert.True(t, statuses[2].Exists)
	assert.False(t, statuses[2].Selected, "lower priority candidates are never selected")
	assert.Equal(t, 3, statuses[2].Priority)
}

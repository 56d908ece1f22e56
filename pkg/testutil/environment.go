// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Lay out a Drupal project for pipeline tests

package testutil

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/drupal-settings/pkg/filesystem"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// Default project layout used by the environment helpers
const (
	ParametersFile     = "drupal-settings/parameters.yml"
	ParametersDistFile = "drupal-settings/parameters.dist.yml"
	VendorTemplateDir  = "vendor/niji-digital/drupal-settings/templates"
	TemplateFile       = "settings.local.php.twig"
	DestinationDir     = "web/sites/default"
	DestinationFile    = "settings.local.php"
)

// TestEnvironment is a Drupal project root on a test filesystem
type TestEnvironment struct {
	// WorkDir is the project root every relative path is joined with
	WorkDir string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a project root with the default destination
// directory already present.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.WorkDir = "/virtual/project"
		env.FS = NewTestFS()
	case EnvIsolated:
		env.WorkDir = filepath.Join(t.TempDir(), "project")
		env.FS = filesystem.NewOS()
	}

	env.MkdirAll(DestinationDir)
	return env
}

// Path joins rel with the project root
func (env *TestEnvironment) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(env.WorkDir, rel)
}

// MkdirAll creates a directory below the project root
func (env *TestEnvironment) MkdirAll(rel string) string {
	env.t.Helper()
	path := env.Path(rel)
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("failed to create %s: %v", path, err)
	}
	return path
}

// WriteFile writes content below the project root, creating parents
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := env.Path(rel)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteParameters writes a parameter file at rel
func (env *TestEnvironment) WriteParameters(rel, yaml string) string {
	env.t.Helper()
	return env.WriteFile(rel, yaml)
}

// WriteTemplate writes a template into the vendored default template dir
func (env *TestEnvironment) WriteTemplate(content string) string {
	env.t.Helper()
	return env.WriteFile(filepath.Join(VendorTemplateDir, TemplateFile), content)
}

// WriteComposer writes composer.json with the given "drupal-settings"
// extra block. A nil block writes a composer.json without one.
func (env *TestEnvironment) WriteComposer(block map[string]interface{}) string {
	env.t.Helper()
	doc := map[string]interface{}{
		"name": "acme/site",
		"type": "project",
	}
	if block != nil {
		doc["extra"] = map[string]interface{}{"drupal-settings": block}
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		env.t.Fatalf("failed to encode composer.json: %v", err)
	}
	return env.WriteFile("composer.json", string(data))
}

// ReadFile returns the content of rel
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.Path(rel))
	if err != nil {
		env.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether rel exists
func (env *TestEnvironment) Exists(rel string) bool {
	_, err := env.FS.Stat(env.Path(rel))
	return err == nil
}

// Mode returns the permission bits of rel
func (env *TestEnvironment) Mode(rel string) fs.FileMode {
	env.t.Helper()
	info, err := env.FS.Stat(env.Path(rel))
	if err != nil {
		env.t.Fatalf("failed to stat %s: %v", rel, err)
	}
	return info.Mode().Perm()
}

// Chmod changes the permission bits of rel
func (env *TestEnvironment) Chmod(rel string, mode fs.FileMode) {
	env.t.Helper()
	if err := env.FS.Chmod(env.Path(rel), mode); err != nil {
		env.t.Fatalf("failed to chmod %s: %v", rel, err)
	}
}

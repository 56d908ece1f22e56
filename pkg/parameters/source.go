package parameters

import (
	"fmt"
	"os"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

const (
	// DefaultParametersFile is the environment-specific parameter file
	DefaultParametersFile = "drupal-settings/parameters.yml"

	// DistParametersFile is the committed fallback
	DistParametersFile = "drupal-settings/parameters.dist.yml"

	// MsgNotFound is reported when no candidate exists
	MsgNotFound = "Unable to find any parameters files"
)

// Candidate is one entry of the priority-ordered parameter file list
type Candidate struct {
	// Name is the path as configured, used in messages
	Name string
	// Path is Name resolved against the working directory
	Path string
}

// Candidates returns the parameter files to try, highest priority first
func Candidates(cfg *config.Config, workDir string) []Candidate {
	names := make([]string, 0, 3)
	if cfg != nil && cfg.ParametersFile != "" {
		names = append(names, cfg.ParametersFile)
	}
	names = append(names, DefaultParametersFile, DistParametersFile)

	candidates := make([]Candidate, len(names))
	for i, name := range names {
		candidates[i] = Candidate{Name: name, Path: config.ResolvePath(workDir, name)}
	}
	return candidates
}

// Resolve returns the content and path of the first existing candidate.
// It fails with ErrParametersNotFound when none exists.
func Resolve(fs types.FS, reporter types.Reporter, cfg *config.Config, workDir string) ([]byte, string, error) {
	logger := logging.GetLogger("parameters")
	candidates := Candidates(cfg, workDir)

	for i, candidate := range candidates {
		found, err := exists(fs, candidate.Path)
		if err != nil {
			return nil, "", err
		}

		if !found {
			msg := fmt.Sprintf("Parameter file %s doesn't exist", candidate.Name)
			if i+1 < len(candidates) {
				msg += ", trying with " + candidates[i+1].Name
			}
			reporter.Info(msg)
			logger.Debug().Str("candidate", candidate.Path).Int("priority", i+1).Msg("Parameter file missing")
			continue
		}

		reporter.Info(fmt.Sprintf("Create the settings file from the %s file", candidate.Name))
		content, err := fs.ReadFile(candidate.Path)
		if err != nil {
			return nil, "", errors.Wrapf(err, errors.ErrIO, "failed to read parameter file %s", candidate.Name).
				WithDetail("path", candidate.Path)
		}

		logger.Info().
			Str("source", candidate.Path).
			Int("priority", i+1).
			Int("bytes", len(content)).
			Msg("Parameter file resolved")
		return content, candidate.Path, nil
	}

	return nil, "", errors.New(errors.ErrParametersNotFound, MsgNotFound).
		WithDetail("candidates", candidateNames(candidates))
}

// Inspect reports every candidate and whether it exists, without reading
// any of them.
func Inspect(fs types.FS, cfg *config.Config, workDir string) ([]types.CandidateStatus, error) {
	candidates := Candidates(cfg, workDir)
	statuses := make([]types.CandidateStatus, len(candidates))
	selected := false

	for i, candidate := range candidates {
		found, err := exists(fs, candidate.Path)
		if err != nil {
			return nil, err
		}
		statuses[i] = types.CandidateStatus{
			Priority: i + 1,
			Name:     candidate.Name,
			Path:     candidate.Path,
			Exists:   found,
			Selected: found && !selected,
		}
		if found {
			selected = true
		}
	}
	return statuses, nil
}

// exists reports whether path is a readable candidate. Directories do not
// count.
func exists(fs types.FS, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrIO, "failed to stat parameter file %s", path)
	}
	return !info.IsDir(), nil
}

func candidateNames(candidates []Candidate) []string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return names
}

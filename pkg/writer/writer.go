// Package writer persists the rendered settings file.
package writer

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/drupal-settings/pkg/config"
	"github.com/arthur-debert/drupal-settings/pkg/errors"
	"github.com/arthur-debert/drupal-settings/pkg/internal/hashutil"
	"github.com/arthur-debert/drupal-settings/pkg/logging"
	"github.com/arthur-debert/drupal-settings/pkg/types"
)

// Permission bits forced on the destination before writing. Drupal's
// installer leaves sites/default read-only; the settings file must stay
// writable for the next run.
const (
	DirMode  os.FileMode = 0755
	FileMode os.FileMode = 0644
)

// DestinationPath returns the resolved destination file path
func DestinationPath(cfg *config.Config, workDir string) string {
	dir := cfg.DestinationDirectory
	if dir == "" {
		dir = config.Default().DestinationDirectory
	}
	file := cfg.DestinationFile
	if file == "" {
		file = config.Default().DestinationFile
	}
	return filepath.Join(config.ResolvePath(workDir, dir), file)
}

// Write replaces the destination file with text. The destination
// directory must already exist.
func Write(fs types.FS, cfg *config.Config, workDir, text string) (string, error) {
	logger := logging.GetLogger("writer")
	path := DestinationPath(cfg, workDir)
	dir := filepath.Dir(path)

	if err := fs.Chmod(dir, DirMode); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to make %s writable", dir).
			WithDetail("path", dir)
	}

	if _, err := fs.Stat(path); err == nil {
		if err := fs.Chmod(path, FileMode); err != nil {
			return "", errors.Wrapf(err, errors.ErrIO, "failed to make %s writable", path).
				WithDetail("path", path)
		}
		if previous, err := hashutil.FileChecksum(fs, path); err == nil {
			logger.Debug().
				Str("path", path).
				Bool("changed", previous != hashutil.Checksum([]byte(text))).
				Msg("Replacing existing settings file")
		}
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to stat %s", path).
			WithDetail("path", path)
	}

	if err := fs.WriteFile(path, []byte(text), FileMode); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Int("bytes", len(text)).Msg("Settings file written")
	return path, nil
}

package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/drupal-settings/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/drupal-settings/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/drupal-settings/internal/version.Date={{.Date}}
)

// Info holds the build information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

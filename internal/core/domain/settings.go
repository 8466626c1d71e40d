package domain

import "time"

const (
	// DefaultTimeout bounds every outgoing HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultDiffyAPIURL is the Diffy API root.
	DefaultDiffyAPIURL = "https://app.diffy.website/api"

	// DefaultGitHubHost is the GitHub host used for user lookups.
	DefaultGitHubHost = "github.com"

	// DefaultCircleCIAPIURL is the CircleCI v1.1 API root.
	DefaultCircleCIAPIURL = "https://circleci.com/api/v1.1"

	// UserAgent is sent with every outgoing API request.
	UserAgent = "diffy-build-tools"
)

// Settings holds the resolved configuration of the tool.
type Settings struct {
	CacheDir       string
	Timeout        time.Duration
	DiffyAPIURL    string
	GitHubHost     string
	GitHubAPIURL   string
	CircleCIAPIURL string
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:       DefaultCacheDir,
		Timeout:        DefaultTimeout,
		DiffyAPIURL:    DefaultDiffyAPIURL,
		GitHubHost:     DefaultGitHubHost,
		CircleCIAPIURL: DefaultCircleCIAPIURL,
	}
}

package config

// Settingsfile represents the structure of the config.yaml settings file.
type Settingsfile struct {
	CacheDir string      `yaml:"cache_dir"`
	Timeout  string      `yaml:"timeout"`
	Diffy    EndpointDTO `yaml:"diffy"`
	GitHub   GitHubDTO   `yaml:"github"`
	CircleCI EndpointDTO `yaml:"circleci"`
}

// EndpointDTO configures an HTTP API root.
type EndpointDTO struct {
	APIURL string `yaml:"api_url"`
}

// GitHubDTO configures the GitHub host. APIURL, when set, replaces the
// REST root derived from the host.
type GitHubDTO struct {
	Host   string `yaml:"host"`
	APIURL string `yaml:"api_url"`
}

package domain

// PlatformConfig holds the values the Build Tools plugin cached for the
// current site. An empty field means the value was not found.
type PlatformConfig struct {
	GitHubToken string
	CircleToken string
	SiteName    string
}

// Missing lists the markers of the prerequisites that are absent.
func (c PlatformConfig) Missing() []string {
	var missing []string
	if c.GitHubToken == "" {
		missing = append(missing, GitHubTokenMarker)
	}
	if c.CircleToken == "" {
		missing = append(missing, CircleTokenMarker)
	}
	if c.SiteName == "" {
		missing = append(missing, SiteNameMarker)
	}
	return missing
}

// Ready reports whether every prerequisite is present.
func (c PlatformConfig) Ready() bool {
	return len(c.Missing()) == 0
}

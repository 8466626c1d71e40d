package domain

import "path/filepath"

const (
	// BuildToolsDirName is the cache subdirectory shared with the Build Tools plugin.
	BuildToolsDirName = "build-tools"

	// SessionFileName is the name of the host CLI session file inside the cache directory.
	SessionFileName = "session"

	// DefaultCacheDir is the host CLI cache directory. A leading ~ is expanded to the home directory.
	DefaultCacheDir = "~/.terminus/cache"

	// ConfigDirName is the directory under the user config dir holding the settings file.
	ConfigDirName = "diffy"

	// ConfigFileName is the name of the settings file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for secret files (rw-------).
	PrivateFilePerm = 0o600
)

// Markers identifying prerequisite files in the build tools cache.
const (
	GitHubTokenMarker = "GITHUB_TOKEN"
	CircleTokenMarker = "CIRCLE_TOKEN"
	SiteNameMarker    = "SITE_NAME"
)

// Names of the variables pushed to CircleCI.
const (
	EnvVarAPIKey    = "DIFFY_API_KEY"
	EnvVarProjectID = "DIFFY_PROJECT_ID"
)

const (
	apiKeySuffix    = "-diffy-key"
	projectIDSuffix = "-diffy-project"
)

// APIKeyCacheKey returns the cache key holding the Diffy API key of a user.
func APIKeyCacheKey(userID string) string {
	return userID + apiKeySuffix
}

// ProjectIDCacheKey returns the cache key holding the Diffy project id of a user.
func ProjectIDCacheKey(userID string) string {
	return userID + projectIDSuffix
}

// BuildToolsPath returns the build tools cache directory inside cacheDir.
func BuildToolsPath(cacheDir string) string {
	return filepath.Join(cacheDir, BuildToolsDirName)
}

// SessionPath returns the host CLI session file inside cacheDir.
func SessionPath(cacheDir string) string {
	return filepath.Join(cacheDir, SessionFileName)
}

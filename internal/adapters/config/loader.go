// Package config provides the settings loader for diffy.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable overriding the settings file location.
const EnvConfigPath = "DIFFY_CONFIG"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DefaultPath returns the settings file location: $DIFFY_CONFIG when set,
// otherwise config.yaml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, domain.ConfigDirName, domain.ConfigFileName)
}

// Load reads the settings file at path and overlays it on the defaults.
// A missing file, or an empty path, yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if path != "" {
		//nolint:gosec // Path is chosen by the user
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			l.Logger.Debug("no config file at " + path + ", using defaults")
		case err != nil:
			return settings, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		default:
			var file Settingsfile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return settings, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
			}
			if err := apply(&settings, &file); err != nil {
				return settings, zerr.With(err, "path", path)
			}
		}
	}

	expanded, err := ExpandHome(settings.CacheDir)
	if err != nil {
		return settings, err
	}
	settings.CacheDir = expanded

	return settings, nil
}

func apply(settings *domain.Settings, file *Settingsfile) error {
	if file.CacheDir != "" {
		settings.CacheDir = file.CacheDir
	}
	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		if d <= 0 {
			return zerr.With(domain.ErrInvalidTimeout, "timeout", file.Timeout)
		}
		settings.Timeout = d
	}
	if file.Diffy.APIURL != "" {
		settings.DiffyAPIURL = strings.TrimRight(file.Diffy.APIURL, "/")
	}
	if file.GitHub.Host != "" {
		settings.GitHubHost = file.GitHub.Host
	}
	if file.GitHub.APIURL != "" {
		settings.GitHubAPIURL = strings.TrimRight(file.GitHub.APIURL, "/")
	}
	if file.CircleCI.APIURL != "" {
		settings.CircleCIAPIURL = strings.TrimRight(file.CircleCI.APIURL, "/")
	}
	return nil
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

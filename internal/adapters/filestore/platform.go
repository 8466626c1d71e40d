package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

// PlatformLoader implements ports.PlatformConfigLoader over the build tools cache.
type PlatformLoader struct{}

// NewPlatformLoader creates a new PlatformLoader.
func NewPlatformLoader() *PlatformLoader {
	return &PlatformLoader{}
}

// Load scans dir for files whose names carry one of the prerequisite markers.
// Each file holds a single JSON scalar. Files are visited in lexical order,
// so when several files match a marker the last one wins.
func (l *PlatformLoader) Load(dir string) (domain.PlatformConfig, error) {
	var cfg domain.PlatformConfig

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrPlatformReadFailed.Error()), "dir", dir)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var target *string
		name := entry.Name()
		switch {
		case strings.Contains(name, domain.GitHubTokenMarker):
			target = &cfg.GitHubToken
		case strings.Contains(name, domain.CircleTokenMarker):
			target = &cfg.CircleToken
		case strings.Contains(name, domain.SiteNameMarker):
			target = &cfg.SiteName
		default:
			continue
		}

		//nolint:gosec // Path is built from a directory listing
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, domain.ErrPlatformReadFailed.Error()), "file", name)
		}
		*target = decodeScalar(data)
	}

	return cfg, nil
}

// decodeScalar decodes a JSON string or number. Anything else decodes to "".
func decodeScalar(data []byte) string {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

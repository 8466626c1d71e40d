package filestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

type sessionFile struct {
	UserID json.RawMessage `json:"user_id"`
}

// SessionReader implements ports.SessionReader over the host CLI session file.
type SessionReader struct{}

// NewSessionReader creates a new SessionReader.
func NewSessionReader() *SessionReader {
	return &SessionReader{}
}

// UserID returns the id of the user logged in to the host CLI.
func (r *SessionReader) UserID(cacheDir string) (string, error) {
	path := domain.SessionPath(cacheDir)
	//nolint:gosec // Path is derived from the configured cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(domain.ErrSessionMissing, "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrSessionReadFailed.Error()), "path", path)
	}

	var session sessionFile
	if err := json.Unmarshal(data, &session); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSessionReadFailed.Error()), "path", path)
	}

	id := decodeScalar(session.UserID)
	if id == "" {
		return "", zerr.With(domain.ErrSessionMissing, "path", path)
	}
	return id, nil
}

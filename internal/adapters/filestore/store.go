// Package filestore implements the key/value cache shared with the host CLI.
//
// Every entry is a single file named after its key inside a cache directory.
// The host CLI and the Build Tools plugin read and write the same layout.
package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_@.\-]`)

// Store implements ports.CredentialStore using a file-per-key strategy.
type Store struct{}

// NewStore creates a new CredentialStore.
func NewStore() *Store {
	return &Store{}
}

// Get returns the value stored under key in dir.
func (s *Store) Get(dir, key string) (string, bool, error) {
	filename := s.getFilename(dir, key)
	//nolint:gosec // Path is constructed from the cache directory and a sanitized key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return string(data), true, nil
}

// Set stores value under key in dir, replacing any previous value.
func (s *Store) Set(dir, key, value string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	filename := s.getFilename(dir, key)
	if err := atomicWriteFile(filename, []byte(value)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

func (s *Store) getFilename(dir, key string) string {
	return filepath.Join(filepath.Clean(dir), cleanKey(key))
}

// cleanKey maps a key to the file name the host CLI uses for it.
func cleanKey(key string) string {
	return unsafeKeyChars.ReplaceAllString(key, "-")
}

// atomicWriteFile writes data to a temp file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.PrivateFilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

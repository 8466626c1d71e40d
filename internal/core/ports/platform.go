package ports

import "go.trai.ch/diffy/internal/core/domain"

// PlatformConfigLoader defines the lookup of the values cached by the Build Tools plugin.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformConfigLoader interface {
	// Load reads the prerequisite configuration from the build tools cache directory.
	// Absent values are left empty; only I/O failures are reported as errors.
	Load(dir string) (domain.PlatformConfig, error)
}

// SessionReader defines the lookup of the logged in host CLI user.
type SessionReader interface {
	// UserID returns the id of the user whose session is cached in cacheDir.
	UserID(cacheDir string) (string, error)
}

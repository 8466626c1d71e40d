package ports

// CredentialStore defines the key/value cache shared with the host CLI.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CredentialStore interface {
	// Get returns the value stored under key in dir.
	// found is false when no entry exists.
	Get(dir, key string) (value string, found bool, err error)

	// Set stores value under key in dir, replacing any previous value.
	Set(dir, key, value string) error
}

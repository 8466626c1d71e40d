package ports

import (
	"context"

	"go.trai.ch/diffy/internal/core/domain"
)

// GitHubClient defines the GitHub API calls.
//
//go:generate go run go.uber.org/mock/mockgen -source=ci.go -destination=mocks/mock_ci.go -package=mocks
type GitHubClient interface {
	// CurrentLogin returns the login of the user owning token.
	CurrentLogin(ctx context.Context, token string) (string, error)
}

// CircleCIClient defines the CircleCI API calls.
type CircleCIClient interface {
	// SetEnvVar creates or replaces an environment variable on the target project.
	SetEnvVar(ctx context.Context, token string, target domain.EnvVarTarget, v domain.EnvVar) error
}

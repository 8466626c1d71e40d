// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/diffy/internal/core/domain"
)

// DiffyClient defines the calls made to the Diffy API.
//
// Rejections are reported as domain.ErrKeyRejected and domain.ErrProjectNotFound.
// Every other failure is a transport failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=diffy.go -destination=mocks/mock_diffy.go -package=mocks
type DiffyClient interface {
	// ValidateKey exchanges an API key for a session token.
	ValidateKey(ctx context.Context, key string) (token string, err error)

	// ListProjects returns one page of the projects visible to the token owner.
	// A page past the end returns an empty list.
	ListProjects(ctx context.Context, token string, page domain.Page) ([]domain.Project, error)

	// GetProject returns a single project if it exists and is accessible.
	GetProject(ctx context.Context, token string, id domain.ProjectID) (*domain.Project, error)
}

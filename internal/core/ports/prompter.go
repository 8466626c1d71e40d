package ports

import (
	"context"

	"go.trai.ch/diffy/internal/core/domain"
)

// Prompter defines the interactive terminal the workflow talks to.
//
// Ask and AskSecret return domain.ErrPromptAborted when input ends or the
// user cancels.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// AskSecret reads one value without echoing it.
	AskSecret(ctx context.Context, title, description string) (string, error)

	// Ask reads one line of free-form input.
	Ask(ctx context.Context, title string) (string, error)

	// ShowProjects renders one page of projects.
	ShowProjects(page domain.Page, projects []domain.Project)

	// Note prints an informational line.
	Note(msg string)

	// Error prints a short error line.
	Error(msg string)

	// Success prints a success line.
	Success(msg string)

	// SetInteractive switches between terminal forms and plain line input.
	SetInteractive(enabled bool)
}

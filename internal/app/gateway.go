package app

import (
	"context"
	"errors"

	"go.trai.ch/diffy/internal/core/domain"
)

// Span names, one per outgoing API call.
const (
	spanValidateKey  = "diffy.validate_key"
	spanListProjects = "diffy.list_projects"
	spanGetProject   = "diffy.get_project"
	spanCurrentLogin = "github.current_login"
	spanSetEnvVar    = "circleci.set_env_var"
)

func (a *App) validateKey(ctx context.Context, key string) (string, error) {
	ctx, span := a.tracer.Start(ctx, spanValidateKey)
	defer span.End()

	token, err := a.diffy.ValidateKey(ctx, key)
	if err != nil {
		span.RecordError(err)
	}
	return token, err
}

// listProjects returns an empty page when the list cannot be fetched.
func (a *App) listProjects(ctx context.Context, token string, page domain.Page) []domain.Project {
	ctx, span := a.tracer.Start(ctx, spanListProjects)
	defer span.End()
	span.SetAttribute("page", int(page))

	projects, err := a.diffy.ListProjects(ctx, token, page)
	if err != nil {
		span.RecordError(err)
		a.logger.Warn("could not list projects: " + err.Error())
		return nil
	}
	span.SetAttribute("count", len(projects))
	return projects
}

// projectExists treats every failure as a missing project. Failures other
// than a rejection are logged.
func (a *App) projectExists(ctx context.Context, token string, id domain.ProjectID) bool {
	ctx, span := a.tracer.Start(ctx, spanGetProject)
	defer span.End()
	span.SetAttribute("project_id", id.String())

	project, err := a.diffy.GetProject(ctx, token, id)
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrProjectNotFound) {
			a.logger.Warn("could not fetch project " + id.String() + ": " + err.Error())
		}
		return false
	}
	return project != nil
}

func (a *App) currentLogin(ctx context.Context, token string) (string, error) {
	ctx, span := a.tracer.Start(ctx, spanCurrentLogin)
	defer span.End()

	login, err := a.github.CurrentLogin(ctx, token)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("login", login)
	return login, nil
}

func (a *App) setEnvVar(ctx context.Context, token string, target domain.EnvVarTarget, v domain.EnvVar) error {
	ctx, span := a.tracer.Start(ctx, spanSetEnvVar)
	defer span.End()
	span.SetAttribute("name", v.Name)
	span.SetAttribute("site", target.Site)

	err := a.circleci.SetEnvVar(ctx, token, target, v)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

package app

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	apiKeyTitle       = "Please generate a Diffy personal API key by visiting the page:"
	apiKeyDescription = "    https://app.diffy.website/#/keys\n\n" +
		"For more information, see:\n\n" +
		"    https://diffy.website/documentation/getting-started-apis."
	projectTitle = "Enter id of the project (N - Next page. P - Previous page)"

	msgInvalidCommand = "Invalid command entered"
)

// enterAPIKey asks for an API key until Diffy accepts one. The accepted key
// is cached under the user's key entry.
func (a *App) enterAPIKey(ctx context.Context, dir string, res domain.Resolution) (domain.Resolution, error) {
	for {
		input, err := a.prompter.AskSecret(ctx, apiKeyTitle, apiKeyDescription)
		if err != nil {
			return res, err
		}
		key := strings.TrimSpace(input)

		token, err := a.validateKey(ctx, key)
		if errors.Is(err, domain.ErrKeyRejected) {
			a.prompter.Error(domain.ErrKeyRejected.Error())
			continue
		}
		if err != nil {
			return res, err
		}

		res.APIKey = key
		res.Token = token
		if !res.HasAPIKey() {
			return res, zerr.With(domain.ErrResolutionIncomplete, "step", "api_key")
		}

		if err := a.store.Set(dir, domain.APIKeyCacheKey(res.UserID), key); err != nil {
			return res, err
		}
		return res, nil
	}
}

// selectProject browses the project list page by page until the user enters
// the id of a project that exists. The id is cached under the user's project
// entry.
func (a *App) selectProject(ctx context.Context, dir string, res domain.Resolution) (domain.Resolution, error) {
	var page domain.Page

	for {
		a.prompter.ShowProjects(page, a.listProjects(ctx, res.Token, page))

		input, err := a.prompter.Ask(ctx, projectTitle)
		if err != nil {
			return res, err
		}
		a.prompter.Note("Entered: " + input)

		id, ok := domain.ParseProjectID(input)
		if !ok {
			switch strings.ToUpper(strings.TrimSpace(input)) {
			case "N":
				page = page.Next()
			case "P":
				page = page.Prev()
			default:
				a.prompter.Error(msgInvalidCommand)
			}
			continue
		}

		if !a.projectExists(ctx, res.Token, id) {
			a.prompter.Error(domain.ErrProjectNotFound.Error())
			continue
		}

		if err := a.store.Set(dir, domain.ProjectIDCacheKey(res.UserID), id.String()); err != nil {
			return res, err
		}

		res.ProjectID = id
		return res, nil
	}
}

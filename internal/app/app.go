// Package app implements the application layer for diffy.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/diffy/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settings domain.Settings
	store    ports.CredentialStore
	platform ports.PlatformConfigLoader
	session  ports.SessionReader
	diffy    ports.DiffyClient
	github   ports.GitHubClient
	circleci ports.CircleCIClient
	prompter ports.Prompter
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	settings domain.Settings,
	store ports.CredentialStore,
	platform ports.PlatformConfigLoader,
	session ports.SessionReader,
	diffy ports.DiffyClient,
	github ports.GitHubClient,
	circleci ports.CircleCIClient,
	prompter ports.Prompter,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		settings: settings,
		store:    store,
		platform: platform,
		session:  session,
		diffy:    diffy,
		github:   github,
		circleci: circleci,
		prompter: prompter,
		tracer:   tracer,
		logger:   log,
	}
}

// Components holds the wired parts the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// CreateOptions configuration for the CreateProject method.
type CreateOptions struct {
	// CacheDir overrides the host CLI cache directory from the settings.
	CacheDir string
	// Verbose enables debug logging.
	Verbose bool
	// PromptMode is one of "auto", "interactive" or "line".
	PromptMode string
}

// CreateProject resolves a Diffy API key and project for the current site and
// stores both as CircleCI environment variables.
func (a *App) CreateProject(ctx context.Context, opts CreateOptions) error {
	if opts.Verbose {
		a.logger.SetVerbose(true)
	}

	cacheDir, err := a.cacheDir(opts.CacheDir)
	if err != nil {
		return err
	}

	// 1. Prerequisites cached by the Build Tools plugin
	buildTools := domain.BuildToolsPath(cacheDir)
	platform, err := a.platform.Load(buildTools)
	if err != nil {
		return err
	}
	if !platform.Ready() {
		return zerr.With(domain.ErrPrerequisiteMissing, "missing", platform.Missing())
	}
	a.logger.Debug("prerequisites found in " + buildTools)

	// 2. Host CLI user
	userID, err := a.session.UserID(cacheDir)
	if err != nil {
		return err
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.PromptMode)
	a.prompter.SetInteractive(mode == detector.ModeInteractive)

	// 3. Key and project
	res := domain.Resolution{UserID: userID}
	if res, err = a.enterAPIKey(ctx, buildTools, res); err != nil {
		return err
	}
	if res, err = a.selectProject(ctx, buildTools, res); err != nil {
		return err
	}
	if !res.Resolved() {
		return domain.ErrResolutionIncomplete
	}

	// 4. CircleCI
	login, err := a.currentLogin(ctx, platform.GitHubToken)
	if err != nil {
		return err
	}
	target := domain.EnvVarTarget{Login: login, Site: platform.SiteName}
	if err := a.pushEnvVars(ctx, platform.CircleToken, target, res.EnvVars()); err != nil {
		return err
	}

	a.prompter.Success(fmt.Sprintf("Variables set for site %s", platform.SiteName))
	return nil
}

func (a *App) cacheDir(override string) (string, error) {
	if override == "" {
		return a.settings.CacheDir, nil
	}
	return config.ExpandHome(override)
}

// pushEnvVars sets vars in order. No rollback is attempted when a later
// variable fails.
func (a *App) pushEnvVars(ctx context.Context, token string, target domain.EnvVarTarget, vars []domain.EnvVar) error {
	pushed := make([]string, 0, len(vars))
	for _, v := range vars {
		if err := a.setEnvVar(ctx, token, target, v); err != nil {
			if len(pushed) == 0 {
				return err
			}
			partial := zerr.With(zerr.Wrap(err, domain.ErrPartialPush.Error()), "pushed", pushed)
			return zerr.With(partial, "failed", v.Name)
		}
		pushed = append(pushed, v.Name)
	}
	return nil
}

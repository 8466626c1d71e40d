package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffy/internal/adapters/circleci"  //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/diffy"     //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/filestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/github"    //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			filestore.StoreNodeID,
			filestore.PlatformNodeID,
			filestore.SessionNodeID,
			diffy.NodeID,
			github.NodeID,
			circleci.NodeID,
			prompt.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CredentialStore](ctx)
	if err != nil {
		return nil, err
	}

	platform, err := graft.Dep[ports.PlatformConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	session, err := graft.Dep[ports.SessionReader](ctx)
	if err != nil {
		return nil, err
	}

	diffyClient, err := graft.Dep[ports.DiffyClient](ctx)
	if err != nil {
		return nil, err
	}

	githubClient, err := graft.Dep[ports.GitHubClient](ctx)
	if err != nil {
		return nil, err
	}

	circleClient, err := graft.Dep[ports.CircleCIClient](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, store, platform, session, diffyClient, githubClient, circleClient, prompter, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}

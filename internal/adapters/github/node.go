package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffy/internal/adapters/config"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/core/ports"
)

// NodeID is the unique identifier for the GitHub client Graft node.
const NodeID graft.ID = "adapter.github"

func init() {
	graft.Register(graft.Node[ports.GitHubClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.GitHubClient, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings), nil
		},
	})
}

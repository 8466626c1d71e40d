package circleci

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffy/internal/adapters/config"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/core/ports"
)

// NodeID is the unique identifier for the CircleCI client Graft node.
const NodeID graft.ID = "adapter.circleci"

func init() {
	graft.Register(graft.Node[ports.CircleCIClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.CircleCIClient, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings), nil
		},
	})
}

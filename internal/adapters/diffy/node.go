package diffy

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffy/internal/adapters/config"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/diffy/internal/core/ports"
)

// NodeID is the unique identifier for the Diffy client Graft node.
const NodeID graft.ID = "adapter.diffy"

func init() {
	graft.Register(graft.Node[ports.DiffyClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.DiffyClient, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(settings), nil
		},
	})
}

package prompt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffy/internal/core/ports"
)

// NodeID is the unique identifier for the prompter Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Prompter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prompter, error) {
			return New(nil, nil), nil
		},
	})
}

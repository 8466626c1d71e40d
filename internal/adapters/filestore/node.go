package filestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/diffy/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the credential store Graft node.
	StoreNodeID graft.ID = "adapter.credential_store"
	// PlatformNodeID is the unique identifier for the platform config loader Graft node.
	PlatformNodeID graft.ID = "adapter.platform_config"
	// SessionNodeID is the unique identifier for the session reader Graft node.
	SessionNodeID graft.ID = "adapter.session"
)

func init() {
	graft.Register(graft.Node[ports.CredentialStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CredentialStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.PlatformConfigLoader]{
		ID:        PlatformNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformConfigLoader, error) {
			return NewPlatformLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.SessionReader]{
		ID:        SessionNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SessionReader, error) {
			return NewSessionReader(), nil
		},
	})
}

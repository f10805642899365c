package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the graft identifier for the loaded configuration.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Config, error) {
			return NewLoader().Load(".")
		},
	})
}

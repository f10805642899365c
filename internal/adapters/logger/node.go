package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
)

// NodeID is the graft identifier for the logger adapter.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}

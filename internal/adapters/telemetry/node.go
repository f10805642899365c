package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	progrockadapter "github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry/progrock"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
)

// NodeID is the graft identifier for the telemetry adapter.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			// Progress rendering is opt-in; scripts get silence.
			if os.Getenv("STEAMCTL_PROGRESS") != "" {
				return progrockadapter.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}

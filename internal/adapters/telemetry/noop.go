// Package telemetry provides Telemetry implementations for call-result
// progress reporting.
package telemetry

import (
	"context"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record creates a new no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Done does nothing.
func (v *NoOpVertex) Done(_ error) {}

// Write does nothing and returns the length of p.
func (v *NoOpVertex) Write(p []byte) (n int, err error) {
	return len(p), nil
}

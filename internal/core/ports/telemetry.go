package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress for operations that wait on the Steam servers,
// such as pending call results and stats synchronization.
type Telemetry interface {
	// Record starts a new vertex for the named operation.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one in-flight operation.
type Vertex interface {
	io.Writer
	// Done completes the vertex; a non-nil error marks it failed.
	Done(err error)
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Placeholder to support the option pattern.
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

type vertexCtxKey struct{}

// ContextWithVertex attaches a vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext returns the vertex attached to ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexCtxKey{}).(Vertex)
	return v, ok
}

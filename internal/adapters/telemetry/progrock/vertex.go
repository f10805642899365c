package progrock

import (
	"github.com/vito/progrock"
)

// Vertex wraps a progrock vertex recorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Done completes the vertex; a non-nil error marks it as failed.
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}

// Write appends log output to the vertex.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

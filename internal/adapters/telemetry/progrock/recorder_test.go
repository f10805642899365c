package progrock_test

import (
	"context"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry/progrock"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Telemetry = (*progrock.Recorder)(nil)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecordVertex(t *testing.T) {
	recorder := progrock.New()

	ctx, vtx := recorder.Record(context.Background(), "steam: sync user stats")
	require.NotNil(t, vtx)

	attached, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, vtx, attached)

	_, err := vtx.Write([]byte("waiting for UserStatsReceived"))
	assert.NoError(t, err)

	vtx.Done(nil)
	assert.NoError(t, recorder.Close())
}

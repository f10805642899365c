package telemetry_test

import (
	"context"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Telemetry = (*telemetry.NoOp)(nil)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, vtx := tel.Record(context.Background(), "call-result 1110")
	require.NotNil(t, ctx)
	require.NotNil(t, vtx)

	n, err := vtx.Write([]byte("progress"))
	assert.NoError(t, err)
	assert.Equal(t, len("progress"), n)

	vtx.Done(nil)
	assert.NoError(t, tel.Close())
}

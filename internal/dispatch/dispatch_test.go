package dispatch

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	frames  int
	queue   []ports.Msg
	results map[uint64]fakeResult
}

type fakeResult struct {
	data   []byte
	failed bool
}

func (f *fakeAPI) RunFrame() { f.frames++ }

func (f *fakeAPI) Next() (ports.Msg, bool) {
	if len(f.queue) == 0 {
		return ports.Msg{}, false
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, true
}

func (f *fakeAPI) CallResult(call uint64, _ int32, _ int) ([]byte, bool, bool) {
	r, ok := f.results[call]
	if !ok {
		return nil, false, false
	}
	return r.data, r.failed, true
}

func (f *fakeAPI) push(id int32, data []byte) {
	f.queue = append(f.queue, ports.Msg{ID: id, Data: data})
}

func (f *fakeAPI) completed(call uint64) []byte {
	rec := make([]byte, completedSize)
	binary.LittleEndian.PutUint64(rec[0:], call)
	return rec
}

func newTestDispatcher(api ports.Dispatch) *Dispatcher {
	return New(api, logger.New(), telemetry.NewNoOp())
}

func TestRunFramePumpsOnce(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	d.RunFrame()
	d.RunFrame()
	assert.Equal(t, 2, api.frames)
}

func TestRegisterAndRoute(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	var got [][]byte
	d.Register(1101, func(data []byte) { got = append(got, data) })

	api.push(1101, []byte{1})
	api.push(999, []byte{2})
	api.push(1101, []byte{3})
	d.RunFrame()

	require.Len(t, got, 2)
	assert.Equal(t, []byte{1}, got[0])
	assert.Equal(t, []byte{3}, got[1])
}

func TestUnregister(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	calls := 0
	reg := d.Register(1101, func([]byte) { calls++ })

	api.push(1101, nil)
	d.RunFrame()
	assert.Equal(t, 1, calls)

	reg.Unregister()
	reg.Unregister() // idempotent

	api.push(1101, nil)
	d.RunFrame()
	assert.Equal(t, 1, calls)
}

func TestMultipleHandlersSameID(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	a, b := 0, 0
	d.Register(331, func([]byte) { a++ })
	d.Register(331, func([]byte) { b++ })

	api.push(331, nil)
	d.RunFrame()
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestCallResultResolution(t *testing.T) {
	api := &fakeAPI{results: map[uint64]fakeResult{
		7: {data: []byte{0xAA, 0xBB}},
	}}
	d := newTestDispatcher(api)

	var gotData []byte
	gotFailed := true
	d.RegisterCallResult(context.Background(), 7, 1110, 2, func(data []byte, failed bool) {
		gotData = data
		gotFailed = failed
	})
	assert.Equal(t, 1, d.PendingCalls())

	api.push(completedID, api.completed(7))
	d.RunFrame()

	assert.Equal(t, []byte{0xAA, 0xBB}, gotData)
	assert.False(t, gotFailed)
	assert.Equal(t, 0, d.PendingCalls())
}

func TestCallResultFailed(t *testing.T) {
	api := &fakeAPI{results: map[uint64]fakeResult{
		7: {failed: true},
	}}
	d := newTestDispatcher(api)

	fired := false
	d.RegisterCallResult(context.Background(), 7, 1110, 0, func(_ []byte, failed bool) {
		fired = true
		assert.True(t, failed)
	})

	api.push(completedID, api.completed(7))
	d.RunFrame()
	assert.True(t, fired)
}

func TestCallResultVanished(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	fired := false
	d.RegisterCallResult(context.Background(), 7, 1110, 0, func(_ []byte, failed bool) {
		fired = true
		assert.True(t, failed)
	})

	// Completion record arrives but the result cannot be fetched anymore.
	api.push(completedID, api.completed(7))
	d.RunFrame()
	assert.True(t, fired)
}

func TestUnknownCallIgnored(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	api.push(completedID, api.completed(42))
	d.RunFrame()
	assert.Equal(t, 0, d.PendingCalls())
}

func TestShortCompletedPayloadDropped(t *testing.T) {
	api := &fakeAPI{}
	d := newTestDispatcher(api)

	api.push(completedID, []byte{1, 2, 3})
	d.RunFrame()
}

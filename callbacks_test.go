package steamworks

import (
	"encoding/binary"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/steamachievementnotifier/steamworks-go/internal/dispatch"
	"github.com/steamachievementnotifier/steamworks-go/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaStateChangeDecode(t *testing.T) {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint64(data[0:], uint64(knownSteamID))
	binary.LittleEndian.PutUint32(data[8:], uint32(PersonaChangeName|PersonaChangeAvatar))

	var cb PersonaStateChange
	require.NoError(t, cb.decode(data))
	assert.Equal(t, knownSteamID, cb.SteamID)
	assert.True(t, cb.Change.Has(PersonaChangeAvatar))

	assert.ErrorIs(t, cb.decode(data[:8]), errShortPayload)
}

func TestGameOverlayActivatedDecode(t *testing.T) {
	var cb GameOverlayActivated
	require.NoError(t, cb.decode([]byte{1}))
	assert.True(t, cb.Active)

	require.NoError(t, cb.decode([]byte{0}))
	assert.False(t, cb.Active)

	assert.ErrorIs(t, cb.decode(nil), errShortPayload)
}

func TestUserStatsReceivedDecode(t *testing.T) {
	layouts := map[string]sys.CallbackLayout{
		"pack4": sys.LayoutPack4,
		"pack8": sys.LayoutPack8,
	}
	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			data := make([]byte, layout.UserStatsReceivedSize)
			binary.LittleEndian.PutUint64(data[0:], 480)
			binary.LittleEndian.PutUint32(data[8:], uint32(ResultOK))
			binary.LittleEndian.PutUint64(data[layout.UserStatsReceivedUserOffset:], uint64(knownSteamID))

			var cb UserStatsReceived
			require.NoError(t, cb.decodeLayout(data, layout))
			assert.Equal(t, AppId(480), cb.GameID.AppId())
			assert.Equal(t, ResultOK, cb.Result)
			assert.Equal(t, knownSteamID, cb.SteamID)

			assert.ErrorIs(t, cb.decodeLayout(data[:12], layout), errShortPayload)
		})
	}
}

func TestUserStatsReceivedDecodeUsesPlatformLayout(t *testing.T) {
	data := make([]byte, sys.Layout.UserStatsReceivedSize)
	binary.LittleEndian.PutUint64(data[0:], 480)
	binary.LittleEndian.PutUint64(data[sys.Layout.UserStatsReceivedUserOffset:], uint64(knownSteamID))

	var cb UserStatsReceived
	require.NoError(t, cb.decode(data))
	assert.Equal(t, knownSteamID, cb.SteamID)
}

func TestUserStatsStoredDecode(t *testing.T) {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint64(data[0:], 480)
	binary.LittleEndian.PutUint32(data[8:], uint32(ResultFail))

	var cb UserStatsStored
	require.NoError(t, cb.decode(data))
	assert.Equal(t, ResultFail, cb.Result)
	assert.Error(t, cb.Result.Err())
}

func TestUserAchievementStoredDecode(t *testing.T) {
	data := make([]byte, 148)
	binary.LittleEndian.PutUint64(data[0:], 480)
	data[8] = 0
	copy(data[9:], "ACH_WIN_ONE_GAME\x00")
	binary.LittleEndian.PutUint32(data[140:], 0)
	binary.LittleEndian.PutUint32(data[144:], 0)

	var cb UserAchievementStored
	require.NoError(t, cb.decode(data))
	assert.Equal(t, "ACH_WIN_ONE_GAME", cb.AchievementName)
	assert.False(t, cb.GroupAchievement)
	assert.Zero(t, cb.MaxProgress)

	assert.ErrorIs(t, cb.decode(data[:100]), errShortPayload)
}

func TestCstring(t *testing.T) {
	assert.Equal(t, "abc", cstring([]byte{'a', 'b', 'c', 0, 'x'}))
	assert.Equal(t, "abc", cstring([]byte("abc")))
	assert.Equal(t, "", cstring([]byte{0}))
}

// fakePump is an in-memory callback queue standing in for the native pump.
type fakePump struct {
	queue   []ports.Msg
	results map[uint64]fakeResult
}

type fakeResult struct {
	data   []byte
	failed bool
}

func (p *fakePump) RunFrame() {}

func (p *fakePump) Next() (ports.Msg, bool) {
	if len(p.queue) == 0 {
		return ports.Msg{}, false
	}
	msg := p.queue[0]
	p.queue = p.queue[1:]
	return msg, true
}

func (p *fakePump) CallResult(call uint64, _ int32, _ int) ([]byte, bool, bool) {
	r, ok := p.results[call]
	if !ok {
		return nil, false, false
	}
	return r.data, r.failed, true
}

func (p *fakePump) push(id int32, data []byte) {
	p.queue = append(p.queue, ports.Msg{ID: id, Data: data})
}

// complete queues a SteamAPICallCompleted record and the matching result.
func (p *fakePump) complete(call uint64, id int32, data []byte, failed bool) {
	if p.results == nil {
		p.results = make(map[uint64]fakeResult)
	}
	p.results[call] = fakeResult{data: data, failed: failed}

	rec := make([]byte, 16)
	binary.LittleEndian.PutUint64(rec[0:], call)
	binary.LittleEndian.PutUint32(rec[8:], uint32(id))
	binary.LittleEndian.PutUint32(rec[12:], uint32(len(data)))
	p.push(703, rec)
}

func newTestClient(pump ports.Dispatch) *Client {
	log := logger.New()
	return &Client{
		log:  log,
		disp: dispatch.New(pump, log, telemetry.NewNoOp()),
	}
}

func TestRegisterCallbackRouting(t *testing.T) {
	pump := &fakePump{}
	c := newTestClient(pump)

	var got []GameOverlayActivated
	reg := RegisterCallback(c, func(cb GameOverlayActivated) {
		got = append(got, cb)
	})

	pump.push(callbackIDGameOverlayActivated, []byte{1})
	pump.push(callbackIDSteamShutdown, nil)
	pump.push(callbackIDGameOverlayActivated, []byte{0})
	c.RunCallbacks()

	require.Len(t, got, 2)
	assert.True(t, got[0].Active)
	assert.False(t, got[1].Active)

	reg.Unregister()
	pump.push(callbackIDGameOverlayActivated, []byte{1})
	c.RunCallbacks()
	assert.Len(t, got, 2)
}

func TestRegisterCallbackBadPayloadDropped(t *testing.T) {
	pump := &fakePump{}
	c := newTestClient(pump)

	fired := false
	RegisterCallback(c, func(PersonaStateChange) { fired = true })

	pump.push(callbackIDPersonaStateChange, []byte{1, 2, 3})
	c.RunCallbacks()
	assert.False(t, fired)
}

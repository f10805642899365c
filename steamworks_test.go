package steamworks

import (
	"os"
	"sync"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// The SDK slot is process-global; tests that claim it must not overlap.
var steamMu sync.Mutex

func acquireSteam(t *testing.T) {
	t.Helper()
	steamMu.Lock()
	t.Cleanup(steamMu.Unlock)
}

func newMockAPI(t *testing.T) *mocks.MockSteamAPI {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSteamAPI(ctrl)
	api.EXPECT().Dispatch().Return(&fakePump{}).AnyTimes()
	api.EXPECT().Friends().Return(mocks.NewMockFriends(ctrl)).AnyTimes()
	api.EXPECT().User().Return(mocks.NewMockUser(ctrl)).AnyTimes()
	api.EXPECT().UserStats().Return(mocks.NewMockUserStats(ctrl)).AnyTimes()
	api.EXPECT().Utils().Return(mocks.NewMockUtils(ctrl)).AnyTimes()
	return api
}

func initTestClient(t *testing.T, api *mocks.MockSteamAPI, appID AppId) (*Client, error) {
	t.Helper()
	return initClient(api, logger.New(), telemetry.NewNoOp(), appID)
}

func TestInitAndShutdown(t *testing.T) {
	acquireSteam(t)

	api := newMockAPI(t)
	api.EXPECT().Init().Return(nil)
	api.EXPECT().Shutdown()

	c, err := initTestClient(t, api, 480)
	require.NoError(t, err)
	require.NotNil(t, c.Friends())
	require.NotNil(t, c.User())
	require.NotNil(t, c.UserStats())
	require.NotNil(t, c.Utils())

	c.Shutdown()
}

func TestInitSetsAppIDEnv(t *testing.T) {
	acquireSteam(t)
	t.Setenv("SteamAppId", "")
	t.Setenv("SteamGameId", "")

	api := newMockAPI(t)
	api.EXPECT().Init().Return(nil)
	api.EXPECT().Shutdown()

	c, err := initTestClient(t, api, 480)
	require.NoError(t, err)
	defer c.Shutdown()

	assert.Equal(t, "480", os.Getenv("SteamAppId"))
	assert.Equal(t, "480", os.Getenv("SteamGameId"))
}

func TestInitTwiceFails(t *testing.T) {
	acquireSteam(t)

	api := newMockAPI(t)
	api.EXPECT().Init().Return(nil)
	api.EXPECT().Shutdown()

	c, err := initTestClient(t, api, 480)
	require.NoError(t, err)
	defer c.Shutdown()

	_, err = initTestClient(t, newMockAPI(t), 480)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInitNativeFailure(t *testing.T) {
	acquireSteam(t)

	api := newMockAPI(t)
	api.EXPECT().Init().Return(zerr.New("SteamAPI_Init returned false"))

	_, err := initTestClient(t, api, 480)
	assert.ErrorIs(t, err, ErrSteamNotRunning)
}

func TestShutdownReleasesSlot(t *testing.T) {
	acquireSteam(t)

	api := newMockAPI(t)
	api.EXPECT().Init().Return(nil).Times(2)
	api.EXPECT().Shutdown().Times(2)

	c, err := initTestClient(t, api, 480)
	require.NoError(t, err)
	c.Shutdown()

	// A stale handle must not release the slot of a newer client.
	c2, err := initTestClient(t, api, 480)
	require.NoError(t, err)
	c.Shutdown()
	c2.Shutdown()
}

func TestRunCallbacksPumpsDispatcher(t *testing.T) {
	acquireSteam(t)

	ctrl := gomock.NewController(t)
	pump := &fakePump{}
	api := mocks.NewMockSteamAPI(ctrl)
	api.EXPECT().Dispatch().Return(pump)
	api.EXPECT().Friends().Return(mocks.NewMockFriends(ctrl))
	api.EXPECT().User().Return(mocks.NewMockUser(ctrl))
	api.EXPECT().UserStats().Return(mocks.NewMockUserStats(ctrl))
	api.EXPECT().Utils().Return(mocks.NewMockUtils(ctrl)).Times(2)
	api.EXPECT().Init().Return(nil)
	api.EXPECT().Shutdown()

	c, err := initTestClient(t, api, 480)
	require.NoError(t, err)
	defer c.Shutdown()

	fired := false
	RegisterCallback(c, func(SteamShutdown) { fired = true })

	pump.push(callbackIDSteamShutdown, nil)
	c.RunCallbacks()
	assert.True(t, fired)
}

package steamworks

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports/mocks"
	"github.com/steamachievementnotifier/steamworks-go/internal/dispatch"
	"github.com/steamachievementnotifier/steamworks-go/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserStatsForTest(t *testing.T) (*UserStats, *mocks.MockUserStats, *fakePump) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUserStats(ctrl)
	pump := &fakePump{}
	disp := dispatch.New(pump, logger.New(), telemetry.NewNoOp())
	return newUserStats(api, disp), api, pump
}

func TestRequestCurrentStats(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)

	api.EXPECT().RequestCurrentStats().Return(true)
	s.RequestCurrentStats()
}

func TestStoreStats(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)

	api.EXPECT().StoreStats().Return(true)
	assert.NoError(t, s.StoreStats())

	api.EXPECT().StoreStats().Return(false)
	assert.ErrorIs(t, s.StoreStats(), ErrCallFailed)
}

func TestResetAllStats(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)

	api.EXPECT().ResetAllStats(true).Return(true)
	assert.NoError(t, s.ResetAllStats(true))

	api.EXPECT().ResetAllStats(false).Return(false)
	assert.ErrorIs(t, s.ResetAllStats(false), ErrCallFailed)
}

func TestStats(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)

	api.EXPECT().StatInt32("games_played").Return(int32(12), true)
	v, err := s.GetStatInt("games_played")
	require.NoError(t, err)
	assert.Equal(t, int32(12), v)

	api.EXPECT().StatInt32("missing").Return(int32(0), false)
	_, err = s.GetStatInt("missing")
	assert.ErrorIs(t, err, ErrCallFailed)

	api.EXPECT().SetStatInt32("games_played", int32(13)).Return(true)
	assert.NoError(t, s.SetStatInt("games_played", 13))

	api.EXPECT().StatFloat("accuracy").Return(float32(0.5), true)
	f, err := s.GetStatFloat("accuracy")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)

	api.EXPECT().SetStatFloat("accuracy", float32(0.75)).Return(false)
	assert.ErrorIs(t, s.SetStatFloat("accuracy", 0.75), ErrCallFailed)
}

func TestNumAchievements(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)

	api.EXPECT().NumAchievements().Return(uint32(3))
	n, err := s.NumAchievements()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), n)

	// Spacewar and apps without achievement support report zero.
	api.EXPECT().NumAchievements().Return(uint32(0))
	_, err = s.NumAchievements()
	assert.Error(t, err)
}

func TestAchievementNames(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)

	api.EXPECT().NumAchievements().Return(uint32(2))
	api.EXPECT().AchievementName(uint32(0)).Return("ACH_ONE")
	api.EXPECT().AchievementName(uint32(1)).Return("ACH_TWO")

	names, err := s.AchievementNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"ACH_ONE", "ACH_TWO"}, names)
}

func TestAchievementGetSetClear(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)
	ach := s.Achievement("ACH_ONE")
	assert.Equal(t, "ACH_ONE", ach.Name())

	api.EXPECT().Achievement("ACH_ONE").Return(true, true)
	achieved, err := ach.Get()
	require.NoError(t, err)
	assert.True(t, achieved)

	api.EXPECT().Achievement("ACH_ONE").Return(false, false)
	_, err = ach.Get()
	assert.ErrorIs(t, err, ErrCallFailed)

	api.EXPECT().SetAchievement("ACH_ONE").Return(true)
	assert.NoError(t, ach.Set())

	api.EXPECT().ClearAchievement("ACH_ONE").Return(false)
	assert.ErrorIs(t, ach.Clear(), ErrCallFailed)
}

func TestAchievementState(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)
	ach := s.Achievement("ACH_ONE")

	api.EXPECT().AchievementAndUnlockTime("ACH_ONE").Return(true, uint32(1700000000), true)
	achieved, unlockTime, err := ach.State()
	require.NoError(t, err)
	assert.True(t, achieved)
	assert.Equal(t, time.Unix(1700000000, 0), unlockTime)

	api.EXPECT().AchievementAndUnlockTime("ACH_ONE").Return(false, uint32(0), true)
	achieved, unlockTime, err = ach.State()
	require.NoError(t, err)
	assert.False(t, achieved)
	assert.True(t, unlockTime.IsZero())
}

func TestAchievementDisplayAttributes(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)
	ach := s.Achievement("ACH_ONE")

	api.EXPECT().AchievementDisplayAttribute("ACH_ONE", "name").Return("Winner")
	name, err := ach.DisplayName()
	require.NoError(t, err)
	assert.Equal(t, "Winner", name)

	api.EXPECT().AchievementDisplayAttribute("ACH_ONE", "desc").Return("Win one game.")
	desc, err := ach.Description()
	require.NoError(t, err)
	assert.Equal(t, "Win one game.", desc)

	api.EXPECT().AchievementDisplayAttribute("ACH_ONE", "hidden").Return("1")
	hidden, err := ach.Hidden()
	require.NoError(t, err)
	assert.True(t, hidden)

	api.EXPECT().AchievementDisplayAttribute("ACH_ONE", "name").Return("")
	_, err = ach.DisplayName()
	assert.ErrorIs(t, err, ErrCallFailed)
}

func TestAchievementGlobalPercent(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)
	ach := s.Achievement("ACH_ONE")

	api.EXPECT().AchievementAchievedPercent("ACH_ONE").Return(float32(12.5), true)
	pct, err := ach.GlobalAchievedPercent()
	require.NoError(t, err)
	assert.Equal(t, float32(12.5), pct)
}

func TestAchievementIconHandle(t *testing.T) {
	s, api, _ := newUserStatsForTest(t)
	ach := s.Achievement("ACH_ONE")

	api.EXPECT().AchievementIcon("ACH_ONE").Return(int32(0))
	_, ok := ach.IconHandle()
	assert.False(t, ok)

	api.EXPECT().AchievementIcon("ACH_ONE").Return(int32(5))
	h, ok := ach.IconHandle()
	assert.True(t, ok)
	assert.Equal(t, int32(5), h)
}

func TestRequestGlobalAchievementPercentages(t *testing.T) {
	s, api, pump := newUserStatsForTest(t)

	api.EXPECT().RequestGlobalAchievementPercentages().Return(uint64(99))

	var gotGame GameId
	var gotErr error
	fired := false
	s.RequestGlobalAchievementPercentages(func(g GameId, err error) {
		fired = true
		gotGame = g
		gotErr = err
	})

	payload := make([]byte, sys.Layout.GlobalAchievementPercentagesReadySize)
	binary.LittleEndian.PutUint64(payload[0:], 480)
	binary.LittleEndian.PutUint32(payload[8:], uint32(ResultOK))
	pump.complete(99, callbackIDGlobalAchievementPercentagesReady, payload, false)

	s.disp.RunFrame()
	require.True(t, fired)
	assert.NoError(t, gotErr)
	assert.Equal(t, AppId(480), gotGame.AppId())
}

func TestRequestGlobalAchievementPercentagesFailed(t *testing.T) {
	s, api, pump := newUserStatsForTest(t)

	api.EXPECT().RequestGlobalAchievementPercentages().Return(uint64(100))

	var gotErr error
	s.RequestGlobalAchievementPercentages(func(_ GameId, err error) {
		gotErr = err
	})

	pump.complete(100, callbackIDGlobalAchievementPercentagesReady, nil, true)
	s.disp.RunFrame()
	assert.ErrorIs(t, gotErr, ErrIOFailure)
}

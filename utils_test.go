package steamworks

import (
	"testing"
	"time"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUtilsForTest(t *testing.T) (*Utils, *mocks.MockUtils) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUtils(ctrl)
	return &Utils{api: api}, api
}

func TestUtilsBasics(t *testing.T) {
	u, api := newUtilsForTest(t)

	api.EXPECT().AppID().Return(uint32(480))
	assert.Equal(t, AppId(480), u.AppID())

	api.EXPECT().IPCountry().Return("CH")
	assert.Equal(t, "CH", u.IPCountry())

	api.EXPECT().UILanguage().Return("english")
	assert.Equal(t, "english", u.UILanguage())

	api.EXPECT().OnSteamDeck().Return(false)
	assert.False(t, u.IsSteamRunningOnSteamDeck())
}

func TestUtilsServerRealTime(t *testing.T) {
	u, api := newUtilsForTest(t)

	api.EXPECT().ServerRealTime().Return(uint32(1700000000))
	assert.Equal(t, time.Unix(1700000000, 0), u.ServerRealTime())
}

func TestUtilsImageSize(t *testing.T) {
	u, api := newUtilsForTest(t)

	_, _, ok := u.ImageSize(0)
	assert.False(t, ok)

	api.EXPECT().ImageSize(int32(3)).Return(uint32(64), uint32(64), true)
	w, h, ok := u.ImageSize(3)
	assert.True(t, ok)
	assert.Equal(t, uint32(64), w)
	assert.Equal(t, uint32(64), h)
}

func TestUtilsImageRGBA(t *testing.T) {
	u, api := newUtilsForTest(t)

	api.EXPECT().ImageSize(int32(3)).Return(uint32(2), uint32(2), true)
	api.EXPECT().ImageRGBA(int32(3), gomock.Any()).DoAndReturn(func(_ int32, dest []byte) bool {
		for i := range dest {
			dest[i] = 0xFF
		}
		return true
	})

	rgba, ok := u.ImageRGBA(3)
	require.True(t, ok)
	assert.Len(t, rgba, 2*2*4)
	assert.Equal(t, byte(0xFF), rgba[0])
}

func TestUtilsImageRGBAFetchFailed(t *testing.T) {
	u, api := newUtilsForTest(t)

	api.EXPECT().ImageSize(int32(3)).Return(uint32(2), uint32(2), true)
	api.EXPECT().ImageRGBA(int32(3), gomock.Any()).Return(false)

	_, ok := u.ImageRGBA(3)
	assert.False(t, ok)
}

func TestUtilsSetWarningCallback(t *testing.T) {
	u, api := newUtilsForTest(t)

	api.EXPECT().SetWarningHook(gomock.Any())
	u.SetWarningCallback(func(int32, string) {})
}

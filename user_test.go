package steamworks

import (
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUser(ctrl)
	u := &User{api: api}

	api.EXPECT().SteamID().Return(uint64(knownSteamID))
	assert.Equal(t, knownSteamID, u.SteamID())

	api.EXPECT().PlayerSteamLevel().Return(int32(42))
	assert.Equal(t, uint32(42), u.Level())

	api.EXPECT().LoggedOn().Return(true)
	assert.True(t, u.LoggedOn())
}

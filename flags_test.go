package steamworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendFlagsHas(t *testing.T) {
	f := FriendFlagImmediate | FriendFlagClanMember

	assert.True(t, f.Has(FriendFlagImmediate))
	assert.True(t, f.Has(FriendFlagClanMember))
	assert.False(t, f.Has(FriendFlagBlocked))
	assert.True(t, FriendFlagAll.Has(FriendFlagChatMember))
}

func TestFriendFlagsSet(t *testing.T) {
	f := FriendFlagNone.Set(FriendFlagImmediate).Set(FriendFlagClanMember)

	assert.True(t, f.Has(FriendFlagImmediate))
	assert.True(t, f.Has(FriendFlagClanMember))
	assert.Equal(t, f, f.Set(FriendFlagImmediate))
}

func TestFriendFlagsString(t *testing.T) {
	assert.Equal(t, "None", FriendFlagNone.String())
	assert.Equal(t, "All", FriendFlagAll.String())
	assert.Equal(t, "Immediate", FriendFlagImmediate.String())
	assert.Equal(t, "Blocked|ClanMember", (FriendFlagBlocked | FriendFlagClanMember).String())
}

func TestPersonaStateString(t *testing.T) {
	assert.Equal(t, "Offline", PersonaStateOffline.String())
	assert.Equal(t, "LookingToPlay", PersonaStateLookingToPlay.String())
	assert.Equal(t, "Unknown", PersonaState(99).String())
}

func TestPersonaChangeHas(t *testing.T) {
	c := PersonaChangeName | PersonaChangeAvatar

	assert.True(t, c.Has(PersonaChangeAvatar))
	assert.False(t, c.Has(PersonaChangeNickname))
}

package steamworks

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
)

// Avatar edge lengths in pixels, fixed by the SDK.
const (
	smallAvatarSize  = 32
	mediumAvatarSize = 64
	largeAvatarSize  = 184
)

// Friends is the interface to the current user's friends list, rich
// presence and the Steam overlay.
type Friends struct {
	api   ports.Friends
	utils ports.Utils
	log   ports.Logger

	mu      sync.Mutex
	avatars map[int32]avatarEntry
}

type avatarEntry struct {
	hash uint64
	rgba []byte
}

func newFriends(api ports.Friends, utils ports.Utils, log ports.Logger) *Friends {
	return &Friends{
		api:     api,
		utils:   utils,
		log:     log,
		avatars: make(map[int32]avatarEntry),
	}
}

// Name returns the display name of the current user.
func (f *Friends) Name() string {
	return f.api.PersonaName()
}

// GetFriends returns the users matching the given relationship flags.
func (f *Friends) GetFriends(flags FriendFlags) []Friend {
	count := f.api.FriendCount(int32(flags))
	if count <= 0 {
		return nil
	}
	friends := make([]Friend, 0, count)
	for i := int32(0); i < count; i++ {
		id := SteamId(f.api.FriendByIndex(i, int32(flags)))
		friends = append(friends, f.GetFriend(id))
	}
	return friends
}

// GetFriend returns a handle for the given user. The user does not have to
// be on the friends list.
func (f *Friends) GetFriend(id SteamId) Friend {
	return Friend{id: id, friends: f}
}

// RequestUserInformation asks Steam to download the persona name, and
// optionally the avatar, of the given user. Returns true if data had to be
// requested; a PersonaStateChange callback fires once it arrives.
func (f *Friends) RequestUserInformation(id SteamId, nameOnly bool) bool {
	return f.api.RequestUserInformation(uint64(id), nameOnly)
}

// ActivateGameOverlay opens the overlay on the named dialog, such as
// "friends" or "achievements".
func (f *Friends) ActivateGameOverlay(dialog string) {
	f.api.ActivateGameOverlay(dialog)
}

// ActivateGameOverlayToWebPage opens the overlay browser on the given URL.
func (f *Friends) ActivateGameOverlayToWebPage(url string) {
	f.api.ActivateGameOverlayToWebPage(url)
}

// ActivateGameOverlayToUser opens the overlay on a user-specific dialog,
// such as "steamid" or "chat".
func (f *Friends) ActivateGameOverlayToUser(dialog string, id SteamId) {
	f.api.ActivateGameOverlayToUser(dialog, uint64(id))
}

// SetRichPresence sets a rich presence key for the current user. An empty
// value removes the key.
func (f *Friends) SetRichPresence(key, value string) bool {
	return f.api.SetRichPresence(key, value)
}

// ClearRichPresence removes all rich presence keys of the current user.
func (f *Friends) ClearRichPresence() {
	f.api.ClearRichPresence()
}

// avatar fetches and caches one avatar image. Buffers handed out are
// copies; the cache entry is replaced when the pixel payload's digest
// changes, which happens after a PersonaChangeAvatar update.
func (f *Friends) avatar(handle int32, size int) ([]byte, bool) {
	if handle == 0 {
		return nil, false
	}
	w, h, ok := f.utils.ImageSize(handle)
	if !ok {
		return nil, false
	}
	if w != uint32(size) || h != uint32(size) {
		f.log.Warn(fmt.Sprintf("avatar image %d is %dx%d, expected %dx%d", handle, w, h, size, size))
		return nil, false
	}
	buf := make([]byte, size*size*4)
	if !f.utils.ImageRGBA(handle, buf) {
		return nil, false
	}

	sum := xxhash.Sum64(buf)
	f.mu.Lock()
	if e, ok := f.avatars[handle]; ok && e.hash == sum {
		buf = e.rgba
	} else {
		f.avatars[handle] = avatarEntry{hash: sum, rgba: buf}
	}
	f.mu.Unlock()

	out := make([]byte, len(buf))
	copy(out, buf)
	return out, true
}

// Friend is a handle to another user.
type Friend struct {
	id      SteamId
	friends *Friends
}

func (fr Friend) String() string { return fmt.Sprintf("Friend(%s)", fr.id) }

// ID returns the user's steam id.
func (fr Friend) ID() SteamId { return fr.id }

// Name returns the user's persona name. Empty until the user's information
// has been downloaded, see Friends.RequestUserInformation.
func (fr Friend) Name() string {
	return fr.friends.api.FriendPersonaName(uint64(fr.id))
}

// NickName returns the nickname the current user has set for this user, if
// any.
func (fr Friend) NickName() (string, bool) {
	nick := fr.friends.api.PlayerNickname(uint64(fr.id))
	if nick == "" {
		return "", false
	}
	return nick, true
}

// HasFriend reports whether this user matches the given relationship
// flags.
func (fr Friend) HasFriend(flags FriendFlags) bool {
	return fr.friends.api.HasFriend(uint64(fr.id), int32(flags))
}

// SmallAvatar returns the 32x32 avatar in RGBA format.
func (fr Friend) SmallAvatar() ([]byte, bool) {
	return fr.friends.avatar(fr.friends.api.SmallFriendAvatar(uint64(fr.id)), smallAvatarSize)
}

// MediumAvatar returns the 64x64 avatar in RGBA format.
func (fr Friend) MediumAvatar() ([]byte, bool) {
	return fr.friends.avatar(fr.friends.api.MediumFriendAvatar(uint64(fr.id)), mediumAvatarSize)
}

// LargeAvatar returns the 184x184 avatar in RGBA format.
func (fr Friend) LargeAvatar() ([]byte, bool) {
	return fr.friends.avatar(fr.friends.api.LargeFriendAvatar(uint64(fr.id)), largeAvatarSize)
}

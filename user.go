package steamworks

import "github.com/steamachievementnotifier/steamworks-go/internal/core/ports"

// User is the interface to the current user's account.
type User struct {
	api ports.User
}

// SteamID returns the steam id of the current user.
func (u *User) SteamID() SteamId {
	return SteamId(u.api.SteamID())
}

// Level returns the Steam level of the current user.
func (u *User) Level() uint32 {
	return uint32(u.api.PlayerSteamLevel())
}

// LoggedOn reports whether the Steam client is connected to the Steam
// servers.
func (u *User) LoggedOn() bool {
	return u.api.LoggedOn()
}

package steamworks

import (
	"time"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
)

// Utils is the interface to miscellaneous client information.
type Utils struct {
	api ports.Utils
}

// AppID returns the app id of the current process.
func (u *Utils) AppID() AppId {
	return AppId(u.api.AppID())
}

// IPCountry returns the two-letter country code of the current user, based
// on their IP address.
func (u *Utils) IPCountry() string {
	return u.api.IPCountry()
}

// UILanguage returns the language the Steam client is running in.
func (u *Utils) UILanguage() string {
	return u.api.UILanguage()
}

// ServerRealTime returns the current time on the Steam servers.
func (u *Utils) ServerRealTime() time.Time {
	return time.Unix(int64(u.api.ServerRealTime()), 0)
}

// IsSteamRunningOnSteamDeck reports whether the process runs on a Steam
// Deck.
func (u *Utils) IsSteamRunningOnSteamDeck() bool {
	return u.api.OnSteamDeck()
}

// SetWarningCallback installs the warning hook the Steam client uses to
// emit debug messages. Severity 0 is a message, 1 is a warning. The hook is
// process-global; installing a new one replaces the previous hook. Panics
// inside the hook are contained and never unwind into native code.
func (u *Utils) SetWarningCallback(fn func(severity int32, msg string)) {
	u.api.SetWarningHook(fn)
}

// ImageSize returns the dimensions of an image handle, such as an
// achievement icon.
func (u *Utils) ImageSize(handle int32) (width, height uint32, ok bool) {
	if handle == 0 {
		return 0, 0, false
	}
	return u.api.ImageSize(handle)
}

// ImageRGBA returns the pixels of an image handle in RGBA order.
func (u *Utils) ImageRGBA(handle int32) ([]byte, bool) {
	w, h, ok := u.ImageSize(handle)
	if !ok {
		return nil, false
	}
	buf := make([]byte, w*h*4)
	if !u.api.ImageRGBA(handle, buf) {
		return nil, false
	}
	return buf, true
}

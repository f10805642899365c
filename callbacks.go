package steamworks

import (
	"encoding/binary"

	"github.com/steamachievementnotifier/steamworks-go/internal/dispatch"
	"github.com/steamachievementnotifier/steamworks-go/sys"
	"go.trai.ch/zerr"
)

// Callback idents for the structs this package decodes.
const (
	callbackIDPersonaStateChange    = 304
	callbackIDGameOverlayActivated  = 331
	callbackIDSteamShutdown         = 704
	callbackIDUserStatsReceived     = 1101
	callbackIDUserStatsStored       = 1102
	callbackIDUserAchievementStored = 1103

	callbackIDGlobalAchievementPercentagesReady = 1110
)

var errShortPayload = zerr.New("callback payload too short")

// callbackMessage is implemented by pointer receivers of every callback
// struct, pairing the native ident with its payload decoder.
type callbackMessage interface {
	callbackID() int32
	decode(data []byte) error
}

type callbackPtr[T any] interface {
	*T
	callbackMessage
}

// Registration undoes a callback registration.
type Registration struct {
	inner dispatch.Registration
}

// Unregister removes the handler. Safe to call more than once.
func (r Registration) Unregister() { r.inner.Unregister() }

// RegisterCallback subscribes fn to every occurrence of the callback type
// T. fn runs on the goroutine calling RunCallbacks.
func RegisterCallback[T any, PT callbackPtr[T]](c *Client, fn func(T)) Registration {
	var probe T
	id := PT(&probe).callbackID()
	reg := c.disp.Register(id, func(data []byte) {
		var v T
		if err := PT(&v).decode(data); err != nil {
			c.log.Error(zerr.With(zerr.Wrap(err, "failed to decode callback"), "callback", id))
			return
		}
		fn(v)
	})
	return Registration{inner: reg}
}

// PersonaStateChange fires when a friend's state, name, avatar or similar
// attribute changes, after RequestUserInformation completes.
type PersonaStateChange struct {
	SteamID SteamId
	Change  PersonaChange
}

func (*PersonaStateChange) callbackID() int32 { return callbackIDPersonaStateChange }

func (cb *PersonaStateChange) decode(data []byte) error {
	if len(data) < 12 {
		return errShortPayload
	}
	cb.SteamID = SteamId(binary.LittleEndian.Uint64(data[0:]))
	cb.Change = PersonaChange(int32(binary.LittleEndian.Uint32(data[8:])))
	return nil
}

// GameOverlayActivated fires when the Steam overlay opens or closes.
type GameOverlayActivated struct {
	Active bool
}

func (*GameOverlayActivated) callbackID() int32 { return callbackIDGameOverlayActivated }

func (cb *GameOverlayActivated) decode(data []byte) error {
	if len(data) < 1 {
		return errShortPayload
	}
	cb.Active = data[0] != 0
	return nil
}

// SteamShutdown fires when the Steam client is about to shut down.
type SteamShutdown struct{}

func (*SteamShutdown) callbackID() int32 { return callbackIDSteamShutdown }

func (*SteamShutdown) decode([]byte) error { return nil }

// UserStatsReceived fires after RequestCurrentStats, once the user's stats
// are available for reads.
type UserStatsReceived struct {
	GameID  GameId
	Result  Result
	SteamID SteamId
}

func (*UserStatsReceived) callbackID() int32 { return callbackIDUserStatsReceived }

func (cb *UserStatsReceived) decode(data []byte) error {
	return cb.decodeLayout(data, sys.Layout)
}

// decodeLayout is split out because the CSteamID member sits at a different
// offset under the Windows pack(8) layout.
func (cb *UserStatsReceived) decodeLayout(data []byte, l sys.CallbackLayout) error {
	if len(data) < l.UserStatsReceivedSize {
		return errShortPayload
	}
	cb.GameID = GameId(binary.LittleEndian.Uint64(data[0:]))
	cb.Result = Result(int32(binary.LittleEndian.Uint32(data[8:])))
	cb.SteamID = SteamId(binary.LittleEndian.Uint64(data[l.UserStatsReceivedUserOffset:]))
	return nil
}

// UserStatsStored fires after StoreStats.
type UserStatsStored struct {
	GameID GameId
	Result Result
}

func (*UserStatsStored) callbackID() int32 { return callbackIDUserStatsStored }

func (cb *UserStatsStored) decode(data []byte) error {
	if len(data) < 12 {
		return errShortPayload
	}
	cb.GameID = GameId(binary.LittleEndian.Uint64(data[0:]))
	cb.Result = Result(int32(binary.LittleEndian.Uint32(data[8:])))
	return nil
}

// UserAchievementStored fires when an achievement unlock or progress update
// has been stored on the servers.
type UserAchievementStored struct {
	GameID           GameId
	GroupAchievement bool
	AchievementName  string
	CurProgress      uint32
	MaxProgress      uint32
}

func (*UserAchievementStored) callbackID() int32 { return callbackIDUserAchievementStored }

// The bool at offset 8 is followed directly by the 128-byte name buffer,
// then the two progress counters aligned up to 4 bytes. These offsets hold
// under both the pack(4) and the Windows pack(8) layout; only the trailing
// struct padding differs.
func (cb *UserAchievementStored) decode(data []byte) error {
	if len(data) < 148 {
		return errShortPayload
	}
	cb.GameID = GameId(binary.LittleEndian.Uint64(data[0:]))
	cb.GroupAchievement = data[8] != 0
	cb.AchievementName = cstring(data[9:137])
	cb.CurProgress = binary.LittleEndian.Uint32(data[140:])
	cb.MaxProgress = binary.LittleEndian.Uint32(data[144:])
	return nil
}

// cstring extracts a NUL-terminated string from a fixed-size buffer.
func cstring(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

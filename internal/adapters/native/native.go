// Package native implements the steam ports over the sys flat-API bindings.
package native

import (
	"unsafe"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/steamachievementnotifier/steamworks-go/sys"
	"go.trai.ch/zerr"
)

// API implements ports.SteamAPI against the real Steam client library.
// Interface pointers are resolved once during Init and are valid until
// Shutdown.
type API struct {
	log ports.Logger

	pipe      sys.HSteamPipe
	friends   *friendsAPI
	user      *userAPI
	userStats *userStatsAPI
	utils     *utilsAPI
	dispatch  *dispatchAPI
}

// New creates an unconnected API. Call Init before using any port.
func New(log ports.Logger) *API {
	return &API{log: log}
}

// Init loads the native library, initializes the SDK and switches it to
// manual callback dispatch.
func (a *API) Init() error {
	if err := sys.Load(); err != nil {
		return zerr.Wrap(err, "failed to load the steam client library")
	}
	if !sys.SteamAPI_Init() {
		return zerr.New("SteamAPI_Init returned false; is the steam client running?")
	}
	sys.SteamAPI_ManualDispatch_Init()

	a.pipe = sys.SteamAPI_GetHSteamPipe()
	a.friends = &friendsAPI{f: sys.SteamAPI_SteamFriends_v017()}
	a.user = &userAPI{u: sys.SteamAPI_SteamUser_v021()}
	a.userStats = &userStatsAPI{s: sys.SteamAPI_SteamUserStats_v012()}
	a.utils = &utilsAPI{u: sys.SteamAPI_SteamUtils_v010(), log: a.log}
	a.dispatch = &dispatchAPI{pipe: a.pipe}
	return nil
}

// Shutdown releases the SDK.
func (a *API) Shutdown() {
	sys.SteamAPI_Shutdown()
}

// RestartAppIfNecessary asks Steam to relaunch the app through the client.
func (a *API) RestartAppIfNecessary(appID uint32) bool {
	if err := sys.Load(); err != nil {
		return false
	}
	return sys.SteamAPI_RestartAppIfNecessary(appID)
}

func (a *API) Dispatch() ports.Dispatch   { return a.dispatch }
func (a *API) Friends() ports.Friends     { return a.friends }
func (a *API) User() ports.User           { return a.user }
func (a *API) UserStats() ports.UserStats { return a.userStats }
func (a *API) Utils() ports.Utils         { return a.utils }

type dispatchAPI struct {
	pipe sys.HSteamPipe
}

func (d *dispatchAPI) RunFrame() {
	sys.SteamAPI_ManualDispatch_RunFrame(d.pipe)
}

func (d *dispatchAPI) Next() (ports.Msg, bool) {
	var msg sys.CallbackMsg
	if !sys.SteamAPI_ManualDispatch_GetNextCallback(d.pipe, &msg) {
		return ports.Msg{}, false
	}
	// The payload lives in native memory owned by the pipe; copy it out
	// before freeing the slot.
	var data []byte
	if msg.Data != nil && msg.DataSize > 0 {
		data = make([]byte, msg.DataSize)
		copy(data, unsafe.Slice(msg.Data, msg.DataSize))
	}
	sys.SteamAPI_ManualDispatch_FreeLastCallback(d.pipe)
	return ports.Msg{ID: msg.Callback, Data: data}, true
}

func (d *dispatchAPI) CallResult(call uint64, id int32, size int) ([]byte, bool, bool) {
	out := make([]byte, size)
	var failed bool
	ok := sys.SteamAPI_ManualDispatch_GetAPICallResult(d.pipe, sys.SteamAPICall(call), out, id, &failed)
	if !ok {
		return nil, false, false
	}
	return out, failed, true
}

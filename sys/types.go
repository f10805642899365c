package sys

// Handle types mirroring the native typedefs.
type (
	// HSteamPipe is a communication pipe to the Steam client.
	HSteamPipe int32
	// HSteamUser is a handle to a per-user context.
	HSteamUser int32
	// SteamAPICall identifies a pending asynchronous call result.
	SteamAPICall uint64

	// ISteamFriends is an opaque pointer to the native friends interface.
	ISteamFriends uintptr
	// ISteamUser is an opaque pointer to the native user interface.
	ISteamUser uintptr
	// ISteamUserStats is an opaque pointer to the native stats interface.
	ISteamUserStats uintptr
	// ISteamUtils is an opaque pointer to the native utils interface.
	ISteamUtils uintptr
)

// APICallInvalid is the zero value returned for failed async calls.
const APICallInvalid SteamAPICall = 0

// CallbackMsg mirrors CallbackMsg_t as produced by the manual dispatch pump.
// Data points into native memory owned by the pipe; it is only valid until
// SteamAPI_ManualDispatch_FreeLastCallback is called.
type CallbackMsg struct {
	User     HSteamUser
	Callback int32
	Data     *byte
	DataSize int32
}

// Callback identifiers (m_iCallback values) for the structs this binding
// understands. The numeric bases come from the native interface headers.
const (
	CallbackIDValidateAuthTicketResponse        = 143
	CallbackIDPersonaStateChange                = 304
	CallbackIDGameOverlayActivated              = 331
	CallbackIDSteamAPICallCompleted             = 703
	CallbackIDSteamShutdown                     = 704
	CallbackIDUserStatsReceived                 = 1101
	CallbackIDUserStatsStored                   = 1102
	CallbackIDUserAchievementStored             = 1103
	CallbackIDGlobalAchievementPercentagesReady = 1110
)

// EActivateGameOverlayToWebPageMode values.
const (
	OverlayToWebPageModeDefault = 0
	OverlayToWebPageModeModal   = 1
)

// Package ports defines the interfaces between the safe API and the native
// Steam library. Everything crossing these interfaces is expressed in the
// flat API's own terms (raw 64-bit ids, int32 flags, byte payloads) so the
// adapters stay translation-free.
package ports

//go:generate mockgen -source=steam.go -destination=mocks/mock_steam.go -package=mocks

// Msg is one callback record drained from the manual dispatch pump. Data is
// owned by the receiver.
type Msg struct {
	ID   int32
	Data []byte
}

// Lifecycle owns global SDK startup and teardown.
type Lifecycle interface {
	// Init loads the native library if needed and initializes the SDK,
	// including the manual dispatch pump.
	Init() error
	// Shutdown releases the SDK. No other port may be used afterwards.
	Shutdown()
	// RestartAppIfNecessary asks Steam to relaunch the app under its own
	// process if it was not started through Steam.
	RestartAppIfNecessary(appID uint32) bool
}

// Dispatch drains callback messages and resolves async call results.
type Dispatch interface {
	// RunFrame pumps the pipe once. Pending messages become visible to
	// Next afterwards.
	RunFrame()
	// Next returns the next pending callback message, copying its payload
	// out of native memory, or ok=false when the queue is empty.
	Next() (msg Msg, ok bool)
	// CallResult fetches the completed result for an async call. failed
	// reports an IO failure between the client and the Steam servers.
	CallResult(call uint64, id int32, size int) (data []byte, failed bool, ok bool)
}

// Friends mirrors the ISteamFriends surface the safe API uses.
type Friends interface {
	PersonaName() string
	FriendCount(flags int32) int32
	FriendByIndex(index, flags int32) uint64
	FriendPersonaName(id uint64) string
	PlayerNickname(id uint64) string
	SmallFriendAvatar(id uint64) int32
	MediumFriendAvatar(id uint64) int32
	LargeFriendAvatar(id uint64) int32
	HasFriend(id uint64, flags int32) bool
	RequestUserInformation(id uint64, nameOnly bool) bool
	ActivateGameOverlay(dialog string)
	ActivateGameOverlayToWebPage(url string)
	ActivateGameOverlayToUser(dialog string, id uint64)
	SetRichPresence(key, value string) bool
	ClearRichPresence()
}

// User mirrors the ISteamUser surface the safe API uses.
type User interface {
	SteamID() uint64
	PlayerSteamLevel() int32
	LoggedOn() bool
}

// UserStats mirrors the ISteamUserStats surface the safe API uses.
type UserStats interface {
	RequestCurrentStats() bool
	StoreStats() bool
	ResetAllStats(achievementsToo bool) bool
	StatInt32(name string) (int32, bool)
	SetStatInt32(name string, value int32) bool
	StatFloat(name string) (float32, bool)
	SetStatFloat(name string, value float32) bool
	Achievement(name string) (achieved, ok bool)
	SetAchievement(name string) bool
	ClearAchievement(name string) bool
	AchievementAndUnlockTime(name string) (achieved bool, unlockTime uint32, ok bool)
	AchievementDisplayAttribute(name, key string) string
	AchievementAchievedPercent(name string) (float32, bool)
	AchievementIcon(name string) int32
	NumAchievements() uint32
	AchievementName(index uint32) string
	RequestGlobalAchievementPercentages() uint64
}

// Utils mirrors the ISteamUtils surface the safe API uses.
type Utils interface {
	AppID() uint32
	IPCountry() string
	UILanguage() string
	ServerRealTime() uint32
	OnSteamDeck() bool
	ImageSize(image int32) (width, height uint32, ok bool)
	ImageRGBA(image int32, dest []byte) bool
	// SetWarningHook installs the process-wide warning callback. The hook
	// must never panic into native frames; adapters contain recoveries.
	SetWarningHook(fn func(severity int32, msg string))
}

// SteamAPI bundles every native surface the client needs.
type SteamAPI interface {
	Lifecycle
	Dispatch() Dispatch
	Friends() Friends
	User() User
	UserStats() UserStats
	Utils() Utils
}

package sys

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Function pointers resolved from the Steam client library. The variable
// names match the flat-API symbols they bind.
var (
	steamAPI_Init                  func() bool
	steamAPI_Shutdown              func()
	steamAPI_RestartAppIfNecessary func(appID uint32) bool
	steamAPI_GetHSteamPipe         func() int32
	steamAPI_GetHSteamUser         func() int32

	steamAPI_ManualDispatch_Init             func()
	steamAPI_ManualDispatch_RunFrame         func(pipe int32)
	steamAPI_ManualDispatch_GetNextCallback  func(pipe int32, msg unsafe.Pointer) bool
	steamAPI_ManualDispatch_FreeLastCallback func(pipe int32)
	steamAPI_ManualDispatch_GetAPICallResult func(pipe int32, call uint64, out unsafe.Pointer, outSize int32, expected int32, failed unsafe.Pointer) bool

	steamAPI_SteamFriends_v017   func() uintptr
	steamAPI_SteamUser_v021      func() uintptr
	steamAPI_SteamUserStats_v012 func() uintptr
	steamAPI_SteamUtils_v010     func() uintptr

	steamAPI_ISteamFriends_GetPersonaName               func(self uintptr) string
	steamAPI_ISteamFriends_GetFriendCount               func(self uintptr, flags int32) int32
	steamAPI_ISteamFriends_GetFriendByIndex             func(self uintptr, index int32, flags int32) uint64
	steamAPI_ISteamFriends_GetFriendPersonaName         func(self uintptr, id uint64) string
	steamAPI_ISteamFriends_GetPlayerNickname            func(self uintptr, id uint64) string
	steamAPI_ISteamFriends_GetSmallFriendAvatar         func(self uintptr, id uint64) int32
	steamAPI_ISteamFriends_GetMediumFriendAvatar        func(self uintptr, id uint64) int32
	steamAPI_ISteamFriends_GetLargeFriendAvatar         func(self uintptr, id uint64) int32
	steamAPI_ISteamFriends_HasFriend                    func(self uintptr, id uint64, flags int32) bool
	steamAPI_ISteamFriends_RequestUserInformation       func(self uintptr, id uint64, nameOnly bool) bool
	steamAPI_ISteamFriends_ActivateGameOverlay          func(self uintptr, dialog string)
	steamAPI_ISteamFriends_ActivateGameOverlayToWebPage func(self uintptr, url string, mode int32)
	steamAPI_ISteamFriends_ActivateGameOverlayToUser    func(self uintptr, dialog string, id uint64)
	steamAPI_ISteamFriends_SetRichPresence              func(self uintptr, key string, value string) bool
	steamAPI_ISteamFriends_ClearRichPresence            func(self uintptr)

	steamAPI_ISteamUser_GetSteamID          func(self uintptr) uint64
	steamAPI_ISteamUser_GetPlayerSteamLevel func(self uintptr) int32
	steamAPI_ISteamUser_BLoggedOn           func(self uintptr) bool

	steamAPI_ISteamUserStats_RequestCurrentStats                 func(self uintptr) bool
	steamAPI_ISteamUserStats_StoreStats                          func(self uintptr) bool
	steamAPI_ISteamUserStats_ResetAllStats                       func(self uintptr, achievementsToo bool) bool
	steamAPI_ISteamUserStats_GetStatInt32                        func(self uintptr, name string, out unsafe.Pointer) bool
	steamAPI_ISteamUserStats_SetStatInt32                        func(self uintptr, name string, value int32) bool
	steamAPI_ISteamUserStats_GetStatFloat                        func(self uintptr, name string, out unsafe.Pointer) bool
	steamAPI_ISteamUserStats_SetStatFloat                        func(self uintptr, name string, value float32) bool
	steamAPI_ISteamUserStats_GetAchievement                      func(self uintptr, name string, achieved unsafe.Pointer) bool
	steamAPI_ISteamUserStats_SetAchievement                      func(self uintptr, name string) bool
	steamAPI_ISteamUserStats_ClearAchievement                    func(self uintptr, name string) bool
	steamAPI_ISteamUserStats_GetAchievementAndUnlockTime         func(self uintptr, name string, achieved unsafe.Pointer, unlockTime unsafe.Pointer) bool
	steamAPI_ISteamUserStats_GetAchievementDisplayAttribute      func(self uintptr, name string, key string) string
	steamAPI_ISteamUserStats_GetAchievementAchievedPercent       func(self uintptr, name string, percent unsafe.Pointer) bool
	steamAPI_ISteamUserStats_GetAchievementIcon                  func(self uintptr, name string) int32
	steamAPI_ISteamUserStats_GetNumAchievements                  func(self uintptr) uint32
	steamAPI_ISteamUserStats_GetAchievementName                  func(self uintptr, index uint32) string
	steamAPI_ISteamUserStats_RequestGlobalAchievementPercentages func(self uintptr) uint64

	steamAPI_ISteamUtils_GetAppID                  func(self uintptr) uint32
	steamAPI_ISteamUtils_GetIPCountry              func(self uintptr) string
	steamAPI_ISteamUtils_GetSteamUILanguage        func(self uintptr) string
	steamAPI_ISteamUtils_GetServerRealTime         func(self uintptr) uint32
	steamAPI_ISteamUtils_IsSteamRunningOnSteamDeck func(self uintptr) bool
	steamAPI_ISteamUtils_GetImageSize              func(self uintptr, image int32, width unsafe.Pointer, height unsafe.Pointer) bool
	steamAPI_ISteamUtils_GetImageRGBA              func(self uintptr, image int32, dest unsafe.Pointer, destSize int32) bool
	steamAPI_ISteamUtils_SetWarningMessageHook     func(self uintptr, hook uintptr)
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load resolves the Steam client library and binds every flat function this
// package exposes. It is safe to call more than once; the first error is
// sticky.
func Load() error {
	loadOnce.Do(func() {
		handle, err := openLibrary()
		if err != nil {
			loadErr = err
			return
		}
		registerAll(handle)
	})
	return loadErr
}

func registerAll(h uintptr) {
	purego.RegisterLibFunc(&steamAPI_Init, h, "SteamAPI_Init")
	purego.RegisterLibFunc(&steamAPI_Shutdown, h, "SteamAPI_Shutdown")
	purego.RegisterLibFunc(&steamAPI_RestartAppIfNecessary, h, "SteamAPI_RestartAppIfNecessary")
	purego.RegisterLibFunc(&steamAPI_GetHSteamPipe, h, "SteamAPI_GetHSteamPipe")
	purego.RegisterLibFunc(&steamAPI_GetHSteamUser, h, "SteamAPI_GetHSteamUser")

	purego.RegisterLibFunc(&steamAPI_ManualDispatch_Init, h, "SteamAPI_ManualDispatch_Init")
	purego.RegisterLibFunc(&steamAPI_ManualDispatch_RunFrame, h, "SteamAPI_ManualDispatch_RunFrame")
	purego.RegisterLibFunc(&steamAPI_ManualDispatch_GetNextCallback, h, "SteamAPI_ManualDispatch_GetNextCallback")
	purego.RegisterLibFunc(&steamAPI_ManualDispatch_FreeLastCallback, h, "SteamAPI_ManualDispatch_FreeLastCallback")
	purego.RegisterLibFunc(&steamAPI_ManualDispatch_GetAPICallResult, h, "SteamAPI_ManualDispatch_GetAPICallResult")

	purego.RegisterLibFunc(&steamAPI_SteamFriends_v017, h, "SteamAPI_SteamFriends_v017")
	purego.RegisterLibFunc(&steamAPI_SteamUser_v021, h, "SteamAPI_SteamUser_v021")
	purego.RegisterLibFunc(&steamAPI_SteamUserStats_v012, h, "SteamAPI_SteamUserStats_v012")
	purego.RegisterLibFunc(&steamAPI_SteamUtils_v010, h, "SteamAPI_SteamUtils_v010")

	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetPersonaName, h, "SteamAPI_ISteamFriends_GetPersonaName")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetFriendCount, h, "SteamAPI_ISteamFriends_GetFriendCount")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetFriendByIndex, h, "SteamAPI_ISteamFriends_GetFriendByIndex")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetFriendPersonaName, h, "SteamAPI_ISteamFriends_GetFriendPersonaName")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetPlayerNickname, h, "SteamAPI_ISteamFriends_GetPlayerNickname")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetSmallFriendAvatar, h, "SteamAPI_ISteamFriends_GetSmallFriendAvatar")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetMediumFriendAvatar, h, "SteamAPI_ISteamFriends_GetMediumFriendAvatar")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_GetLargeFriendAvatar, h, "SteamAPI_ISteamFriends_GetLargeFriendAvatar")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_HasFriend, h, "SteamAPI_ISteamFriends_HasFriend")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_RequestUserInformation, h, "SteamAPI_ISteamFriends_RequestUserInformation")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_ActivateGameOverlay, h, "SteamAPI_ISteamFriends_ActivateGameOverlay")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_ActivateGameOverlayToWebPage, h, "SteamAPI_ISteamFriends_ActivateGameOverlayToWebPage")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_ActivateGameOverlayToUser, h, "SteamAPI_ISteamFriends_ActivateGameOverlayToUser")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_SetRichPresence, h, "SteamAPI_ISteamFriends_SetRichPresence")
	purego.RegisterLibFunc(&steamAPI_ISteamFriends_ClearRichPresence, h, "SteamAPI_ISteamFriends_ClearRichPresence")

	purego.RegisterLibFunc(&steamAPI_ISteamUser_GetSteamID, h, "SteamAPI_ISteamUser_GetSteamID")
	purego.RegisterLibFunc(&steamAPI_ISteamUser_GetPlayerSteamLevel, h, "SteamAPI_ISteamUser_GetPlayerSteamLevel")
	purego.RegisterLibFunc(&steamAPI_ISteamUser_BLoggedOn, h, "SteamAPI_ISteamUser_BLoggedOn")

	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_RequestCurrentStats, h, "SteamAPI_ISteamUserStats_RequestCurrentStats")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_StoreStats, h, "SteamAPI_ISteamUserStats_StoreStats")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_ResetAllStats, h, "SteamAPI_ISteamUserStats_ResetAllStats")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetStatInt32, h, "SteamAPI_ISteamUserStats_GetStatInt32")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_SetStatInt32, h, "SteamAPI_ISteamUserStats_SetStatInt32")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetStatFloat, h, "SteamAPI_ISteamUserStats_GetStatFloat")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_SetStatFloat, h, "SteamAPI_ISteamUserStats_SetStatFloat")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetAchievement, h, "SteamAPI_ISteamUserStats_GetAchievement")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_SetAchievement, h, "SteamAPI_ISteamUserStats_SetAchievement")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_ClearAchievement, h, "SteamAPI_ISteamUserStats_ClearAchievement")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetAchievementAndUnlockTime, h, "SteamAPI_ISteamUserStats_GetAchievementAndUnlockTime")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetAchievementDisplayAttribute, h, "SteamAPI_ISteamUserStats_GetAchievementDisplayAttribute")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetAchievementAchievedPercent, h, "SteamAPI_ISteamUserStats_GetAchievementAchievedPercent")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetAchievementIcon, h, "SteamAPI_ISteamUserStats_GetAchievementIcon")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetNumAchievements, h, "SteamAPI_ISteamUserStats_GetNumAchievements")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_GetAchievementName, h, "SteamAPI_ISteamUserStats_GetAchievementName")
	purego.RegisterLibFunc(&steamAPI_ISteamUserStats_RequestGlobalAchievementPercentages, h, "SteamAPI_ISteamUserStats_RequestGlobalAchievementPercentages")

	purego.RegisterLibFunc(&steamAPI_ISteamUtils_GetAppID, h, "SteamAPI_ISteamUtils_GetAppID")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_GetIPCountry, h, "SteamAPI_ISteamUtils_GetIPCountry")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_GetSteamUILanguage, h, "SteamAPI_ISteamUtils_GetSteamUILanguage")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_GetServerRealTime, h, "SteamAPI_ISteamUtils_GetServerRealTime")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_IsSteamRunningOnSteamDeck, h, "SteamAPI_ISteamUtils_IsSteamRunningOnSteamDeck")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_GetImageSize, h, "SteamAPI_ISteamUtils_GetImageSize")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_GetImageRGBA, h, "SteamAPI_ISteamUtils_GetImageRGBA")
	purego.RegisterLibFunc(&steamAPI_ISteamUtils_SetWarningMessageHook, h, "SteamAPI_ISteamUtils_SetWarningMessageHook")
}

// NewWarningHook wraps fn as a native callback pointer suitable for
// SteamAPI_ISteamUtils_SetWarningMessageHook. The returned value is never
// released; the native side holds it for the life of the process.
func NewWarningHook(fn func(severity int32, msg *byte)) uintptr {
	return purego.NewCallback(fn)
}

// GoString copies a NUL-terminated native string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func SteamAPI_Init() bool                              { return steamAPI_Init() }
func SteamAPI_Shutdown()                               { steamAPI_Shutdown() }
func SteamAPI_RestartAppIfNecessary(appID uint32) bool { return steamAPI_RestartAppIfNecessary(appID) }
func SteamAPI_GetHSteamPipe() HSteamPipe               { return HSteamPipe(steamAPI_GetHSteamPipe()) }
func SteamAPI_GetHSteamUser() HSteamUser               { return HSteamUser(steamAPI_GetHSteamUser()) }

func SteamAPI_ManualDispatch_Init()                    { steamAPI_ManualDispatch_Init() }
func SteamAPI_ManualDispatch_RunFrame(pipe HSteamPipe) { steamAPI_ManualDispatch_RunFrame(int32(pipe)) }

func SteamAPI_ManualDispatch_GetNextCallback(pipe HSteamPipe, msg *CallbackMsg) bool {
	return steamAPI_ManualDispatch_GetNextCallback(int32(pipe), unsafe.Pointer(msg))
}

func SteamAPI_ManualDispatch_FreeLastCallback(pipe HSteamPipe) {
	steamAPI_ManualDispatch_FreeLastCallback(int32(pipe))
}

func SteamAPI_ManualDispatch_GetAPICallResult(pipe HSteamPipe, call SteamAPICall, out []byte, expected int32, failed *bool) bool {
	return steamAPI_ManualDispatch_GetAPICallResult(
		int32(pipe), uint64(call),
		unsafe.Pointer(unsafe.SliceData(out)), int32(len(out)),
		expected, unsafe.Pointer(failed),
	)
}

func SteamAPI_SteamFriends_v017() ISteamFriends { return ISteamFriends(steamAPI_SteamFriends_v017()) }
func SteamAPI_SteamUser_v021() ISteamUser       { return ISteamUser(steamAPI_SteamUser_v021()) }
func SteamAPI_SteamUserStats_v012() ISteamUserStats {
	return ISteamUserStats(steamAPI_SteamUserStats_v012())
}
func SteamAPI_SteamUtils_v010() ISteamUtils { return ISteamUtils(steamAPI_SteamUtils_v010()) }

func SteamAPI_ISteamFriends_GetPersonaName(f ISteamFriends) string {
	return steamAPI_ISteamFriends_GetPersonaName(uintptr(f))
}

func SteamAPI_ISteamFriends_GetFriendCount(f ISteamFriends, flags int32) int32 {
	return steamAPI_ISteamFriends_GetFriendCount(uintptr(f), flags)
}

func SteamAPI_ISteamFriends_GetFriendByIndex(f ISteamFriends, index, flags int32) uint64 {
	return steamAPI_ISteamFriends_GetFriendByIndex(uintptr(f), index, flags)
}

func SteamAPI_ISteamFriends_GetFriendPersonaName(f ISteamFriends, id uint64) string {
	return steamAPI_ISteamFriends_GetFriendPersonaName(uintptr(f), id)
}

func SteamAPI_ISteamFriends_GetPlayerNickname(f ISteamFriends, id uint64) string {
	return steamAPI_ISteamFriends_GetPlayerNickname(uintptr(f), id)
}

func SteamAPI_ISteamFriends_GetSmallFriendAvatar(f ISteamFriends, id uint64) int32 {
	return steamAPI_ISteamFriends_GetSmallFriendAvatar(uintptr(f), id)
}

func SteamAPI_ISteamFriends_GetMediumFriendAvatar(f ISteamFriends, id uint64) int32 {
	return steamAPI_ISteamFriends_GetMediumFriendAvatar(uintptr(f), id)
}

func SteamAPI_ISteamFriends_GetLargeFriendAvatar(f ISteamFriends, id uint64) int32 {
	return steamAPI_ISteamFriends_GetLargeFriendAvatar(uintptr(f), id)
}

func SteamAPI_ISteamFriends_HasFriend(f ISteamFriends, id uint64, flags int32) bool {
	return steamAPI_ISteamFriends_HasFriend(uintptr(f), id, flags)
}

func SteamAPI_ISteamFriends_RequestUserInformation(f ISteamFriends, id uint64, nameOnly bool) bool {
	return steamAPI_ISteamFriends_RequestUserInformation(uintptr(f), id, nameOnly)
}

func SteamAPI_ISteamFriends_ActivateGameOverlay(f ISteamFriends, dialog string) {
	steamAPI_ISteamFriends_ActivateGameOverlay(uintptr(f), dialog)
}

func SteamAPI_ISteamFriends_ActivateGameOverlayToWebPage(f ISteamFriends, url string, mode int32) {
	steamAPI_ISteamFriends_ActivateGameOverlayToWebPage(uintptr(f), url, mode)
}

func SteamAPI_ISteamFriends_ActivateGameOverlayToUser(f ISteamFriends, dialog string, id uint64) {
	steamAPI_ISteamFriends_ActivateGameOverlayToUser(uintptr(f), dialog, id)
}

func SteamAPI_ISteamFriends_SetRichPresence(f ISteamFriends, key, value string) bool {
	return steamAPI_ISteamFriends_SetRichPresence(uintptr(f), key, value)
}

func SteamAPI_ISteamFriends_ClearRichPresence(f ISteamFriends) {
	steamAPI_ISteamFriends_ClearRichPresence(uintptr(f))
}

func SteamAPI_ISteamUser_GetSteamID(u ISteamUser) uint64 {
	return steamAPI_ISteamUser_GetSteamID(uintptr(u))
}

func SteamAPI_ISteamUser_GetPlayerSteamLevel(u ISteamUser) int32 {
	return steamAPI_ISteamUser_GetPlayerSteamLevel(uintptr(u))
}

func SteamAPI_ISteamUser_BLoggedOn(u ISteamUser) bool {
	return steamAPI_ISteamUser_BLoggedOn(uintptr(u))
}

func SteamAPI_ISteamUserStats_RequestCurrentStats(s ISteamUserStats) bool {
	return steamAPI_ISteamUserStats_RequestCurrentStats(uintptr(s))
}

func SteamAPI_ISteamUserStats_StoreStats(s ISteamUserStats) bool {
	return steamAPI_ISteamUserStats_StoreStats(uintptr(s))
}

func SteamAPI_ISteamUserStats_ResetAllStats(s ISteamUserStats, achievementsToo bool) bool {
	return steamAPI_ISteamUserStats_ResetAllStats(uintptr(s), achievementsToo)
}

func SteamAPI_ISteamUserStats_GetStatInt32(s ISteamUserStats, name string, out *int32) bool {
	return steamAPI_ISteamUserStats_GetStatInt32(uintptr(s), name, unsafe.Pointer(out))
}

func SteamAPI_ISteamUserStats_SetStatInt32(s ISteamUserStats, name string, value int32) bool {
	return steamAPI_ISteamUserStats_SetStatInt32(uintptr(s), name, value)
}

func SteamAPI_ISteamUserStats_GetStatFloat(s ISteamUserStats, name string, out *float32) bool {
	return steamAPI_ISteamUserStats_GetStatFloat(uintptr(s), name, unsafe.Pointer(out))
}

func SteamAPI_ISteamUserStats_SetStatFloat(s ISteamUserStats, name string, value float32) bool {
	return steamAPI_ISteamUserStats_SetStatFloat(uintptr(s), name, value)
}

func SteamAPI_ISteamUserStats_GetAchievement(s ISteamUserStats, name string, achieved *bool) bool {
	return steamAPI_ISteamUserStats_GetAchievement(uintptr(s), name, unsafe.Pointer(achieved))
}

func SteamAPI_ISteamUserStats_SetAchievement(s ISteamUserStats, name string) bool {
	return steamAPI_ISteamUserStats_SetAchievement(uintptr(s), name)
}

func SteamAPI_ISteamUserStats_ClearAchievement(s ISteamUserStats, name string) bool {
	return steamAPI_ISteamUserStats_ClearAchievement(uintptr(s), name)
}

func SteamAPI_ISteamUserStats_GetAchievementAndUnlockTime(s ISteamUserStats, name string, achieved *bool, unlockTime *uint32) bool {
	return steamAPI_ISteamUserStats_GetAchievementAndUnlockTime(uintptr(s), name, unsafe.Pointer(achieved), unsafe.Pointer(unlockTime))
}

func SteamAPI_ISteamUserStats_GetAchievementDisplayAttribute(s ISteamUserStats, name, key string) string {
	return steamAPI_ISteamUserStats_GetAchievementDisplayAttribute(uintptr(s), name, key)
}

func SteamAPI_ISteamUserStats_GetAchievementAchievedPercent(s ISteamUserStats, name string, percent *float32) bool {
	return steamAPI_ISteamUserStats_GetAchievementAchievedPercent(uintptr(s), name, unsafe.Pointer(percent))
}

func SteamAPI_ISteamUserStats_GetAchievementIcon(s ISteamUserStats, name string) int32 {
	return steamAPI_ISteamUserStats_GetAchievementIcon(uintptr(s), name)
}

func SteamAPI_ISteamUserStats_GetNumAchievements(s ISteamUserStats) uint32 {
	return steamAPI_ISteamUserStats_GetNumAchievements(uintptr(s))
}

func SteamAPI_ISteamUserStats_GetAchievementName(s ISteamUserStats, index uint32) string {
	return steamAPI_ISteamUserStats_GetAchievementName(uintptr(s), index)
}

func SteamAPI_ISteamUserStats_RequestGlobalAchievementPercentages(s ISteamUserStats) SteamAPICall {
	return SteamAPICall(steamAPI_ISteamUserStats_RequestGlobalAchievementPercentages(uintptr(s)))
}

func SteamAPI_ISteamUtils_GetAppID(u ISteamUtils) uint32 {
	return steamAPI_ISteamUtils_GetAppID(uintptr(u))
}

func SteamAPI_ISteamUtils_GetIPCountry(u ISteamUtils) string {
	return steamAPI_ISteamUtils_GetIPCountry(uintptr(u))
}

func SteamAPI_ISteamUtils_GetSteamUILanguage(u ISteamUtils) string {
	return steamAPI_ISteamUtils_GetSteamUILanguage(uintptr(u))
}

func SteamAPI_ISteamUtils_GetServerRealTime(u ISteamUtils) uint32 {
	return steamAPI_ISteamUtils_GetServerRealTime(uintptr(u))
}

func SteamAPI_ISteamUtils_IsSteamRunningOnSteamDeck(u ISteamUtils) bool {
	return steamAPI_ISteamUtils_IsSteamRunningOnSteamDeck(uintptr(u))
}

func SteamAPI_ISteamUtils_GetImageSize(u ISteamUtils, image int32, width, height *uint32) bool {
	return steamAPI_ISteamUtils_GetImageSize(uintptr(u), image, unsafe.Pointer(width), unsafe.Pointer(height))
}

func SteamAPI_ISteamUtils_GetImageRGBA(u ISteamUtils, image int32, dest []byte) bool {
	return steamAPI_ISteamUtils_GetImageRGBA(uintptr(u), image, unsafe.Pointer(unsafe.SliceData(dest)), int32(len(dest)))
}

func SteamAPI_ISteamUtils_SetWarningMessageHook(u ISteamUtils, hook uintptr) {
	steamAPI_ISteamUtils_SetWarningMessageHook(uintptr(u), hook)
}

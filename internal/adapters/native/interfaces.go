package native

import (
	"fmt"
	"os"
	"sync"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/steamachievementnotifier/steamworks-go/sys"
)

type friendsAPI struct {
	f sys.ISteamFriends
}

func (a *friendsAPI) PersonaName() string {
	return sys.SteamAPI_ISteamFriends_GetPersonaName(a.f)
}

func (a *friendsAPI) FriendCount(flags int32) int32 {
	return sys.SteamAPI_ISteamFriends_GetFriendCount(a.f, flags)
}

func (a *friendsAPI) FriendByIndex(index, flags int32) uint64 {
	return sys.SteamAPI_ISteamFriends_GetFriendByIndex(a.f, index, flags)
}

func (a *friendsAPI) FriendPersonaName(id uint64) string {
	return sys.SteamAPI_ISteamFriends_GetFriendPersonaName(a.f, id)
}

func (a *friendsAPI) PlayerNickname(id uint64) string {
	return sys.SteamAPI_ISteamFriends_GetPlayerNickname(a.f, id)
}

func (a *friendsAPI) SmallFriendAvatar(id uint64) int32 {
	return sys.SteamAPI_ISteamFriends_GetSmallFriendAvatar(a.f, id)
}

func (a *friendsAPI) MediumFriendAvatar(id uint64) int32 {
	return sys.SteamAPI_ISteamFriends_GetMediumFriendAvatar(a.f, id)
}

func (a *friendsAPI) LargeFriendAvatar(id uint64) int32 {
	return sys.SteamAPI_ISteamFriends_GetLargeFriendAvatar(a.f, id)
}

func (a *friendsAPI) HasFriend(id uint64, flags int32) bool {
	return sys.SteamAPI_ISteamFriends_HasFriend(a.f, id, flags)
}

func (a *friendsAPI) RequestUserInformation(id uint64, nameOnly bool) bool {
	return sys.SteamAPI_ISteamFriends_RequestUserInformation(a.f, id, nameOnly)
}

func (a *friendsAPI) ActivateGameOverlay(dialog string) {
	sys.SteamAPI_ISteamFriends_ActivateGameOverlay(a.f, dialog)
}

func (a *friendsAPI) ActivateGameOverlayToWebPage(url string) {
	sys.SteamAPI_ISteamFriends_ActivateGameOverlayToWebPage(a.f, url, sys.OverlayToWebPageModeDefault)
}

func (a *friendsAPI) ActivateGameOverlayToUser(dialog string, id uint64) {
	sys.SteamAPI_ISteamFriends_ActivateGameOverlayToUser(a.f, dialog, id)
}

func (a *friendsAPI) SetRichPresence(key, value string) bool {
	return sys.SteamAPI_ISteamFriends_SetRichPresence(a.f, key, value)
}

func (a *friendsAPI) ClearRichPresence() {
	sys.SteamAPI_ISteamFriends_ClearRichPresence(a.f)
}

type userAPI struct {
	u sys.ISteamUser
}

func (a *userAPI) SteamID() uint64 {
	return sys.SteamAPI_ISteamUser_GetSteamID(a.u)
}

func (a *userAPI) PlayerSteamLevel() int32 {
	return sys.SteamAPI_ISteamUser_GetPlayerSteamLevel(a.u)
}

func (a *userAPI) LoggedOn() bool {
	return sys.SteamAPI_ISteamUser_BLoggedOn(a.u)
}

type userStatsAPI struct {
	s sys.ISteamUserStats
}

func (a *userStatsAPI) RequestCurrentStats() bool {
	return sys.SteamAPI_ISteamUserStats_RequestCurrentStats(a.s)
}

func (a *userStatsAPI) StoreStats() bool {
	return sys.SteamAPI_ISteamUserStats_StoreStats(a.s)
}

func (a *userStatsAPI) ResetAllStats(achievementsToo bool) bool {
	return sys.SteamAPI_ISteamUserStats_ResetAllStats(a.s, achievementsToo)
}

func (a *userStatsAPI) StatInt32(name string) (int32, bool) {
	var v int32
	ok := sys.SteamAPI_ISteamUserStats_GetStatInt32(a.s, name, &v)
	return v, ok
}

func (a *userStatsAPI) SetStatInt32(name string, value int32) bool {
	return sys.SteamAPI_ISteamUserStats_SetStatInt32(a.s, name, value)
}

func (a *userStatsAPI) StatFloat(name string) (float32, bool) {
	var v float32
	ok := sys.SteamAPI_ISteamUserStats_GetStatFloat(a.s, name, &v)
	return v, ok
}

func (a *userStatsAPI) SetStatFloat(name string, value float32) bool {
	return sys.SteamAPI_ISteamUserStats_SetStatFloat(a.s, name, value)
}

func (a *userStatsAPI) Achievement(name string) (bool, bool) {
	var achieved bool
	ok := sys.SteamAPI_ISteamUserStats_GetAchievement(a.s, name, &achieved)
	return achieved, ok
}

func (a *userStatsAPI) SetAchievement(name string) bool {
	return sys.SteamAPI_ISteamUserStats_SetAchievement(a.s, name)
}

func (a *userStatsAPI) ClearAchievement(name string) bool {
	return sys.SteamAPI_ISteamUserStats_ClearAchievement(a.s, name)
}

func (a *userStatsAPI) AchievementAndUnlockTime(name string) (bool, uint32, bool) {
	var achieved bool
	var unlockTime uint32
	ok := sys.SteamAPI_ISteamUserStats_GetAchievementAndUnlockTime(a.s, name, &achieved, &unlockTime)
	return achieved, unlockTime, ok
}

func (a *userStatsAPI) AchievementDisplayAttribute(name, key string) string {
	return sys.SteamAPI_ISteamUserStats_GetAchievementDisplayAttribute(a.s, name, key)
}

func (a *userStatsAPI) AchievementAchievedPercent(name string) (float32, bool) {
	var pct float32
	ok := sys.SteamAPI_ISteamUserStats_GetAchievementAchievedPercent(a.s, name, &pct)
	return pct, ok
}

func (a *userStatsAPI) AchievementIcon(name string) int32 {
	return sys.SteamAPI_ISteamUserStats_GetAchievementIcon(a.s, name)
}

func (a *userStatsAPI) NumAchievements() uint32 {
	return sys.SteamAPI_ISteamUserStats_GetNumAchievements(a.s)
}

func (a *userStatsAPI) AchievementName(index uint32) string {
	return sys.SteamAPI_ISteamUserStats_GetAchievementName(a.s, index)
}

func (a *userStatsAPI) RequestGlobalAchievementPercentages() uint64 {
	return uint64(sys.SteamAPI_ISteamUserStats_RequestGlobalAchievementPercentages(a.s))
}

type utilsAPI struct {
	u   sys.ISteamUtils
	log ports.Logger
}

func (a *utilsAPI) AppID() uint32 {
	return sys.SteamAPI_ISteamUtils_GetAppID(a.u)
}

func (a *utilsAPI) IPCountry() string {
	return sys.SteamAPI_ISteamUtils_GetIPCountry(a.u)
}

func (a *utilsAPI) UILanguage() string {
	return sys.SteamAPI_ISteamUtils_GetSteamUILanguage(a.u)
}

func (a *utilsAPI) ServerRealTime() uint32 {
	return sys.SteamAPI_ISteamUtils_GetServerRealTime(a.u)
}

func (a *utilsAPI) OnSteamDeck() bool {
	return sys.SteamAPI_ISteamUtils_IsSteamRunningOnSteamDeck(a.u)
}

func (a *utilsAPI) ImageSize(image int32) (uint32, uint32, bool) {
	var w, h uint32
	ok := sys.SteamAPI_ISteamUtils_GetImageSize(a.u, image, &w, &h)
	return w, h, ok
}

func (a *utilsAPI) ImageRGBA(image int32, dest []byte) bool {
	return sys.SteamAPI_ISteamUtils_GetImageRGBA(a.u, image, dest)
}

// The warning hook is process-global on the native side, so its Go half is
// process-global too. The trampoline is created once; swapping the hook is
// just a guarded store.
var (
	warnMu         sync.Mutex
	warnFn         func(severity int32, msg string)
	warnTrampoline uintptr
)

func (a *utilsAPI) SetWarningHook(fn func(severity int32, msg string)) {
	a.log.Debug("installing steam warning hook")
	warnMu.Lock()
	warnFn = fn
	if warnTrampoline == 0 {
		warnTrampoline = sys.NewWarningHook(forwardWarning)
	}
	tramp := warnTrampoline
	warnMu.Unlock()

	sys.SteamAPI_ISteamUtils_SetWarningMessageHook(a.u, tramp)
}

// forwardWarning runs on a native frame. A panic here must not unwind into
// the Steam client, so it is recovered and reported instead.
func forwardWarning(severity int32, msg *byte) {
	warnMu.Lock()
	fn := warnFn
	warnMu.Unlock()
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "steam warning hook panicked: %v\n", r)
		}
	}()
	fn(severity, sys.GoString(msg))
}

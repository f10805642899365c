package steamworks

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/steamachievementnotifier/steamworks-go/internal/dispatch"
	"github.com/steamachievementnotifier/steamworks-go/sys"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// UserStats is the interface to the current user's stats, achievements and
// global achievement data.
//
// Most reads require RequestCurrentStats to have been called and a
// successful UserStatsReceived callback to have been processed.
type UserStats struct {
	api   ports.UserStats
	disp  *dispatch.Dispatcher
	group singleflight.Group
}

func newUserStats(api ports.UserStats, disp *dispatch.Dispatcher) *UserStats {
	return &UserStats{api: api, disp: disp}
}

// RequestCurrentStats asks the Steam servers for the current user's stats.
// Triggers a UserStatsReceived callback. Concurrent duplicate requests are
// coalesced into one native call.
func (s *UserStats) RequestCurrentStats() {
	s.group.Do("request-current-stats", func() (any, error) {
		s.api.RequestCurrentStats()
		return nil, nil
	})
}

// RequestGlobalAchievementPercentages asynchronously fetches the global
// unlock percentage of every achievement of the current game. fn runs on
// the RunCallbacks goroutine once the result arrives.
func (s *UserStats) RequestGlobalAchievementPercentages(fn func(GameId, error)) {
	call := s.api.RequestGlobalAchievementPercentages()
	s.disp.RegisterCallResult(context.Background(), call,
		callbackIDGlobalAchievementPercentagesReady, sys.Layout.GlobalAchievementPercentagesReadySize,
		func(data []byte, failed bool) {
			if failed || len(data) < 8 {
				fn(0, ErrIOFailure)
				return
			}
			fn(GameId(binary.LittleEndian.Uint64(data)), nil)
		})
}

// StoreStats sends changed stats and achievements to the servers for
// permanent storage. Triggers UserStatsStored, and UserAchievementStored
// for any achievements unlocked since the last store.
func (s *UserStats) StoreStats() error {
	if !s.api.StoreStats() {
		return callFailed("StoreStats")
	}
	return nil
}

// ResetAllStats resets the current user's stats and, optionally,
// achievements.
func (s *UserStats) ResetAllStats(achievementsToo bool) error {
	if !s.api.ResetAllStats(achievementsToo) {
		return callFailed("ResetAllStats")
	}
	return nil
}

// GetStatInt returns the value of an integer stat. The stat must exist and
// be typed INT on the app's Steamworks admin page.
func (s *UserStats) GetStatInt(name string) (int32, error) {
	v, ok := s.api.StatInt32(name)
	if !ok {
		return 0, zerr.With(callFailed("GetStatInt32"), "stat", name)
	}
	return v, nil
}

// SetStatInt updates the in-memory value of an integer stat. Call
// StoreStats to commit.
func (s *UserStats) SetStatInt(name string, value int32) error {
	if !s.api.SetStatInt32(name, value) {
		return zerr.With(callFailed("SetStatInt32"), "stat", name)
	}
	return nil
}

// GetStatFloat returns the value of a float stat. The stat must exist and
// be typed FLOAT on the app's Steamworks admin page.
func (s *UserStats) GetStatFloat(name string) (float32, error) {
	v, ok := s.api.StatFloat(name)
	if !ok {
		return 0, zerr.With(callFailed("GetStatFloat"), "stat", name)
	}
	return v, nil
}

// SetStatFloat updates the in-memory value of a float stat. Call
// StoreStats to commit.
func (s *UserStats) SetStatFloat(name string, value float32) error {
	if !s.api.SetStatFloat(name, value) {
		return zerr.With(callFailed("SetStatFloat"), "stat", name)
	}
	return nil
}

// Achievement returns a helper for the achievement with the given API
// name.
func (s *UserStats) Achievement(name string) Achievement {
	return Achievement{name: name, api: s.api}
}

// NumAchievements returns the number of achievements defined for the
// current app. The SDK reports 0 both for "none defined" and for apps
// without achievement support (notably Spacewar), which is treated as an
// error.
func (s *UserStats) NumAchievements() (uint32, error) {
	n := s.api.NumAchievements()
	if n == 0 {
		return 0, zerr.New("app has no achievements")
	}
	return n, nil
}

// AchievementNames returns the API names of every achievement defined for
// the current app.
func (s *UserStats) AchievementNames() ([]string, error) {
	n, err := s.NumAchievements()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		names = append(names, s.api.AchievementName(i))
	}
	return names, nil
}

// Achievement gives access to the state of a single achievement.
type Achievement struct {
	name string
	api  ports.UserStats
}

// Name returns the achievement's API name.
func (a Achievement) Name() string { return a.name }

// Get reports whether the achievement has been unlocked.
func (a Achievement) Get() (bool, error) {
	achieved, ok := a.api.Achievement(a.name)
	if !ok {
		return false, zerr.With(callFailed("GetAchievement"), "achievement", a.name)
	}
	return achieved, nil
}

// Set unlocks the achievement in memory. Call StoreStats to commit and pop
// the overlay notification.
func (a Achievement) Set() error {
	if !a.api.SetAchievement(a.name) {
		return zerr.With(callFailed("SetAchievement"), "achievement", a.name)
	}
	return nil
}

// Clear relocks the achievement. Call StoreStats to commit.
func (a Achievement) Clear() error {
	if !a.api.ClearAchievement(a.name) {
		return zerr.With(callFailed("ClearAchievement"), "achievement", a.name)
	}
	return nil
}

// State returns the unlock state together with the unlock time. The time
// is the zero value for locked achievements.
func (a Achievement) State() (achieved bool, unlockTime time.Time, err error) {
	achieved, unix, ok := a.api.AchievementAndUnlockTime(a.name)
	if !ok {
		return false, time.Time{}, zerr.With(callFailed("GetAchievementAndUnlockTime"), "achievement", a.name)
	}
	if achieved && unix != 0 {
		unlockTime = time.Unix(int64(unix), 0)
	}
	return achieved, unlockTime, nil
}

// DisplayName returns the localized display name.
func (a Achievement) DisplayName() (string, error) {
	return a.displayAttribute("name")
}

// Description returns the localized description.
func (a Achievement) Description() (string, error) {
	return a.displayAttribute("desc")
}

// Hidden reports whether the achievement is hidden until unlocked.
func (a Achievement) Hidden() (bool, error) {
	v, err := a.displayAttribute("hidden")
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

func (a Achievement) displayAttribute(key string) (string, error) {
	v := a.api.AchievementDisplayAttribute(a.name, key)
	if v == "" {
		return "", zerr.With(zerr.With(callFailed("GetAchievementDisplayAttribute"), "achievement", a.name), "key", key)
	}
	return v, nil
}

// GlobalAchievedPercent returns the percentage of players who unlocked the
// achievement. Requires a completed RequestGlobalAchievementPercentages.
func (a Achievement) GlobalAchievedPercent() (float32, error) {
	pct, ok := a.api.AchievementAchievedPercent(a.name)
	if !ok {
		return 0, zerr.With(callFailed("GetAchievementAchievedPercent"), "achievement", a.name)
	}
	return pct, nil
}

// IconHandle returns the image handle of the achievement's current icon
// (locked or unlocked variant). Resolve the pixels through the utils image
// helpers. ok is false while the icon is still being fetched.
func (a Achievement) IconHandle() (int32, bool) {
	h := a.api.AchievementIcon(a.name)
	return h, h != 0
}

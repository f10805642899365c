// Package app implements the application layer for steamctl.
package app

import (
	"context"
	"sort"
	"strconv"
	"time"

	steamworks "github.com/steamachievementnotifier/steamworks-go"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/config"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// pumpInterval is how often the callback queue is drained while waiting on
// the Steam servers.
const pumpInterval = 50 * time.Millisecond

// avatarFetchers bounds how many avatars are resolved concurrently.
const avatarFetchers = 4

// App represents the main application logic.
type App struct {
	cfg *config.Config
	log ports.Logger
	tel ports.Telemetry

	// connect is swapped out in tests.
	connect func(steamworks.AppId) (*steamworks.Client, error)
}

// New creates a new App instance.
func New(cfg *config.Config, log ports.Logger, tel ports.Telemetry) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		tel:     tel,
		connect: steamworks.Init,
	}
}

// withClient runs fn against a freshly initialized client and shuts the
// client down afterwards. Each command owns the process's single SDK slot
// for its whole duration.
func (a *App) withClient(ctx context.Context, fn func(ctx context.Context, c *steamworks.Client) error) error {
	c, err := a.connect(steamworks.AppId(a.cfg.AppID))
	if err != nil {
		return zerr.Wrap(err, "failed to initialize the Steam API")
	}
	a.log.Debug("steam client initialized")
	defer c.Shutdown()
	return fn(ctx, c)
}

// syncStats requests the current user's stats and pumps callbacks until the
// stats arrive, the configured timeout passes, or ctx is canceled. Stats
// and achievement reads are only valid afterwards.
func (a *App) syncStats(ctx context.Context, c *steamworks.Client) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	_, vtx := a.tel.Record(ctx, "steam: sync user stats")

	done := make(chan error, 1)
	reg := steamworks.RegisterCallback(c, func(cb steamworks.UserStatsReceived) {
		select {
		case done <- cb.Result.Err():
		default:
		}
	})
	defer reg.Unregister()

	c.UserStats().RequestCurrentStats()

	err := a.pumpUntil(ctx, c, done)
	vtx.Done(err)
	if err != nil {
		return zerr.Wrap(err, "failed to sync user stats")
	}
	return nil
}

// waitStored pumps callbacks until the pending StoreStats round trip is
// acknowledged by the servers.
func (a *App) waitStored(ctx context.Context, c *steamworks.Client) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	_, vtx := a.tel.Record(ctx, "steam: store stats")

	done := make(chan error, 1)
	reg := steamworks.RegisterCallback(c, func(cb steamworks.UserStatsStored) {
		select {
		case done <- cb.Result.Err():
		default:
		}
	})
	defer reg.Unregister()

	err := a.pumpUntil(ctx, c, done)
	vtx.Done(err)
	if err != nil {
		return zerr.Wrap(err, "failed to store stats")
	}
	return nil
}

// pumpUntil drains the callback queue until done yields a result or ctx
// expires.
func (a *App) pumpUntil(ctx context.Context, c *steamworks.Client, done <-chan error) error {
	tick := time.NewTicker(pumpInterval)
	defer tick.Stop()
	for {
		c.RunCallbacks()
		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return zerr.With(steamworks.ErrTimeout, "cause", ctx.Err().Error())
		case <-tick.C:
		}
	}
}

// Info describes the current user and client environment.
type Info struct {
	SteamID    steamworks.SteamId
	Persona    string
	Level      uint32
	LoggedOn   bool
	AppID      steamworks.AppId
	Country    string
	Language   string
	ServerTime time.Time
	SteamDeck  bool
}

// Info returns the current user and client environment.
func (a *App) Info(ctx context.Context) (*Info, error) {
	var info *Info
	err := a.withClient(ctx, func(ctx context.Context, c *steamworks.Client) error {
		info = &Info{
			SteamID:    c.User().SteamID(),
			Persona:    c.Friends().Name(),
			Level:      c.User().Level(),
			LoggedOn:   c.User().LoggedOn(),
			AppID:      c.Utils().AppID(),
			Country:    c.Utils().IPCountry(),
			Language:   c.Utils().UILanguage(),
			ServerTime: c.Utils().ServerRealTime(),
			SteamDeck:  c.Utils().IsSteamRunningOnSteamDeck(),
		}
		return nil
	})
	return info, err
}

// FriendInfo is one row of the friends listing.
type FriendInfo struct {
	ID       steamworks.SteamId
	Name     string
	Nickname string
	// AvatarBytes is the size of the fetched avatar, 0 when not fetched or
	// not yet available.
	AvatarBytes int
}

// Friends lists the current user's immediate friends. With avatars enabled
// the avatar images are resolved concurrently.
func (a *App) Friends(ctx context.Context, withAvatars bool) ([]FriendInfo, error) {
	var rows []FriendInfo
	err := a.withClient(ctx, func(ctx context.Context, c *steamworks.Client) error {
		friends := c.Friends().GetFriends(steamworks.FriendFlagImmediate)
		rows = make([]FriendInfo, len(friends))

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(avatarFetchers)
		for i, fr := range friends {
			g.Go(func() error {
				row := FriendInfo{ID: fr.ID(), Name: fr.Name()}
				if nick, ok := fr.NickName(); ok {
					row.Nickname = nick
				}
				if withAvatars {
					if rgba, ok := a.avatarFor(fr); ok {
						row.AvatarBytes = len(rgba)
					}
				}
				rows[i] = row
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
		return nil
	})
	return rows, err
}

func (a *App) avatarFor(fr steamworks.Friend) ([]byte, bool) {
	switch a.cfg.Avatar {
	case "small":
		return fr.SmallAvatar()
	case "large":
		return fr.LargeAvatar()
	default:
		return fr.MediumAvatar()
	}
}

// AchievementInfo is one row of the achievements listing.
type AchievementInfo struct {
	Name        string
	DisplayName string
	Description string
	Hidden      bool
	Achieved    bool
	UnlockTime  time.Time
	// GlobalPercent is negative when global percentages were not fetched.
	GlobalPercent float32
}

// Achievements lists every achievement of the configured app together with
// the current user's unlock state. With global enabled the worldwide unlock
// percentages are fetched as well.
func (a *App) Achievements(ctx context.Context, global bool) ([]AchievementInfo, error) {
	var rows []AchievementInfo
	err := a.withClient(ctx, func(ctx context.Context, c *steamworks.Client) error {
		if err := a.syncStats(ctx, c); err != nil {
			return err
		}
		if global {
			if err := a.syncGlobalPercentages(ctx, c); err != nil {
				return err
			}
		}

		names, err := c.UserStats().AchievementNames()
		if err != nil {
			return err
		}
		rows = make([]AchievementInfo, 0, len(names))
		for _, name := range names {
			ach := c.UserStats().Achievement(name)
			row := AchievementInfo{Name: name, GlobalPercent: -1}

			achieved, unlockTime, err := ach.State()
			if err != nil {
				return err
			}
			row.Achieved = achieved
			row.UnlockTime = unlockTime

			// Display attributes are best effort; apps localize them lazily.
			if v, err := ach.DisplayName(); err == nil {
				row.DisplayName = v
			}
			if v, err := ach.Description(); err == nil {
				row.Description = v
			}
			if v, err := ach.Hidden(); err == nil {
				row.Hidden = v
			}
			if global {
				if pct, err := ach.GlobalAchievedPercent(); err == nil {
					row.GlobalPercent = pct
				}
			}
			rows = append(rows, row)
		}
		return nil
	})
	return rows, err
}

func (a *App) syncGlobalPercentages(ctx context.Context, c *steamworks.Client) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	_, vtx := a.tel.Record(ctx, "steam: fetch global achievement percentages")

	done := make(chan error, 1)
	c.UserStats().RequestGlobalAchievementPercentages(func(_ steamworks.GameId, err error) {
		select {
		case done <- err:
		default:
		}
	})

	err := a.pumpUntil(ctx, c, done)
	vtx.Done(err)
	if err != nil {
		return zerr.Wrap(err, "failed to fetch global achievement percentages")
	}
	return nil
}

// Unlock unlocks an achievement and commits it to the servers. The overlay
// notification pops once the store is acknowledged.
func (a *App) Unlock(ctx context.Context, name string) error {
	return a.mutateAchievement(ctx, name, func(ach steamworks.Achievement) error {
		return ach.Set()
	})
}

// Relock locks an achievement again and commits it to the servers.
func (a *App) Relock(ctx context.Context, name string) error {
	return a.mutateAchievement(ctx, name, func(ach steamworks.Achievement) error {
		return ach.Clear()
	})
}

func (a *App) mutateAchievement(ctx context.Context, name string, mutate func(steamworks.Achievement) error) error {
	return a.withClient(ctx, func(ctx context.Context, c *steamworks.Client) error {
		if err := a.syncStats(ctx, c); err != nil {
			return err
		}
		if err := mutate(c.UserStats().Achievement(name)); err != nil {
			return err
		}
		if err := c.UserStats().StoreStats(); err != nil {
			return err
		}
		return a.waitStored(ctx, c)
	})
}

// StatValue returns the value of a stat, formatted for display. Float stats
// must be requested as such; the SDK refuses type-mismatched reads.
func (a *App) StatValue(ctx context.Context, name string, float bool) (string, error) {
	var value string
	err := a.withClient(ctx, func(ctx context.Context, c *steamworks.Client) error {
		if err := a.syncStats(ctx, c); err != nil {
			return err
		}
		if float {
			v, err := c.UserStats().GetStatFloat(name)
			if err != nil {
				return err
			}
			value = strconv.FormatFloat(float64(v), 'f', -1, 32)
			return nil
		}
		v, err := c.UserStats().GetStatInt(name)
		if err != nil {
			return err
		}
		value = strconv.FormatInt(int64(v), 10)
		return nil
	})
	return value, err
}

// SetStat updates a stat and commits it to the servers. Values parsing as
// integers update INT stats; everything else is tried as a FLOAT stat.
func (a *App) SetStat(ctx context.Context, name, value string) error {
	return a.withClient(ctx, func(ctx context.Context, c *steamworks.Client) error {
		if err := a.syncStats(ctx, c); err != nil {
			return err
		}
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			if err := c.UserStats().SetStatInt(name, int32(i)); err != nil {
				return err
			}
		} else {
			f, err := strconv.ParseFloat(value, 32)
			if err != nil {
				return zerr.With(zerr.New("stat value is neither int nor float"), "value", value)
			}
			if err := c.UserStats().SetStatFloat(name, float32(f)); err != nil {
				return err
			}
		}
		if err := c.UserStats().StoreStats(); err != nil {
			return err
		}
		return a.waitStored(ctx, c)
	})
}

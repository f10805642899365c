package steamworks

import (
	"os"
	"strconv"
	"sync"

	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/native"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
	"github.com/steamachievementnotifier/steamworks-go/internal/dispatch"
	"go.trai.ch/zerr"
)

// The native SDK keeps one global instance per process. processSlot holds
// the client that currently owns it.
var (
	processMu   sync.Mutex
	processSlot *Client
)

// Client is a handle to an initialized Steam API instance.
type Client struct {
	api  ports.SteamAPI
	log  ports.Logger
	disp *dispatch.Dispatcher

	friends *Friends
	user    *User
	stats   *UserStats
	utils   *Utils
}

// Init initializes the Steam API for the given app id and returns the
// process's client. Pass 0 to use the app id of the environment the process
// was launched in (a steam_appid.txt file or Steam itself).
//
// Returns ErrAlreadyInitialized if a previous client has not been shut
// down, and ErrSteamNotRunning if the Steam client is unreachable.
func Init(appID AppId) (*Client, error) {
	log := logger.New()
	return initClient(native.New(log), log, telemetry.NewNoOp(), appID)
}

func initClient(api ports.SteamAPI, log ports.Logger, tel ports.Telemetry, appID AppId) (*Client, error) {
	processMu.Lock()
	defer processMu.Unlock()
	if processSlot != nil {
		return nil, ErrAlreadyInitialized
	}

	if appID != 0 {
		// The native side reads the app id from the environment when the
		// process was not launched through Steam.
		id := strconv.FormatUint(uint64(appID), 10)
		os.Setenv("SteamAppId", id)
		os.Setenv("SteamGameId", id)
	}

	if err := api.Init(); err != nil {
		return nil, zerr.With(ErrSteamNotRunning, "cause", err.Error())
	}

	c := &Client{
		api:  api,
		log:  log,
		disp: dispatch.New(api.Dispatch(), log, tel),
	}
	c.friends = newFriends(api.Friends(), api.Utils(), log)
	c.user = &User{api: api.User()}
	c.stats = newUserStats(api.UserStats(), c.disp)
	c.utils = &Utils{api: api.Utils()}

	processSlot = c
	return c, nil
}

// Shutdown releases the Steam API. The client and everything derived from
// it must not be used afterwards.
func (c *Client) Shutdown() {
	processMu.Lock()
	defer processMu.Unlock()
	if processSlot != c {
		return
	}
	c.api.Shutdown()
	processSlot = nil
}

// RunCallbacks pumps the callback queue once, delivering pending callbacks
// and completed call results to their handlers. Handlers run synchronously
// on the calling goroutine. Games call this once per frame.
func (c *Client) RunCallbacks() {
	c.disp.RunFrame()
}

// Friends returns the friends interface.
func (c *Client) Friends() *Friends { return c.friends }

// User returns the user interface.
func (c *Client) User() *User { return c.user }

// UserStats returns the stats and achievements interface.
func (c *Client) UserStats() *UserStats { return c.stats }

// Utils returns the utils interface.
func (c *Client) Utils() *Utils { return c.utils }

// RestartAppIfNecessary asks Steam to relaunch the app through the Steam
// client if it was not started by it. When it returns true the process
// should exit immediately.
func RestartAppIfNecessary(appID AppId) bool {
	log := logger.New()
	return native.New(log).RestartAppIfNecessary(uint32(appID))
}

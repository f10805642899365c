package app

import (
	"context"
	"testing"

	steamworks "github.com/steamachievementnotifier/steamworks-go"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/config"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newTestApp() *App {
	return New(config.Default(), logger.New(), telemetry.NewNoOp())
}

func TestNewWiresConnector(t *testing.T) {
	a := newTestApp()
	require.NotNil(t, a.connect)
}

func TestConnectFailurePropagates(t *testing.T) {
	a := newTestApp()
	a.connect = func(steamworks.AppId) (*steamworks.Client, error) {
		return nil, zerr.New("steam is not running")
	}

	_, err := a.Info(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize the Steam API")

	_, err = a.Friends(context.Background(), false)
	assert.Error(t, err)

	_, err = a.Achievements(context.Background(), false)
	assert.Error(t, err)

	assert.Error(t, a.Unlock(context.Background(), "ACH_ONE"))
	assert.Error(t, a.Relock(context.Background(), "ACH_ONE"))

	_, err = a.StatValue(context.Background(), "games_played", false)
	assert.Error(t, err)

	assert.Error(t, a.SetStat(context.Background(), "games_played", "3"))
}

func TestConnectUsesConfiguredAppID(t *testing.T) {
	cfg := config.Default()
	cfg.AppID = 620
	a := New(cfg, logger.New(), telemetry.NewNoOp())

	var gotAppID steamworks.AppId
	a.connect = func(id steamworks.AppId) (*steamworks.Client, error) {
		gotAppID = id
		return nil, zerr.New("stop here")
	}

	_, _ = a.Info(context.Background())
	assert.Equal(t, steamworks.AppId(620), gotAppID)
}

package commands_test

import (
	"context"
	"testing"

	"github.com/steamachievementnotifier/steamworks-go/cmd/steamctl/commands"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/config"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	"github.com/steamachievementnotifier/steamworks-go/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCLI() *commands.CLI {
	a := app.New(config.Default(), logger.New(), telemetry.NewNoOp())
	return commands.New(a)
}

func TestVersionCommand(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestHelp(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"--help"})

	err := cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestUnknownCommand(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"does-not-exist"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestAchievementsUnlockRequiresName(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"achievements", "unlock"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestStatsSetRequiresValue(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"stats", "set", "games_played"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}

package app

import (
	"github.com/steamachievementnotifier/steamworks-go/internal/adapters/config"
	"github.com/steamachievementnotifier/steamworks-go/internal/core/ports"
)

// Components contains all the initialized application components. This
// struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Config    *config.Config
	Telemetry ports.Telemetry
}

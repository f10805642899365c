// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/steamachievementnotifier/steamworks-go/internal/adapters/config"
	_ "github.com/steamachievementnotifier/steamworks-go/internal/adapters/logger"
	_ "github.com/steamachievementnotifier/steamworks-go/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/steamachievementnotifier/steamworks-go/internal/app"
)

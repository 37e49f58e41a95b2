package bootstrap

import (
	"time"

	"room-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the zone wall-clock request times are interpreted in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}

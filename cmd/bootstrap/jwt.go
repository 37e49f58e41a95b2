package bootstrap

import (
	"fmt"
	"time"

	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}
	if refresh <= access {
		return nil, fmt.Errorf("JWT_REFRESH_TOKEN_DURATION (%s) must exceed JWT_ACCESS_TOKEN_DURATION (%s)", refresh, access)
	}

	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}

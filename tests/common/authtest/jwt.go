//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the secret the app under test uses.
type JWTHelper struct {
	secret  string
	refresh time.Duration
	service *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err)

	return &JWTHelper{
		secret:  cfg.Secret,
		refresh: refresh,
		service: jwt.NewService(cfg.Secret, access, refresh),
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, time.Millisecond, h.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

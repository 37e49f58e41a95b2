//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/infra/memory"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (commands.AuthCommands, *jwt.Service, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	active, err := builder.NewUserBuilder().WithEmail("alice@example.com").WithPasswordHash(hash).BuildDomain()
	require.NoError(t, err)
	inactive, err := builder.NewUserBuilder().WithEmail("gone@example.com").WithPasswordHash(hash).AsInactive().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, store.AddUser(ctx, active))
	require.NoError(t, store.AddUser(ctx, inactive))

	jwtService := jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, time.Hour)
	cmds := commands.NewAuthCommands(store, memory.NewUserReadStore(store), jwtService, clock.NewMockClock(now))
	return cmds, jwtService, store
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	cmds, jwtService, _ := newAuthFixture(t)

	t.Run("正常系: 正しい認証情報でトークンが発行される", func(t *testing.T) {
		result, err := cmds.Login(ctx, commands.LoginInput{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, user.RoleSalarie, result.Role)

		claims, err := jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("正常系: メールアドレスの大文字小文字は区別しない", func(t *testing.T) {
		_, err := cmds.Login(ctx, commands.LoginInput{Email: "Alice@Example.com", Password: "password123"})
		require.NoError(t, err)
	})

	t.Run("異常系: パスワード違いは ErrInvalidCredentials", func(t *testing.T) {
		_, err := cmds.Login(ctx, commands.LoginInput{Email: "alice@example.com", Password: "wrong-password"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials), "%v", err)
	})

	t.Run("異常系: 未登録のメールも ErrInvalidCredentials", func(t *testing.T) {
		_, err := cmds.Login(ctx, commands.LoginInput{Email: "nobody@example.com", Password: "password123"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials), "%v", err)
	})

	t.Run("異常系: 無効化されたユーザーは ErrUserInactive", func(t *testing.T) {
		_, err := cmds.Login(ctx, commands.LoginInput{Email: "gone@example.com", Password: "password123"})
		assert.True(t, errs.Is(err, commands.ErrUserInactive), "%v", err)
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()
	cmds, _, _ := newAuthFixture(t)

	login, err := cmds.Login(ctx, commands.LoginInput{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("正常系: リフレッシュトークンで新しいペアを得る", func(t *testing.T) {
		pair, err := cmds.RefreshToken(ctx, login.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("異常系: アクセストークンは使えない", func(t *testing.T) {
		_, err := cmds.RefreshToken(ctx, login.TokenPair.AccessToken)
		assert.True(t, errs.Is(err, commands.ErrTokenValidation), "%v", err)
	})

	t.Run("異常系: 改ざんされたトークンは ErrTokenValidation", func(t *testing.T) {
		_, err := cmds.RefreshToken(ctx, login.TokenPair.RefreshToken+"x")
		assert.True(t, errs.Is(err, commands.ErrTokenValidation), "%v", err)
	})
}

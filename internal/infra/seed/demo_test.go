//go:build unit

package seed_test

import (
	"io"
	"log/slog"
	"testing"

	"room-reservation/internal/infra/memory"
	"room-reservation/internal/infra/seed"
	"room-reservation/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("部屋とアカウントが投入され、再実行しても重複しない", func(t *testing.T) {
		store := memory.NewStore()
		ctx := t.Context()

		require.NoError(t, seed.Demo(ctx, store, "demo-pass-123", logger))
		require.NoError(t, seed.Demo(ctx, store, "demo-pass-123", logger))

		rooms, err := memory.NewRoomReadStore(store).List(ctx)
		require.NoError(t, err)
		assert.Len(t, rooms, 3)

		admin, hash, err := memory.NewUserReadStore(store).FindByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, "admin", admin.Role)
		assert.NoError(t, password.ComparePassword(hash, "demo-pass-123"))
	})
}

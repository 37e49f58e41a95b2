//go:build unit

package readstore

import (
	"context"
	"math/big"
	"testing"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomReadQueries struct {
	mock.Mock
}

func (m *MockRoomReadQueries) FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func (m *MockRoomReadQueries) ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Rooms), args.Error(1)
}

func TestRoomReadStore(t *testing.T) {
	// 24.50 as NUMERIC(10,2)
	area := pgtype.Numeric{Int: big.NewInt(2450), Exp: -2, Valid: true}
	row := sqlc.Rooms{ID: uuid.New(), Name: "Salle Lumière", Capacity: 8, Area: area}

	t.Run("部屋の取得", func(t *testing.T) {
		mockQueries := new(MockRoomReadQueries)
		mockQueries.On("FindRoomByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewRoomReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, "Salle Lumière", view.Name)
		assert.Equal(t, 8, view.Capacity)
		assert.InDelta(t, 24.5, view.Area, 1e-9)
	})

	t.Run("存在しない部屋", func(t *testing.T) {
		mockQueries := new(MockRoomReadQueries)
		mockQueries.On("FindRoomByID", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Rooms{}, pgx.ErrNoRows)

		_, err := NewRoomReadStore(mockQueries, nil).FindByID(context.Background(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("一覧", func(t *testing.T) {
		mockQueries := new(MockRoomReadQueries)
		mockQueries.On("ListRooms", mock.Anything, mock.Anything).Return([]sqlc.Rooms{row, {ID: uuid.New(), Name: "Atelier", Capacity: 3, Area: area}}, nil)

		views, err := NewRoomReadStore(mockQueries, nil).List(context.Background())
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})
}

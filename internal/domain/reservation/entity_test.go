//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationLifecycle(t *testing.T) {
	roomID, ownerID := uuid.New(), uuid.New()
	now := at(8, 0)

	t.Run("作成直後はactive", func(t *testing.T) {
		r, err := reservation.NewReservation(roomID, ownerID, mustSlot(t, at(10, 0), at(11, 0)), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatusActive, r.Status())
		assert.True(t, r.IsActive())
		assert.Nil(t, r.CancelledAt())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("部屋・所有者なしNG", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.Nil, ownerID, mustSlot(t, at(10, 0), at(11, 0)), now)
		require.ErrorIs(t, err, reservation.ErrMissingReference)
	})

	t.Run("キャンセルは論理削除で終端状態", func(t *testing.T) {
		r, err := reservation.NewReservation(roomID, ownerID, mustSlot(t, at(10, 0), at(11, 0)), now)
		require.NoError(t, err)
		id := r.ID()

		require.NoError(t, r.Cancel(now.Add(time.Minute)))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
		require.NotNil(t, r.CancelledAt())
		assert.Equal(t, id, r.ID())

		require.ErrorIs(t, r.Cancel(now.Add(2*time.Minute)), reservation.ErrAlreadyCancelled)
		require.ErrorIs(t, r.Reschedule(roomID, mustSlot(t, at(12, 0), at(13, 0)), now), reservation.ErrAlreadyCancelled)
	})

	t.Run("変更しても所有者とIDは不変", func(t *testing.T) {
		r, err := reservation.NewReservation(roomID, ownerID, mustSlot(t, at(10, 0), at(11, 0)), now)
		require.NoError(t, err)
		id := r.ID()
		otherRoom := uuid.New()
		newSlot := mustSlot(t, at(14, 0), at(15, 0))

		require.NoError(t, r.Reschedule(otherRoom, newSlot, now.Add(time.Hour)))
		assert.Equal(t, id, r.ID())
		assert.Equal(t, ownerID, r.OwnerID())
		assert.Equal(t, otherRoom, r.RoomID())
		assert.True(t, r.Slot().Equal(newSlot))
		assert.Equal(t, now.Add(time.Hour), r.UpdatedAt())
	})
}

func TestRequester(t *testing.T) {
	ownerID := uuid.New()
	r, err := reservation.NewReservation(uuid.New(), ownerID, mustSlot(t, at(10, 0), at(11, 0)), at(8, 0))
	require.NoError(t, err)

	tests := []struct {
		name      string
		requester reservation.Requester
		want      bool
	}{
		{name: "所有者OK", requester: reservation.Requester{ID: ownerID}, want: true},
		{name: "他のスタッフNG", requester: reservation.Requester{ID: uuid.New()}, want: false},
		{name: "管理者OK", requester: reservation.Requester{ID: uuid.New(), Privileged: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.requester.CanModify(r))
		})
	}

	t.Run("一覧の所有者フィルタ", func(t *testing.T) {
		staff := reservation.Requester{ID: uuid.New()}
		admin := reservation.Requester{ID: uuid.New(), Privileged: true}
		other := uuid.New()

		assert.Equal(t, staff.ID, *staff.OwnerScope(nil))
		assert.Equal(t, staff.ID, *staff.OwnerScope(&other))
		assert.Nil(t, admin.OwnerScope(nil))
		assert.Equal(t, other, *admin.OwnerScope(&other))
	})
}

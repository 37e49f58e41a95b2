//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 3, 14, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "開始 < 終了OK", start: at(10, 0), end: at(11, 0)},
		{name: "1分だけの枠OK", start: at(10, 0), end: at(10, 1)},
		{name: "開始 = 終了NG", start: at(10, 0), end: at(10, 0), errIs: reservation.ErrInvalidTimeSlot},
		{name: "開始 > 終了NG", start: at(11, 0), end: at(10, 0), errIs: reservation.ErrInvalidTimeSlot},
		{name: "過去の枠OK", start: time.Date(2001, 1, 1, 9, 0, 0, 0, time.UTC), end: time.Date(2001, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := reservation.NewTimeSlot(tt.start, tt.end)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, slot.Start())
			assert.Equal(t, tt.end, slot.End())
			assert.Equal(t, tt.end.Sub(tt.start), slot.Duration())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]time.Time
		b    [2]time.Time
		want bool
	}{
		{name: "境界で接するだけなら重複しない", a: [2]time.Time{at(10, 0), at(11, 0)}, b: [2]time.Time{at(11, 0), at(12, 0)}, want: false},
		{name: "部分的な重複", a: [2]time.Time{at(10, 0), at(12, 0)}, b: [2]time.Time{at(11, 0), at(13, 0)}, want: true},
		{name: "内包", a: [2]time.Time{at(9, 0), at(18, 0)}, b: [2]time.Time{at(12, 0), at(13, 0)}, want: true},
		{name: "同一区間", a: [2]time.Time{at(10, 0), at(11, 0)}, b: [2]time.Time{at(10, 0), at(11, 0)}, want: true},
		{name: "離れた区間", a: [2]time.Time{at(8, 0), at(9, 0)}, b: [2]time.Time{at(10, 0), at(11, 0)}, want: false},
		{name: "1分だけ重複", a: [2]time.Time{at(10, 0), at(11, 1)}, b: [2]time.Time{at(11, 0), at(12, 0)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustSlot(t, tt.a[0], tt.a[1])
			b := mustSlot(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			// symmetry
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		})
	}
}

func TestParseLocalTimeSlot(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	const layout = "2006-01-02T15:04"

	t.Run("ローカル時刻として解釈される", func(t *testing.T) {
		slot, err := reservation.ParseLocalTimeSlot("2030-07-01T10:00", "2030-07-01T11:30", layout, paris)
		require.NoError(t, err)

		// CEST is UTC+2 in July
		assert.True(t, slot.Start().Equal(time.Date(2030, 7, 1, 8, 0, 0, 0, time.UTC)))
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})

	t.Run("不正な形式NG", func(t *testing.T) {
		_, err := reservation.ParseLocalTimeSlot("01/07/2030 10:00", "2030-07-01T11:00", layout, paris)
		require.ErrorIs(t, err, reservation.ErrInvalidDateFormat)
		assert.NotErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("終了が開始以前NG", func(t *testing.T) {
		_, err := reservation.ParseLocalTimeSlot("2030-07-01T11:00", "2030-07-01T10:00", layout, paris)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
		assert.NotErrorIs(t, err, reservation.ErrInvalidDateFormat)
	})
}

//go:build unit

package rental_test

import (
	"testing"
	"time"

	"boxrent/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange(t *testing.T) {
	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := rental.NewDateRange(date(2026, 2, 1), date(2026, 1, 1))
		assert.ErrorIs(t, err, rental.ErrInvalidDateRange)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		r, err := rental.NewDateRange(date(2026, 1, 15), date(2026, 1, 15))
		require.NoError(t, err)
		assert.Equal(t, r.Start(), r.End())
	})

	t.Run("normalizes to midnight UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		r, err := rental.NewDateRange(
			time.Date(2026, 1, 15, 23, 30, 0, 0, jst),
			time.Date(2026, 1, 20, 1, 0, 0, 0, jst),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 1, 15), r.Start())
		assert.Equal(t, time.UTC, r.Start().Location())
	})

	t.Run("overlap is closed at endpoints", func(t *testing.T) {
		a, _ := rental.NewDateRange(date(2026, 1, 1), date(2026, 1, 31))
		b, _ := rental.NewDateRange(date(2026, 1, 31), date(2026, 2, 28))
		c, _ := rental.NewDateRange(date(2026, 2, 1), date(2026, 2, 28))

		assert.True(t, a.Overlaps(b), "ranges sharing an endpoint overlap")
		assert.True(t, b.Overlaps(a), "overlap is symmetric")
		assert.False(t, a.Overlaps(c))
		assert.False(t, c.Overlaps(a))
	})

	t.Run("contains includes endpoints", func(t *testing.T) {
		r, _ := rental.NewDateRange(date(2026, 1, 1), date(2026, 1, 31))
		assert.True(t, r.Contains(date(2026, 1, 1)))
		assert.True(t, r.Contains(date(2026, 1, 31)))
		assert.False(t, r.Contains(date(2026, 2, 1)))
		assert.False(t, r.Contains(date(2025, 12, 31)))
	})
}

func TestScheduleSlot(t *testing.T) {
	t.Run("parses HH:MM", func(t *testing.T) {
		s, err := rental.NewScheduleSlot(time.Monday, "09:00", "12:30", true)
		require.NoError(t, err)
		assert.Equal(t, 540, s.StartMinutes())
		assert.Equal(t, 750, s.EndMinutes())
		assert.Equal(t, "09:00", s.StartTime())
		assert.Equal(t, "12:30", s.EndTime())
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		for _, tc := range []struct{ start, end string }{
			{"9am", "12:00"},
			{"09:00", "25:00"},
			{"09:60", "12:00"},
		} {
			_, err := rental.NewScheduleSlot(time.Monday, tc.start, tc.end, true)
			assert.ErrorIs(t, err, rental.ErrInvalidTimeFormat, "%s-%s", tc.start, tc.end)
		}
	})

	t.Run("rejects inverted or empty interval", func(t *testing.T) {
		_, err := rental.NewScheduleSlot(time.Monday, "12:00", "09:00", true)
		assert.ErrorIs(t, err, rental.ErrInvalidSlotTime)

		_, err = rental.NewScheduleSlot(time.Monday, "09:00", "09:00", true)
		assert.ErrorIs(t, err, rental.ErrInvalidSlotTime)
	})

	t.Run("back-to-back slots do not overlap", func(t *testing.T) {
		morning, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:00", true)
		afternoon, _ := rental.NewScheduleSlot(time.Monday, "12:00", "15:00", true)

		assert.False(t, morning.Overlaps(afternoon))
		assert.False(t, afternoon.Overlaps(morning))
	})

	t.Run("one minute of sharing overlaps", func(t *testing.T) {
		a, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:01", true)
		b, _ := rental.NewScheduleSlot(time.Monday, "12:00", "15:00", true)

		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("different weekdays never overlap", func(t *testing.T) {
		mon, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:00", true)
		tue, _ := rental.NewScheduleSlot(time.Tuesday, "09:00", "12:00", true)
		assert.False(t, mon.Overlaps(tue))
	})

	t.Run("inactive slots never overlap", func(t *testing.T) {
		active, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:00", true)
		inactive, _ := rental.NewScheduleSlot(time.Monday, "10:00", "11:00", false)

		assert.False(t, active.Overlaps(inactive))
		assert.False(t, inactive.Overlaps(active))
	})
}

func TestWeeklySchedule(t *testing.T) {
	t.Run("empty schedule is rejected", func(t *testing.T) {
		_, err := rental.NewWeeklySchedule(nil)
		assert.ErrorIs(t, err, rental.ErrEmptySchedule)
	})

	t.Run("self-overlapping schedule is rejected", func(t *testing.T) {
		a, _ := rental.NewScheduleSlot(time.Wednesday, "09:00", "12:00", true)
		b, _ := rental.NewScheduleSlot(time.Wednesday, "11:00", "14:00", true)

		_, err := rental.NewWeeklySchedule([]rental.ScheduleSlot{a, b})
		assert.ErrorIs(t, err, rental.ErrScheduleSelfOverlap)
	})

	t.Run("orders slots by weekday then start", func(t *testing.T) {
		fri, _ := rental.NewScheduleSlot(time.Friday, "09:00", "12:00", true)
		monLate, _ := rental.NewScheduleSlot(time.Monday, "14:00", "16:00", true)
		monEarly, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:00", true)

		ws, err := rental.NewWeeklySchedule([]rental.ScheduleSlot{fri, monLate, monEarly})
		require.NoError(t, err)
		assert.Equal(t, rental.WeeklySchedule{monEarly, monLate, fri}, ws)
	})

	t.Run("SlotsFor filters weekday and inactive", func(t *testing.T) {
		mon, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:00", true)
		monOff, _ := rental.NewScheduleSlot(time.Monday, "14:00", "16:00", false)
		tue, _ := rental.NewScheduleSlot(time.Tuesday, "09:00", "12:00", true)

		ws, err := rental.NewWeeklySchedule([]rental.ScheduleSlot{mon, monOff, tue})
		require.NoError(t, err)

		assert.Equal(t, []rental.ScheduleSlot{mon}, ws.SlotsFor(time.Monday))
		assert.Empty(t, ws.SlotsFor(time.Sunday))
	})
}

func TestMoney(t *testing.T) {
	_, err := rental.NewMoney(-1)
	assert.ErrorIs(t, err, rental.ErrNegativeAmount)

	m, err := rental.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Cents())
}

//go:build unit

package rental_test

import (
	"testing"
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, rental.StatusPending, r.Status())
		assert.Nil(t, r.NextRenewalDate())
		assert.Nil(t, r.CancelledAt())
		assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
	})

	t.Run("rejects unknown duration class", func(t *testing.T) {
		_, err := builder.NewRentalBuilder().
			WithDurationClass(rental.DurationClass("WEEKLY")).
			BuildDomain()
		assert.ErrorIs(t, err, rental.ErrInvalidDurationClass)
	})
}

func TestRentalCancel(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("stamps reason and kills auto-renew", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().WithAutoRenew(true).BuildActive()
		require.NoError(t, err)

		require.NoError(t, r.Cancel("tenant moved out", now))

		assert.Equal(t, rental.StatusCancelled, r.Status())
		require.NotNil(t, r.CancellationReason())
		assert.Equal(t, "tenant moved out", *r.CancellationReason())
		require.NotNil(t, r.CancelledAt())
		assert.Equal(t, now, *r.CancelledAt())
		assert.False(t, r.AutoRenew())
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildActive()
		require.NoError(t, err)

		require.NoError(t, r.Cancel("first", now))
		err = r.Cancel("second", now.Add(time.Hour))
		assert.ErrorIs(t, err, rental.ErrAlreadyCancelled)
		assert.Equal(t, "first", *r.CancellationReason())
	})

	t.Run("expired rental cannot be cancelled", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildActive()
		require.NoError(t, err)
		require.NoError(t, r.MarkExpired(now))

		err = r.Cancel("too late", now)
		assert.ErrorIs(t, err, rental.ErrInvalidTransition)
	})
}

func TestRentalRenew(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	t.Run("extends end date by class offset", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().
			WithDates(date(2026, 1, 1), date(2026, 1, 31)).
			BuildActive()
		require.NoError(t, err)

		require.NoError(t, r.Renew(now))

		assert.Equal(t, date(2026, 2, 28), r.DateRange().End())
		assert.Equal(t, date(2026, 1, 1), r.DateRange().Start())
		require.NotNil(t, r.NextRenewalDate())
		assert.Equal(t, now, *r.NextRenewalDate())
	})

	t.Run("only active rentals renew", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, r.Renew(now), rental.ErrNotActive)
	})

	t.Run("custom class renewal fails", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().
			WithDurationClass(rental.DurationCustom).
			BuildActive()
		require.NoError(t, err)

		assert.ErrorIs(t, r.Renew(now), rental.ErrUnsupportedRenewal)
	})
}

func TestRentalChangeStatus(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("suspend and resume", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildActive()
		require.NoError(t, err)

		require.NoError(t, r.ChangeStatus(rental.StatusSuspended, now))
		require.NoError(t, r.ChangeStatus(rental.StatusActive, now.Add(time.Hour)))
		assert.Equal(t, rental.StatusActive, r.Status())
	})

	t.Run("pending cannot expire", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, r.MarkExpired(now), rental.ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildActive()
		require.NoError(t, err)

		assert.ErrorIs(t, r.ChangeStatus(rental.Status("PAUSED"), now), rental.ErrInvalidStatus)
	})
}

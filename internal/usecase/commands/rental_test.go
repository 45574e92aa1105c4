//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/internal/domain/user"
	"boxrent/internal/infra"
	"boxrent/internal/pkg/clock"
	"boxrent/internal/usecase/commands"
	"boxrent/internal/usecase/queries"
	"boxrent/internal/usecase/shared"
	"boxrent/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory fakes -------------------------------------------------------

type fakeRentalRepo struct {
	rentals map[uuid.UUID]*rental.Rental
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[uuid.UUID]*rental.Rental)}
}

func (f *fakeRentalRepo) Create(_ context.Context, r *rental.Rental) error {
	f.rentals[r.ID()] = r
	return nil
}

func (f *fakeRentalRepo) Update(_ context.Context, r *rental.Rental) error {
	if _, ok := f.rentals[r.ID()]; !ok {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	f.rentals[r.ID()] = r
	return nil
}

func (f *fakeRentalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rentals[id]; !ok {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	delete(f.rentals, id)
	return nil
}

func (f *fakeRentalRepo) FindByID(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return r, nil
}

func (f *fakeRentalRepo) FindOccupyingByResource(_ context.Context, resourceID uuid.UUID) ([]*rental.Rental, error) {
	var out []*rental.Rental
	for _, r := range f.rentals {
		if r.ResourceID() == resourceID && r.Status().Occupies() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) FindActiveEndedBefore(_ context.Context, cutoff time.Time) ([]*rental.Rental, error) {
	var out []*rental.Rental
	for _, r := range f.rentals {
		if r.Status() == rental.StatusActive && r.DateRange().End().Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

type notificationJob struct {
	kind, topic string
}

type fakeNotificationRepo struct {
	jobs []notificationJob
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, kind, topic string, _ []byte, _ time.Time) error {
	f.jobs = append(f.jobs, notificationJob{kind: kind, topic: topic})
	return nil
}

type fakeTx struct {
	rentals       *fakeRentalRepo
	notifications *fakeNotificationRepo
	locked        []uuid.UUID
}

func (t *fakeTx) LockResource(_ context.Context, resourceID uuid.UUID) error {
	t.locked = append(t.locked, resourceID)
	return nil
}

func (t *fakeTx) Rentals() shared.RentalRepository             { return t.rentals }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeReads struct {
	resources map[uuid.UUID]bool
	tenants   map[uuid.UUID]bool
}

func (f *fakeReads) ResourceExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.resources[id], nil
}

func (f *fakeReads) TenantExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.tenants[id], nil
}

// fakeViewRepo projects views straight off the write-side store.
type fakeViewRepo struct {
	rentals *fakeRentalRepo
}

func (f *fakeViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.RentalView, error) {
	r, ok := f.rentals.rentals[id]
	if !ok {
		return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return &queries.RentalView{
		ID:         r.ID(),
		ResourceID: r.ResourceID(),
		TenantID:   r.TenantID(),
		StartDate:  r.DateRange().Start(),
		EndDate:    r.DateRange().End(),
		Status:     r.Status().String(),
		AutoRenew:  r.AutoRenew(),
	}, nil
}

func (f *fakeViewRepo) FindAll(context.Context) ([]*queries.RentalListItem, error)       { return nil, nil }
func (f *fakeViewRepo) FindByStatus(context.Context, string) ([]*queries.RentalListItem, error) {
	return nil, nil
}
func (f *fakeViewRepo) FindByTenant(context.Context, uuid.UUID) ([]*queries.RentalListItem, error) {
	return nil, nil
}
func (f *fakeViewRepo) FindByResource(context.Context, uuid.UUID) ([]*queries.RentalListItem, error) {
	return nil, nil
}
func (f *fakeViewRepo) FindActiveEndingBefore(context.Context, time.Time) ([]*queries.RentalListItem, error) {
	return nil, nil
}

// --- fixture ---------------------------------------------------------------

type fixture struct {
	cmds       commands.RentalCommands
	repo       *fakeRentalRepo
	tx         *fakeTx
	reads      *fakeReads
	clock      *clock.MockClock
	resourceID uuid.UUID
	tenantID   uuid.UUID
	admin      user.Actor
	tenant     user.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newFakeRentalRepo()
	tx := &fakeTx{rentals: repo, notifications: &fakeNotificationRepo{}}
	resourceID, tenantID := uuid.New(), uuid.New()
	reads := &fakeReads{
		resources: map[uuid.UUID]bool{resourceID: true},
		tenants:   map[uuid.UUID]bool{tenantID: true},
	}
	clk := clock.NewMockClock(time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC))

	return &fixture{
		cmds:       commands.NewRentalCommands(&fakeUoW{tx: tx}, reads, &fakeViewRepo{rentals: repo}, clk),
		repo:       repo,
		tx:         tx,
		reads:      reads,
		clock:      clk,
		resourceID: resourceID,
		tenantID:   tenantID,
		admin:      user.Actor{ID: uuid.New(), Role: user.RoleAdmin},
		tenant:     user.Actor{ID: tenantID, Role: user.RoleProfessional},
	}
}

func (f *fixture) createInput() commands.CreateRentalInput {
	return commands.CreateRentalInput{
		ResourceID:    f.resourceID,
		TenantID:      f.tenantID,
		DurationClass: "MONTHLY",
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Slots: []commands.SlotInput{
			{Weekday: 1, StartTime: "09:00", EndTime: "12:00", Active: true},
		},
		MonthlyPriceCents: 50000,
		TotalPriceCents:   50000,
	}
}

func (f *fixture) seedActive(t *testing.T, weekday time.Weekday, start, end string) *rental.Rental {
	t.Helper()
	r, err := builder.NewRentalBuilder().
		WithResourceID(f.resourceID).
		WithTenantID(f.tenantID).
		WithSlot(weekday, start, end).
		WithDates(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)).
		BuildActive()
	require.NoError(t, err)
	f.repo.rentals[r.ID()] = r
	return r
}

// --- tests -----------------------------------------------------------------

func TestCreate(t *testing.T) {
	t.Run("persists, locks and notifies", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.cmds.Create(context.Background(), f.tenant, f.createInput())
		require.NoError(t, err)

		assert.Equal(t, "PENDING", view.Status)
		assert.Len(t, f.repo.rentals, 1)
		assert.Equal(t, []uuid.UUID{f.resourceID}, f.tx.locked)
		require.Len(t, f.tx.notifications.jobs, 1)
		assert.Equal(t, "rental_created", f.tx.notifications.jobs[0].topic)
	})

	t.Run("second identical booking conflicts", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Create(context.Background(), f.tenant, f.createInput())
		require.NoError(t, err)

		_, err = f.cmds.Create(context.Background(), f.tenant, f.createInput())
		require.ErrorIs(t, err, commands.ErrRentalConflict)

		var conflictErr *commands.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.Len(t, conflictErr.Groups, 1)
		assert.Equal(t, time.Monday, conflictErr.Groups[0].Weekday)

		assert.Len(t, f.repo.rentals, 1, "conflicting rental must not persist")
	})

	t.Run("back-to-back slot on the same day is clear", func(t *testing.T) {
		f := newFixture(t)
		f.seedActive(t, time.Monday, "09:00", "12:00")

		input := f.createInput()
		input.Slots = []commands.SlotInput{
			{Weekday: 1, StartTime: "12:00", EndTime: "15:00", Active: true},
		}

		_, err := f.cmds.Create(context.Background(), f.tenant, input)
		assert.NoError(t, err)
	})

	t.Run("professional cannot book for another tenant", func(t *testing.T) {
		f := newFixture(t)

		input := f.createInput()
		input.TenantID = uuid.New()

		_, err := f.cmds.Create(context.Background(), f.tenant, input)
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("admin books on behalf of a tenant", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Create(context.Background(), f.admin, f.createInput())
		assert.NoError(t, err)
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t)

		input := f.createInput()
		input.ResourceID = uuid.New()

		_, err := f.cmds.Create(context.Background(), f.tenant, input)
		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		f := newFixture(t)

		otherTenant := uuid.New()
		input := f.createInput()
		input.TenantID = otherTenant

		_, err := f.cmds.Create(context.Background(), f.admin, input)
		assert.ErrorIs(t, err, commands.ErrTenantNotFound)
	})

	t.Run("invalid input is a validation error", func(t *testing.T) {
		f := newFixture(t)

		input := f.createInput()
		input.StartDate, input.EndDate = input.EndDate, input.StartDate

		_, err := f.cmds.Create(context.Background(), f.tenant, input)
		assert.ErrorIs(t, err, commands.ErrValidation)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("footprint change re-runs conflict detection", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")
		f.seedActive(t, time.Wednesday, "14:00", "17:00")

		slots := []commands.SlotInput{
			{Weekday: 3, StartTime: "15:00", EndTime: "18:00", Active: true},
		}
		_, err := f.cmds.Update(context.Background(), f.admin, mine.ID(), commands.UpdateRentalInput{Slots: slots})
		assert.ErrorIs(t, err, commands.ErrRentalConflict)
	})

	t.Run("footprint change excludes itself", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		slots := []commands.SlotInput{
			{Weekday: 1, StartTime: "10:00", EndTime: "13:00", Active: true},
		}
		view, err := f.cmds.Update(context.Background(), f.admin, mine.ID(), commands.UpdateRentalInput{Slots: slots})
		require.NoError(t, err)
		assert.Equal(t, mine.ID(), view.ID)
		assert.Equal(t, []uuid.UUID{f.resourceID}, f.tx.locked)
	})

	t.Run("non-footprint patch skips the lock", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		autoRenew := true
		view, err := f.cmds.Update(context.Background(), f.admin, mine.ID(), commands.UpdateRentalInput{AutoRenew: &autoRenew})
		require.NoError(t, err)
		assert.True(t, view.AutoRenew)
		assert.Empty(t, f.tx.locked)
	})

	t.Run("status patch to cancelled uses cancellation path", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		status := "CANCELLED"
		reason := "duplicate booking"
		view, err := f.cmds.Update(context.Background(), f.admin, mine.ID(), commands.UpdateRentalInput{
			Status:             &status,
			CancellationReason: &reason,
		})
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", view.Status)
		require.NotNil(t, mine.CancellationReason())
		assert.Equal(t, reason, *mine.CancellationReason())
	})

	t.Run("illegal transition rejected", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		status := "PENDING"
		_, err := f.cmds.Update(context.Background(), f.admin, mine.ID(), commands.UpdateRentalInput{Status: &status})
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("professional cannot update someone else's rental", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		stranger := user.Actor{ID: uuid.New(), Role: user.RoleProfessional}
		autoRenew := true
		_, err := f.cmds.Update(context.Background(), stranger, mine.ID(), commands.UpdateRentalInput{AutoRenew: &autoRenew})
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("unknown rental", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Update(context.Background(), f.admin, uuid.New(), commands.UpdateRentalInput{})
		assert.ErrorIs(t, err, commands.ErrRentalNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels and notifies", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		view, err := f.cmds.Cancel(context.Background(), f.tenant, mine.ID(), "moving away")
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", view.Status)
		require.Len(t, f.tx.notifications.jobs, 1)
		assert.Equal(t, "rental_cancelled", f.tx.notifications.jobs[0].topic)
	})

	t.Run("cancelling twice is an invalid transition", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		_, err := f.cmds.Cancel(context.Background(), f.tenant, mine.ID(), "first")
		require.NoError(t, err)

		_, err = f.cmds.Cancel(context.Background(), f.tenant, mine.ID(), "second")
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}

func TestRenew(t *testing.T) {
	t.Run("extends the window with month-end clamping", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		view, err := f.cmds.Renew(context.Background(), f.tenant, mine.ID())
		require.NoError(t, err)

		// June 30 + 1 month.
		assert.Equal(t, time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), view.EndDate)
		assert.Equal(t, []uuid.UUID{f.resourceID}, f.tx.locked)
	})

	t.Run("custom class cannot renew", func(t *testing.T) {
		f := newFixture(t)
		r, err := builder.NewRentalBuilder().
			WithResourceID(f.resourceID).
			WithTenantID(f.tenantID).
			WithDurationClass(rental.DurationCustom).
			BuildActive()
		require.NoError(t, err)
		f.repo.rentals[r.ID()] = r

		_, err = f.cmds.Renew(context.Background(), f.tenant, r.ID())
		assert.ErrorIs(t, err, commands.ErrUnsupportedRenewal)
	})

	t.Run("extension into a newer booking conflicts", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		// Neighbor starts right after mine ends; the renewal window reaches it.
		neighbor, err := builder.NewRentalBuilder().
			WithResourceID(f.resourceID).
			WithSlot(time.Monday, "09:00", "12:00").
			WithDates(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)).
			BuildDomain()
		require.NoError(t, err)
		f.repo.rentals[neighbor.ID()] = neighbor

		_, err = f.cmds.Renew(context.Background(), f.tenant, mine.ID())
		require.ErrorIs(t, err, commands.ErrRentalConflict)
	})

	t.Run("pending rental cannot renew", func(t *testing.T) {
		f := newFixture(t)
		r, err := builder.NewRentalBuilder().
			WithResourceID(f.resourceID).
			WithTenantID(f.tenantID).
			BuildDomain()
		require.NoError(t, err)
		f.repo.rentals[r.ID()] = r

		_, err = f.cmds.Renew(context.Background(), f.tenant, r.ID())
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}

func TestRemove(t *testing.T) {
	t.Run("active rental is refused even for admins", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		err := f.cmds.Remove(context.Background(), f.admin, mine.ID())
		assert.ErrorIs(t, err, commands.ErrRemoveActiveRental)
		assert.Contains(t, f.repo.rentals, mine.ID())
	})

	t.Run("admin removes a cancelled rental", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")
		_, err := f.cmds.Cancel(context.Background(), f.admin, mine.ID(), "cleanup")
		require.NoError(t, err)

		require.NoError(t, f.cmds.Remove(context.Background(), f.admin, mine.ID()))
		assert.NotContains(t, f.repo.rentals, mine.ID())
	})

	t.Run("professional cannot remove at all", func(t *testing.T) {
		f := newFixture(t)
		mine := f.seedActive(t, time.Monday, "09:00", "12:00")

		err := f.cmds.Remove(context.Background(), f.tenant, mine.ID())
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestPreviewConflicts(t *testing.T) {
	t.Run("reports groups without writing", func(t *testing.T) {
		f := newFixture(t)
		f.seedActive(t, time.Monday, "09:00", "12:00")
		f.seedActive(t, time.Wednesday, "14:00", "17:00")

		clashing := f.createInput()
		clashing.Slots = []commands.SlotInput{
			{Weekday: 1, StartTime: "10:00", EndTime: "13:00", Active: true},
			{Weekday: 3, StartTime: "16:00", EndTime: "18:00", Active: true},
		}
		clear := f.createInput()
		clear.Slots = []commands.SlotInput{
			{Weekday: 5, StartTime: "09:00", EndTime: "12:00", Active: true},
		}

		before := len(f.repo.rentals)
		groups, err := f.cmds.PreviewConflicts(context.Background(), f.admin, []commands.CreateRentalInput{clashing, clear})
		require.NoError(t, err)

		require.Len(t, groups, 2)
		assert.Equal(t, time.Monday, groups[0].Weekday)
		assert.Equal(t, time.Wednesday, groups[1].Weekday)
		assert.Len(t, f.repo.rentals, before, "preview must not persist anything")
	})

	t.Run("no conflicts yields empty result", func(t *testing.T) {
		f := newFixture(t)

		groups, err := f.cmds.PreviewConflicts(context.Background(), f.admin, []commands.CreateRentalInput{f.createInput()})
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestErrorMarking(t *testing.T) {
	// Conflict errors carry both the sentinel and the structured detail.
	f := newFixture(t)
	f.seedActive(t, time.Monday, "09:00", "12:00")

	input := f.createInput()
	input.Slots = []commands.SlotInput{
		{Weekday: 1, StartTime: "11:00", EndTime: "14:00", Active: true},
	}

	_, err := f.cmds.Create(context.Background(), f.tenant, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrRentalConflict))

	var conflictErr *commands.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.NotEmpty(t, conflictErr.Groups)
}

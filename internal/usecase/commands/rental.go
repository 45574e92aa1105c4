package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/internal/domain/user"
	"boxrent/internal/infra"
	"boxrent/internal/pkg/clock"
	"boxrent/internal/pkg/errs"
	"boxrent/internal/pkg/patch"
	"boxrent/internal/usecase/queries"
	"boxrent/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound          = errs.New("rental not found")
	ErrResourceNotFound        = errs.New("resource not found")
	ErrTenantNotFound          = errs.New("tenant not found")
	ErrRentalConflict          = errs.New("rental conflict")
	ErrValidation              = errs.New("rental validation failed")
	ErrInvalidTransition       = errs.New("illegal status transition")
	ErrUnsupportedRenewal      = errs.New("duration class does not support renewal")
	ErrForbidden               = errs.New("actor not allowed to perform action")
	ErrRemoveActiveRental      = errs.New("active rental cannot be removed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// RentalCommands is the lifecycle manager: the single owner of rental state
// transitions. Every footprint-changing mutation runs the conflict detector
// inside a per-resource serialized transaction.
type RentalCommands interface {
	Create(ctx context.Context, actor user.Actor, input CreateRentalInput) (*queries.RentalView, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, input UpdateRentalInput) (*queries.RentalView, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) (*queries.RentalView, error)
	Renew(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.RentalView, error)
	Remove(ctx context.Context, actor user.Actor, id uuid.UUID) error
	// PreviewConflicts is the bulk dry run: it collects every conflict for
	// the given candidates, grouped by weekday and resource, without writing.
	PreviewConflicts(ctx context.Context, actor user.Actor, inputs []CreateRentalInput) ([]rental.ConflictGroup, error)
}

type rentalCommandsImpl struct {
	uow      shared.UnitOfWork
	reads    shared.CommandReads
	viewRepo queries.RentalViewRepo
	clock    clock.Clock
}

func NewRentalCommands(
	uow shared.UnitOfWork,
	reads shared.CommandReads,
	viewRepo queries.RentalViewRepo,
	clock clock.Clock,
) RentalCommands {
	return &rentalCommandsImpl{
		uow:      uow,
		reads:    reads,
		viewRepo: viewRepo,
		clock:    clock,
	}
}

func (c *rentalCommandsImpl) Create(ctx context.Context, actor user.Actor, input CreateRentalInput) (*queries.RentalView, error) {
	if !user.Authorize(actor, user.ActionCreateRental, uuid.Nil) {
		return nil, ErrForbidden
	}
	// Professionals only book boxes for themselves.
	if actor.Role == user.RoleProfessional && input.TenantID != actor.ID {
		return nil, ErrForbidden
	}

	candidate, err := c.buildRental(input)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.validateCollaborators(ctx, input.ResourceID, input.TenantID); err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockResource(ctx, candidate.ResourceID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := tx.Rentals().FindOccupyingByResource(ctx, candidate.ResourceID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := detectConflicts(candidate.Candidate(), existing, uuid.Nil); err != nil {
			return err
		}

		if err := tx.Rentals().Create(ctx, candidate); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.queueNotification(ctx, tx, "rental_created", candidate.ID())
	})
	if err != nil {
		return nil, err
	}

	return c.viewRepo.FindByID(ctx, candidate.ID())
}

func (c *rentalCommandsImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, input UpdateRentalInput) (*queries.RentalView, error) {
	var resultID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadForWrite(ctx, tx, id)
		if err != nil {
			return err
		}
		if !user.Authorize(actor, user.ActionUpdateRental, r.TenantID()) {
			return ErrForbidden
		}

		now := c.clock.Now()

		if input.touchesFootprint() {
			if err := tx.LockResource(ctx, r.ResourceID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			dateRange, schedule, err := mergedFootprint(r, input)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}

			existing, err := tx.Rentals().FindOccupyingByResource(ctx, r.ResourceID())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			candidate := rental.Candidate{
				ResourceID: r.ResourceID(),
				Range:      dateRange,
				Schedule:   schedule,
			}
			if err := detectConflicts(candidate, existing, r.ID()); err != nil {
				return err
			}

			r.Reschedule(dateRange, schedule, now)
		}

		if input.MonthlyPriceCents != nil || input.TotalPriceCents != nil {
			monthly, err := rental.NewMoney(patch.Coalesce(input.MonthlyPriceCents, r.MonthlyPrice().Cents()))
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			total, err := rental.NewMoney(patch.Coalesce(input.TotalPriceCents, r.TotalPrice().Cents()))
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			r.SetPrices(monthly, total, now)
		}

		if input.AutoRenew != nil {
			r.SetAutoRenew(*input.AutoRenew, now)
		}
		if input.SpecialConditions != nil {
			r.SetSpecialConditions(input.SpecialConditions, now)
		}

		if input.Status != nil {
			if err := applyStatusPatch(r, *input.Status, input.CancellationReason, now); err != nil {
				return err
			}
		}

		if err := tx.Rentals().Update(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resultID = r.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.viewRepo.FindByID(ctx, resultID)
}

func (c *rentalCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) (*queries.RentalView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadForWrite(ctx, tx, id)
		if err != nil {
			return err
		}
		if !user.Authorize(actor, user.ActionCancelRental, r.TenantID()) {
			return ErrForbidden
		}

		if err := r.Cancel(reason, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Rentals().Update(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.queueNotification(ctx, tx, "rental_cancelled", r.ID())
	})
	if err != nil {
		return nil, err
	}

	return c.viewRepo.FindByID(ctx, id)
}

// Renew extends the end date by the duration class offset. The extended
// window is re-checked against rentals created since: extending into a
// footprint someone else now holds would break the no-overlap invariant.
func (c *rentalCommandsImpl) Renew(ctx context.Context, actor user.Actor, id uuid.UUID) (*queries.RentalView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadForWrite(ctx, tx, id)
		if err != nil {
			return err
		}
		if !user.Authorize(actor, user.ActionRenewRental, r.TenantID()) {
			return ErrForbidden
		}

		if err := tx.LockResource(ctx, r.ResourceID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.Renew(c.clock.Now()); err != nil {
			switch {
			case errors.Is(err, rental.ErrUnsupportedRenewal):
				return errs.Mark(err, ErrUnsupportedRenewal)
			default:
				return errs.Mark(err, ErrInvalidTransition)
			}
		}

		existing, err := tx.Rentals().FindOccupyingByResource(ctx, r.ResourceID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := detectConflicts(r.Candidate(), existing, r.ID()); err != nil {
			return err
		}

		if err := tx.Rentals().Update(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.queueNotification(ctx, tx, "rental_renewed", r.ID())
	})
	if err != nil {
		return nil, err
	}

	return c.viewRepo.FindByID(ctx, id)
}

// Remove hard-deletes a rental. Deleting an ACTIVE rental would silently
// free the box without cancellation bookkeeping, so it is refused even for
// admins; cancel first.
func (c *rentalCommandsImpl) Remove(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.loadForWrite(ctx, tx, id)
		if err != nil {
			return err
		}
		if !user.Authorize(actor, user.ActionRemoveRental, r.TenantID()) {
			return ErrForbidden
		}
		if r.Status() == rental.StatusActive {
			return ErrRemoveActiveRental
		}

		if err := tx.Rentals().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *rentalCommandsImpl) PreviewConflicts(ctx context.Context, actor user.Actor, inputs []CreateRentalInput) ([]rental.ConflictGroup, error) {
	if !user.Authorize(actor, user.ActionCreateRental, uuid.Nil) {
		return nil, ErrForbidden
	}

	type resourceConflicts struct {
		span      rental.DateRange
		conflicts []rental.Conflict
	}
	perResource := make(map[uuid.UUID]*resourceConflicts)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		occupancy := make(map[uuid.UUID][]*rental.Rental)

		for _, input := range inputs {
			candidate, err := c.buildRental(input)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}

			existing, ok := occupancy[input.ResourceID]
			if !ok {
				existing, err = tx.Rentals().FindOccupyingByResource(ctx, input.ResourceID)
				if err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
				occupancy[input.ResourceID] = existing
			}

			found := rental.FindAllConflicts(candidate.Candidate(), existing, uuid.Nil)
			if len(found) == 0 {
				continue
			}

			rc, ok := perResource[input.ResourceID]
			if !ok {
				rc = &resourceConflicts{span: candidate.DateRange()}
				perResource[input.ResourceID] = rc
			} else {
				rc.span = unionRange(rc.span, candidate.DateRange())
			}
			rc.conflicts = append(rc.conflicts, found...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var groups []rental.ConflictGroup
	for resourceID, rc := range perResource {
		groups = append(groups, rental.GroupConflicts(resourceID, rc.span, rc.conflicts)...)
	}
	return groups, nil
}

func (c *rentalCommandsImpl) buildRental(input CreateRentalInput) (*rental.Rental, error) {
	class := rental.DurationClass(input.DurationClass)
	if !class.IsValid() {
		return nil, rental.ErrInvalidDurationClass
	}

	dateRange, err := rental.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	schedule, err := toSchedule(input.Slots)
	if err != nil {
		return nil, err
	}

	monthly, err := rental.NewMoney(input.MonthlyPriceCents)
	if err != nil {
		return nil, err
	}
	total, err := rental.NewMoney(input.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	return rental.NewRental(
		input.ResourceID,
		input.TenantID,
		class,
		dateRange,
		schedule,
		monthly,
		total,
		input.AutoRenew,
		input.SpecialConditions,
		c.clock.Now(),
	)
}

func (c *rentalCommandsImpl) validateCollaborators(ctx context.Context, resourceID, tenantID uuid.UUID) error {
	ok, err := c.reads.ResourceExists(ctx, resourceID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !ok {
		return ErrResourceNotFound
	}

	ok, err = c.reads.TenantExists(ctx, tenantID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !ok {
		return ErrTenantNotFound
	}
	return nil
}

func (c *rentalCommandsImpl) loadForWrite(ctx context.Context, tx shared.Tx, id uuid.UUID) (*rental.Rental, error) {
	r, err := tx.Rentals().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}

func (c *rentalCommandsImpl) queueNotification(ctx context.Context, tx shared.Tx, topic string, rentalID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"rental_id": rentalID,
		"type":      topic,
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Notifications().CreateJob(ctx, "email", topic, payload, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// detectConflicts maps a detector hit to a marked ConflictError carrying
// the grouped structured detail.
func detectConflicts(candidate rental.Candidate, existing []*rental.Rental, excludeID uuid.UUID) error {
	if first := rental.FindConflict(candidate, existing, excludeID); first != nil {
		all := rental.FindAllConflicts(candidate, existing, excludeID)
		conflictErr := &ConflictError{
			Groups: rental.GroupConflicts(candidate.ResourceID, candidate.Range, all),
		}
		return errs.Mark(conflictErr, ErrRentalConflict)
	}
	return nil
}

func mergedFootprint(r *rental.Rental, input UpdateRentalInput) (rental.DateRange, rental.WeeklySchedule, error) {
	start := patch.Coalesce(input.StartDate, r.DateRange().Start())
	end := patch.Coalesce(input.EndDate, r.DateRange().End())

	dateRange, err := rental.NewDateRange(start, end)
	if err != nil {
		return rental.DateRange{}, nil, err
	}

	schedule := r.Schedule()
	if input.Slots != nil {
		schedule, err = toSchedule(input.Slots)
		if err != nil {
			return rental.DateRange{}, nil, err
		}
	}
	return dateRange, schedule, nil
}

// unionRange widens a to cover b so grouped conflicts report one span
// per resource.
func unionRange(a, b rental.DateRange) rental.DateRange {
	start := a.Start()
	if b.Start().Before(start) {
		start = b.Start()
	}
	end := a.End()
	if b.End().After(end) {
		end = b.End()
	}
	merged, err := rental.NewDateRange(start, end)
	if err != nil {
		return a
	}
	return merged
}

func applyStatusPatch(r *rental.Rental, status string, reason *string, now time.Time) error {
	target := rental.Status(status)
	if !target.IsValid() {
		return errs.Mark(rental.ErrInvalidStatus, ErrValidation)
	}

	if target == rental.StatusCancelled {
		if err := r.Cancel(patch.Coalesce(reason, ""), now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return nil
	}

	if err := r.ChangeStatus(target, now); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}
	return nil
}

package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDurationClass = errors.New("invalid duration class")
	ErrInvalidStatus        = errors.New("invalid rental status")
	ErrInvalidTransition    = errors.New("illegal rental status transition")
	ErrAlreadyCancelled     = errors.New("rental is already cancelled")
	ErrNotActive            = errors.New("rental is not active")
)

// Rental is the long-term allocation of a box to a tenant: a weekly
// recurring schedule in effect over a bounded date range. The lifecycle
// manager owns every state transition; everything else only reads.
type Rental struct {
	id                 uuid.UUID
	resourceID         uuid.UUID
	tenantID           uuid.UUID
	durationClass      DurationClass
	dateRange          DateRange
	schedule           WeeklySchedule
	monthlyPrice       Money
	totalPrice         Money
	status             Status
	autoRenew          bool
	nextRenewalDate    *time.Time
	cancellationReason *string
	cancelledAt        *time.Time
	specialConditions  *string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRental(
	resourceID, tenantID uuid.UUID,
	class DurationClass,
	dateRange DateRange,
	schedule WeeklySchedule,
	monthlyPrice, totalPrice Money,
	autoRenew bool,
	specialConditions *string,
	now time.Time,
) (*Rental, error) {
	if !class.IsValid() {
		return nil, ErrInvalidDurationClass
	}

	return &Rental{
		id:                uuid.New(),
		resourceID:        resourceID,
		tenantID:          tenantID,
		durationClass:     class,
		dateRange:         dateRange,
		schedule:          schedule,
		monthlyPrice:      monthlyPrice,
		totalPrice:        totalPrice,
		status:            StatusPending,
		autoRenew:         autoRenew,
		specialConditions: specialConditions,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructRental rebuilds an aggregate from persisted state without
// re-running construction-time validation.
func ReconstructRental(
	id, resourceID, tenantID uuid.UUID,
	class DurationClass,
	dateRange DateRange,
	schedule WeeklySchedule,
	monthlyPrice, totalPrice Money,
	status Status,
	autoRenew bool,
	nextRenewalDate *time.Time,
	cancellationReason *string,
	cancelledAt *time.Time,
	specialConditions *string,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:                 id,
		resourceID:         resourceID,
		tenantID:           tenantID,
		durationClass:      class,
		dateRange:          dateRange,
		schedule:           schedule,
		monthlyPrice:       monthlyPrice,
		totalPrice:         totalPrice,
		status:             status,
		autoRenew:          autoRenew,
		nextRenewalDate:    nextRenewalDate,
		cancellationReason: cancellationReason,
		cancelledAt:        cancelledAt,
		specialConditions:  specialConditions,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (r *Rental) ID() uuid.UUID               { return r.id }
func (r *Rental) ResourceID() uuid.UUID       { return r.resourceID }
func (r *Rental) TenantID() uuid.UUID         { return r.tenantID }
func (r *Rental) DurationClass() DurationClass { return r.durationClass }
func (r *Rental) DateRange() DateRange        { return r.dateRange }
func (r *Rental) Schedule() WeeklySchedule    { return r.schedule }
func (r *Rental) MonthlyPrice() Money         { return r.monthlyPrice }
func (r *Rental) TotalPrice() Money           { return r.totalPrice }
func (r *Rental) Status() Status              { return r.status }
func (r *Rental) AutoRenew() bool             { return r.autoRenew }
func (r *Rental) NextRenewalDate() *time.Time { return r.nextRenewalDate }
func (r *Rental) CancellationReason() *string { return r.cancellationReason }
func (r *Rental) CancelledAt() *time.Time     { return r.cancelledAt }
func (r *Rental) SpecialConditions() *string  { return r.specialConditions }
func (r *Rental) CreatedAt() time.Time        { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time        { return r.updatedAt }

// Candidate returns the occupancy footprint this rental claims, for
// conflict detection against its siblings.
func (r *Rental) Candidate() Candidate {
	return Candidate{
		ResourceID: r.resourceID,
		Range:      r.dateRange,
		Schedule:   r.schedule,
	}
}

// ChangeStatus applies a transition through the allowed-transition map.
func (r *Rental) ChangeStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// Cancel is terminal: it stamps reason and time and kills auto-renewal so
// the sweep never resurrects the slot footprint.
func (r *Rental) Cancel(reason string, now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !r.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.cancellationReason = &reason
	r.cancelledAt = &now
	r.autoRenew = false
	r.updatedAt = now
	return nil
}

// Renew pushes the end date forward by the duration class offset. Only
// ACTIVE rentals renew; the caller must re-check conflicts over the
// extended window before persisting.
func (r *Rental) Renew(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}

	newEnd, err := NextEndDate(r.durationClass, r.dateRange.End())
	if err != nil {
		return err
	}

	extended, err := r.dateRange.WithEnd(newEnd)
	if err != nil {
		return err
	}

	r.dateRange = extended
	r.nextRenewalDate = &now
	r.updatedAt = now
	return nil
}

// Reschedule replaces the date range and weekly schedule. Conflict
// detection against siblings is the lifecycle manager's job.
func (r *Rental) Reschedule(dateRange DateRange, schedule WeeklySchedule, now time.Time) {
	r.dateRange = dateRange
	r.schedule = schedule
	r.updatedAt = now
}

func (r *Rental) SetPrices(monthly, total Money, now time.Time) {
	r.monthlyPrice = monthly
	r.totalPrice = total
	r.updatedAt = now
}

func (r *Rental) SetAutoRenew(autoRenew bool, now time.Time) {
	r.autoRenew = autoRenew
	r.updatedAt = now
}

func (r *Rental) SetSpecialConditions(conditions *string, now time.Time) {
	r.specialConditions = conditions
	r.updatedAt = now
}

// MarkExpired is used by the nightly sweep once the end date has passed.
func (r *Rental) MarkExpired(now time.Time) error {
	return r.ChangeStatus(StatusExpired, now)
}

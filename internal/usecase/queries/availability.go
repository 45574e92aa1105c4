package queries

import (
	"context"
	"time"

	"boxrent/internal/domain/rental"

	"github.com/google/uuid"
)

// AvailabilityQueries answers "is resource R free at time T on date D" for
// day-of booking flows. Unlike the conflict detector it reasons about one
// concrete date, not a range, and needs no lock: it reads the latest
// committed snapshot.
type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, resourceID uuid.UUID, date time.Time, candidateSlots []rental.ScheduleSlot) (*AvailabilityResult, error)
}

// OccupancyStore loads the ACTIVE rentals whose date range contains the
// given date, with their weekly schedules.
type OccupancyStore interface {
	FindActiveCoveringDate(ctx context.Context, resourceID uuid.UUID, date time.Time) ([]*rental.Rental, error)
}

type availabilityQueriesImpl struct {
	store OccupancyStore
}

func NewAvailabilityQueries(store OccupancyStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) CheckAvailability(
	ctx context.Context,
	resourceID uuid.UUID,
	date time.Time,
	candidateSlots []rental.ScheduleSlot,
) (*AvailabilityResult, error) {
	// Normalize once so the stored-date comparison and the weekday check
	// agree on which day an offset timestamp falls on.
	day := rental.TruncateToDate(date)

	occupying, err := q.store.FindActiveCoveringDate(ctx, resourceID, day)
	if err != nil {
		return nil, err
	}

	weekday := day.Weekday()
	for _, r := range occupying {
		for _, occupied := range r.Schedule().SlotsFor(weekday) {
			for _, candidate := range candidateSlots {
				if candidate.Weekday() != weekday {
					continue
				}
				if candidate.Overlaps(occupied) {
					return &AvailabilityResult{
						Available: false,
						Conflict: &SlotConflictView{
							RentalID: r.ID(),
							TenantID: r.TenantID(),
							Slot: ScheduleSlotView{
								Weekday:   occupied.Weekday().String(),
								StartTime: occupied.StartTime(),
								EndTime:   occupied.EndTime(),
								Active:    occupied.Active(),
							},
						},
					}, nil
				}
			}
		}
	}

	return &AvailabilityResult{Available: true}, nil
}

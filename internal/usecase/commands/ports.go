package commands

import (
	"fmt"
	"time"

	"boxrent/internal/domain/rental"

	"github.com/google/uuid"
)

// SlotInput is one weekly schedule entry as submitted by the caller.
// Weekday follows time.Weekday numbering (0 = Sunday).
type SlotInput struct {
	Weekday   int
	StartTime string
	EndTime   string
	Active    bool
}

type CreateRentalInput struct {
	ResourceID        uuid.UUID
	TenantID          uuid.UUID
	DurationClass     string
	StartDate         time.Time
	EndDate           time.Time
	Slots             []SlotInput
	MonthlyPriceCents int64
	TotalPriceCents   int64
	AutoRenew         bool
	SpecialConditions *string
}

// UpdateRentalInput carries patch semantics: nil means "leave unchanged".
// StartDate/EndDate/Slots must be patched together as a footprint change.
type UpdateRentalInput struct {
	StartDate          *time.Time
	EndDate            *time.Time
	Slots              []SlotInput
	MonthlyPriceCents  *int64
	TotalPriceCents    *int64
	Status             *string
	AutoRenew          *bool
	SpecialConditions  *string
	CancellationReason *string
}

func (p UpdateRentalInput) touchesFootprint() bool {
	return p.StartDate != nil || p.EndDate != nil || p.Slots != nil
}

// ConflictError carries the structured conflict detail so a rejected caller
// can propose an alternative slot instead of parsing a message.
type ConflictError struct {
	Groups []rental.ConflictGroup
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("rental conflicts on %d weekday group(s)", len(e.Groups))
}

func toSchedule(slots []SlotInput) (rental.WeeklySchedule, error) {
	domainSlots := make([]rental.ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		if s.Weekday < 0 || s.Weekday > 6 {
			return nil, rental.ErrInvalidSlotTime
		}
		slot, err := rental.NewScheduleSlot(time.Weekday(s.Weekday), s.StartTime, s.EndTime, s.Active)
		if err != nil {
			return nil, err
		}
		domainSlots = append(domainSlots, slot)
	}
	return rental.NewWeeklySchedule(domainSlots)
}

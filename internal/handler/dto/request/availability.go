package request

import (
	"time"

	"boxrent/internal/domain/rental"
)

type AvailabilityRequest struct {
	Date  time.Time     `json:"date" binding:"required"`
	Slots []SlotRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r AvailabilityRequest) ToSlots() ([]rental.ScheduleSlot, error) {
	slots := make([]rental.ScheduleSlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		active := true
		if s.Active != nil {
			active = *s.Active
		}
		slot, err := rental.NewScheduleSlot(time.Weekday(s.Weekday), s.StartTime, s.EndTime, active)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

package response

import (
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Available bool                  `json:"available"`
	Conflict  *SlotConflictResponse `json:"conflict,omitempty"`
}

type SlotConflictResponse struct {
	RentalID uuid.UUID    `json:"rentalId"`
	TenantID uuid.UUID    `json:"tenantId"`
	Slot     SlotResponse `json:"slot"`
}

func FromAvailabilityResult(rm *queries.AvailabilityResult) *AvailabilityResponse {
	resp := &AvailabilityResponse{Available: rm.Available}
	if rm.Conflict != nil {
		resp.Conflict = &SlotConflictResponse{
			RentalID: rm.Conflict.RentalID,
			TenantID: rm.Conflict.TenantID,
			Slot: SlotResponse{
				Weekday:   rm.Conflict.Slot.Weekday,
				StartTime: rm.Conflict.Slot.StartTime,
				EndTime:   rm.Conflict.Slot.EndTime,
				Active:    rm.Conflict.Slot.Active,
			},
		}
	}
	return resp
}

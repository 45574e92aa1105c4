package response

import (
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

type RentalResponse struct {
	ID                 uuid.UUID      `json:"id"`
	ResourceID         uuid.UUID      `json:"resourceId"`
	ResourceName       string         `json:"resourceName"`
	TenantID           uuid.UUID      `json:"tenantId"`
	TenantEmail        string         `json:"tenantEmail"`
	DurationClass      string         `json:"durationClass"`
	StartDate          time.Time      `json:"startDate"`
	EndDate            time.Time      `json:"endDate"`
	Schedule           []SlotResponse `json:"schedule"`
	MonthlyPriceCents  int64          `json:"monthlyPriceCents"`
	TotalPriceCents    int64          `json:"totalPriceCents"`
	Status             string         `json:"status"`
	AutoRenew          bool           `json:"autoRenew"`
	NextRenewalDate    *time.Time     `json:"nextRenewalDate,omitempty"`
	CancellationReason *string        `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	SpecialConditions  *string        `json:"specialConditions,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

type RentalListResponse struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resourceId"`
	ResourceName  string    `json:"resourceName"`
	TenantID      uuid.UUID `json:"tenantId"`
	DurationClass string    `json:"durationClass"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	AutoRenew     bool      `json:"autoRenew"`
}

// ConflictGroupResponse is one weekday's worth of collisions on a resource.
type ConflictGroupResponse struct {
	Weekday        string         `json:"weekday"`
	ResourceID     uuid.UUID      `json:"resourceId"`
	RequestedSlots []SlotResponse `json:"requestedSlots"`
	ExistingSlots  []SlotResponse `json:"existingSlots"`
	RentalIDs      []uuid.UUID    `json:"rentalIds"`
	SpanStart      time.Time      `json:"spanStart"`
	SpanEnd        time.Time      `json:"spanEnd"`
}

func FromRentalView(rm *queries.RentalView) *RentalResponse {
	schedule := make([]SlotResponse, len(rm.Schedule))
	for i, s := range rm.Schedule {
		schedule[i] = SlotResponse{
			Weekday:   s.Weekday,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Active:    s.Active,
		}
	}

	return &RentalResponse{
		ID:                 rm.ID,
		ResourceID:         rm.ResourceID,
		ResourceName:       rm.ResourceName,
		TenantID:           rm.TenantID,
		TenantEmail:        rm.TenantEmail,
		DurationClass:      rm.DurationClass,
		StartDate:          rm.StartDate,
		EndDate:            rm.EndDate,
		Schedule:           schedule,
		MonthlyPriceCents:  rm.MonthlyPriceCents,
		TotalPriceCents:    rm.TotalPriceCents,
		Status:             rm.Status,
		AutoRenew:          rm.AutoRenew,
		NextRenewalDate:    rm.NextRenewalDate,
		CancellationReason: rm.CancellationReason,
		CancelledAt:        rm.CancelledAt,
		SpecialConditions:  rm.SpecialConditions,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromRentalListItem(rm *queries.RentalListItem) *RentalListResponse {
	return &RentalListResponse{
		ID:            rm.ID,
		ResourceID:    rm.ResourceID,
		ResourceName:  rm.ResourceName,
		TenantID:      rm.TenantID,
		DurationClass: rm.DurationClass,
		StartDate:     rm.StartDate,
		EndDate:       rm.EndDate,
		Status:        rm.Status,
		AutoRenew:     rm.AutoRenew,
	}
}

func FromConflictGroups(groups []rental.ConflictGroup) []ConflictGroupResponse {
	out := make([]ConflictGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = ConflictGroupResponse{
			Weekday:        g.Weekday.String(),
			ResourceID:     g.ResourceID,
			RequestedSlots: fromDomainSlots(g.RequestedSlots),
			ExistingSlots:  fromDomainSlots(g.ExistingSlots),
			RentalIDs:      g.RentalIDs,
			SpanStart:      g.SpanStart,
			SpanEnd:        g.SpanEnd,
		}
	}
	return out
}

func fromDomainSlots(slots []rental.ScheduleSlot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			Weekday:   s.Weekday().String(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
			Active:    s.Active(),
		}
	}
	return out
}

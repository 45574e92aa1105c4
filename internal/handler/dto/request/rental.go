package request

import (
	"time"

	"boxrent/internal/usecase/commands"

	"github.com/google/uuid"
)

// SlotRequest is one weekly schedule entry. Weekday follows time.Weekday
// numbering (0 = Sunday).
type SlotRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    *bool  `json:"active,omitempty"`
}

func (s SlotRequest) toInput() commands.SlotInput {
	active := true
	if s.Active != nil {
		active = *s.Active
	}
	return commands.SlotInput{
		Weekday:   s.Weekday,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Active:    active,
	}
}

type CreateRentalRequest struct {
	ResourceID        uuid.UUID     `json:"resource_id" binding:"required"`
	TenantID          uuid.UUID     `json:"tenant_id" binding:"required"`
	DurationClass     string        `json:"duration_class" binding:"required"`
	StartDate         time.Time     `json:"start_date" binding:"required"`
	EndDate           time.Time     `json:"end_date" binding:"required"`
	Slots             []SlotRequest `json:"slots" binding:"required,min=1,dive"`
	MonthlyPriceCents int64         `json:"monthly_price_cents" binding:"min=0"`
	TotalPriceCents   int64         `json:"total_price_cents" binding:"min=0"`
	AutoRenew         bool          `json:"auto_renew"`
	SpecialConditions *string       `json:"special_conditions,omitempty"`
}

func (r CreateRentalRequest) ToInput() commands.CreateRentalInput {
	return commands.CreateRentalInput{
		ResourceID:        r.ResourceID,
		TenantID:          r.TenantID,
		DurationClass:     r.DurationClass,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Slots:             toSlotInputs(r.Slots),
		MonthlyPriceCents: r.MonthlyPriceCents,
		TotalPriceCents:   r.TotalPriceCents,
		AutoRenew:         r.AutoRenew,
		SpecialConditions: r.SpecialConditions,
	}
}

// UpdateRentalRequest is a patch: absent fields leave the rental unchanged.
type UpdateRentalRequest struct {
	StartDate          *time.Time    `json:"start_date,omitempty"`
	EndDate            *time.Time    `json:"end_date,omitempty"`
	Slots              []SlotRequest `json:"slots,omitempty"`
	MonthlyPriceCents  *int64        `json:"monthly_price_cents,omitempty"`
	TotalPriceCents    *int64        `json:"total_price_cents,omitempty"`
	Status             *string       `json:"status,omitempty"`
	AutoRenew          *bool         `json:"auto_renew,omitempty"`
	SpecialConditions  *string       `json:"special_conditions,omitempty"`
	CancellationReason *string       `json:"cancellation_reason,omitempty"`
}

func (r UpdateRentalRequest) ToInput() commands.UpdateRentalInput {
	input := commands.UpdateRentalInput{
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		MonthlyPriceCents:  r.MonthlyPriceCents,
		TotalPriceCents:    r.TotalPriceCents,
		Status:             r.Status,
		AutoRenew:          r.AutoRenew,
		SpecialConditions:  r.SpecialConditions,
		CancellationReason: r.CancellationReason,
	}
	if r.Slots != nil {
		input.Slots = toSlotInputs(r.Slots)
	}
	return input
}

type CancelRentalRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PreviewConflictsRequest struct {
	Candidates []CreateRentalRequest `json:"candidates" binding:"required,min=1,dive"`
}

func (r PreviewConflictsRequest) ToInputs() []commands.CreateRentalInput {
	inputs := make([]commands.CreateRentalInput, len(r.Candidates))
	for i, c := range r.Candidates {
		inputs[i] = c.ToInput()
	}
	return inputs
}

func toSlotInputs(slots []SlotRequest) []commands.SlotInput {
	inputs := make([]commands.SlotInput, len(slots))
	for i, s := range slots {
		inputs[i] = s.toInput()
	}
	return inputs
}

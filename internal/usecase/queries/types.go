package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ScheduleSlotView struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type RentalView struct {
	ID                 uuid.UUID          `json:"id"`
	ResourceID         uuid.UUID          `json:"resource_id"`
	ResourceName       string             `json:"resource_name"`
	TenantID           uuid.UUID          `json:"tenant_id"`
	TenantEmail        string             `json:"tenant_email"`
	DurationClass      string             `json:"duration_class"`
	StartDate          time.Time          `json:"start_date"`
	EndDate            time.Time          `json:"end_date"`
	Schedule           []ScheduleSlotView `json:"schedule"`
	MonthlyPriceCents  int64              `json:"monthly_price_cents"`
	TotalPriceCents    int64              `json:"total_price_cents"`
	Status             string             `json:"status"`
	AutoRenew          bool               `json:"auto_renew"`
	NextRenewalDate    *time.Time         `json:"next_renewal_date,omitempty"`
	CancellationReason *string            `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	SpecialConditions  *string            `json:"special_conditions,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type RentalListItem struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	TenantID      uuid.UUID `json:"tenant_id"`
	DurationClass string    `json:"duration_class"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	AutoRenew     bool      `json:"auto_renew"`
}

type ResourceView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	SiteID uuid.UUID `json:"site_id"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
}

// SlotConflictView names the occupied slot blocking a day-of booking.
type SlotConflictView struct {
	RentalID uuid.UUID        `json:"rental_id"`
	TenantID uuid.UUID        `json:"tenant_id"`
	Slot     ScheduleSlotView `json:"slot"`
}

type AvailabilityResult struct {
	Available bool              `json:"available"`
	Conflict  *SlotConflictView `json:"conflict,omitempty"`
}

//go:build unit || e2e

package builder

import (
	"time"

	"boxrent/internal/domain/rental"
	reqdto "boxrent/internal/handler/dto/request"
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
)

// RentalBuilder assembles a valid rental and lets tests mutate single
// aspects. Defaults: monthly rental over January 2026, Mondays 09:00-12:00.
type RentalBuilder struct {
	resourceID        uuid.UUID
	tenantID          uuid.UUID
	class             rental.DurationClass
	startDate         time.Time
	endDate           time.Time
	slots             []rental.ScheduleSlot
	monthlyCents      int64
	totalCents        int64
	autoRenew         bool
	specialConditions *string
	now               time.Time
}

func NewRentalBuilder() *RentalBuilder {
	slot, _ := rental.NewScheduleSlot(time.Monday, "09:00", "12:00", true)
	return &RentalBuilder{
		resourceID:   uuid.New(),
		tenantID:     uuid.New(),
		class:        rental.DurationMonthly,
		startDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		endDate:      time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		slots:        []rental.ScheduleSlot{slot},
		monthlyCents: 50000,
		totalCents:   50000,
		now:          time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RentalBuilder) WithResourceID(id uuid.UUID) *RentalBuilder {
	b.resourceID = id
	return b
}

func (b *RentalBuilder) WithTenantID(id uuid.UUID) *RentalBuilder {
	b.tenantID = id
	return b
}

func (b *RentalBuilder) WithDurationClass(class rental.DurationClass) *RentalBuilder {
	b.class = class
	return b
}

func (b *RentalBuilder) WithDates(start, end time.Time) *RentalBuilder {
	b.startDate = start
	b.endDate = end
	return b
}

func (b *RentalBuilder) WithSlots(slots ...rental.ScheduleSlot) *RentalBuilder {
	b.slots = slots
	return b
}

func (b *RentalBuilder) WithSlot(weekday time.Weekday, start, end string) *RentalBuilder {
	slot, _ := rental.NewScheduleSlot(weekday, start, end, true)
	b.slots = []rental.ScheduleSlot{slot}
	return b
}

func (b *RentalBuilder) WithPrices(monthlyCents, totalCents int64) *RentalBuilder {
	b.monthlyCents = monthlyCents
	b.totalCents = totalCents
	return b
}

func (b *RentalBuilder) WithAutoRenew(autoRenew bool) *RentalBuilder {
	b.autoRenew = autoRenew
	return b
}

func (b *RentalBuilder) WithSpecialConditions(conditions string) *RentalBuilder {
	b.specialConditions = &conditions
	return b
}

func (b *RentalBuilder) WithNow(now time.Time) *RentalBuilder {
	b.now = now
	return b
}

func (b *RentalBuilder) BuildDomain() (*rental.Rental, error) {
	dateRange, err := rental.NewDateRange(b.startDate, b.endDate)
	if err != nil {
		return nil, err
	}
	schedule, err := rental.NewWeeklySchedule(b.slots)
	if err != nil {
		return nil, err
	}
	monthly, err := rental.NewMoney(b.monthlyCents)
	if err != nil {
		return nil, err
	}
	total, err := rental.NewMoney(b.totalCents)
	if err != nil {
		return nil, err
	}

	return rental.NewRental(
		b.resourceID,
		b.tenantID,
		b.class,
		dateRange,
		schedule,
		monthly,
		total,
		b.autoRenew,
		b.specialConditions,
		b.now,
	)
}

// BuildActive returns a rental already transitioned to ACTIVE.
func (b *RentalBuilder) BuildActive() (*rental.Rental, error) {
	r, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	if err := r.ChangeStatus(rental.StatusActive, b.now); err != nil {
		return nil, err
	}
	return r, nil
}

// BuildCreateDTO mirrors the builder state as an HTTP create request.
func (b *RentalBuilder) BuildCreateDTO() reqdto.CreateRentalRequest {
	slots := make([]reqdto.SlotRequest, len(b.slots))
	for i, s := range b.slots {
		active := s.Active()
		slots[i] = reqdto.SlotRequest{
			Weekday:   int(s.Weekday()),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
			Active:    &active,
		}
	}
	return reqdto.CreateRentalRequest{
		ResourceID:        b.resourceID,
		TenantID:          b.tenantID,
		DurationClass:     string(b.class),
		StartDate:         b.startDate,
		EndDate:           b.endDate,
		Slots:             slots,
		MonthlyPriceCents: b.monthlyCents,
		TotalPriceCents:   b.totalCents,
		AutoRenew:         b.autoRenew,
		SpecialConditions: b.specialConditions,
	}
}

// BuildReadModel mirrors the builder state as a detail read model.
func (b *RentalBuilder) BuildReadModel() *queries.RentalView {
	schedule := make([]queries.ScheduleSlotView, len(b.slots))
	for i, s := range b.slots {
		schedule[i] = queries.ScheduleSlotView{
			Weekday:   s.Weekday().String(),
			StartTime: s.StartTime(),
			EndTime:   s.EndTime(),
			Active:    s.Active(),
		}
	}
	return &queries.RentalView{
		ID:                uuid.New(),
		ResourceID:        b.resourceID,
		ResourceName:      "Box 101",
		TenantID:          b.tenantID,
		TenantEmail:       "tenant@example.com",
		DurationClass:     string(b.class),
		StartDate:         b.startDate,
		EndDate:           b.endDate,
		Schedule:          schedule,
		MonthlyPriceCents: b.monthlyCents,
		TotalPriceCents:   b.totalCents,
		Status:            string(rental.StatusPending),
		AutoRenew:         b.autoRenew,
		SpecialConditions: b.specialConditions,
		CreatedAt:         b.now,
		UpdatedAt:         b.now,
	}
}

// BuildListItem mirrors the builder state as a list read model.
func (b *RentalBuilder) BuildListItem() *queries.RentalListItem {
	return &queries.RentalListItem{
		ID:            uuid.New(),
		ResourceID:    b.resourceID,
		ResourceName:  "Box 101",
		TenantID:      b.tenantID,
		DurationClass: string(b.class),
		StartDate:     b.startDate,
		EndDate:       b.endDate,
		Status:        string(rental.StatusActive),
		AutoRenew:     b.autoRenew,
	}
}

// MustSlot builds a slot or panics; for test fixtures only.
func MustSlot(weekday time.Weekday, start, end string, active bool) rental.ScheduleSlot {
	slot, err := rental.NewScheduleSlot(weekday, start, end, active)
	if err != nil {
		panic(err)
	}
	return slot
}

// MustDateRange builds a date range or panics; for test fixtures only.
func MustDateRange(start, end time.Time) rental.DateRange {
	r, err := rental.NewDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

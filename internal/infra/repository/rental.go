package repository

import (
	"context"
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/internal/infra"
	"boxrent/internal/infra/db"
	"boxrent/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertRentalSQL = `
INSERT INTO rentals (
	id, resource_id, tenant_id, duration_class,
	start_date, end_date,
	monthly_price_cents, total_price_cents,
	status, auto_renew, next_renewal_date,
	cancellation_reason, cancelled_at, special_conditions,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

const updateRentalSQL = `
UPDATE rentals SET
	duration_class = $2,
	start_date = $3,
	end_date = $4,
	monthly_price_cents = $5,
	total_price_cents = $6,
	status = $7,
	auto_renew = $8,
	next_renewal_date = $9,
	cancellation_reason = $10,
	cancelled_at = $11,
	special_conditions = $12,
	updated_at = $13
WHERE id = $1`

const deleteRentalSQL = `DELETE FROM rentals WHERE id = $1`

const insertSlotSQL = `
INSERT INTO rental_slots (rental_id, weekday, start_min, end_min, active)
VALUES ($1, $2, $3, $4, $5)`

const deleteSlotsSQL = `DELETE FROM rental_slots WHERE rental_id = $1`

const selectRentalSQL = `
SELECT id, resource_id, tenant_id, duration_class,
	start_date, end_date,
	monthly_price_cents, total_price_cents,
	status, auto_renew, next_renewal_date,
	cancellation_reason, cancelled_at, special_conditions,
	created_at, updated_at
FROM rentals
WHERE id = $1`

const selectOccupyingSQL = `
SELECT id, resource_id, tenant_id, duration_class,
	start_date, end_date,
	monthly_price_cents, total_price_cents,
	status, auto_renew, next_renewal_date,
	cancellation_reason, cancelled_at, special_conditions,
	created_at, updated_at
FROM rentals
WHERE resource_id = $1 AND status IN ('PENDING', 'ACTIVE')
ORDER BY created_at`

const selectActiveEndedSQL = `
SELECT id, resource_id, tenant_id, duration_class,
	start_date, end_date,
	monthly_price_cents, total_price_cents,
	status, auto_renew, next_renewal_date,
	cancellation_reason, cancelled_at, special_conditions,
	created_at, updated_at
FROM rentals
WHERE status = 'ACTIVE' AND end_date < $1
ORDER BY end_date`

const selectActiveCoveringSQL = `
SELECT id, resource_id, tenant_id, duration_class,
	start_date, end_date,
	monthly_price_cents, total_price_cents,
	status, auto_renew, next_renewal_date,
	cancellation_reason, cancelled_at, special_conditions,
	created_at, updated_at
FROM rentals
WHERE resource_id = $1 AND status = 'ACTIVE'
	AND start_date <= $2 AND end_date >= $2
ORDER BY created_at`

const selectSlotsSQL = `
SELECT rental_id, weekday, start_min, end_min, active
FROM rental_slots
WHERE rental_id = ANY($1)
ORDER BY rental_id, weekday, start_min`

type RentalRepository struct {
	db db.DBTX
}

func NewRentalRepository(db db.DBTX) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) error {
	if _, err := r.db.Exec(ctx, insertRentalSQL,
		rent.ID(),
		rent.ResourceID(),
		rent.TenantID(),
		rent.DurationClass().String(),
		pgconv.DateToPgtype(rent.DateRange().Start()),
		pgconv.DateToPgtype(rent.DateRange().End()),
		rent.MonthlyPrice().Cents(),
		rent.TotalPrice().Cents(),
		rent.Status().String(),
		rent.AutoRenew(),
		pgconv.TimePtrToPgtype(rent.NextRenewalDate()),
		pgconv.StringPtrToPgtype(rent.CancellationReason()),
		pgconv.TimePtrToPgtype(rent.CancelledAt()),
		pgconv.StringPtrToPgtype(rent.SpecialConditions()),
		pgconv.TimeToPgtype(rent.CreatedAt()),
		pgconv.TimeToPgtype(rent.UpdatedAt()),
	); err != nil {
		return infra.WrapRepoErr("failed to insert rental", err)
	}

	return r.insertSlots(ctx, rent.ID(), rent.Schedule())
}

func (r *RentalRepository) Update(ctx context.Context, rent *rental.Rental) error {
	tag, err := r.db.Exec(ctx, updateRentalSQL,
		rent.ID(),
		rent.DurationClass().String(),
		pgconv.DateToPgtype(rent.DateRange().Start()),
		pgconv.DateToPgtype(rent.DateRange().End()),
		rent.MonthlyPrice().Cents(),
		rent.TotalPrice().Cents(),
		rent.Status().String(),
		rent.AutoRenew(),
		pgconv.TimePtrToPgtype(rent.NextRenewalDate()),
		pgconv.StringPtrToPgtype(rent.CancellationReason()),
		pgconv.TimePtrToPgtype(rent.CancelledAt()),
		pgconv.StringPtrToPgtype(rent.SpecialConditions()),
		pgconv.TimeToPgtype(rent.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}

	// Slot rows are replaced wholesale; the schedule is small and owned by
	// the aggregate, so diffing buys nothing.
	if _, err := r.db.Exec(ctx, deleteSlotsSQL, rent.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear rental slots", err)
	}
	return r.insertSlots(ctx, rent.ID(), rent.Schedule())
}

func (r *RentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteRentalSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row := r.db.QueryRow(ctx, selectRentalSQL, id)

	var rec rentalRecord
	if err := rec.scan(row); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}

	slots, err := r.loadSlots(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return rec.toDomain(slots[id])
}

func (r *RentalRepository) FindOccupyingByResource(ctx context.Context, resourceID uuid.UUID) ([]*rental.Rental, error) {
	return r.queryRentals(ctx, selectOccupyingSQL, resourceID)
}

// FindActiveCoveringDate serves the day-of availability check: ACTIVE
// rentals whose date range contains the given calendar date.
func (r *RentalRepository) FindActiveCoveringDate(ctx context.Context, resourceID uuid.UUID, date time.Time) ([]*rental.Rental, error) {
	return r.queryRentals(ctx, selectActiveCoveringSQL, resourceID, pgconv.DateToPgtype(date))
}

func (r *RentalRepository) FindActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*rental.Rental, error) {
	return r.queryRentals(ctx, selectActiveEndedSQL, pgconv.DateToPgtype(cutoff))
}

func (r *RentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]*rental.Rental, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rentals", err)
	}
	defer rows.Close()

	var records []rentalRecord
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var rec rentalRecord
		if err := rec.scan(rows); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		records = append(records, rec)
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental rows", err)
	}

	slotsByRental, err := r.loadSlots(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*rental.Rental, 0, len(records))
	for _, rec := range records {
		domain, err := rec.toDomain(slotsByRental[rec.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, domain)
	}
	return result, nil
}

func (r *RentalRepository) insertSlots(ctx context.Context, rentalID uuid.UUID, schedule rental.WeeklySchedule) error {
	for _, slot := range schedule {
		if _, err := r.db.Exec(ctx, insertSlotSQL,
			rentalID,
			int16(slot.Weekday()),
			slot.StartMinutes(),
			slot.EndMinutes(),
			slot.Active(),
		); err != nil {
			return infra.WrapRepoErr("failed to insert rental slot", err)
		}
	}
	return nil
}

func (r *RentalRepository) loadSlots(ctx context.Context, rentalIDs []uuid.UUID) (map[uuid.UUID][]rental.ScheduleSlot, error) {
	out := make(map[uuid.UUID][]rental.ScheduleSlot, len(rentalIDs))
	if len(rentalIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, selectSlotsSQL, rentalIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rental slots", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rentalID uuid.UUID
			weekday  int16
			startMin int
			endMin   int
			active   bool
		)
		if err := rows.Scan(&rentalID, &weekday, &startMin, &endMin, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		slot, err := rental.NewScheduleSlotMinutes(time.Weekday(weekday), startMin, endMin, active)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt slot row", err)
		}
		out[rentalID] = append(out[rentalID], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return out, nil
}

// rentalRecord mirrors the rentals table row.
type rentalRecord struct {
	ID                 uuid.UUID
	ResourceID         uuid.UUID
	TenantID           uuid.UUID
	DurationClass      string
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	MonthlyPriceCents  int64
	TotalPriceCents    int64
	Status             string
	AutoRenew          bool
	NextRenewalDate    pgtype.Timestamptz
	CancellationReason pgtype.Text
	CancelledAt        pgtype.Timestamptz
	SpecialConditions  pgtype.Text
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

type scanner interface {
	Scan(dest ...any) error
}

func (rec *rentalRecord) scan(row scanner) error {
	return row.Scan(
		&rec.ID,
		&rec.ResourceID,
		&rec.TenantID,
		&rec.DurationClass,
		&rec.StartDate,
		&rec.EndDate,
		&rec.MonthlyPriceCents,
		&rec.TotalPriceCents,
		&rec.Status,
		&rec.AutoRenew,
		&rec.NextRenewalDate,
		&rec.CancellationReason,
		&rec.CancelledAt,
		&rec.SpecialConditions,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
}

func (rec *rentalRecord) toDomain(slots []rental.ScheduleSlot) (*rental.Rental, error) {
	dateRange, err := rental.NewDateRange(pgconv.DateFromPgtype(rec.StartDate), pgconv.DateFromPgtype(rec.EndDate))
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt rental date range", err)
	}
	monthly, err := rental.NewMoney(rec.MonthlyPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt rental monthly price", err)
	}
	total, err := rental.NewMoney(rec.TotalPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt rental total price", err)
	}

	return rental.ReconstructRental(
		rec.ID,
		rec.ResourceID,
		rec.TenantID,
		rental.DurationClass(rec.DurationClass),
		dateRange,
		rental.WeeklySchedule(slots),
		monthly,
		total,
		rental.Status(rec.Status),
		rec.AutoRenew,
		pgconv.TimePtrFromPgtype(rec.NextRenewalDate),
		pgconv.StringPtrFromPgtype(rec.CancellationReason),
		pgconv.TimePtrFromPgtype(rec.CancelledAt),
		pgconv.StringPtrFromPgtype(rec.SpecialConditions),
		pgconv.TimeFromPgtype(rec.CreatedAt),
		pgconv.TimeFromPgtype(rec.UpdatedAt),
	), nil
}

package readstore

import (
	"context"
	"fmt"
	"time"

	"boxrent/internal/infra"
	"boxrent/internal/infra/db"
	"boxrent/internal/pkg/pgconv"
	"boxrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectRentalViewSQL = `
SELECT r.id, r.resource_id, res.name AS resource_name,
	r.tenant_id, u.email AS tenant_email,
	r.duration_class, r.start_date, r.end_date,
	r.monthly_price_cents, r.total_price_cents,
	r.status, r.auto_renew, r.next_renewal_date,
	r.cancellation_reason, r.cancelled_at, r.special_conditions,
	r.created_at, r.updated_at
FROM rentals r
JOIN resources res ON res.id = r.resource_id
JOIN users u ON u.id = r.tenant_id
WHERE r.id = $1`

const selectRentalViewSlotsSQL = `
SELECT weekday, start_min, end_min, active
FROM rental_slots
WHERE rental_id = $1
ORDER BY weekday, start_min`

const selectRentalListSQL = `
SELECT r.id, r.resource_id, res.name AS resource_name,
	r.tenant_id, r.duration_class, r.start_date, r.end_date,
	r.status, r.auto_renew
FROM rentals r
JOIN resources res ON res.id = r.resource_id
%s
ORDER BY r.start_date, r.created_at`

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(db db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: db}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row := r.db.QueryRow(ctx, selectRentalViewSQL, id)

	var (
		view               queries.RentalView
		startDate, endDate pgtype.Date
		nextRenewal        pgtype.Timestamptz
		cancelReason       pgtype.Text
		cancelledAt        pgtype.Timestamptz
		specialConditions  pgtype.Text
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ResourceID, &view.ResourceName,
		&view.TenantID, &view.TenantEmail,
		&view.DurationClass, &startDate, &endDate,
		&view.MonthlyPriceCents, &view.TotalPriceCents,
		&view.Status, &view.AutoRenew, &nextRenewal,
		&cancelReason, &cancelledAt, &specialConditions,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental view", err)
	}

	view.StartDate = pgconv.DateFromPgtype(startDate)
	view.EndDate = pgconv.DateFromPgtype(endDate)
	view.NextRenewalDate = pgconv.TimePtrFromPgtype(nextRenewal)
	view.CancellationReason = pgconv.StringPtrFromPgtype(cancelReason)
	view.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	view.SpecialConditions = pgconv.StringPtrFromPgtype(specialConditions)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	slots, err := r.loadSlotViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Schedule = slots
	return &view, nil
}

func (r *RentalReadStore) FindAll(ctx context.Context) ([]*queries.RentalListItem, error) {
	return r.list(ctx, "")
}

func (r *RentalReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.RentalListItem, error) {
	return r.list(ctx, "WHERE r.status = $1", status)
}

func (r *RentalReadStore) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*queries.RentalListItem, error) {
	return r.list(ctx, "WHERE r.tenant_id = $1", tenantID)
}

func (r *RentalReadStore) FindByResource(ctx context.Context, resourceID uuid.UUID) ([]*queries.RentalListItem, error) {
	return r.list(ctx, "WHERE r.resource_id = $1", resourceID)
}

func (r *RentalReadStore) FindActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*queries.RentalListItem, error) {
	return r.list(ctx, "WHERE r.status = 'ACTIVE' AND r.end_date <= $1", pgconv.DateToPgtype(cutoff))
}

func (r *RentalReadStore) list(ctx context.Context, where string, args ...any) ([]*queries.RentalListItem, error) {
	rows, err := r.db.Query(ctx, listQuery(where), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	defer rows.Close()

	var items []*queries.RentalListItem
	for rows.Next() {
		var (
			item               queries.RentalListItem
			startDate, endDate pgtype.Date
		)
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName,
			&item.TenantID, &item.DurationClass, &startDate, &endDate,
			&item.Status, &item.AutoRenew,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental list row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental list rows", err)
	}
	return items, nil
}

func (r *RentalReadStore) loadSlotViews(ctx context.Context, rentalID uuid.UUID) ([]queries.ScheduleSlotView, error) {
	rows, err := r.db.Query(ctx, selectRentalViewSlotsSQL, rentalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slot views", err)
	}
	defer rows.Close()

	var slots []queries.ScheduleSlotView
	for rows.Next() {
		var (
			weekday          int16
			startMin, endMin int
			active           bool
		)
		if err := rows.Scan(&weekday, &startMin, &endMin, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot view row", err)
		}
		slots = append(slots, queries.ScheduleSlotView{
			Weekday:   time.Weekday(weekday).String(),
			StartTime: formatMinutes(startMin),
			EndTime:   formatMinutes(endMin),
			Active:    active,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot view rows", err)
	}
	return slots, nil
}

func listQuery(where string) string {
	return fmt.Sprintf(selectRentalListSQL, where)
}

func formatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

package queries

import (
	"context"
	"time"

	"boxrent/internal/domain/user"
	"boxrent/internal/infra"
	"boxrent/internal/pkg/clock"
	"boxrent/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRentalNotFound = errs.New("rental not found")
	ErrForbidden      = errs.New("actor not allowed to read rental")
)

type RentalQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*RentalView, error)
	ListAll(ctx context.Context) ([]*RentalListItem, error)
	ListActive(ctx context.Context) ([]*RentalListItem, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*RentalListItem, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*RentalListItem, error)
	ListExpiringWithin(ctx context.Context, days int) ([]*RentalListItem, error)
}

type RentalViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindAll(ctx context.Context) ([]*RentalListItem, error)
	FindByStatus(ctx context.Context, status string) ([]*RentalListItem, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*RentalListItem, error)
	FindByResource(ctx context.Context, resourceID uuid.UUID) ([]*RentalListItem, error)
	FindActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*RentalListItem, error)
}

type rentalQueriesImpl struct {
	repo  RentalViewRepo
	clock clock.Clock
}

func NewRentalQueries(repo RentalViewRepo, clock clock.Clock) RentalQueries {
	return &rentalQueriesImpl{repo: repo, clock: clock}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*RentalView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}

	if !user.Authorize(actor, user.ActionReadRental, view.TenantID) {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *rentalQueriesImpl) ListAll(ctx context.Context) ([]*RentalListItem, error) {
	return q.repo.FindAll(ctx)
}

func (q *rentalQueriesImpl) ListActive(ctx context.Context) ([]*RentalListItem, error) {
	return q.repo.FindByStatus(ctx, "ACTIVE")
}

func (q *rentalQueriesImpl) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*RentalListItem, error) {
	return q.repo.FindByTenant(ctx, tenantID)
}

func (q *rentalQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID) ([]*RentalListItem, error) {
	return q.repo.FindByResource(ctx, resourceID)
}

// ListExpiringWithin drives renewal notices: ACTIVE rentals whose end date
// falls within the next N days.
func (q *rentalQueriesImpl) ListExpiringWithin(ctx context.Context, days int) ([]*RentalListItem, error) {
	if days < 0 {
		days = 0
	}
	cutoff := q.clock.Now().AddDate(0, 0, days)
	return q.repo.FindActiveEndingBefore(ctx, cutoff)
}

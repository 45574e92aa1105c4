package shared

import (
	"context"
	"time"

	"boxrent/internal/domain/rental"

	"github.com/google/uuid"
)

// UnitOfWork runs the conflict scan and the write as one serializable unit.
// Implementations retry on serialization failures.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the write-side surface available inside a transaction.
type Tx interface {
	// LockResource serializes all mutations touching one resource. It must
	// be taken before the conflict scan; the lock is released with the
	// transaction. This closes the check-then-act race between concurrent
	// creates on the same box.
	LockResource(ctx context.Context, resourceID uuid.UUID) error

	Rentals() RentalRepository
	Notifications() NotificationRepository
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
	Update(ctx context.Context, r *rental.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	// FindOccupyingByResource loads the PENDING and ACTIVE rentals on a
	// resource: the conflict detector's input set.
	FindOccupyingByResource(ctx context.Context, resourceID uuid.UUID) ([]*rental.Rental, error)
	// FindActiveEndedBefore loads ACTIVE rentals whose end date has passed:
	// the expiry sweep's input set.
	FindActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*rental.Rental, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// CommandReads is the read access commands need outside a transaction:
// collaborator existence checks.
type CommandReads interface {
	ResourceExists(ctx context.Context, id uuid.UUID) (bool, error)
	TenantExists(ctx context.Context, id uuid.UUID) (bool, error)
}

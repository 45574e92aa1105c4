package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"boxrent/internal/domain/rental"
	"boxrent/internal/infra"
	"boxrent/internal/pkg/clock"
	"boxrent/internal/pkg/config"
	"boxrent/internal/pkg/errs"
	"boxrent/internal/usecase/queries"
	"boxrent/internal/usecase/shared"

	"github.com/google/uuid"
)

const jobTimeout = 5 * time.Minute

// errRenewBlocked reports an auto-renewal whose extended window collides
// with a sibling rental. Distinct from ErrUnsupportedRenewal (CUSTOM
// class) so logs can tell the two expiry causes apart.
var errRenewBlocked = errs.New("auto-renewal blocked by a conflicting rental")

// JobRunner hosts the scheduled sweeps. Each sweep runs in its own
// transaction and tolerates per-rental failures: one bad row must not
// stall the nightly batch.
type JobRunner struct {
	uow      shared.UnitOfWork
	viewRepo queries.RentalViewRepo
	clock    clock.Clock
	cfg      config.SchedulerConfig
}

func NewJobRunner(
	uow shared.UnitOfWork,
	viewRepo queries.RentalViewRepo,
	clk clock.Clock,
	cfg config.SchedulerConfig,
) *JobRunner {
	return &JobRunner{
		uow:      uow,
		viewRepo: viewRepo,
		clock:    clk,
		cfg:      cfg,
	}
}

// ExpireRentals sweeps ACTIVE rentals whose end date has passed. Auto-renew
// rentals get their window extended when the extension stays conflict-free;
// everything else moves to EXPIRED. Each rental runs in its own
// transaction: one aborted write must not poison the rest of the batch.
func (j *JobRunner) ExpireRentals() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := j.clock.Now()

	var ids []uuid.UUID
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overdue, err := tx.Rentals().FindActiveEndedBefore(ctx, now)
		if err != nil {
			return err
		}
		for _, r := range overdue {
			ids = append(ids, r.ID())
		}
		return nil
	})
	if err != nil {
		slog.Error("expire rentals sweep failed", "error", err.Error())
		return
	}

	var renewed, expired int
	for _, id := range ids {
		outcome, err := j.sweepOne(ctx, id, now)
		if err != nil {
			slog.Warn("rental sweep failed, skipping", "rental_id", id, "error", err.Error())
			continue
		}
		switch outcome {
		case sweepRenewed:
			renewed++
		case sweepExpired:
			expired++
		}
	}

	slog.Info("expire rentals sweep completed", "renewed", renewed, "expired", expired)
}

type sweepOutcome int

const (
	sweepSkipped sweepOutcome = iota
	sweepRenewed
	sweepExpired
)

// sweepOne renews or expires a single overdue rental inside its own
// transaction. The rental is re-read under the resource lock, so a row
// that changed since the listing is skipped rather than clobbered.
func (j *JobRunner) sweepOne(ctx context.Context, id uuid.UUID, now time.Time) (sweepOutcome, error) {
	outcome := sweepSkipped

	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if r.Status() != rental.StatusActive || !r.DateRange().End().Before(now) {
			return nil
		}

		if r.AutoRenew() {
			switch renewErr := j.tryAutoRenew(ctx, tx, r, now); {
			case renewErr == nil:
				outcome = sweepRenewed
				return nil
			case errors.Is(renewErr, errRenewBlocked):
				slog.Info("auto-renewal blocked by a sibling, expiring", "rental_id", r.ID())
			case errors.Is(renewErr, rental.ErrUnsupportedRenewal):
				// CUSTOM class, expire below.
			default:
				// Roll back rather than expire: the aggregate may already
				// carry the extended window.
				return renewErr
			}
		}

		if err := r.MarkExpired(now); err != nil {
			return err
		}
		if err := tx.Rentals().Update(ctx, r); err != nil {
			return err
		}
		j.queueNotice(ctx, tx, "rental_expired", r, now)
		outcome = sweepExpired
		return nil
	})

	return outcome, err
}

func (j *JobRunner) tryAutoRenew(ctx context.Context, tx shared.Tx, r *rental.Rental, now time.Time) error {
	if err := tx.LockResource(ctx, r.ResourceID()); err != nil {
		return err
	}

	// Check the extended window before touching the aggregate: a mutated
	// rental must never reach the expiry write below.
	newEnd, err := rental.NextEndDate(r.DurationClass(), r.DateRange().End())
	if err != nil {
		return err
	}
	extended, err := rental.NewDateRange(r.DateRange().Start(), newEnd)
	if err != nil {
		return err
	}

	existing, err := tx.Rentals().FindOccupyingByResource(ctx, r.ResourceID())
	if err != nil {
		return err
	}
	candidate := rental.Candidate{ResourceID: r.ResourceID(), Range: extended, Schedule: r.Schedule()}
	if conflict := rental.FindConflict(candidate, existing, r.ID()); conflict != nil {
		return errRenewBlocked
	}

	if err := r.Renew(now); err != nil {
		return err
	}
	if err := tx.Rentals().Update(ctx, r); err != nil {
		return err
	}
	j.queueNotice(ctx, tx, "rental_auto_renewed", r, now)
	return nil
}

// QueueRenewalNotices enqueues an advance notice for every ACTIVE rental
// ending within the configured window.
func (j *JobRunner) QueueRenewalNotices() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := j.clock.Now()
	cutoff := now.AddDate(0, 0, j.cfg.RenewalNoticeDays)

	expiring, err := j.viewRepo.FindActiveEndingBefore(ctx, cutoff)
	if err != nil {
		slog.Error("renewal notice sweep failed", "error", err.Error())
		return
	}
	if len(expiring) == 0 {
		return
	}

	err = j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, item := range expiring {
			payload, err := json.Marshal(map[string]any{
				"rental_id": item.ID,
				"tenant_id": item.TenantID,
				"end_date":  item.EndDate.Format(time.DateOnly),
			})
			if err != nil {
				return err
			}
			if err := tx.Notifications().CreateJob(ctx, "email", "renewal_notice", payload, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to enqueue renewal notices", "error", err.Error())
		return
	}

	slog.Info("renewal notices enqueued", "count", len(expiring))
}

func (j *JobRunner) queueNotice(ctx context.Context, tx shared.Tx, topic string, r *rental.Rental, now time.Time) {
	payload, err := json.Marshal(map[string]any{
		"rental_id": r.ID(),
		"tenant_id": r.TenantID(),
		"type":      topic,
	})
	if err != nil {
		slog.Warn("failed to marshal notice payload", "rental_id", r.ID(), "error", err.Error())
		return
	}
	if err := tx.Notifications().CreateJob(ctx, "email", topic, payload, now); err != nil {
		slog.Warn("failed to enqueue notice", "rental_id", r.ID(), "error", err.Error())
	}
}

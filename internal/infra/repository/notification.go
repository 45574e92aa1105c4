package repository

import (
	"context"
	"time"

	"boxrent/internal/infra"
	"boxrent/internal/infra/db"
)

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'pending')`

// NotificationRepository enqueues delivery jobs in the same transaction as
// the rental mutation; a worker outside this service drains the table.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	if _, err := r.db.Exec(ctx, insertNotificationJobSQL, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}

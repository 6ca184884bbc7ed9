package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
)

// NotificationRepository enqueues decision signals for the external dispatcher.
// The insert rides the caller's transaction; delivery is someone else's job.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	query, args, err := psql.
		Insert("notification_jobs").
		Columns("id", "kind", "topic", "payload", "run_at", "status").
		Values(uuid.New(), kind, topic, payload, runAt, "pending").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification job insert", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}

	return nil
}

package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
)

type InviteRepository struct{}

func NewInviteRepository() *InviteRepository {
	return &InviteRepository{}
}

// Create inserts a new invite row. The partial unique index on
// (show_id) WHERE status IN ('pending','accepted') rejects a second active
// invite at write time; that surfaces here as KindDuplicateKey.
func (r *InviteRepository) Create(ctx context.Context, tx db.DBTX, inv *cohost.Invite) (uuid.UUID, error) {
	query, args, err := psql.
		Insert("cohost_invites").
		Columns(
			"id", "show_id",
			"host_user_id", "host_id", "host_model",
			"cohost_user_id", "cohost_id", "cohost_model",
			"status", "live_stream_id", "joined_at", "left_at", "reason",
			"created_at", "updated_at",
		).
		Values(
			inv.ID(), inv.ShowID(),
			inv.Host().UserID, inv.Host().HostID, inv.Host().Model.String(),
			inv.Cohost().UserID, inv.Cohost().HostID, inv.Cohost().Model.String(),
			inv.Status().String(), nullableText(inv.LiveStreamID()), inv.JoinedAt(), inv.LeftAt(), nullableText(string(inv.Reason())),
			inv.CreatedAt(), inv.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build invite insert", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert invite", err)
	}

	return inv.ID(), nil
}

// Update persists a state transition already validated by the domain entity.
func (r *InviteRepository) Update(ctx context.Context, tx db.DBTX, inv *cohost.Invite) error {
	query, args, err := psql.
		Update("cohost_invites").
		SetMap(map[string]any{
			"status":         inv.Status().String(),
			"live_stream_id": nullableText(inv.LiveStreamID()),
			"joined_at":      inv.JoinedAt(),
			"left_at":        inv.LeftAt(),
			"reason":         nullableText(string(inv.Reason())),
			"updated_at":     inv.UpdatedAt(),
		}).
		Where(sq.Eq{"id": inv.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build invite update", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update invite", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *InviteRepository) CancelActiveByShow(ctx context.Context, tx db.DBTX, showID uuid.UUID, now time.Time) (int64, error) {
	query, args, err := psql.
		Update("cohost_invites").
		SetMap(map[string]any{
			"status":         cohost.StatusCancelled.String(),
			"live_stream_id": nil,
			"updated_at":     now,
		}).
		Where(sq.Eq{"show_id": showID}).
		Where(sq.Eq{"status": []string{cohost.StatusPending.String(), cohost.StatusAccepted.String()}}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build bulk invite cancel", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel active invites", err)
	}

	return tag.RowsAffected(), nil
}

package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
	"showhost-service/internal/usecase/shared"
)

type InviteReadStore struct {
	db db.DBTX
}

func NewInviteReadStore(d db.DBTX) *InviteReadStore {
	return &InviteReadStore{db: d}
}

func (r *InviteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.InviteSnapshot, error) {
	query, args, err := psql.
		Select(
			"id", "show_id",
			"host_user_id", "host_id", "host_model",
			"cohost_user_id", "cohost_id", "cohost_model",
			"status", "live_stream_id", "joined_at", "left_at", "reason",
			"created_at", "updated_at",
		).
		From("cohost_invites").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build invite lookup", err)
	}

	var (
		snap         shared.InviteSnapshot
		liveStreamID *string
		reason       *string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.ShowID,
		&snap.Host.UserID, &snap.Host.HostID, &snap.Host.Model,
		&snap.Cohost.UserID, &snap.Cohost.HostID, &snap.Cohost.Model,
		&snap.Status, &liveStreamID, &snap.JoinedAt, &snap.LeftAt, &reason,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load invite", err)
	}

	if liveStreamID != nil {
		snap.LiveStreamID = *liveStreamID
	}
	if reason != nil {
		snap.Reason = cohost.LeaveReason(*reason)
	}

	return &snap, nil
}

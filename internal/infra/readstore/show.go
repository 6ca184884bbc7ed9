package readstore

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
	"showhost-service/internal/usecase/shared"
)

type ShowReadStore struct {
	db db.DBTX
}

func NewShowReadStore(d db.DBTX) *ShowReadStore {
	return &ShowReadStore{db: d}
}

func (r *ShowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ShowSnapshot, error) {
	query, args, err := psql.
		Select("id", "host_user_id", "host_id", "host_model", "has_co_host", "co_host", "show_status", "live_stream_id").
		From("shows").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build show lookup", err)
	}

	var (
		snap         shared.ShowSnapshot
		coHostRaw    []byte
		liveStreamID *string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.HostUserID, &snap.HostID, &snap.HostModel,
		&snap.HasCoHost, &coHostRaw, &snap.ShowStatus, &liveStreamID,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("show not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load show", err)
	}

	if len(coHostRaw) > 0 {
		var ref host.Ref
		if err := json.Unmarshal(coHostRaw, &ref); err != nil {
			return nil, infra.WrapRepoErr("failed to decode cohost snapshot", err)
		}
		snap.CoHost = &ref
	}
	if liveStreamID != nil {
		snap.LiveStreamID = *liveStreamID
	}

	return &snap, nil
}

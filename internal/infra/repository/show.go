package repository

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
)

// ShowRepository maintains the show's denormalized cohost snapshot. It must
// run in the same transaction as the invite transition it mirrors.
type ShowRepository struct{}

func NewShowRepository() *ShowRepository {
	return &ShowRepository{}
}

func (r *ShowRepository) SetCoHost(ctx context.Context, tx db.DBTX, showID uuid.UUID, snapshot host.Ref) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal cohost snapshot", err)
	}

	query, args, err := psql.
		Update("shows").
		SetMap(map[string]any{
			"has_co_host": true,
			"co_host":     payload,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": showID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build show cohost update", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to set show cohost", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("show not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ShowRepository) ClearCoHost(ctx context.Context, tx db.DBTX, showID uuid.UUID) error {
	query, args, err := psql.
		Update("shows").
		SetMap(map[string]any{
			"has_co_host": false,
			"co_host":     nil,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": showID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build show cohost clear", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to clear show cohost", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("show not found", nil, infra.KindNotFound)
	}

	return nil
}

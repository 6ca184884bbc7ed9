package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ConnectionRepository persists the partnership as two mirrored rows, one in
// each party's projection table. Callers must run every method inside the
// unit of work so both rows commit or neither does.
type ConnectionRepository struct{}

func NewConnectionRepository() *ConnectionRepository {
	return &ConnectionRepository{}
}

// CreatePair appends the pending request to both projections. A superseded
// terminal row for the same pair is overwritten in place on both sides.
func (r *ConnectionRepository) CreatePair(ctx context.Context, tx db.DBTX, conn *connection.Connection) error {
	dsQuery, dsArgs, err := psql.
		Insert("dropshipper_connections").
		Columns("dropshipper_id", "seller_id", "status", "commission_rate", "agreement_details", "requested_at").
		Values(conn.DropshipperID(), conn.SellerID(), conn.Status().String(), conn.CommissionRate().Value(), conn.AgreementDetails(), conn.RequestedAt()).
		Suffix(`ON CONFLICT (dropshipper_id, seller_id) DO UPDATE SET
			status = EXCLUDED.status,
			commission_rate = EXCLUDED.commission_rate,
			agreement_details = EXCLUDED.agreement_details,
			requested_at = EXCLUDED.requested_at,
			responded_at = NULL,
			rejection_reason = NULL,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build dropshipper projection insert", err)
	}

	if _, err := tx.Exec(ctx, dsQuery, dsArgs...); err != nil {
		return infra.WrapRepoErr("failed to insert dropshipper projection", err)
	}

	slQuery, slArgs, err := psql.
		Insert("seller_connections").
		Columns("seller_id", "dropshipper_id", "status", "commission_rate", "agreement_details", "requested_at").
		Values(conn.SellerID(), conn.DropshipperID(), conn.Status().String(), conn.CommissionRate().Value(), conn.AgreementDetails(), conn.RequestedAt()).
		Suffix(`ON CONFLICT (seller_id, dropshipper_id) DO UPDATE SET
			status = EXCLUDED.status,
			commission_rate = EXCLUDED.commission_rate,
			agreement_details = EXCLUDED.agreement_details,
			requested_at = EXCLUDED.requested_at,
			responded_at = NULL,
			rejection_reason = NULL,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build seller projection insert", err)
	}

	if _, err := tx.Exec(ctx, slQuery, slArgs...); err != nil {
		return infra.WrapRepoErr("failed to insert seller projection", err)
	}

	return nil
}

// UpdatePair writes the entity's current status onto both projection rows.
func (r *ConnectionRepository) UpdatePair(ctx context.Context, tx db.DBTX, conn *connection.Connection) error {
	set := map[string]any{
		"status":           conn.Status().String(),
		"commission_rate":  conn.CommissionRate().Value(),
		"responded_at":     conn.RespondedAt(),
		"rejection_reason": nullableText(conn.RejectionReason()),
		"updated_at":       sq.Expr("now()"),
	}

	dsQuery, dsArgs, err := psql.
		Update("dropshipper_connections").
		SetMap(set).
		Where(sq.Eq{"dropshipper_id": conn.DropshipperID(), "seller_id": conn.SellerID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build dropshipper projection update", err)
	}

	dsTag, err := tx.Exec(ctx, dsQuery, dsArgs...)
	if err != nil {
		return infra.WrapRepoErr("failed to update dropshipper projection", err)
	}

	slQuery, slArgs, err := psql.
		Update("seller_connections").
		SetMap(set).
		Where(sq.Eq{"seller_id": conn.SellerID(), "dropshipper_id": conn.DropshipperID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build seller projection update", err)
	}

	slTag, err := tx.Exec(ctx, slQuery, slArgs...)
	if err != nil {
		return infra.WrapRepoErr("failed to update seller projection", err)
	}

	if dsTag.RowsAffected() == 0 || slTag.RowsAffected() == 0 {
		return infra.WrapRepoErr("connection projection row missing", nil, infra.KindNotFound)
	}

	return nil
}

// DeletePair removes a withdrawn request from both projections.
func (r *ConnectionRepository) DeletePair(ctx context.Context, tx db.DBTX, dropshipperID, sellerID uuid.UUID) error {
	dsQuery, dsArgs, err := psql.
		Delete("dropshipper_connections").
		Where(sq.Eq{"dropshipper_id": dropshipperID, "seller_id": sellerID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build dropshipper projection delete", err)
	}

	dsTag, err := tx.Exec(ctx, dsQuery, dsArgs...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete dropshipper projection", err)
	}

	slQuery, slArgs, err := psql.
		Delete("seller_connections").
		Where(sq.Eq{"seller_id": sellerID, "dropshipper_id": dropshipperID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build seller projection delete", err)
	}

	slTag, err := tx.Exec(ctx, slQuery, slArgs...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete seller projection", err)
	}

	if dsTag.RowsAffected() == 0 || slTag.RowsAffected() == 0 {
		return infra.WrapRepoErr("connection projection row missing", nil, infra.KindNotFound)
	}

	return nil
}

func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
	"showhost-service/internal/usecase"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// HostReadStore loads seller and dropshipper profiles for host resolution.
type HostReadStore struct {
	db db.DBTX
}

func NewHostReadStore(d db.DBTX) *HostReadStore {
	return &HostReadStore{db: d}
}

func (r *HostReadStore) SellerByOwner(ctx context.Context, userID uuid.UUID) (*usecase.SellerRecord, error) {
	return r.findSeller(ctx, sq.Eq{"owner_user_id": userID})
}

func (r *HostReadStore) SellerByID(ctx context.Context, id uuid.UUID) (*usecase.SellerRecord, error) {
	return r.findSeller(ctx, sq.Eq{"id": id})
}

func (r *HostReadStore) DropshipperByOwner(ctx context.Context, userID uuid.UUID) (*usecase.DropshipperRecord, error) {
	return r.findDropshipper(ctx, sq.Eq{"owner_user_id": userID})
}

func (r *HostReadStore) DropshipperByID(ctx context.Context, id uuid.UUID) (*usecase.DropshipperRecord, error) {
	return r.findDropshipper(ctx, sq.Eq{"id": id})
}

func (r *HostReadStore) findSeller(ctx context.Context, pred sq.Eq) (*usecase.SellerRecord, error) {
	query, args, err := psql.
		Select("id", "owner_user_id", "approval_status").
		From("sellers").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build seller lookup", err)
	}

	var rec usecase.SellerRecord
	err = r.db.QueryRow(ctx, query, args...).Scan(&rec.ID, &rec.OwnerUserID, &rec.ApprovalStatus)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seller profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load seller profile", err)
	}

	return &rec, nil
}

func (r *HostReadStore) findDropshipper(ctx context.Context, pred sq.Eq) (*usecase.DropshipperRecord, error) {
	query, args, err := psql.
		Select("id", "owner_user_id", "approval_status").
		From("dropshippers").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build dropshipper lookup", err)
	}

	var rec usecase.DropshipperRecord
	err = r.db.QueryRow(ctx, query, args...).Scan(&rec.ID, &rec.OwnerUserID, &rec.ApprovalStatus)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dropshipper profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load dropshipper profile", err)
	}

	approved, err := r.approvedSellerIDs(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.ApprovedSellerIDs = approved

	return &rec, nil
}

func (r *HostReadStore) approvedSellerIDs(ctx context.Context, dropshipperID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := psql.
		Select("seller_id").
		From("dropshipper_connections").
		Where(sq.Eq{
			"dropshipper_id": dropshipperID,
			"status":         connection.StatusApproved.String(),
		}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build approved sellers lookup", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved sellers", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approved seller id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating approved sellers", err)
	}

	return ids, nil
}

package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
	"showhost-service/internal/usecase/queries"
	"showhost-service/internal/usecase/shared"
)

type ConnectionReadStore struct {
	db db.DBTX
}

func NewConnectionReadStore(d db.DBTX) *ConnectionReadStore {
	return &ConnectionReadStore{db: d}
}

// PairSnapshot reads both projection rows for one partnership; statuses are
// returned per side so guard logic can spot divergence instead of papering
// over it.
func (r *ConnectionReadStore) PairSnapshot(ctx context.Context, dropshipperID, sellerID uuid.UUID) (*shared.ConnectionPairSnapshot, error) {
	query, args, err := psql.
		Select(
			"d.dropshipper_id", "d.seller_id",
			"d.status", "s.status",
			"d.commission_rate", "d.agreement_details",
			"d.requested_at", "d.responded_at", "d.rejection_reason",
		).
		From("dropshipper_connections d").
		Join("seller_connections s ON s.seller_id = d.seller_id AND s.dropshipper_id = d.dropshipper_id").
		Where(sq.Eq{"d.dropshipper_id": dropshipperID, "d.seller_id": sellerID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build connection pair lookup", err)
	}

	var (
		snap            shared.ConnectionPairSnapshot
		rejectionReason *string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&snap.DropshipperID, &snap.SellerID,
		&snap.DropshipperStatus, &snap.SellerStatus,
		&snap.CommissionRate, &snap.AgreementDetails,
		&snap.RequestedAt, &snap.RespondedAt, &rejectionReason,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("connection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load connection pair", err)
	}

	if rejectionReason != nil {
		snap.RejectionReason = *rejectionReason
	}

	return &snap, nil
}

// ListByDropshipper returns the dropshipper-side projection, optionally
// narrowed to one status.
func (r *ConnectionReadStore) ListByDropshipper(ctx context.Context, dropshipperID uuid.UUID, status *connection.Status) ([]*queries.ConnectionView, error) {
	return r.list(ctx, "dropshipper_connections", sq.Eq{"dropshipper_id": dropshipperID}, status)
}

// ListBySeller reads the seller-side mirror of the same partnerships.
func (r *ConnectionReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID, status *connection.Status) ([]*queries.ConnectionView, error) {
	return r.list(ctx, "seller_connections", sq.Eq{"seller_id": sellerID}, status)
}

func (r *ConnectionReadStore) list(ctx context.Context, table string, owner sq.Eq, status *connection.Status) ([]*queries.ConnectionView, error) {
	builder := psql.
		Select(
			"dropshipper_id", "seller_id", "status",
			"commission_rate", "agreement_details",
			"requested_at", "responded_at", "rejection_reason",
		).
		From(table).
		Where(owner).
		OrderBy("requested_at DESC")
	if status != nil {
		builder = builder.Where(sq.Eq{"status": *status})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build connection list", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list connections", err)
	}
	defer rows.Close()

	var views []*queries.ConnectionView
	for rows.Next() {
		var (
			v               queries.ConnectionView
			rejectionReason *string
		)
		if err := rows.Scan(
			&v.DropshipperID, &v.SellerID, &v.Status,
			&v.CommissionRate, &v.AgreementDetails,
			&v.RequestedAt, &v.RespondedAt, &rejectionReason,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan connection", err)
		}
		if rejectionReason != nil {
			v.RejectionReason = *rejectionReason
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating connections", err)
	}

	return views, nil
}

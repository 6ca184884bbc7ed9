package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"showhost-service/internal/domain/product"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
)

// ProductReadStore reads the catalogue fields this core needs; listings are
// owned by the catalogue service and never written here.
type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(d db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: d}
}

func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]product.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := psql.
		Select("id", "owner_seller_id", "is_active", "allow_dropshipping").
		From("products").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build product lookup", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load products", err)
	}
	defer rows.Close()

	var listings []product.Listing
	for rows.Next() {
		var l product.Listing
		if err := rows.Scan(&l.ID, &l.OwnerSellerID, &l.IsActive, &l.AllowDropshipping); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("error iterating products", err)
	}

	return listings, nil
}

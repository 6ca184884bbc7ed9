package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/product"
	"showhost-service/internal/pkg/errs"
)

var ErrProductLookup = errs.New("failed to load products")

// Per-product failure codes; every failing product gets its own entry so the
// caller can report the full batch at once.
const (
	ProductErrNotFound         = "PRODUCT_NOT_FOUND"
	ProductErrInactive         = "PRODUCT_INACTIVE"
	ProductErrNotOwned         = "PRODUCT_NOT_OWNED_BY_SELLER"
	ProductErrNotConnected     = "SELLER_NOT_CONNECTED"
	ProductErrDropshipDisabled = "DROPSHIPPING_DISABLED"
)

type ProductError struct {
	ProductID uuid.UUID `json:"product_id"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
}

// AuthorizeProductsResult is all-or-nothing for callers: a non-empty Errors
// slice means the whole batch must be rejected, never partially listed.
type AuthorizeProductsResult struct {
	ValidIDs []uuid.UUID    `json:"valid_ids"`
	Errors   []ProductError `json:"errors,omitempty"`
}

func (r *AuthorizeProductsResult) OK() bool {
	return len(r.Errors) == 0
}

type ProductReadStore interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]product.Listing, error)
}

// ProductAuthorizer validates that a batch of products may be attributed to a
// resolved host on a show or video.
type ProductAuthorizer interface {
	Authorize(ctx context.Context, productIDs []uuid.UUID, h host.Identity) (*AuthorizeProductsResult, error)
}

type productAuthorizerImpl struct {
	products ProductReadStore
}

func NewProductAuthorizer(products ProductReadStore) ProductAuthorizer {
	return &productAuthorizerImpl{products: products}
}

func (a *productAuthorizerImpl) Authorize(ctx context.Context, productIDs []uuid.UUID, h host.Identity) (*AuthorizeProductsResult, error) {
	listings, err := a.products.FindByIDs(ctx, dedupe(productIDs))
	if err != nil {
		return nil, errs.Mark(err, ErrProductLookup)
	}

	byID := make(map[uuid.UUID]product.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	result := &AuthorizeProductsResult{}
	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		listing, ok := byID[id]
		if !ok {
			result.Errors = append(result.Errors, ProductError{
				ProductID: id,
				Code:      ProductErrNotFound,
				Message:   "product does not exist",
			})
			continue
		}

		if err := listing.Attributable(h); err != nil {
			result.Errors = append(result.Errors, toProductError(id, err))
			continue
		}

		result.ValidIDs = append(result.ValidIDs, id)
	}

	return result, nil
}

func toProductError(id uuid.UUID, err error) ProductError {
	pe := ProductError{ProductID: id}
	switch {
	case errors.Is(err, product.ErrInactive):
		pe.Code = ProductErrInactive
		pe.Message = "product is not active"
	case errors.Is(err, product.ErrNotOwnedBySeller):
		pe.Code = ProductErrNotOwned
		pe.Message = "product is not owned by this seller"
	case errors.Is(err, product.ErrSellerNotConnected):
		pe.Code = ProductErrNotConnected
		pe.Message = "no approved connection to the product's seller"
	case errors.Is(err, product.ErrDropshippingDisabled):
		pe.Code = ProductErrDropshipDisabled
		pe.Message = "seller has disabled dropshipping for this product"
	default:
		pe.Code = "PRODUCT_NOT_ELIGIBLE"
		pe.Message = err.Error()
	}
	return pe
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

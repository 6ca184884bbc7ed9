//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/product"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductStore struct {
	listings map[uuid.UUID]product.Listing
	err      error
	gotIDs   []uuid.UUID
}

func (s *stubProductStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]product.Listing, error) {
	s.gotIDs = ids
	if s.err != nil {
		return nil, s.err
	}
	out := make([]product.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := s.listings[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func newCatalog(listings ...product.Listing) *stubProductStore {
	byID := make(map[uuid.UUID]product.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	return &stubProductStore{listings: byID}
}

func TestAuthorizeForSeller(t *testing.T) {
	sellerID := uuid.New()
	seller := host.NewSeller(sellerID, uuid.New(), host.ApprovalApproved)

	own := product.Listing{ID: uuid.New(), OwnerSellerID: sellerID, IsActive: true}
	foreign := product.Listing{ID: uuid.New(), OwnerSellerID: uuid.New(), IsActive: true}
	inactive := product.Listing{ID: uuid.New(), OwnerSellerID: sellerID}

	authorizer := usecase.NewProductAuthorizer(newCatalog(own, foreign, inactive))
	missing := uuid.New()

	result, err := authorizer.Authorize(context.Background(), []uuid.UUID{own.ID, foreign.ID, inactive.ID, missing}, seller)
	require.NoError(t, err)

	assert.False(t, result.OK())
	assert.Equal(t, []uuid.UUID{own.ID}, result.ValidIDs)

	codes := make(map[uuid.UUID]string, len(result.Errors))
	for _, pe := range result.Errors {
		codes[pe.ProductID] = pe.Code
	}
	assert.Equal(t, map[uuid.UUID]string{
		foreign.ID:  usecase.ProductErrNotOwned,
		inactive.ID: usecase.ProductErrInactive,
		missing:     usecase.ProductErrNotFound,
	}, codes)
}

func TestAuthorizeForDropshipper(t *testing.T) {
	sellerID := uuid.New()
	optIn := product.Listing{ID: uuid.New(), OwnerSellerID: sellerID, IsActive: true, AllowDropshipping: true}
	optOut := product.Listing{ID: uuid.New(), OwnerSellerID: sellerID, IsActive: true}

	authorizer := usecase.NewProductAuthorizer(newCatalog(optIn, optOut))

	t.Run("unconnected dropshipper is rejected per product", func(t *testing.T) {
		ds := host.NewDropshipper(uuid.New(), uuid.New(), host.ApprovalApproved, nil)

		result, err := authorizer.Authorize(context.Background(), []uuid.UUID{optIn.ID}, ds)
		require.NoError(t, err)

		assert.False(t, result.OK())
		require.Len(t, result.Errors, 1)
		assert.Equal(t, usecase.ProductErrNotConnected, result.Errors[0].Code)
		assert.Equal(t, optIn.ID, result.Errors[0].ProductID)
	})

	t.Run("connected dropshipper passes only opted-in products", func(t *testing.T) {
		ds := host.NewDropshipper(uuid.New(), uuid.New(), host.ApprovalApproved, []uuid.UUID{sellerID})

		result, err := authorizer.Authorize(context.Background(), []uuid.UUID{optIn.ID, optOut.ID}, ds)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{optIn.ID}, result.ValidIDs)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, usecase.ProductErrDropshipDisabled, result.Errors[0].Code)
	})
}

func TestAuthorizeDedupesInput(t *testing.T) {
	sellerID := uuid.New()
	seller := host.NewSeller(sellerID, uuid.New(), host.ApprovalApproved)
	own := product.Listing{ID: uuid.New(), OwnerSellerID: sellerID, IsActive: true}

	store := newCatalog(own)
	authorizer := usecase.NewProductAuthorizer(store)

	result, err := authorizer.Authorize(context.Background(), []uuid.UUID{own.ID, own.ID, own.ID}, seller)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{own.ID}, result.ValidIDs)
	assert.Len(t, store.gotIDs, 1)
}

func TestAuthorizeStoreFailure(t *testing.T) {
	store := &stubProductStore{err: errs.New("connection reset")}
	authorizer := usecase.NewProductAuthorizer(store)

	_, err := authorizer.Authorize(context.Background(), []uuid.UUID{uuid.New()}, host.NewSeller(uuid.New(), uuid.New(), host.ApprovalApproved))
	assert.ErrorIs(t, err, usecase.ErrProductLookup)
}

//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/principal"
	"showhost-service/internal/infra"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase"
	"showhost-service/tests/common/builder"
	"showhost-service/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := fake.NewHostDirectory()
	seller := builder.NewSellerBuilder()
	pendingSeller := builder.NewSellerBuilder().With(func(b *builder.SellerBuilder) {
		b.ApprovalStatus = "pending"
	})
	ds := builder.NewDropshipperBuilder()
	autoDS := builder.NewDropshipperBuilder().With(func(b *builder.DropshipperBuilder) {
		b.ApprovalStatus = "auto_approved"
	})
	dir.AddSeller(seller.BuildRecord())
	dir.AddSeller(pendingSeller.BuildRecord())
	dir.AddDropshipper(ds.BuildRecord())
	dir.AddDropshipper(autoDS.BuildRecord())

	resolver := usecase.NewHostResolver(dir)

	t.Run("approved seller", func(t *testing.T) {
		identity, err := resolver.Resolve(context.Background(), seller.Principal())
		require.NoError(t, err)

		s, ok := identity.(*host.Seller)
		require.True(t, ok)
		assert.Equal(t, seller.ID, s.HostID())
	})

	t.Run("approved dropshipper", func(t *testing.T) {
		identity, err := resolver.Resolve(context.Background(), ds.Principal())
		require.NoError(t, err)

		_, ok := identity.(*host.Dropshipper)
		assert.True(t, ok)
	})

	t.Run("unapproved seller is not eligible", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), pendingSeller.Principal())
		assert.ErrorIs(t, err, usecase.ErrHostNotEligible)
	})

	t.Run("auto approval does not qualify a dropshipper", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), autoDS.Principal())
		assert.ErrorIs(t, err, usecase.ErrHostNotEligible)
	})

	t.Run("no host profile", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), principal.Principal{UserID: uuid.New(), Role: principal.RoleSeller})
		assert.ErrorIs(t, err, usecase.ErrHostNotEligible)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), principal.Principal{UserID: seller.OwnerUserID, Role: principal.Role("viewer")})
		assert.ErrorIs(t, err, usecase.ErrHostNotEligible)
	})
}

func TestResolveUser(t *testing.T) {
	dir := fake.NewHostDirectory()
	seller := builder.NewSellerBuilder()
	ds := builder.NewDropshipperBuilder()
	dir.AddSeller(seller.BuildRecord())
	dir.AddDropshipper(ds.BuildRecord())

	resolver := usecase.NewHostResolver(dir)

	t.Run("finds the seller profile first", func(t *testing.T) {
		identity, err := resolver.ResolveUser(context.Background(), seller.OwnerUserID)
		require.NoError(t, err)
		assert.Equal(t, host.ModelSeller, host.RefOf(identity).Model)
	})

	t.Run("falls back to the dropshipper profile", func(t *testing.T) {
		identity, err := resolver.ResolveUser(context.Background(), ds.OwnerUserID)
		require.NoError(t, err)
		assert.Equal(t, host.ModelDropshipper, host.RefOf(identity).Model)
	})

	t.Run("no profile at all", func(t *testing.T) {
		_, err := resolver.ResolveUser(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrHostNotEligible)
	})
}

type failingHostStore struct {
	usecase.HostReadStore
}

func (s *failingHostStore) SellerByOwner(context.Context, uuid.UUID) (*usecase.SellerRecord, error) {
	return nil, infra.WrapRepoErr("query failed", errs.New("connection refused"), infra.KindDBFailure)
}

func TestResolveStorageFailure(t *testing.T) {
	resolver := usecase.NewHostResolver(&failingHostStore{})

	_, err := resolver.Resolve(context.Background(), principal.Principal{UserID: uuid.New(), Role: principal.RoleSeller})
	assert.ErrorIs(t, err, usecase.ErrHostLookup)
}

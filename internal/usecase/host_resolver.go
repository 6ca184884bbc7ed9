package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/principal"
	"showhost-service/internal/infra"
	"showhost-service/internal/pkg/errs"
)

var (
	ErrHostNotEligible = errs.New("principal is not an approved host")
	ErrHostLookup      = errs.New("failed to resolve host")
)

// Write-side records for host resolution (profiles are owned elsewhere).
type SellerRecord struct {
	ID             uuid.UUID
	OwnerUserID    uuid.UUID
	ApprovalStatus string
}

type DropshipperRecord struct {
	ID                uuid.UUID
	OwnerUserID       uuid.UUID
	ApprovalStatus    string
	ApprovedSellerIDs []uuid.UUID
}

type HostReadStore interface {
	SellerByOwner(ctx context.Context, userID uuid.UUID) (*SellerRecord, error)
	DropshipperByOwner(ctx context.Context, userID uuid.UUID) (*DropshipperRecord, error)
	SellerByID(ctx context.Context, id uuid.UUID) (*SellerRecord, error)
	DropshipperByID(ctx context.Context, id uuid.UUID) (*DropshipperRecord, error)
}

// HostResolver turns an authenticated principal into a concrete host
// identity. Resolution is a pure read; every authorization decision
// downstream starts from the identity it returns.
type HostResolver interface {
	Resolve(ctx context.Context, p principal.Principal) (host.Identity, error)
	// ResolveUser resolves a user without a role hint by trying the seller
	// profile first, then the dropshipper profile.
	ResolveUser(ctx context.Context, userID uuid.UUID) (host.Identity, error)
}

type hostResolverImpl struct {
	hosts HostReadStore
}

func NewHostResolver(hosts HostReadStore) HostResolver {
	return &hostResolverImpl{hosts: hosts}
}

func (r *hostResolverImpl) Resolve(ctx context.Context, p principal.Principal) (host.Identity, error) {
	switch p.Role {
	case principal.RoleSeller:
		return r.resolveSeller(ctx, p.UserID)
	case principal.RoleDropshipper:
		return r.resolveDropshipper(ctx, p.UserID)
	default:
		return nil, ErrHostNotEligible
	}
}

func (r *hostResolverImpl) ResolveUser(ctx context.Context, userID uuid.UUID) (host.Identity, error) {
	identity, err := r.resolveSeller(ctx, userID)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, ErrHostNotEligible) {
		return nil, err
	}
	return r.resolveDropshipper(ctx, userID)
}

func (r *hostResolverImpl) resolveSeller(ctx context.Context, userID uuid.UUID) (host.Identity, error) {
	rec, err := r.hosts.SellerByOwner(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHostNotEligible
		}
		return nil, errs.Mark(err, ErrHostLookup)
	}

	seller := host.NewSeller(rec.ID, rec.OwnerUserID, host.ApprovalStatus(rec.ApprovalStatus))
	if !seller.IsApproved() {
		return nil, ErrHostNotEligible
	}
	return seller, nil
}

func (r *hostResolverImpl) resolveDropshipper(ctx context.Context, userID uuid.UUID) (host.Identity, error) {
	rec, err := r.hosts.DropshipperByOwner(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHostNotEligible
		}
		return nil, errs.Mark(err, ErrHostLookup)
	}

	ds := host.NewDropshipper(rec.ID, rec.OwnerUserID, host.ApprovalStatus(rec.ApprovalStatus), rec.ApprovedSellerIDs)
	if !ds.IsApproved() {
		return nil, ErrHostNotEligible
	}
	return ds, nil
}

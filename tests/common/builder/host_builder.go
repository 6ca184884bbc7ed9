//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/principal"
	"showhost-service/internal/usecase"
)

type SellerBuilder struct {
	ID             uuid.UUID
	OwnerUserID    uuid.UUID
	ApprovalStatus string
}

func NewSellerBuilder() *SellerBuilder {
	return &SellerBuilder{
		ID:             uuid.New(),
		OwnerUserID:    uuid.New(),
		ApprovalStatus: string(host.ApprovalApproved),
	}
}

func (b *SellerBuilder) With(mutate func(*SellerBuilder)) *SellerBuilder {
	mutate(b)
	return b
}

func (b *SellerBuilder) BuildRecord() usecase.SellerRecord {
	return usecase.SellerRecord{
		ID:             b.ID,
		OwnerUserID:    b.OwnerUserID,
		ApprovalStatus: b.ApprovalStatus,
	}
}

func (b *SellerBuilder) BuildDomain() *host.Seller {
	return host.NewSeller(b.ID, b.OwnerUserID, host.ApprovalStatus(b.ApprovalStatus))
}

func (b *SellerBuilder) Principal() principal.Principal {
	return principal.Principal{UserID: b.OwnerUserID, Role: principal.RoleSeller}
}

func (b *SellerBuilder) Ref() host.Ref {
	return host.Ref{UserID: b.OwnerUserID, HostID: b.ID, Model: host.ModelSeller}
}

type DropshipperBuilder struct {
	ID                uuid.UUID
	OwnerUserID       uuid.UUID
	ApprovalStatus    string
	ApprovedSellerIDs []uuid.UUID
}

func NewDropshipperBuilder() *DropshipperBuilder {
	return &DropshipperBuilder{
		ID:             uuid.New(),
		OwnerUserID:    uuid.New(),
		ApprovalStatus: string(host.ApprovalApproved),
	}
}

func (b *DropshipperBuilder) With(mutate func(*DropshipperBuilder)) *DropshipperBuilder {
	mutate(b)
	return b
}

func (b *DropshipperBuilder) BuildRecord() usecase.DropshipperRecord {
	return usecase.DropshipperRecord{
		ID:                b.ID,
		OwnerUserID:       b.OwnerUserID,
		ApprovalStatus:    b.ApprovalStatus,
		ApprovedSellerIDs: b.ApprovedSellerIDs,
	}
}

func (b *DropshipperBuilder) BuildDomain() *host.Dropshipper {
	return host.NewDropshipper(b.ID, b.OwnerUserID, host.ApprovalStatus(b.ApprovalStatus), b.ApprovedSellerIDs)
}

func (b *DropshipperBuilder) Principal() principal.Principal {
	return principal.Principal{UserID: b.OwnerUserID, Role: principal.RoleDropshipper}
}

func (b *DropshipperBuilder) Ref() host.Ref {
	return host.Ref{UserID: b.OwnerUserID, HostID: b.ID, Model: host.ModelDropshipper}
}

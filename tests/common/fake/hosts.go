package fake

import (
	"context"

	"github.com/google/uuid"

	"showhost-service/internal/infra"
	"showhost-service/internal/usecase"
)

// HostDirectory is an in-memory usecase.HostReadStore.
type HostDirectory struct {
	Sellers      map[uuid.UUID]*usecase.SellerRecord      // keyed by host id
	Dropshippers map[uuid.UUID]*usecase.DropshipperRecord // keyed by host id
}

func NewHostDirectory() *HostDirectory {
	return &HostDirectory{
		Sellers:      make(map[uuid.UUID]*usecase.SellerRecord),
		Dropshippers: make(map[uuid.UUID]*usecase.DropshipperRecord),
	}
}

func (d *HostDirectory) AddSeller(rec usecase.SellerRecord) {
	d.Sellers[rec.ID] = &rec
}

func (d *HostDirectory) AddDropshipper(rec usecase.DropshipperRecord) {
	d.Dropshippers[rec.ID] = &rec
}

func (d *HostDirectory) SellerByOwner(_ context.Context, userID uuid.UUID) (*usecase.SellerRecord, error) {
	for _, rec := range d.Sellers {
		if rec.OwnerUserID == userID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("seller profile not found", nil, infra.KindNotFound)
}

func (d *HostDirectory) DropshipperByOwner(_ context.Context, userID uuid.UUID) (*usecase.DropshipperRecord, error) {
	for _, rec := range d.Dropshippers {
		if rec.OwnerUserID == userID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("dropshipper profile not found", nil, infra.KindNotFound)
}

func (d *HostDirectory) SellerByID(_ context.Context, id uuid.UUID) (*usecase.SellerRecord, error) {
	rec, ok := d.Sellers[id]
	if !ok {
		return nil, infra.WrapRepoErr("seller profile not found", nil, infra.KindNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (d *HostDirectory) DropshipperByID(_ context.Context, id uuid.UUID) (*usecase.DropshipperRecord, error) {
	rec, ok := d.Dropshippers[id]
	if !ok {
		return nil, infra.WrapRepoErr("dropshipper profile not found", nil, infra.KindNotFound)
	}
	cp := *rec
	return &cp, nil
}

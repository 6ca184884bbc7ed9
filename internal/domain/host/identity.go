package host

import (
	"github.com/google/uuid"
)

// Model discriminates the two concrete host kinds wherever a host reference
// is persisted (shows, invites).
type Model string

const (
	ModelSeller      Model = "Seller"
	ModelDropshipper Model = "Dropshipper"
)

func (m Model) String() string {
	return string(m)
}

func (m Model) IsValid() bool {
	switch m {
	case ModelSeller, ModelDropshipper:
		return true
	default:
		return false
	}
}

type ApprovalStatus string

const (
	ApprovalPending      ApprovalStatus = "pending"
	ApprovalApproved     ApprovalStatus = "approved"
	ApprovalAutoApproved ApprovalStatus = "auto_approved"
	ApprovalRejected     ApprovalStatus = "rejected"
)

// Identity is the closed union of host kinds. It is resolved once at the
// boundary and passed around as a concrete type; code that needs the variant
// type-switches on *Seller / *Dropshipper.
type Identity interface {
	HostID() uuid.UUID
	OwnerUserID() uuid.UUID
	Model() Model

	sealed()
}

type Seller struct {
	id          uuid.UUID
	ownerUserID uuid.UUID
	status      ApprovalStatus
}

func NewSeller(id, ownerUserID uuid.UUID, status ApprovalStatus) *Seller {
	return &Seller{id: id, ownerUserID: ownerUserID, status: status}
}

func (s *Seller) HostID() uuid.UUID      { return s.id }
func (s *Seller) OwnerUserID() uuid.UUID { return s.ownerUserID }
func (s *Seller) Model() Model           { return ModelSeller }
func (s *Seller) Status() ApprovalStatus { return s.status }
func (s *Seller) sealed()                {}

// IsApproved covers both manual and automatic seller approval.
func (s *Seller) IsApproved() bool {
	return s.status == ApprovalApproved || s.status == ApprovalAutoApproved
}

func (s *Seller) Owns(ownerSellerID uuid.UUID) bool {
	return s.id == ownerSellerID
}

type Dropshipper struct {
	id                uuid.UUID
	ownerUserID       uuid.UUID
	status            ApprovalStatus
	approvedSellerIDs map[uuid.UUID]struct{}
}

func NewDropshipper(id, ownerUserID uuid.UUID, status ApprovalStatus, approvedSellerIDs []uuid.UUID) *Dropshipper {
	set := make(map[uuid.UUID]struct{}, len(approvedSellerIDs))
	for _, sid := range approvedSellerIDs {
		set[sid] = struct{}{}
	}
	return &Dropshipper{
		id:                id,
		ownerUserID:       ownerUserID,
		status:            status,
		approvedSellerIDs: set,
	}
}

func (d *Dropshipper) HostID() uuid.UUID      { return d.id }
func (d *Dropshipper) OwnerUserID() uuid.UUID { return d.ownerUserID }
func (d *Dropshipper) Model() Model           { return ModelDropshipper }
func (d *Dropshipper) Status() ApprovalStatus { return d.status }
func (d *Dropshipper) sealed()                {}

func (d *Dropshipper) IsApproved() bool {
	return d.status == ApprovalApproved
}

// IsConnectedTo reports whether the dropshipper holds an approved connection
// to the given seller.
func (d *Dropshipper) IsConnectedTo(sellerID uuid.UUID) bool {
	_, ok := d.approvedSellerIDs[sellerID]
	return ok
}

func (d *Dropshipper) ApprovedSellerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.approvedSellerIDs))
	for id := range d.approvedSellerIDs {
		ids = append(ids, id)
	}
	return ids
}

// Ref is the denormalized (userID, hostID, model) triple stored on shows and
// invites.
type Ref struct {
	UserID uuid.UUID `json:"user_id"`
	HostID uuid.UUID `json:"host_id"`
	Model  Model     `json:"host_model"`
}

func RefOf(identity Identity) Ref {
	return Ref{
		UserID: identity.OwnerUserID(),
		HostID: identity.HostID(),
		Model:  identity.Model(),
	}
}

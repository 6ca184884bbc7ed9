package product

import (
	"showhost-service/internal/domain/host"
	"showhost-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInactive             = errs.New("product is not active")
	ErrNotOwnedBySeller     = errs.New("product not owned by seller")
	ErrSellerNotConnected   = errs.New("no approved connection to the product's seller")
	ErrDropshippingDisabled = errs.New("dropshipping is disabled for this product")
)

// Listing is the slice of the catalogue record this core reads; it is owned
// and mutated elsewhere.
type Listing struct {
	ID                uuid.UUID
	OwnerSellerID     uuid.UUID
	IsActive          bool
	AllowDropshipping bool
}

// Attributable checks whether the resolved host may attach this listing to a
// show or video. Sellers need direct ownership; dropshippers need an approved
// connection to the owning seller plus the per-item opt-in flag.
func (l Listing) Attributable(h host.Identity) error {
	if !l.IsActive {
		return ErrInactive
	}

	switch v := h.(type) {
	case *host.Seller:
		if !v.Owns(l.OwnerSellerID) {
			return ErrNotOwnedBySeller
		}
	case *host.Dropshipper:
		if !v.IsConnectedTo(l.OwnerSellerID) {
			return ErrSellerNotConnected
		}
		if !l.AllowDropshipping {
			return ErrDropshippingDisabled
		}
	}
	return nil
}

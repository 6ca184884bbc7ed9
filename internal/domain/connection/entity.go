package connection

import (
	"strings"
	"time"

	"showhost-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCommissionRate   = errs.New("commission rate must be between 0 and 100")
	ErrRejectionReasonRequired = errs.New("rejection requires a reason")
	ErrNotPending              = errs.New("connection is not pending")
	ErrNotApproved             = errs.New("connection is not approved")
	ErrNotActionable           = errs.New("connection can no longer be acted on")
	ErrInvalidDecision         = errs.New("invalid decision")
)

// CommissionRate is a percentage fixed at request time. The responding seller
// cannot change it when approving; that is deliberate business behavior.
type CommissionRate struct {
	value float64
}

func NewCommissionRate(v float64) (CommissionRate, error) {
	if v < 0 || v > 100 {
		return CommissionRate{}, ErrInvalidCommissionRate
	}
	return CommissionRate{value: v}, nil
}

func (r CommissionRate) Value() float64 {
	return r.value
}

// Connection is the partnership between one dropshipper and one seller. It is
// persisted as two mirrored rows (one per party); this entity is the single
// logical record both rows must agree with.
type Connection struct {
	dropshipperID    uuid.UUID
	sellerID         uuid.UUID
	status           Status
	commissionRate   CommissionRate
	agreementDetails string
	requestedAt      time.Time
	respondedAt      *time.Time
	rejectionReason  string
}

// NewRequest creates the pending connection a dropshipper proposes to a seller.
func NewRequest(dropshipperID, sellerID uuid.UUID, rate CommissionRate, agreementDetails string, now time.Time) *Connection {
	return &Connection{
		dropshipperID:    dropshipperID,
		sellerID:         sellerID,
		status:           StatusPending,
		commissionRate:   rate,
		agreementDetails: strings.TrimSpace(agreementDetails),
		requestedAt:      now,
	}
}

func Reconstruct(
	dropshipperID, sellerID uuid.UUID,
	status Status,
	rate CommissionRate,
	agreementDetails string,
	requestedAt time.Time,
	respondedAt *time.Time,
	rejectionReason string,
) *Connection {
	return &Connection{
		dropshipperID:    dropshipperID,
		sellerID:         sellerID,
		status:           status,
		commissionRate:   rate,
		agreementDetails: agreementDetails,
		requestedAt:      requestedAt,
		respondedAt:      respondedAt,
		rejectionReason:  rejectionReason,
	}
}

func (c *Connection) DropshipperID() uuid.UUID { return c.dropshipperID }
func (c *Connection) SellerID() uuid.UUID     { return c.sellerID }
func (c *Connection) Status() Status          { return c.status }
func (c *Connection) CommissionRate() CommissionRate {
	return c.commissionRate
}
func (c *Connection) AgreementDetails() string { return c.agreementDetails }
func (c *Connection) RequestedAt() time.Time   { return c.requestedAt }
func (c *Connection) RespondedAt() *time.Time  { return c.respondedAt }
func (c *Connection) RejectionReason() string  { return c.rejectionReason }

// Respond resolves a pending request. The commission rate stays as proposed at
// request time regardless of the decision.
func (c *Connection) Respond(decision Decision, rejectionReason string, now time.Time) error {
	if !decision.IsValid() {
		return ErrInvalidDecision
	}
	if c.status != StatusPending {
		return ErrNotPending
	}

	switch decision {
	case DecisionApproved:
		c.status = StatusApproved
	case DecisionRejected:
		reason := strings.TrimSpace(rejectionReason)
		if reason == "" {
			return ErrRejectionReasonRequired
		}
		c.status = StatusRejected
		c.rejectionReason = reason
	}
	c.respondedAt = &now
	return nil
}

// Revoke ends an approved partnership; the terminal status records which party
// pulled out.
func (c *Connection) Revoke(actor Actor, now time.Time) error {
	if c.status != StatusApproved {
		return ErrNotApproved
	}
	if actor == ActorSeller {
		c.status = StatusRevokedBySeller
	} else {
		c.status = StatusRevokedByDropshipper
	}
	c.respondedAt = &now
	return nil
}

// CanWithdraw reports whether the dropshipper may delete the request outright.
func (c *Connection) CanWithdraw() bool {
	return c.status == StatusPending
}

package connection

type Status string

const (
	StatusPending              Status = "pending"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
	StatusRevokedBySeller      Status = "revoked_by_seller"
	StatusRevokedByDropshipper Status = "revoked_by_dropshipper"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevokedBySeller, StatusRevokedByDropshipper:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status blocks a new request for the same pair.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// Actor identifies which side of the partnership performs an operation.
type Actor string

const (
	ActorSeller      Actor = "seller"
	ActorDropshipper Actor = "dropshipper"
)

// Decision is the seller's answer to a pending request.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

package shared

import (
	"time"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/connection"
	"showhost-service/internal/domain/host"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side guard reads.

type ShowSnapshot struct {
	ID           uuid.UUID
	HostUserID   uuid.UUID
	HostID       uuid.UUID
	HostModel    host.Model
	HasCoHost    bool
	CoHost       *host.Ref
	ShowStatus   cohost.ShowStatus
	LiveStreamID string
}

type InviteSnapshot struct {
	ID           uuid.UUID
	ShowID       uuid.UUID
	Host         host.Ref
	Cohost       host.Ref
	Status       cohost.Status
	LiveStreamID string
	JoinedAt     *time.Time
	LeftAt       *time.Time
	Reason       cohost.LeaveReason
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ToDomain rebuilds the aggregate so state transitions run through the domain
// guards.
func (s *InviteSnapshot) ToDomain() *cohost.Invite {
	return cohost.Reconstruct(
		s.ID, s.ShowID,
		s.Host, s.Cohost,
		s.Status,
		s.LiveStreamID,
		s.JoinedAt, s.LeftAt,
		s.Reason,
		s.CreatedAt, s.UpdatedAt,
	)
}

// ConnectionPairSnapshot reads both projection rows at once; statuses are
// reported per side so callers can detect (and refuse to extend) divergence.
type ConnectionPairSnapshot struct {
	DropshipperID     uuid.UUID
	SellerID          uuid.UUID
	DropshipperStatus connection.Status
	SellerStatus      connection.Status
	CommissionRate    float64
	AgreementDetails  string
	RequestedAt       time.Time
	RespondedAt       *time.Time
	RejectionReason   string
}

func (s *ConnectionPairSnapshot) ToDomain() (*connection.Connection, error) {
	rate, err := connection.NewCommissionRate(s.CommissionRate)
	if err != nil {
		return nil, err
	}
	return connection.Reconstruct(
		s.DropshipperID, s.SellerID,
		s.DropshipperStatus,
		rate,
		s.AgreementDetails,
		s.RequestedAt,
		s.RespondedAt,
		s.RejectionReason,
	), nil
}

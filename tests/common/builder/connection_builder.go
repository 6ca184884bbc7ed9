//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/usecase/shared"
)

type ConnectionBuilder struct {
	DropshipperID    uuid.UUID
	SellerID         uuid.UUID
	Status           connection.Status
	CommissionRate   float64
	AgreementDetails string
	RequestedAt      time.Time
}

func NewConnectionBuilder() *ConnectionBuilder {
	return &ConnectionBuilder{
		DropshipperID:    uuid.New(),
		SellerID:         uuid.New(),
		Status:           connection.StatusPending,
		CommissionRate:   15,
		AgreementDetails: "net-30 settlement",
		RequestedAt:      time.Now(),
	}
}

func (b *ConnectionBuilder) With(mutate func(*ConnectionBuilder)) *ConnectionBuilder {
	mutate(b)
	return b
}

func (b *ConnectionBuilder) BuildDomain() *connection.Connection {
	rate, err := connection.NewCommissionRate(b.CommissionRate)
	if err != nil {
		panic(err)
	}
	return connection.Reconstruct(
		b.DropshipperID, b.SellerID,
		b.Status,
		rate,
		b.AgreementDetails,
		b.RequestedAt,
		nil,
		"",
	)
}

func (b *ConnectionBuilder) BuildPairSnapshot() shared.ConnectionPairSnapshot {
	return shared.ConnectionPairSnapshot{
		DropshipperID:     b.DropshipperID,
		SellerID:          b.SellerID,
		DropshipperStatus: b.Status,
		SellerStatus:      b.Status,
		CommissionRate:    b.CommissionRate,
		AgreementDetails:  b.AgreementDetails,
		RequestedAt:       b.RequestedAt,
	}
}

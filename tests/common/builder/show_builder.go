//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/host"
	"showhost-service/internal/usecase/shared"
)

type ShowBuilder struct {
	ID           uuid.UUID
	Host         host.Ref
	ShowStatus   cohost.ShowStatus
	LiveStreamID string
}

func NewShowBuilder(hostRef host.Ref) *ShowBuilder {
	return &ShowBuilder{
		ID:         uuid.New(),
		Host:       hostRef,
		ShowStatus: cohost.ShowScheduled,
	}
}

func (b *ShowBuilder) With(mutate func(*ShowBuilder)) *ShowBuilder {
	mutate(b)
	return b
}

func (b *ShowBuilder) Live(streamID string) *ShowBuilder {
	b.ShowStatus = cohost.ShowLive
	b.LiveStreamID = streamID
	return b
}

func (b *ShowBuilder) BuildSnapshot() shared.ShowSnapshot {
	return shared.ShowSnapshot{
		ID:           b.ID,
		HostUserID:   b.Host.UserID,
		HostID:       b.Host.HostID,
		HostModel:    b.Host.Model,
		ShowStatus:   b.ShowStatus,
		LiveStreamID: b.LiveStreamID,
	}
}

package shared

import (
	"context"
	"time"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/connection"
	"showhost-service/internal/domain/host"
	"showhost-service/internal/infra/db"
	"showhost-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTransientStorage marks failures that are safe to retry: the transaction
// was fully rolled back, so no partial effect is observable.
var ErrTransientStorage = errs.New("storage temporarily unavailable")

type UnitOfWork interface {
	// Within: serializable transaction for multi-aggregate writes, retried on
	// contention with a bounded budget.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: guard reads outside a transaction (no locking needed).
	CommandReads() CommandReads
}

type Tx interface {
	Connections() ConnectionRepository
	Invites() InviteRepository
	Shows() ShowRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ShowByID(ctx context.Context, id uuid.UUID) (*ShowSnapshot, error)
	InviteByID(ctx context.Context, id uuid.UUID) (*InviteSnapshot, error)
	ConnectionPair(ctx context.Context, dropshipperID, sellerID uuid.UUID) (*ConnectionPairSnapshot, error)
}

// ConnectionRepository writes the two mirrored projection rows; every method
// touches both sides so a committed transaction can never leave them divergent.
type ConnectionRepository interface {
	CreatePair(ctx context.Context, tx db.DBTX, conn *connection.Connection) error
	UpdatePair(ctx context.Context, tx db.DBTX, conn *connection.Connection) error
	DeletePair(ctx context.Context, tx db.DBTX, dropshipperID, sellerID uuid.UUID) error
}

type InviteRepository interface {
	Create(ctx context.Context, tx db.DBTX, inv *cohost.Invite) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, inv *cohost.Invite) error
	// CancelActiveByShow bulk-cancels every pending or accepted invite on the
	// show and returns how many rows it transitioned.
	CancelActiveByShow(ctx context.Context, tx db.DBTX, showID uuid.UUID, now time.Time) (int64, error)
}

type ShowRepository interface {
	SetCoHost(ctx context.Context, tx db.DBTX, showID uuid.UUID, snapshot host.Ref) error
	ClearCoHost(ctx context.Context, tx db.DBTX, showID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

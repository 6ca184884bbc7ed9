package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/pkg/errs"
)

var ErrConnectionNotFound = errs.New("connection not found")

// ConnectionView is the dropshipper-side projection row as reported to API
// consumers.
type ConnectionView struct {
	DropshipperID    uuid.UUID         `json:"dropshipper_id"`
	SellerID         uuid.UUID         `json:"seller_id"`
	Status           connection.Status `json:"status"`
	CommissionRate   float64           `json:"commission_rate"`
	AgreementDetails string            `json:"agreement_details,omitempty"`
	RequestedAt      time.Time         `json:"requested_at"`
	RespondedAt      *time.Time        `json:"responded_at,omitempty"`
	RejectionReason  string            `json:"rejection_reason,omitempty"`
}

type ConnectionFilters struct {
	Status *connection.Status
}

type ConnectionReadStore interface {
	ListByDropshipper(ctx context.Context, dropshipperID uuid.UUID, status *connection.Status) ([]*ConnectionView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, status *connection.Status) ([]*ConnectionView, error)
}

type ConnectionQueries interface {
	ListByDropshipper(ctx context.Context, dropshipperID uuid.UUID, filters ConnectionFilters) ([]*ConnectionView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, filters ConnectionFilters) ([]*ConnectionView, error)
}

type connectionQueriesImpl struct {
	repo ConnectionReadStore
}

func NewConnectionQueries(repo ConnectionReadStore) ConnectionQueries {
	return &connectionQueriesImpl{repo: repo}
}

func (q *connectionQueriesImpl) ListByDropshipper(ctx context.Context, dropshipperID uuid.UUID, filters ConnectionFilters) ([]*ConnectionView, error) {
	return q.repo.ListByDropshipper(ctx, dropshipperID, filters.Status)
}

func (q *connectionQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID, filters ConnectionFilters) ([]*ConnectionView, error) {
	return q.repo.ListBySeller(ctx, sellerID, filters.Status)
}

package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	domconn "showhost-service/internal/domain/connection"
	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/principal"
	"showhost-service/internal/infra"
	"showhost-service/internal/pkg/clock"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/shared"
)

var (
	ErrConnectionExists        = errs.New("connection already exists for this pair")
	ErrConnectionNotFoundWrite = errs.New("connection not found")
	ErrCounterpartyNotFound    = errs.New("counterparty host not found")
	ErrProjectionDiverged      = errs.New("connection projections disagree")
	ErrActorNotDropshipper     = errs.New("only a dropshipper may request a connection")
	ErrActorNotSeller          = errs.New("only the seller may respond to a request")
)

type RequestConnectionInput struct {
	SellerID         uuid.UUID
	CommissionRate   float64
	AgreementDetails string
}

type RespondConnectionInput struct {
	Decision        string
	RejectionReason string
}

type ConnectionCommands interface {
	Request(ctx context.Context, actor principal.Principal, input RequestConnectionInput) error
	Respond(ctx context.Context, actor principal.Principal, dropshipperID uuid.UUID, input RespondConnectionInput) error
	// RevokeOrWithdraw deletes a pending request outright and revokes an
	// approved partnership; counterpartyID names the other side of the pair.
	RevokeOrWithdraw(ctx context.Context, actor principal.Principal, counterpartyID uuid.UUID) error
}

type connectionUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver usecase.HostResolver
	hosts    usecase.HostReadStore
	clock    clock.Clock
}

func NewConnectionUseCase(uow shared.UnitOfWork, resolver usecase.HostResolver, hosts usecase.HostReadStore, clk clock.Clock) ConnectionCommands {
	return &connectionUseCaseImpl{uow: uow, resolver: resolver, hosts: hosts, clock: clk}
}

func (uc *connectionUseCaseImpl) Request(ctx context.Context, actor principal.Principal, input RequestConnectionInput) error {
	identity, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return err
	}
	ds, ok := identity.(*host.Dropshipper)
	if !ok {
		return ErrActorNotDropshipper
	}

	rate, err := domconn.NewCommissionRate(input.CommissionRate)
	if err != nil {
		return err
	}

	seller, err := uc.hosts.SellerByID(ctx, input.SellerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCounterpartyNotFound
		}
		return errs.Mark(err, usecase.ErrHostLookup)
	}
	if !host.NewSeller(seller.ID, seller.OwnerUserID, host.ApprovalStatus(seller.ApprovalStatus)).IsApproved() {
		return ErrCounterpartyNotFound
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ConnectionPair(ctx, ds.HostID(), input.SellerID)
		if derr != nil && !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}
		// Terminal rows do not block a fresh request; they are superseded
		// in both projections by the insert below.
		if snap != nil && (snap.DropshipperStatus.IsActive() || snap.SellerStatus.IsActive()) {
			return ErrConnectionExists
		}

		conn := domconn.NewRequest(ds.HostID(), input.SellerID, rate, input.AgreementDetails, uc.clock.Now())
		if derr := tx.Connections().CreatePair(ctx, tx.DB(), conn); derr != nil {
			return derr
		}
		return notifyConnection(ctx, tx, uc.clock, "connection_requested", "seller:"+input.SellerID.String(), conn)
	})
}

func (uc *connectionUseCaseImpl) Respond(ctx context.Context, actor principal.Principal, dropshipperID uuid.UUID, input RespondConnectionInput) error {
	identity, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return err
	}
	seller, ok := identity.(*host.Seller)
	if !ok {
		return ErrActorNotSeller
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conn, derr := loadPair(ctx, tx, dropshipperID, seller.HostID())
		if derr != nil {
			return derr
		}

		if derr := conn.Respond(domconn.Decision(input.Decision), input.RejectionReason, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr := tx.Connections().UpdatePair(ctx, tx.DB(), conn); derr != nil {
			return derr
		}
		return notifyConnection(ctx, tx, uc.clock, "connection_responded", "dropshipper:"+dropshipperID.String(), conn)
	})
}

func (uc *connectionUseCaseImpl) RevokeOrWithdraw(ctx context.Context, actor principal.Principal, counterpartyID uuid.UUID) error {
	identity, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return err
	}

	var (
		dropshipperID, sellerID uuid.UUID
		side                    domconn.Actor
		topic                   string
	)
	switch h := identity.(type) {
	case *host.Seller:
		sellerID, dropshipperID = h.HostID(), counterpartyID
		side = domconn.ActorSeller
		topic = "dropshipper:" + counterpartyID.String()
	case *host.Dropshipper:
		dropshipperID, sellerID = h.HostID(), counterpartyID
		side = domconn.ActorDropshipper
		topic = "seller:" + counterpartyID.String()
	default:
		return usecase.ErrHostNotEligible
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conn, derr := loadPair(ctx, tx, dropshipperID, sellerID)
		if derr != nil {
			return derr
		}

		if conn.CanWithdraw() {
			if derr := tx.Connections().DeletePair(ctx, tx.DB(), dropshipperID, sellerID); derr != nil {
				return derr
			}
			return notifyConnection(ctx, tx, uc.clock, "connection_withdrawn", topic, conn)
		}

		if derr := conn.Revoke(side, uc.clock.Now()); derr != nil {
			if errors.Is(derr, domconn.ErrNotApproved) {
				return domconn.ErrNotActionable
			}
			return derr
		}
		if derr := tx.Connections().UpdatePair(ctx, tx.DB(), conn); derr != nil {
			return derr
		}
		return notifyConnection(ctx, tx, uc.clock, "connection_revoked", topic, conn)
	})
}

// loadPair reads both projection rows and refuses to act on a diverged pair.
func loadPair(ctx context.Context, tx shared.Tx, dropshipperID, sellerID uuid.UUID) (*domconn.Connection, error) {
	snap, err := tx.Reads().ConnectionPair(ctx, dropshipperID, sellerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrConnectionNotFoundWrite
		}
		return nil, err
	}
	if snap.DropshipperStatus != snap.SellerStatus {
		return nil, ErrProjectionDiverged
	}
	return snap.ToDomain()
}

type connectionEvent struct {
	DropshipperID  uuid.UUID      `json:"dropshipper_id"`
	SellerID       uuid.UUID      `json:"seller_id"`
	Status         domconn.Status `json:"status"`
	CommissionRate float64        `json:"commission_rate"`
}

func notifyConnection(ctx context.Context, tx shared.Tx, clk clock.Clock, kind, topic string, conn *domconn.Connection) error {
	payload, err := json.Marshal(connectionEvent{
		DropshipperID:  conn.DropshipperID(),
		SellerID:       conn.SellerID(),
		Status:         conn.Status(),
		CommissionRate: conn.CommissionRate().Value(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode connection event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, clk.Now())
}

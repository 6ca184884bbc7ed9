package commands

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/host"
	"showhost-service/internal/domain/principal"
	"showhost-service/internal/infra"
	"showhost-service/internal/pkg/clock"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/shared"
)

var (
	ErrShowNotFound        = errs.New("show not found")
	ErrInviteNotFoundWrite = errs.New("invite not found")
	ErrNotShowHost         = errs.New("caller is not the show's host")
	ErrNotInvitedCohost    = errs.New("caller is not the invited cohost")
	ErrActiveInviteExists  = errs.New("show already has an active invite")
	ErrShowNotLive         = errs.New("show is not live")
)

type CoHostCommands interface {
	SendInvite(ctx context.Context, actor principal.Principal, showID, cohostUserID uuid.UUID) (uuid.UUID, error)
	Respond(ctx context.Context, actorUserID, inviteID uuid.UUID, decision cohost.Decision) error
	Cancel(ctx context.Context, actorUserID, inviteID uuid.UUID) error
	Leave(ctx context.Context, actorUserID, inviteID uuid.UUID) error
	RemoveByHost(ctx context.Context, actorUserID, inviteID uuid.UUID) error
	// InviteAndJoinLive supersedes any active invite on a live show and seats
	// the new cohost in one transaction.
	InviteAndJoinLive(ctx context.Context, actor principal.Principal, showID, cohostUserID uuid.UUID) (uuid.UUID, error)
}

type cohostUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver usecase.HostResolver
	clock    clock.Clock
}

func NewCoHostUseCase(uow shared.UnitOfWork, resolver usecase.HostResolver, clk clock.Clock) CoHostCommands {
	return &cohostUseCaseImpl{uow: uow, resolver: resolver, clock: clk}
}

func (uc *cohostUseCaseImpl) SendInvite(ctx context.Context, actor principal.Principal, showID, cohostUserID uuid.UUID) (uuid.UUID, error) {
	hostRef, cohostRef, err := uc.resolveParties(ctx, actor, cohostUserID)
	if err != nil {
		return uuid.Nil, err
	}

	var inviteID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		show, derr := loadShow(ctx, tx, showID)
		if derr != nil {
			return derr
		}
		if show.HostUserID != hostRef.UserID {
			return ErrNotShowHost
		}

		inv, derr := cohost.NewInvite(showID, hostRef, cohostRef, uc.clock.Now())
		if derr != nil {
			return derr
		}

		// The partial unique index on active invites turns a lost race into a
		// duplicate-key failure here instead of a second active invite.
		id, derr := tx.Invites().Create(ctx, tx.DB(), inv)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrActiveInviteExists
			}
			return derr
		}
		inviteID = id
		return notifyInvite(ctx, tx, uc.clock, "cohost_invited", inv)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return inviteID, nil
}

func (uc *cohostUseCaseImpl) Respond(ctx context.Context, actorUserID, inviteID uuid.UUID, decision cohost.Decision) error {
	if !decision.IsValid() {
		return cohost.ErrInvalidDecision
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, derr := loadInvite(ctx, tx, inviteID)
		if derr != nil {
			return derr
		}
		if inv.Cohost().UserID != actorUserID {
			return ErrNotInvitedCohost
		}

		if decision == cohost.DecisionRejected {
			if derr := inv.Reject(uc.clock.Now()); derr != nil {
				return derr
			}
			if derr := tx.Invites().Update(ctx, tx.DB(), inv); derr != nil {
				return derr
			}
			return notifyInvite(ctx, tx, uc.clock, "cohost_rejected", inv)
		}

		if derr := inv.Accept(uc.clock.Now()); derr != nil {
			return derr
		}
		if derr := tx.Invites().Update(ctx, tx.DB(), inv); derr != nil {
			return derr
		}
		if derr := tx.Shows().SetCoHost(ctx, tx.DB(), inv.ShowID(), inv.CohostSnapshot()); derr != nil {
			return derr
		}
		return notifyInvite(ctx, tx, uc.clock, "cohost_accepted", inv)
	})
}

func (uc *cohostUseCaseImpl) Cancel(ctx context.Context, actorUserID, inviteID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, derr := loadInvite(ctx, tx, inviteID)
		if derr != nil {
			return derr
		}
		if inv.Host().UserID != actorUserID {
			return ErrNotShowHost
		}
		if derr := inv.Cancel(uc.clock.Now()); derr != nil {
			return derr
		}
		if derr := tx.Invites().Update(ctx, tx.DB(), inv); derr != nil {
			return derr
		}
		return notifyInvite(ctx, tx, uc.clock, "cohost_cancelled", inv)
	})
}

func (uc *cohostUseCaseImpl) Leave(ctx context.Context, actorUserID, inviteID uuid.UUID) error {
	return uc.endEpisode(ctx, inviteID, cohost.ReasonLeftVoluntarily, func(inv *cohost.Invite) error {
		if inv.Cohost().UserID != actorUserID {
			return ErrNotInvitedCohost
		}
		return nil
	})
}

func (uc *cohostUseCaseImpl) RemoveByHost(ctx context.Context, actorUserID, inviteID uuid.UUID) error {
	return uc.endEpisode(ctx, inviteID, cohost.ReasonRemovedByHost, func(inv *cohost.Invite) error {
		if inv.Host().UserID != actorUserID {
			return ErrNotShowHost
		}
		return nil
	})
}

// endEpisode finishes an accepted invite and clears the show's cohost snapshot
// in the same transaction, keeping snapshot and invite in agreement.
func (uc *cohostUseCaseImpl) endEpisode(ctx context.Context, inviteID uuid.UUID, reason cohost.LeaveReason, guard func(*cohost.Invite) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, derr := loadInvite(ctx, tx, inviteID)
		if derr != nil {
			return derr
		}
		if derr := guard(inv); derr != nil {
			return derr
		}
		if derr := inv.Leave(reason, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr := tx.Invites().Update(ctx, tx.DB(), inv); derr != nil {
			return derr
		}
		if derr := tx.Shows().ClearCoHost(ctx, tx.DB(), inv.ShowID()); derr != nil {
			return derr
		}
		return notifyInvite(ctx, tx, uc.clock, "cohost_left", inv)
	})
}

func (uc *cohostUseCaseImpl) InviteAndJoinLive(ctx context.Context, actor principal.Principal, showID, cohostUserID uuid.UUID) (uuid.UUID, error) {
	hostRef, cohostRef, err := uc.resolveParties(ctx, actor, cohostUserID)
	if err != nil {
		return uuid.Nil, err
	}

	var inviteID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		show, derr := loadShow(ctx, tx, showID)
		if derr != nil {
			return derr
		}
		if show.HostUserID != hostRef.UserID {
			return ErrNotShowHost
		}
		if show.ShowStatus != cohost.ShowLive {
			return ErrShowNotLive
		}

		if _, derr := tx.Invites().CancelActiveByShow(ctx, tx.DB(), showID, uc.clock.Now()); derr != nil {
			return derr
		}

		inv, derr := cohost.NewLiveJoin(showID, hostRef, cohostRef, show.LiveStreamID, uc.clock.Now())
		if derr != nil {
			return derr
		}
		id, derr := tx.Invites().Create(ctx, tx.DB(), inv)
		if derr != nil {
			return derr
		}
		inviteID = id

		if derr := tx.Shows().SetCoHost(ctx, tx.DB(), showID, inv.CohostSnapshot()); derr != nil {
			return derr
		}
		return notifyInvite(ctx, tx, uc.clock, "cohost_joined_live", inv)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return inviteID, nil
}

// resolveParties resolves both sides of an invite before any write begins;
// either failing to resolve to an approved host forbids the operation.
func (uc *cohostUseCaseImpl) resolveParties(ctx context.Context, actor principal.Principal, cohostUserID uuid.UUID) (host.Ref, host.Ref, error) {
	actorIdentity, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return host.Ref{}, host.Ref{}, err
	}
	cohostIdentity, err := uc.resolver.ResolveUser(ctx, cohostUserID)
	if err != nil {
		return host.Ref{}, host.Ref{}, err
	}
	return host.RefOf(actorIdentity), host.RefOf(cohostIdentity), nil
}

func loadShow(ctx context.Context, tx shared.Tx, showID uuid.UUID) (*shared.ShowSnapshot, error) {
	show, err := tx.Reads().ShowByID(ctx, showID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return show, nil
}

func loadInvite(ctx context.Context, tx shared.Tx, inviteID uuid.UUID) (*cohost.Invite, error) {
	snap, err := tx.Reads().InviteByID(ctx, inviteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInviteNotFoundWrite
		}
		return nil, err
	}
	return snap.ToDomain(), nil
}

type inviteEvent struct {
	InviteID     uuid.UUID     `json:"invite_id"`
	ShowID       uuid.UUID     `json:"show_id"`
	HostUserID   uuid.UUID     `json:"host_user_id"`
	CohostUserID uuid.UUID     `json:"cohost_user_id"`
	Status       cohost.Status `json:"status"`
}

func notifyInvite(ctx context.Context, tx shared.Tx, clk clock.Clock, kind string, inv *cohost.Invite) error {
	payload, err := json.Marshal(inviteEvent{
		InviteID:     inv.ID(),
		ShowID:       inv.ShowID(),
		HostUserID:   inv.Host().UserID,
		CohostUserID: inv.Cohost().UserID,
		Status:       inv.Status(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode invite event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, "user:"+inv.Cohost().UserID.String(), payload, clk.Now())
}

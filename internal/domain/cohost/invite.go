package cohost

import (
	"time"

	"showhost-service/internal/domain/host"
	"showhost-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfInvite       = errs.New("host cannot invite itself as cohost")
	ErrInviteNotPending = errs.New("invite is not pending")
	ErrInviteNotActive  = errs.New("invite is not accepted")
	ErrInvalidDecision  = errs.New("invalid invite decision")
)

// Invite is one co-hosting episode: created pending, resolved exactly once,
// and never reused after reaching a terminal status.
type Invite struct {
	id           uuid.UUID
	showID       uuid.UUID
	host         host.Ref
	cohost       host.Ref
	status       Status
	liveStreamID string
	joinedAt     *time.Time
	leftAt       *time.Time
	reason       LeaveReason
	createdAt    time.Time
	updatedAt    time.Time
}

// NewInvite creates a pending invite from the show's host to the cohost.
func NewInvite(showID uuid.UUID, hostRef, cohostRef host.Ref, now time.Time) (*Invite, error) {
	if hostRef.UserID == cohostRef.UserID {
		return nil, ErrSelfInvite
	}
	return &Invite{
		id:        uuid.New(),
		showID:    showID,
		host:      hostRef,
		cohost:    cohostRef,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewLiveJoin creates an invite that is already accepted, for the live fast
// path where the cohost joins the stream immediately.
func NewLiveJoin(showID uuid.UUID, hostRef, cohostRef host.Ref, liveStreamID string, now time.Time) (*Invite, error) {
	if hostRef.UserID == cohostRef.UserID {
		return nil, ErrSelfInvite
	}
	joined := now
	return &Invite{
		id:           uuid.New(),
		showID:       showID,
		host:         hostRef,
		cohost:       cohostRef,
		status:       StatusAccepted,
		liveStreamID: liveStreamID,
		joinedAt:     &joined,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id, showID uuid.UUID,
	hostRef, cohostRef host.Ref,
	status Status,
	liveStreamID string,
	joinedAt, leftAt *time.Time,
	reason LeaveReason,
	createdAt, updatedAt time.Time,
) *Invite {
	return &Invite{
		id:           id,
		showID:       showID,
		host:         hostRef,
		cohost:       cohostRef,
		status:       status,
		liveStreamID: liveStreamID,
		joinedAt:     joinedAt,
		leftAt:       leftAt,
		reason:       reason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i *Invite) ID() uuid.UUID        { return i.id }
func (i *Invite) ShowID() uuid.UUID    { return i.showID }
func (i *Invite) Host() host.Ref       { return i.host }
func (i *Invite) Cohost() host.Ref     { return i.cohost }
func (i *Invite) Status() Status       { return i.status }
func (i *Invite) LiveStreamID() string { return i.liveStreamID }
func (i *Invite) JoinedAt() *time.Time { return i.joinedAt }
func (i *Invite) LeftAt() *time.Time   { return i.leftAt }
func (i *Invite) Reason() LeaveReason  { return i.reason }
func (i *Invite) CreatedAt() time.Time { return i.createdAt }
func (i *Invite) UpdatedAt() time.Time { return i.updatedAt }

// Accept moves a pending invite to accepted and records the join time. The
// caller must write the show's cohost snapshot in the same transaction.
func (i *Invite) Accept(now time.Time) error {
	if i.status != StatusPending {
		return ErrInviteNotPending
	}
	i.status = StatusAccepted
	i.joinedAt = &now
	i.updatedAt = now
	return nil
}

func (i *Invite) Reject(now time.Time) error {
	if i.status != StatusPending {
		return ErrInviteNotPending
	}
	i.status = StatusRejected
	i.updatedAt = now
	return nil
}

// Cancel withdraws a pending invite; any stream handle on the invite is
// dropped alongside.
func (i *Invite) Cancel(now time.Time) error {
	if i.status != StatusPending {
		return ErrInviteNotPending
	}
	i.status = StatusCancelled
	i.liveStreamID = ""
	i.updatedAt = now
	return nil
}

// Leave ends an accepted episode; reason records which party ended it.
func (i *Invite) Leave(reason LeaveReason, now time.Time) error {
	if i.status != StatusAccepted {
		return ErrInviteNotActive
	}
	i.status = StatusLeft
	i.reason = reason
	i.leftAt = &now
	i.updatedAt = now
	return nil
}

// CohostSnapshot is the denormalized view a show carries while this invite is
// accepted.
func (i *Invite) CohostSnapshot() host.Ref {
	return i.cohost
}

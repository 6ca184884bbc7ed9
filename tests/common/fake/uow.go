package fake

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/connection"
	"showhost-service/internal/domain/host"
	"showhost-service/internal/infra"
	"showhost-service/internal/infra/db"
	"showhost-service/internal/usecase/shared"
)

type PairKey struct {
	DropshipperID uuid.UUID
	SellerID      uuid.UUID
}

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

// state is one consistent snapshot of storage; transactions stage a deep copy
// and publish it only on success, so a failed transaction is invisible.
type state struct {
	shows   map[uuid.UUID]*shared.ShowSnapshot
	invites map[uuid.UUID]*shared.InviteSnapshot
	pairs   map[PairKey]*shared.ConnectionPairSnapshot
	jobs    []NotificationJob
}

func (s *state) clone() *state {
	c := &state{
		shows:   make(map[uuid.UUID]*shared.ShowSnapshot, len(s.shows)),
		invites: make(map[uuid.UUID]*shared.InviteSnapshot, len(s.invites)),
		pairs:   make(map[PairKey]*shared.ConnectionPairSnapshot, len(s.pairs)),
		jobs:    append([]NotificationJob(nil), s.jobs...),
	}
	for id, show := range s.shows {
		cp := *show
		if show.CoHost != nil {
			ref := *show.CoHost
			cp.CoHost = &ref
		}
		c.shows[id] = &cp
	}
	for id, inv := range s.invites {
		cp := *inv
		c.invites[id] = &cp
	}
	for key, pair := range s.pairs {
		cp := *pair
		c.pairs[key] = &cp
	}
	return c
}

// UoW is an in-memory shared.UnitOfWork. The mutex serializes transactions the
// way serializable isolation would, and the staged-copy commit keeps the
// no-partial-effect guarantee worth testing against.
type UoW struct {
	mu sync.Mutex
	st *state
}

func NewUoW() *UoW {
	return &UoW{st: &state{
		shows:   make(map[uuid.UUID]*shared.ShowSnapshot),
		invites: make(map[uuid.UUID]*shared.InviteSnapshot),
		pairs:   make(map[PairKey]*shared.ConnectionPairSnapshot),
	}}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	staged := u.st.clone()
	if err := fn(ctx, &fakeTx{st: staged}); err != nil {
		return err
	}
	u.st = staged
	return nil
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &fakeReads{u: u}
}

// Seeding helpers for test arrangement.

func (u *UoW) SeedShow(s shared.ShowSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.shows[s.ID] = &s
}

func (u *UoW) SeedInvite(i shared.InviteSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.invites[i.ID] = &i
}

func (u *UoW) SeedPair(p shared.ConnectionPairSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.pairs[PairKey{DropshipperID: p.DropshipperID, SellerID: p.SellerID}] = &p
}

// Inspection helpers.

func (u *UoW) Show(id uuid.UUID) *shared.ShowSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.shows[id]
}

func (u *UoW) Invite(id uuid.UUID) *shared.InviteSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.invites[id]
}

func (u *UoW) Pair(dropshipperID, sellerID uuid.UUID) *shared.ConnectionPairSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.st.pairs[PairKey{DropshipperID: dropshipperID, SellerID: sellerID}]
}

func (u *UoW) InvitesByShow(showID uuid.UUID) []*shared.InviteSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*shared.InviteSnapshot
	for _, inv := range u.st.invites {
		if inv.ShowID == showID {
			out = append(out, inv)
		}
	}
	return out
}

func (u *UoW) Jobs() []NotificationJob {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]NotificationJob(nil), u.st.jobs...)
}

type fakeTx struct {
	st *state
}

func (t *fakeTx) DB() db.DBTX                                { return nil }
func (t *fakeTx) Connections() shared.ConnectionRepository   { return &fakeConnectionRepo{st: t.st} }
func (t *fakeTx) Invites() shared.InviteRepository           { return &fakeInviteRepo{st: t.st} }
func (t *fakeTx) Shows() shared.ShowRepository               { return &fakeShowRepo{st: t.st} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{st: t.st} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &stateReads{st: t.st} }

type fakeConnectionRepo struct {
	st *state
}

func (r *fakeConnectionRepo) CreatePair(_ context.Context, _ db.DBTX, conn *connection.Connection) error {
	key := PairKey{DropshipperID: conn.DropshipperID(), SellerID: conn.SellerID()}
	r.st.pairs[key] = pairSnapshotOf(conn)
	return nil
}

func (r *fakeConnectionRepo) UpdatePair(_ context.Context, _ db.DBTX, conn *connection.Connection) error {
	key := PairKey{DropshipperID: conn.DropshipperID(), SellerID: conn.SellerID()}
	if _, ok := r.st.pairs[key]; !ok {
		return infra.WrapRepoErr("connection projection row missing", nil, infra.KindNotFound)
	}
	r.st.pairs[key] = pairSnapshotOf(conn)
	return nil
}

func (r *fakeConnectionRepo) DeletePair(_ context.Context, _ db.DBTX, dropshipperID, sellerID uuid.UUID) error {
	key := PairKey{DropshipperID: dropshipperID, SellerID: sellerID}
	if _, ok := r.st.pairs[key]; !ok {
		return infra.WrapRepoErr("connection projection row missing", nil, infra.KindNotFound)
	}
	delete(r.st.pairs, key)
	return nil
}

func pairSnapshotOf(conn *connection.Connection) *shared.ConnectionPairSnapshot {
	return &shared.ConnectionPairSnapshot{
		DropshipperID:     conn.DropshipperID(),
		SellerID:          conn.SellerID(),
		DropshipperStatus: conn.Status(),
		SellerStatus:      conn.Status(),
		CommissionRate:    conn.CommissionRate().Value(),
		AgreementDetails:  conn.AgreementDetails(),
		RequestedAt:       conn.RequestedAt(),
		RespondedAt:       conn.RespondedAt(),
		RejectionReason:   conn.RejectionReason(),
	}
}

type fakeInviteRepo struct {
	st *state
}

// Create mirrors the partial unique index on active invites per show.
func (r *fakeInviteRepo) Create(_ context.Context, _ db.DBTX, inv *cohost.Invite) (uuid.UUID, error) {
	if inv.Status().IsActive() {
		for _, existing := range r.st.invites {
			if existing.ShowID == inv.ShowID() && existing.Status.IsActive() {
				return uuid.Nil, infra.WrapRepoErr("active invite already exists", nil, infra.KindDuplicateKey)
			}
		}
	}
	r.st.invites[inv.ID()] = inviteSnapshotOf(inv)
	return inv.ID(), nil
}

func (r *fakeInviteRepo) Update(_ context.Context, _ db.DBTX, inv *cohost.Invite) error {
	if _, ok := r.st.invites[inv.ID()]; !ok {
		return infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	r.st.invites[inv.ID()] = inviteSnapshotOf(inv)
	return nil
}

func (r *fakeInviteRepo) CancelActiveByShow(_ context.Context, _ db.DBTX, showID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for _, inv := range r.st.invites {
		if inv.ShowID == showID && inv.Status.IsActive() {
			inv.Status = cohost.StatusCancelled
			inv.LiveStreamID = ""
			inv.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func inviteSnapshotOf(inv *cohost.Invite) *shared.InviteSnapshot {
	return &shared.InviteSnapshot{
		ID:           inv.ID(),
		ShowID:       inv.ShowID(),
		Host:         inv.Host(),
		Cohost:       inv.Cohost(),
		Status:       inv.Status(),
		LiveStreamID: inv.LiveStreamID(),
		JoinedAt:     inv.JoinedAt(),
		LeftAt:       inv.LeftAt(),
		Reason:       inv.Reason(),
		CreatedAt:    inv.CreatedAt(),
		UpdatedAt:    inv.UpdatedAt(),
	}
}

type fakeShowRepo struct {
	st *state
}

func (r *fakeShowRepo) SetCoHost(_ context.Context, _ db.DBTX, showID uuid.UUID, snapshot host.Ref) error {
	show, ok := r.st.shows[showID]
	if !ok {
		return infra.WrapRepoErr("show not found", nil, infra.KindNotFound)
	}
	show.HasCoHost = true
	ref := snapshot
	show.CoHost = &ref
	return nil
}

func (r *fakeShowRepo) ClearCoHost(_ context.Context, _ db.DBTX, showID uuid.UUID) error {
	show, ok := r.st.shows[showID]
	if !ok {
		return infra.WrapRepoErr("show not found", nil, infra.KindNotFound)
	}
	show.HasCoHost = false
	show.CoHost = nil
	return nil
}

type fakeNotificationRepo struct {
	st *state
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.st.jobs = append(r.st.jobs, NotificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type stateReads struct {
	st *state
}

func (r *stateReads) ShowByID(_ context.Context, id uuid.UUID) (*shared.ShowSnapshot, error) {
	show, ok := r.st.shows[id]
	if !ok {
		return nil, infra.WrapRepoErr("show not found", nil, infra.KindNotFound)
	}
	cp := *show
	return &cp, nil
}

func (r *stateReads) InviteByID(_ context.Context, id uuid.UUID) (*shared.InviteSnapshot, error) {
	inv, ok := r.st.invites[id]
	if !ok {
		return nil, infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	cp := *inv
	return &cp, nil
}

func (r *stateReads) ConnectionPair(_ context.Context, dropshipperID, sellerID uuid.UUID) (*shared.ConnectionPairSnapshot, error) {
	pair, ok := r.st.pairs[PairKey{DropshipperID: dropshipperID, SellerID: sellerID}]
	if !ok {
		return nil, infra.WrapRepoErr("connection not found", nil, infra.KindNotFound)
	}
	cp := *pair
	return &cp, nil
}

// fakeReads serves guard reads outside a transaction against committed state.
type fakeReads struct {
	u *UoW
}

func (r *fakeReads) ShowByID(ctx context.Context, id uuid.UUID) (*shared.ShowSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).ShowByID(ctx, id)
}

func (r *fakeReads) InviteByID(ctx context.Context, id uuid.UUID) (*shared.InviteSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).InviteByID(ctx, id)
}

func (r *fakeReads) ConnectionPair(ctx context.Context, dropshipperID, sellerID uuid.UUID) (*shared.ConnectionPairSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&stateReads{st: r.u.st}).ConnectionPair(ctx, dropshipperID, sellerID)
}

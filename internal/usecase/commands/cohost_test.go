//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/pkg/clock"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/commands"
	"showhost-service/internal/usecase/shared"
	"showhost-service/tests/common/builder"
	"showhost-service/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cohostFixture struct {
	uow    *fake.UoW
	dir    *fake.HostDirectory
	clk    *clock.FixedClock
	cmds   commands.CoHostCommands
	seller *builder.SellerBuilder
	ds     *builder.DropshipperBuilder
	show   *builder.ShowBuilder
}

func newCohostFixture(t *testing.T) *cohostFixture {
	t.Helper()

	f := &cohostFixture{
		uow:    fake.NewUoW(),
		dir:    fake.NewHostDirectory(),
		clk:    clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		seller: builder.NewSellerBuilder(),
		ds:     builder.NewDropshipperBuilder(),
	}
	f.dir.AddSeller(f.seller.BuildRecord())
	f.dir.AddDropshipper(f.ds.BuildRecord())

	f.show = builder.NewShowBuilder(f.seller.Ref())
	f.uow.SeedShow(f.show.BuildSnapshot())

	resolver := usecase.NewHostResolver(f.dir)
	f.cmds = commands.NewCoHostUseCase(f.uow, resolver, f.clk)
	return f
}

func (f *cohostFixture) seedAcceptedInvite(t *testing.T, liveStreamID string) uuid.UUID {
	t.Helper()
	joined := f.clk.Now()
	inv := shared.InviteSnapshot{
		ID:           uuid.New(),
		ShowID:       f.show.ID,
		Host:         f.seller.Ref(),
		Cohost:       f.ds.Ref(),
		Status:       cohost.StatusAccepted,
		LiveStreamID: liveStreamID,
		JoinedAt:     &joined,
		CreatedAt:    joined,
		UpdatedAt:    joined,
	}
	f.uow.SeedInvite(inv)
	return inv.ID
}

func TestSendInvite(t *testing.T) {
	t.Run("creates a pending invite for the show", func(t *testing.T) {
		f := newCohostFixture(t)

		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		inv := f.uow.Invite(inviteID)
		require.NotNil(t, inv)
		assert.Equal(t, cohost.StatusPending, inv.Status)
		assert.Equal(t, f.ds.Ref(), inv.Cohost)
		assert.Equal(t, f.seller.Ref(), inv.Host)
	})

	t.Run("only the registered host may invite", func(t *testing.T) {
		f := newCohostFixture(t)
		stranger := builder.NewSellerBuilder()
		f.dir.AddSeller(stranger.BuildRecord())

		_, err := f.cmds.SendInvite(context.Background(), stranger.Principal(), f.show.ID, f.ds.OwnerUserID)
		assert.ErrorIs(t, err, commands.ErrNotShowHost)
		assert.Empty(t, f.uow.InvitesByShow(f.show.ID))
	})

	t.Run("self invite is refused", func(t *testing.T) {
		f := newCohostFixture(t)

		_, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.seller.OwnerUserID)
		assert.ErrorIs(t, err, cohost.ErrSelfInvite)
	})

	t.Run("unapproved cohost cannot be invited", func(t *testing.T) {
		f := newCohostFixture(t)
		pending := builder.NewDropshipperBuilder().With(func(b *builder.DropshipperBuilder) {
			b.ApprovalStatus = "pending"
		})
		f.dir.AddDropshipper(pending.BuildRecord())

		_, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, pending.OwnerUserID)
		assert.ErrorIs(t, err, usecase.ErrHostNotEligible)
	})

	t.Run("missing show", func(t *testing.T) {
		f := newCohostFixture(t)

		_, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), uuid.New(), f.ds.OwnerUserID)
		assert.ErrorIs(t, err, commands.ErrShowNotFound)
	})

	t.Run("second active invite is a conflict", func(t *testing.T) {
		f := newCohostFixture(t)
		other := builder.NewDropshipperBuilder()
		f.dir.AddDropshipper(other.BuildRecord())

		_, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		_, err = f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, other.OwnerUserID)
		assert.ErrorIs(t, err, commands.ErrActiveInviteExists)
	})

	t.Run("concurrent invites: exactly one wins", func(t *testing.T) {
		f := newCohostFixture(t)
		other := builder.NewDropshipperBuilder()
		f.dir.AddDropshipper(other.BuildRecord())

		var wg sync.WaitGroup
		errors := make([]error, 2)
		for i, cohostUser := range []uuid.UUID{f.ds.OwnerUserID, other.OwnerUserID} {
			wg.Add(1)
			go func(i int, cohostUser uuid.UUID) {
				defer wg.Done()
				_, errors[i] = f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, cohostUser)
			}(i, cohostUser)
		}
		wg.Wait()

		var conflicts, successes int
		for _, err := range errors {
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, commands.ErrActiveInviteExists) {
				conflicts++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)

		active := 0
		for _, inv := range f.uow.InvitesByShow(f.show.ID) {
			if inv.Status.IsActive() {
				active++
			}
		}
		assert.Equal(t, 1, active)
	})
}

func TestRespond(t *testing.T) {
	t.Run("accept writes the show snapshot atomically", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		require.NoError(t, f.cmds.Respond(context.Background(), f.ds.OwnerUserID, inviteID, cohost.DecisionAccepted))

		inv := f.uow.Invite(inviteID)
		assert.Equal(t, cohost.StatusAccepted, inv.Status)
		require.NotNil(t, inv.JoinedAt)

		show := f.uow.Show(f.show.ID)
		assert.True(t, show.HasCoHost)
		require.NotNil(t, show.CoHost)
		assert.Equal(t, f.ds.Ref(), *show.CoHost)
	})

	t.Run("reject leaves the show untouched", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		require.NoError(t, f.cmds.Respond(context.Background(), f.ds.OwnerUserID, inviteID, cohost.DecisionRejected))

		assert.Equal(t, cohost.StatusRejected, f.uow.Invite(inviteID).Status)
		assert.False(t, f.uow.Show(f.show.ID).HasCoHost)
	})

	t.Run("only the invited cohost may respond", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		err = f.cmds.Respond(context.Background(), uuid.New(), inviteID, cohost.DecisionAccepted)
		assert.ErrorIs(t, err, commands.ErrNotInvitedCohost)
	})

	t.Run("responding twice conflicts both times with no second mutation", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		require.NoError(t, f.cmds.Respond(context.Background(), f.ds.OwnerUserID, inviteID, cohost.DecisionAccepted))
		joinedAt := *f.uow.Invite(inviteID).JoinedAt

		for i := 0; i < 2; i++ {
			err = f.cmds.Respond(context.Background(), f.ds.OwnerUserID, inviteID, cohost.DecisionRejected)
			assert.ErrorIs(t, err, cohost.ErrInviteNotPending)
		}
		inv := f.uow.Invite(inviteID)
		assert.Equal(t, cohost.StatusAccepted, inv.Status)
		assert.Equal(t, joinedAt, *inv.JoinedAt)
	})

	t.Run("invalid decision", func(t *testing.T) {
		f := newCohostFixture(t)
		err := f.cmds.Respond(context.Background(), f.ds.OwnerUserID, uuid.New(), cohost.Decision("maybe"))
		assert.ErrorIs(t, err, cohost.ErrInvalidDecision)
	})
}

func TestCancel(t *testing.T) {
	t.Run("host cancels a pending invite", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		require.NoError(t, f.cmds.Cancel(context.Background(), f.seller.OwnerUserID, inviteID))
		assert.Equal(t, cohost.StatusCancelled, f.uow.Invite(inviteID).Status)
	})

	t.Run("cohost cannot cancel", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)

		err = f.cmds.Cancel(context.Background(), f.ds.OwnerUserID, inviteID)
		assert.ErrorIs(t, err, commands.ErrNotShowHost)
	})

	t.Run("cancel after accept is a conflict", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		require.NoError(t, err)
		require.NoError(t, f.cmds.Respond(context.Background(), f.ds.OwnerUserID, inviteID, cohost.DecisionAccepted))

		err = f.cmds.Cancel(context.Background(), f.seller.OwnerUserID, inviteID)
		assert.ErrorIs(t, err, cohost.ErrInviteNotPending)
	})
}

// Scenario: invite, accept, then the host removes the cohost.
func TestHostedEpisodeLifecycle(t *testing.T) {
	f := newCohostFixture(t)

	inviteID, err := f.cmds.SendInvite(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
	require.NoError(t, err)
	assert.Equal(t, cohost.StatusPending, f.uow.Invite(inviteID).Status)

	require.NoError(t, f.cmds.Respond(context.Background(), f.ds.OwnerUserID, inviteID, cohost.DecisionAccepted))
	show := f.uow.Show(f.show.ID)
	require.NotNil(t, show.CoHost)
	assert.Equal(t, f.ds.Ref(), *show.CoHost)

	require.NoError(t, f.cmds.RemoveByHost(context.Background(), f.seller.OwnerUserID, inviteID))

	inv := f.uow.Invite(inviteID)
	assert.Equal(t, cohost.StatusLeft, inv.Status)
	assert.Equal(t, cohost.ReasonRemovedByHost, inv.Reason)
	require.NotNil(t, inv.LeftAt)

	show = f.uow.Show(f.show.ID)
	assert.False(t, show.HasCoHost)
	assert.Nil(t, show.CoHost)
}

func TestLeave(t *testing.T) {
	t.Run("cohost leaves voluntarily", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID := f.seedAcceptedInvite(t, "")

		require.NoError(t, f.cmds.Leave(context.Background(), f.ds.OwnerUserID, inviteID))

		inv := f.uow.Invite(inviteID)
		assert.Equal(t, cohost.StatusLeft, inv.Status)
		assert.Equal(t, cohost.ReasonLeftVoluntarily, inv.Reason)
	})

	t.Run("host cannot use leave", func(t *testing.T) {
		f := newCohostFixture(t)
		inviteID := f.seedAcceptedInvite(t, "")

		err := f.cmds.Leave(context.Background(), f.seller.OwnerUserID, inviteID)
		assert.ErrorIs(t, err, commands.ErrNotInvitedCohost)
	})
}

// Scenario: a live show with an accepted cohost gets a new cohost via the
// fast path; the old invite is cancelled and the new one is seated, atomically.
func TestInviteAndJoinLive(t *testing.T) {
	t.Run("supersedes the current cohost", func(t *testing.T) {
		f := newCohostFixture(t)
		f.show.Live("stream-7")
		f.uow.SeedShow(f.show.BuildSnapshot())
		oldInviteID := f.seedAcceptedInvite(t, "stream-7")

		newCohost := builder.NewDropshipperBuilder()
		f.dir.AddDropshipper(newCohost.BuildRecord())

		newInviteID, err := f.cmds.InviteAndJoinLive(context.Background(), f.seller.Principal(), f.show.ID, newCohost.OwnerUserID)
		require.NoError(t, err)

		old := f.uow.Invite(oldInviteID)
		assert.Equal(t, cohost.StatusCancelled, old.Status)
		assert.Empty(t, old.LiveStreamID)

		fresh := f.uow.Invite(newInviteID)
		assert.Equal(t, cohost.StatusAccepted, fresh.Status)
		assert.Equal(t, "stream-7", fresh.LiveStreamID)
		require.NotNil(t, fresh.JoinedAt)

		show := f.uow.Show(f.show.ID)
		require.NotNil(t, show.CoHost)
		assert.Equal(t, newCohost.Ref(), *show.CoHost)
	})

	t.Run("refused unless the show is live", func(t *testing.T) {
		f := newCohostFixture(t)

		_, err := f.cmds.InviteAndJoinLive(context.Background(), f.seller.Principal(), f.show.ID, f.ds.OwnerUserID)
		assert.ErrorIs(t, err, commands.ErrShowNotLive)
	})

	t.Run("only the registered host", func(t *testing.T) {
		f := newCohostFixture(t)
		f.show.Live("stream-7")
		f.uow.SeedShow(f.show.BuildSnapshot())
		stranger := builder.NewSellerBuilder()
		f.dir.AddSeller(stranger.BuildRecord())

		_, err := f.cmds.InviteAndJoinLive(context.Background(), stranger.Principal(), f.show.ID, f.ds.OwnerUserID)
		assert.ErrorIs(t, err, commands.ErrNotShowHost)
	})
}

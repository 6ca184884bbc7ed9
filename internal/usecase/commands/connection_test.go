//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/pkg/clock"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/commands"
	"showhost-service/tests/common/builder"
	"showhost-service/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type connectionFixture struct {
	uow    *fake.UoW
	dir    *fake.HostDirectory
	clk    *clock.FixedClock
	cmds   commands.ConnectionCommands
	seller *builder.SellerBuilder
	ds     *builder.DropshipperBuilder
}

func newConnectionFixture(t *testing.T) *connectionFixture {
	t.Helper()

	f := &connectionFixture{
		uow:    fake.NewUoW(),
		dir:    fake.NewHostDirectory(),
		clk:    clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		seller: builder.NewSellerBuilder(),
		ds:     builder.NewDropshipperBuilder(),
	}
	f.dir.AddSeller(f.seller.BuildRecord())
	f.dir.AddDropshipper(f.ds.BuildRecord())

	resolver := usecase.NewHostResolver(f.dir)
	f.cmds = commands.NewConnectionUseCase(f.uow, resolver, f.dir, f.clk)
	return f
}

func (f *connectionFixture) request(t *testing.T, rate float64) {
	t.Helper()
	err := f.cmds.Request(context.Background(), f.ds.Principal(), commands.RequestConnectionInput{
		SellerID:       f.seller.ID,
		CommissionRate: rate,
	})
	require.NoError(t, err)
}

func TestRequestConnection(t *testing.T) {
	t.Run("writes both projections as one pending pair", func(t *testing.T) {
		f := newConnectionFixture(t)

		err := f.cmds.Request(context.Background(), f.ds.Principal(), commands.RequestConnectionInput{
			SellerID:         f.seller.ID,
			CommissionRate:   12.5,
			AgreementDetails: "net-30 settlement",
		})
		require.NoError(t, err)

		pair := f.uow.Pair(f.ds.ID, f.seller.ID)
		require.NotNil(t, pair)
		assert.Equal(t, connection.StatusPending, pair.DropshipperStatus)
		assert.Equal(t, pair.DropshipperStatus, pair.SellerStatus)
		assert.Equal(t, 12.5, pair.CommissionRate)
		assert.Equal(t, "net-30 settlement", pair.AgreementDetails)
	})

	t.Run("sellers cannot request", func(t *testing.T) {
		f := newConnectionFixture(t)

		err := f.cmds.Request(context.Background(), f.seller.Principal(), commands.RequestConnectionInput{SellerID: f.seller.ID, CommissionRate: 10})
		assert.ErrorIs(t, err, commands.ErrActorNotDropshipper)
	})

	t.Run("out of range commission rate", func(t *testing.T) {
		f := newConnectionFixture(t)

		err := f.cmds.Request(context.Background(), f.ds.Principal(), commands.RequestConnectionInput{SellerID: f.seller.ID, CommissionRate: 101})
		assert.ErrorIs(t, err, connection.ErrInvalidCommissionRate)
		assert.Nil(t, f.uow.Pair(f.ds.ID, f.seller.ID))
	})

	t.Run("unknown seller", func(t *testing.T) {
		f := newConnectionFixture(t)

		err := f.cmds.Request(context.Background(), f.ds.Principal(), commands.RequestConnectionInput{SellerID: uuid.New(), CommissionRate: 10})
		assert.ErrorIs(t, err, commands.ErrCounterpartyNotFound)
	})

	t.Run("unapproved seller behaves like a missing one", func(t *testing.T) {
		f := newConnectionFixture(t)
		pending := builder.NewSellerBuilder().With(func(b *builder.SellerBuilder) {
			b.ApprovalStatus = "pending"
		})
		f.dir.AddSeller(pending.BuildRecord())

		err := f.cmds.Request(context.Background(), f.ds.Principal(), commands.RequestConnectionInput{SellerID: pending.ID, CommissionRate: 10})
		assert.ErrorIs(t, err, commands.ErrCounterpartyNotFound)
	})

	t.Run("active pair blocks a second request", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)

		err := f.cmds.Request(context.Background(), f.ds.Principal(), commands.RequestConnectionInput{SellerID: f.seller.ID, CommissionRate: 20})
		assert.ErrorIs(t, err, commands.ErrConnectionExists)
		assert.Equal(t, 15.0, f.uow.Pair(f.ds.ID, f.seller.ID).CommissionRate)
	})

	t.Run("terminal pair is superseded by a fresh request", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.uow.SeedPair(builder.NewConnectionBuilder().With(func(b *builder.ConnectionBuilder) {
			b.DropshipperID = f.ds.ID
			b.SellerID = f.seller.ID
			b.Status = connection.StatusRejected
		}).BuildPairSnapshot())

		f.request(t, 18)

		pair := f.uow.Pair(f.ds.ID, f.seller.ID)
		assert.Equal(t, connection.StatusPending, pair.DropshipperStatus)
		assert.Equal(t, 18.0, pair.CommissionRate)
	})
}

func TestRespondConnection(t *testing.T) {
	t.Run("approve keeps both projections equal with the agreed rate", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)

		err := f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"})
		require.NoError(t, err)

		pair := f.uow.Pair(f.ds.ID, f.seller.ID)
		assert.Equal(t, connection.StatusApproved, pair.DropshipperStatus)
		assert.Equal(t, pair.DropshipperStatus, pair.SellerStatus)
		assert.Equal(t, 15.0, pair.CommissionRate)
		require.NotNil(t, pair.RespondedAt)
	})

	t.Run("reject carries the reason", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)

		err := f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "rejected", RejectionReason: "catalogue mismatch"})
		require.NoError(t, err)

		pair := f.uow.Pair(f.ds.ID, f.seller.ID)
		assert.Equal(t, connection.StatusRejected, pair.SellerStatus)
		assert.Equal(t, "catalogue mismatch", pair.RejectionReason)
	})

	t.Run("dropshippers cannot respond", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)

		err := f.cmds.Respond(context.Background(), f.ds.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"})
		assert.ErrorIs(t, err, commands.ErrActorNotSeller)
	})

	t.Run("responding to an approved pair conflicts", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)
		require.NoError(t, f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"}))

		err := f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "rejected", RejectionReason: "changed my mind"})
		assert.ErrorIs(t, err, connection.ErrNotPending)
		assert.Equal(t, connection.StatusApproved, f.uow.Pair(f.ds.ID, f.seller.ID).SellerStatus)
	})

	t.Run("missing pair", func(t *testing.T) {
		f := newConnectionFixture(t)

		err := f.cmds.Respond(context.Background(), f.seller.Principal(), uuid.New(), commands.RespondConnectionInput{Decision: "approved"})
		assert.ErrorIs(t, err, commands.ErrConnectionNotFoundWrite)
	})

	t.Run("diverged projections are refused", func(t *testing.T) {
		f := newConnectionFixture(t)
		snap := builder.NewConnectionBuilder().With(func(b *builder.ConnectionBuilder) {
			b.DropshipperID = f.ds.ID
			b.SellerID = f.seller.ID
		}).BuildPairSnapshot()
		snap.SellerStatus = connection.StatusApproved
		f.uow.SeedPair(snap)

		err := f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"})
		assert.ErrorIs(t, err, commands.ErrProjectionDiverged)
	})
}

func TestRevokeOrWithdraw(t *testing.T) {
	t.Run("pending request is withdrawn by deleting both projections", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)

		require.NoError(t, f.cmds.RevokeOrWithdraw(context.Background(), f.ds.Principal(), f.seller.ID))
		assert.Nil(t, f.uow.Pair(f.ds.ID, f.seller.ID))
	})

	t.Run("seller may also withdraw a pending request", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)

		require.NoError(t, f.cmds.RevokeOrWithdraw(context.Background(), f.seller.Principal(), f.ds.ID))
		assert.Nil(t, f.uow.Pair(f.ds.ID, f.seller.ID))
	})

	t.Run("approved partnership is revoked attributing the actor", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)
		require.NoError(t, f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"}))

		require.NoError(t, f.cmds.RevokeOrWithdraw(context.Background(), f.seller.Principal(), f.ds.ID))

		pair := f.uow.Pair(f.ds.ID, f.seller.ID)
		require.NotNil(t, pair)
		assert.Equal(t, connection.StatusRevokedBySeller, pair.SellerStatus)
		assert.Equal(t, pair.SellerStatus, pair.DropshipperStatus)
	})

	t.Run("dropshipper side revocation", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.request(t, 15)
		require.NoError(t, f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"}))

		require.NoError(t, f.cmds.RevokeOrWithdraw(context.Background(), f.ds.Principal(), f.seller.ID))
		assert.Equal(t, connection.StatusRevokedByDropshipper, f.uow.Pair(f.ds.ID, f.seller.ID).DropshipperStatus)
	})

	t.Run("terminal pair is not actionable", func(t *testing.T) {
		f := newConnectionFixture(t)
		f.uow.SeedPair(builder.NewConnectionBuilder().With(func(b *builder.ConnectionBuilder) {
			b.DropshipperID = f.ds.ID
			b.SellerID = f.seller.ID
			b.Status = connection.StatusRejected
		}).BuildPairSnapshot())

		err := f.cmds.RevokeOrWithdraw(context.Background(), f.ds.Principal(), f.seller.ID)
		assert.ErrorIs(t, err, connection.ErrNotActionable)
	})

	t.Run("missing pair", func(t *testing.T) {
		f := newConnectionFixture(t)

		err := f.cmds.RevokeOrWithdraw(context.Background(), f.ds.Principal(), f.seller.ID)
		assert.ErrorIs(t, err, commands.ErrConnectionNotFoundWrite)
	})
}

func TestConnectionNotifications(t *testing.T) {
	f := newConnectionFixture(t)
	f.request(t, 15)
	require.NoError(t, f.cmds.Respond(context.Background(), f.seller.Principal(), f.ds.ID, commands.RespondConnectionInput{Decision: "approved"}))

	jobs := f.uow.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "connection_requested", jobs[0].Kind)
	assert.Equal(t, "seller:"+f.seller.ID.String(), jobs[0].Topic)
	assert.Equal(t, "connection_responded", jobs[1].Kind)
	assert.Equal(t, "dropshipper:"+f.ds.ID.String(), jobs[1].Topic)
}

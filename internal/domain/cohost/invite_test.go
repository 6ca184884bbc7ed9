//go:build unit

package cohost_test

import (
	"testing"
	"time"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/host"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refs() (host.Ref, host.Ref) {
	hostRef := host.Ref{UserID: uuid.New(), HostID: uuid.New(), Model: host.ModelSeller}
	cohostRef := host.Ref{UserID: uuid.New(), HostID: uuid.New(), Model: host.ModelDropshipper}
	return hostRef, cohostRef
}

func TestNewInvite(t *testing.T) {
	now := time.Now()
	hostRef, cohostRef := refs()

	t.Run("creates pending", func(t *testing.T) {
		inv, err := cohost.NewInvite(uuid.New(), hostRef, cohostRef, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, inv.ID())
		assert.Equal(t, cohost.StatusPending, inv.Status())
		assert.Nil(t, inv.JoinedAt())
		assert.Equal(t, now, inv.CreatedAt())
	})

	t.Run("self invite is refused", func(t *testing.T) {
		self := host.Ref{UserID: hostRef.UserID, HostID: uuid.New(), Model: host.ModelDropshipper}
		_, err := cohost.NewInvite(uuid.New(), hostRef, self, now)
		assert.ErrorIs(t, err, cohost.ErrSelfInvite)
	})
}

func TestNewLiveJoin(t *testing.T) {
	now := time.Now()
	hostRef, cohostRef := refs()

	inv, err := cohost.NewLiveJoin(uuid.New(), hostRef, cohostRef, "stream-42", now)
	require.NoError(t, err)

	assert.Equal(t, cohost.StatusAccepted, inv.Status())
	assert.Equal(t, "stream-42", inv.LiveStreamID())
	require.NotNil(t, inv.JoinedAt())
	assert.Equal(t, now, *inv.JoinedAt())
}

func TestInviteTransitions(t *testing.T) {
	now := time.Now()
	hostRef, cohostRef := refs()

	pending := func(t *testing.T) *cohost.Invite {
		inv, err := cohost.NewInvite(uuid.New(), hostRef, cohostRef, now)
		require.NoError(t, err)
		return inv
	}

	t.Run("accept records join time", func(t *testing.T) {
		inv := pending(t)
		require.NoError(t, inv.Accept(now))
		assert.Equal(t, cohost.StatusAccepted, inv.Status())
		require.NotNil(t, inv.JoinedAt())
		assert.Equal(t, cohostRef, inv.CohostSnapshot())
	})

	t.Run("reject", func(t *testing.T) {
		inv := pending(t)
		require.NoError(t, inv.Reject(now))
		assert.Equal(t, cohost.StatusRejected, inv.Status())
		assert.Nil(t, inv.JoinedAt())
	})

	t.Run("cancel clears stream handle", func(t *testing.T) {
		inv := pending(t)
		require.NoError(t, inv.Cancel(now))
		assert.Equal(t, cohost.StatusCancelled, inv.Status())
		assert.Empty(t, inv.LiveStreamID())
	})

	t.Run("leave from accepted with reason", func(t *testing.T) {
		inv := pending(t)
		require.NoError(t, inv.Accept(now))
		require.NoError(t, inv.Leave(cohost.ReasonRemovedByHost, now))
		assert.Equal(t, cohost.StatusLeft, inv.Status())
		assert.Equal(t, cohost.ReasonRemovedByHost, inv.Reason())
		require.NotNil(t, inv.LeftAt())
	})

	t.Run("leave from pending is refused", func(t *testing.T) {
		inv := pending(t)
		assert.ErrorIs(t, inv.Leave(cohost.ReasonLeftVoluntarily, now), cohost.ErrInviteNotActive)
	})

	t.Run("terminal states are dead ends", func(t *testing.T) {
		inv := pending(t)
		require.NoError(t, inv.Reject(now))

		assert.ErrorIs(t, inv.Accept(now), cohost.ErrInviteNotPending)
		assert.ErrorIs(t, inv.Reject(now), cohost.ErrInviteNotPending)
		assert.ErrorIs(t, inv.Cancel(now), cohost.ErrInviteNotPending)
		assert.ErrorIs(t, inv.Leave(cohost.ReasonLeftVoluntarily, now), cohost.ErrInviteNotActive)
		assert.Equal(t, cohost.StatusRejected, inv.Status())
	})
}

func TestStatusSets(t *testing.T) {
	assert.True(t, cohost.StatusPending.IsActive())
	assert.True(t, cohost.StatusAccepted.IsActive())
	assert.False(t, cohost.StatusLeft.IsActive())

	assert.True(t, cohost.StatusRejected.IsTerminal())
	assert.True(t, cohost.StatusCancelled.IsTerminal())
	assert.True(t, cohost.StatusLeft.IsTerminal())
	assert.False(t, cohost.StatusPending.IsTerminal())
}

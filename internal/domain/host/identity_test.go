//go:build unit

package host_test

import (
	"testing"

	"showhost-service/internal/domain/host"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSellerApproval(t *testing.T) {
	cases := []struct {
		status   host.ApprovalStatus
		approved bool
	}{
		{host.ApprovalApproved, true},
		{host.ApprovalAutoApproved, true},
		{host.ApprovalPending, false},
		{host.ApprovalRejected, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			s := host.NewSeller(uuid.New(), uuid.New(), tc.status)
			assert.Equal(t, tc.approved, s.IsApproved())
		})
	}
}

func TestDropshipperApproval(t *testing.T) {
	// Unlike sellers, auto_approved does not count for dropshippers.
	assert.True(t, host.NewDropshipper(uuid.New(), uuid.New(), host.ApprovalApproved, nil).IsApproved())
	assert.False(t, host.NewDropshipper(uuid.New(), uuid.New(), host.ApprovalAutoApproved, nil).IsApproved())
	assert.False(t, host.NewDropshipper(uuid.New(), uuid.New(), host.ApprovalPending, nil).IsApproved())
}

func TestDropshipperConnections(t *testing.T) {
	sellerA := uuid.New()
	sellerB := uuid.New()
	ds := host.NewDropshipper(uuid.New(), uuid.New(), host.ApprovalApproved, []uuid.UUID{sellerA})

	assert.True(t, ds.IsConnectedTo(sellerA))
	assert.False(t, ds.IsConnectedTo(sellerB))
	assert.ElementsMatch(t, []uuid.UUID{sellerA}, ds.ApprovedSellerIDs())
}

func TestRefOf(t *testing.T) {
	id := uuid.New()
	owner := uuid.New()

	sellerRef := host.RefOf(host.NewSeller(id, owner, host.ApprovalApproved))
	if diff := cmp.Diff(host.Ref{UserID: owner, HostID: id, Model: host.ModelSeller}, sellerRef); diff != "" {
		t.Errorf("seller ref mismatch (-want +got):\n%s", diff)
	}

	dsRef := host.RefOf(host.NewDropshipper(id, owner, host.ApprovalApproved, nil))
	if diff := cmp.Diff(host.Ref{UserID: owner, HostID: id, Model: host.ModelDropshipper}, dsRef); diff != "" {
		t.Errorf("dropshipper ref mismatch (-want +got):\n%s", diff)
	}
}

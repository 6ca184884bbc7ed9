package cohost

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusLeft      Status = "left"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCancelled, StatusLeft:
		return true
	default:
		return false
	}
}

// IsActive marks the statuses that count against the one-active-invite-per-show
// invariant.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusAccepted
}

// IsTerminal statuses are dead ends; a new episode needs a brand-new invite.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusLeft
}

// LeaveReason distinguishes who ended an accepted co-hosting episode.
type LeaveReason string

const (
	ReasonLeftVoluntarily LeaveReason = "COHOST_LEFT_VOLUNTARILY"
	ReasonRemovedByHost   LeaveReason = "HOST_REMOVED_COHOST"
)

// Decision is the invited cohost's answer to a pending invite.
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

type ShowStatus string

const (
	ShowScheduled ShowStatus = "scheduled"
	ShowLive      ShowStatus = "live"
	ShowEnded     ShowStatus = "ended"
)

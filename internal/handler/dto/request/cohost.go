package request

import (
	"github.com/google/uuid"
)

type SendInviteRequest struct {
	CohostUserID uuid.UUID `json:"cohost_user_id" binding:"required"`
}

type RespondInviteRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}

type JoinLiveRequest struct {
	CohostUserID uuid.UUID `json:"cohost_user_id" binding:"required"`
}

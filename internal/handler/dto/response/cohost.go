package response

import (
	"github.com/google/uuid"
)

type InviteCreatedResponse struct {
	InviteID string `json:"invite_id"`
}

func FromInviteID(id uuid.UUID) *InviteCreatedResponse {
	return &InviteCreatedResponse{InviteID: id.String()}
}

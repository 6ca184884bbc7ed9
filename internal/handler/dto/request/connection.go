package request

import (
	"github.com/google/uuid"

	"showhost-service/internal/usecase/commands"
)

type RequestConnectionRequest struct {
	SellerID         uuid.UUID `json:"seller_id" binding:"required"`
	CommissionRate   float64   `json:"commission_rate" binding:"min=0,max=100"`
	AgreementDetails string    `json:"agreement_details" binding:"max=2000"`
}

func (r *RequestConnectionRequest) ToInput() commands.RequestConnectionInput {
	return commands.RequestConnectionInput{
		SellerID:         r.SellerID,
		CommissionRate:   r.CommissionRate,
		AgreementDetails: r.AgreementDetails,
	}
}

type RespondConnectionRequest struct {
	Decision        string `json:"decision" binding:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason" binding:"max=1000"`
}

func (r *RespondConnectionRequest) ToInput() commands.RespondConnectionInput {
	return commands.RespondConnectionInput{
		Decision:        r.Decision,
		RejectionReason: r.RejectionReason,
	}
}

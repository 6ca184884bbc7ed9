package response

import (
	"showhost-service/internal/usecase/queries"
)

type ConnectionResponse struct {
	DropshipperID    string  `json:"dropshipper_id"`
	SellerID         string  `json:"seller_id"`
	Status           string  `json:"status"`
	CommissionRate   float64 `json:"commission_rate"`
	AgreementDetails string  `json:"agreement_details,omitempty"`
	RequestedAt      int64   `json:"requested_at"`
	RespondedAt      *int64  `json:"responded_at,omitempty"`
	RejectionReason  string  `json:"rejection_reason,omitempty"`
}

func FromConnectionView(v *queries.ConnectionView) *ConnectionResponse {
	resp := &ConnectionResponse{
		DropshipperID:    v.DropshipperID.String(),
		SellerID:         v.SellerID.String(),
		Status:           v.Status.String(),
		CommissionRate:   v.CommissionRate,
		AgreementDetails: v.AgreementDetails,
		RequestedAt:      v.RequestedAt.Unix(),
		RejectionReason:  v.RejectionReason,
	}
	if v.RespondedAt != nil {
		ts := v.RespondedAt.Unix()
		resp.RespondedAt = &ts
	}
	return resp
}

func FromConnectionList(items []*queries.ConnectionView) []*ConnectionResponse {
	res := make([]*ConnectionResponse, len(items))
	for i, it := range items {
		res[i] = FromConnectionView(it)
	}
	return res
}

package response

import (
	"showhost-service/internal/usecase"
)

type AuthorizeProductsResponse struct {
	ValidIDs []string `json:"valid_ids"`
}

func FromAuthorizeResult(r *usecase.AuthorizeProductsResult) *AuthorizeProductsResponse {
	ids := make([]string, len(r.ValidIDs))
	for i, id := range r.ValidIDs {
		ids[i] = id.String()
	}
	return &AuthorizeProductsResponse{ValidIDs: ids}
}

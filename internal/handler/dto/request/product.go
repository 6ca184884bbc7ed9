package request

import (
	"github.com/google/uuid"
)

type AuthorizeProductsRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required,min=1,max=200"`
}

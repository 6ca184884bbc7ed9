package api

import (
	"net/http"

	reqdto "showhost-service/internal/handler/dto/request"
	resdto "showhost-service/internal/handler/dto/response"
	"showhost-service/internal/handler/httperr"
	"showhost-service/internal/handler/middleware"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errProductsNotEligible = errs.New("one or more products are not eligible")

type ProductHandler struct {
	resolver   usecase.HostResolver
	authorizer usecase.ProductAuthorizer
}

func NewProductHandler(resolver usecase.HostResolver, authorizer usecase.ProductAuthorizer) *ProductHandler {
	return &ProductHandler{resolver: resolver, authorizer: authorizer}
}

// @Summary Authorize products
// @Description Checks that every product in the batch may be attributed to the caller; a single ineligible product fails the whole batch
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AuthorizeProductsRequest true "Product ids"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /products/authorize [post]
func (h *ProductHandler) Authorize(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	var req reqdto.AuthorizeProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	identity, err := h.resolver.Resolve(c.Request.Context(), p)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	result, err := h.authorizer.Authorize(c.Request.Context(), req.ProductIDs, identity)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	// All-or-nothing: the full error list is returned so the caller can report
	// every failing product at once.
	if !result.OK() {
		httperr.AbortWithError(c, http.StatusForbidden, errProductsNotEligible, "Products not eligible", result.Errors)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("products authorized", resdto.FromAuthorizeResult(result)))
}

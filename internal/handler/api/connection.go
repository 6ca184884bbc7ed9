package api

import (
	"net/http"

	reqdto "showhost-service/internal/handler/dto/request"
	resdto "showhost-service/internal/handler/dto/response"
	"showhost-service/internal/handler/httperr"
	"showhost-service/internal/handler/middleware"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/commands"
	"showhost-service/internal/usecase/queries"

	"showhost-service/internal/domain/connection"
	"showhost-service/internal/domain/principal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNoPrincipal         = errs.New("missing principal in context")
	errInvalidStatusFilter = errs.New("invalid status filter")
)

type ConnectionHandler struct {
	cmds     commands.ConnectionCommands
	q        queries.ConnectionQueries
	resolver usecase.HostResolver
}

func NewConnectionHandler(cmds commands.ConnectionCommands, q queries.ConnectionQueries, resolver usecase.HostResolver) *ConnectionHandler {
	return &ConnectionHandler{cmds: cmds, q: q, resolver: resolver}
}

// @Summary Request connection
// @Description Dropshipper proposes a partnership to a seller
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestConnectionRequest true "Connection request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /connections [post]
func (h *ConnectionHandler) Request(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	var req reqdto.RequestConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Request(c.Request.Context(), p, req.ToInput()); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Success("connection requested", nil))
}

// @Summary Respond to connection request
// @Description Seller approves or rejects a pending request from a dropshipper
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dropshipperId path string true "Dropshipper ID"
// @Param request body reqdto.RespondConnectionRequest true "Decision"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /connections/{dropshipperId}/respond [post]
func (h *ConnectionHandler) Respond(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	dropshipperID, err := uuid.Parse(c.Param("dropshipperId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dropshipper id", nil)
		return
	}
	var req reqdto.RespondConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Respond(c.Request.Context(), p, dropshipperID, req.ToInput()); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("connection "+req.Decision, nil))
}

// @Summary Revoke or withdraw connection
// @Description Withdraws a pending request or revokes an approved partnership
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param counterpartyId path string true "Counterparty host ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /connections/{counterpartyId} [delete]
func (h *ConnectionHandler) RevokeOrWithdraw(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	counterpartyID, err := uuid.Parse(c.Param("counterpartyId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid counterparty id", nil)
		return
	}
	if err := h.cmds.RevokeOrWithdraw(c.Request.Context(), p, counterpartyID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("connection ended", nil))
}

// @Summary List connections
// @Description Lists the caller's connections regardless of status
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /connections [get]
func (h *ConnectionHandler) List(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}

	identity, err := h.resolver.Resolve(c.Request.Context(), p)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	var filters queries.ConnectionFilters
	if raw := c.Query("status"); raw != "" {
		status := connection.Status(raw)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidStatusFilter, "Invalid status filter", nil)
			return
		}
		filters.Status = &status
	}

	var views []*queries.ConnectionView
	if p.Role == principal.RoleSeller {
		views, err = h.q.ListBySeller(c.Request.Context(), identity.HostID(), filters)
	} else {
		views, err = h.q.ListByDropshipper(c.Request.Context(), identity.HostID(), filters)
	}
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.Success("connections", gin.H{"connections": resdto.FromConnectionList(views)}))
}

package api

import (
	"context"
	"net/http"

	"showhost-service/internal/domain/cohost"
	reqdto "showhost-service/internal/handler/dto/request"
	resdto "showhost-service/internal/handler/dto/response"
	"showhost-service/internal/handler/httperr"
	"showhost-service/internal/handler/middleware"
	"showhost-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CoHostHandler struct {
	cmds commands.CoHostCommands
}

func NewCoHostHandler(cmds commands.CoHostCommands) *CoHostHandler {
	return &CoHostHandler{cmds: cmds}
}

// @Summary Send cohost invite
// @Description Show's host invites another host as cohost
// @Tags cohost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Show ID"
// @Param request body reqdto.SendInviteRequest true "Invite request"
// @Success 201 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shows/{id}/cohost/invites [post]
func (h *CoHostHandler) SendInvite(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid show id", nil)
		return
	}
	var req reqdto.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	inviteID, err := h.cmds.SendInvite(c.Request.Context(), p, showID, req.CohostUserID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Success("invite sent", resdto.FromInviteID(inviteID)))
}

// @Summary Respond to cohost invite
// @Description Invited cohost accepts or rejects a pending invite
// @Tags cohost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Param request body reqdto.RespondInviteRequest true "Decision"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cohost/invites/{id}/respond [post]
func (h *CoHostHandler) Respond(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid invite id", nil)
		return
	}
	var req reqdto.RespondInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Respond(c.Request.Context(), p.UserID, inviteID, cohost.Decision(req.Decision)); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success("invite "+req.Decision, nil))
}

// @Summary Cancel cohost invite
// @Description Host withdraws a pending invite
// @Tags cohost
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cohost/invites/{id}/cancel [post]
func (h *CoHostHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel, "invite cancelled")
}

// @Summary Leave cohost session
// @Description Cohost leaves an accepted episode voluntarily
// @Tags cohost
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cohost/invites/{id}/leave [post]
func (h *CoHostHandler) Leave(c *gin.Context) {
	h.transition(c, h.cmds.Leave, "cohost left")
}

// @Summary Remove cohost
// @Description Host removes the accepted cohost from the show
// @Tags cohost
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cohost/invites/{id}/remove [post]
func (h *CoHostHandler) Remove(c *gin.Context) {
	h.transition(c, h.cmds.RemoveByHost, "cohost removed")
}

// @Summary Invite and join live
// @Description Supersedes any active invite and seats a new cohost on a live show
// @Tags cohost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Show ID"
// @Param request body reqdto.JoinLiveRequest true "Join request"
// @Success 201 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shows/{id}/cohost/join-live [post]
func (h *CoHostHandler) JoinLive(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	showID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid show id", nil)
		return
	}
	var req reqdto.JoinLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	inviteID, err := h.cmds.InviteAndJoinLive(c.Request.Context(), p, showID, req.CohostUserID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Success("cohost joined live", resdto.FromInviteID(inviteID)))
}

func (h *CoHostHandler) transition(c *gin.Context, op func(ctx context.Context, actorUserID, inviteID uuid.UUID) error, message string) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", nil)
		return
	}
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid invite id", nil)
		return
	}
	if err := op(c.Request.Context(), p.UserID, inviteID); err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success(message, nil))
}

package api

import (
	"errors"
	"net/http"

	"showhost-service/internal/domain/cohost"
	"showhost-service/internal/domain/connection"
	"showhost-service/internal/handler/httperr"
	"showhost-service/internal/usecase"
	"showhost-service/internal/usecase/commands"
	"showhost-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// statusOf maps sentinel errors onto the HTTP taxonomy: NotFound 404,
// Forbidden 403, Conflict 409, Validation 400, TransientStorage 503.
func statusOf(err error) int {
	switch {
	case errors.Is(err, commands.ErrShowNotFound),
		errors.Is(err, commands.ErrInviteNotFoundWrite),
		errors.Is(err, commands.ErrConnectionNotFoundWrite),
		errors.Is(err, commands.ErrCounterpartyNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrHostNotEligible),
		errors.Is(err, commands.ErrNotShowHost),
		errors.Is(err, commands.ErrNotInvitedCohost),
		errors.Is(err, commands.ErrActorNotDropshipper),
		errors.Is(err, commands.ErrActorNotSeller):
		return http.StatusForbidden

	case errors.Is(err, commands.ErrConnectionExists),
		errors.Is(err, commands.ErrActiveInviteExists),
		errors.Is(err, commands.ErrShowNotLive),
		errors.Is(err, commands.ErrProjectionDiverged),
		errors.Is(err, connection.ErrNotPending),
		errors.Is(err, connection.ErrNotApproved),
		errors.Is(err, connection.ErrNotActionable),
		errors.Is(err, cohost.ErrSelfInvite),
		errors.Is(err, cohost.ErrInviteNotPending),
		errors.Is(err, cohost.ErrInviteNotActive):
		return http.StatusConflict

	case errors.Is(err, connection.ErrInvalidCommissionRate),
		errors.Is(err, connection.ErrRejectionReasonRequired),
		errors.Is(err, connection.ErrInvalidDecision),
		errors.Is(err, cohost.ErrInvalidDecision):
		return http.StatusBadRequest

	case errors.Is(err, shared.ErrTransientStorage):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

func abortDomainError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

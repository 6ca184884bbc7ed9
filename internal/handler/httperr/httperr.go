package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure half of the uniform envelope.
type Response struct {
	Status  int    `json:"-"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, errors any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, OK: false, Message: msg, Errors: errors}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

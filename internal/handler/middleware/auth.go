package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"showhost-service/internal/domain/principal"
	"showhost-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey   = "principal"
	accessTokenCookie = "access_token"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "Access token required",
			})
			c.Abort()
			return
		}

		p, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":      false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, p)
		c.Set("jwt_claims", map[string]any{
			"user_id": p.UserID.String(),
			"role":    p.Role.String(),
		})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookieToken, err := c.Cookie(accessTokenCookie); err == nil && cookieToken != "" {
		return cookieToken
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return principal.Principal{}, false
	}

	p, ok := v.(principal.Principal)
	return p, ok
}

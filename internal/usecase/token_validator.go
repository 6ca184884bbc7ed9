package usecase

import (
	"showhost-service/internal/domain/principal"
	"showhost-service/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (principal.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (principal.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return principal.Principal{}, err
	}

	role, err := principal.NewRole(claims.Role)
	if err != nil {
		return principal.Principal{}, err
	}

	return principal.Principal{UserID: claims.UserID, Role: role}, nil
}

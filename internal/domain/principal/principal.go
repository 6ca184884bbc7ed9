package principal

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Role is the authenticated account kind carried in the session token.
type Role string

const (
	RoleSeller      Role = "seller"
	RoleDropshipper Role = "dropshipper"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSeller, RoleDropshipper:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the trusted (userID, role) pair supplied by the identity provider.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

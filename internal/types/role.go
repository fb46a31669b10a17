package types

import "fmt"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleUser   Role = "USER"
	RoleMaster Role = "MASTER"
)

// ParseRole validates a raw role value against the canonical set.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleUser, RoleMaster:
		return Role(value), nil
	default:
		return "", NewValidationError(fmt.Sprintf("invalid role %q, must be ADMIN, MASTER or USER", value))
	}
}

package models

import "strings"

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleOperator    Role = "OPERATOR"
	RoleGuest       Role = "GUEST"
	RolePolice      Role = "POLICE"
	RoleFirefighter Role = "FIREFIGHTER"
)

// ParseRole normalizes a role string to its canonical form. The second return
// value is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleOperator, RoleGuest, RolePolice, RoleFirefighter:
		return r, true
	default:
		return "", false
	}
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Secret holds the bcrypt hash of the credential, never the plain value.
	Secret string `json:"-"`
	Role   Role   `json:"role"`
}

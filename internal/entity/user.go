package entity

import "errors"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the session principal. Accounts come from static configuration and
// are read-only here.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

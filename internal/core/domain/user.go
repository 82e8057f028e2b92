package domain

import "errors"

var (
	ErrNoActiveUser   = errors.New("no active user session")
	ErrInvalidSession = errors.New("invalid or expired session token")
)

// User is the mock-logged-in visitor. At most one is active at a time.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

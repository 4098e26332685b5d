package auth

import (
	"fmt"

	"github.com/desertthunder/beatly/internal/shared"
)

// Role is an access-control category determining which screens and features are reachable.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleConsumer Role = "consumer"
	RoleManager  Role = "manager"
)

// ParseRole validates a role string from the server or from storage.
//
// An unrecognized role is an authorization failure, never a pass-through:
// a session carrying one must not be granted access to any route.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleConsumer, RoleManager:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnknownRole, s)
	}
}

// Session is the client-held proof of authentication.
type Session struct {
	UserID      string
	DisplayName string
	Role        Role
	Token       string
}

// Valid reports whether the session carries an identity, a token, and a known role.
func (s *Session) Valid() bool {
	if s == nil || s.UserID == "" || s.Token == "" {
		return false
	}
	_, err := ParseRole(string(s.Role))
	return err == nil
}

// Store persists at most one session.
//
// Save must be atomic with respect to the (identity, token) pair. Current and
// Token never fail: undecodable state reads as absent.
type Store interface {
	Save(session Session) error
	Current() *Session
	Token() string
	Clear() error
}

package auth

import (
	"context"

	"tenalyadmin/internal/session"
	"tenalyadmin/internal/tenaly"
)

// LoginClient is the slice of the Tenaly client this module needs.
type LoginClient interface {
	Login(ctx context.Context, login, password string) (*tenaly.LoginResult, error)
}

// SessionStore persists the single active admin session.
type SessionStore interface {
	Save(token, email, fullName, role string) (*session.Session, error)
	Current() (*session.Session, error)
	Clear() error
}

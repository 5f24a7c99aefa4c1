// Package auth guards the admin API behind a single shop password.
package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for a wrong password or a bad token.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminSubject is the token subject of the one admin account.
const AdminSubject = "admin"

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks password and returns a signed session token.
	Login(ctx context.Context, password string) (string, error)
	// Verify validates a session token.
	Verify(token string) error
	// Enabled reports whether a password is configured. When it is not,
	// every request is let through.
	Enabled() bool
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

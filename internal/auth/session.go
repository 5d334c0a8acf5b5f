// Package auth carries the current admin session through request contexts.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized is returned when an admin operation runs without a live session.
var ErrUnauthorized = errors.New("admin session required")

// Session identifies the admin an operation runs on behalf of.
type Session struct {
	ID        uuid.UUID
	AdminID   uuid.UUID
	Email     string
	ExpiresAt time.Time
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// Require returns the session in ctx or ErrUnauthorized when it is missing or expired.
func Require(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok || s.AdminID == uuid.Nil || !time.Now().Before(s.ExpiresAt) {
		return Session{}, ErrUnauthorized
	}
	return s, nil
}

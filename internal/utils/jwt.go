package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type jwtCustomClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TokenClaims is what a verified admin token identifies.
type TokenClaims struct {
	AdminID   uuid.UUID
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// GenerateToken creates a signed JWT bound to an admin session.
func GenerateToken(secret string, adminID, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := &jwtCustomClaims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the embedded admin and session IDs.
func ParseToken(secret, tokenString string) (TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, jwt.ErrTokenInvalidClaims
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return TokenClaims{}, errors.Join(jwt.ErrTokenInvalidClaims, err)
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return TokenClaims{}, errors.Join(jwt.ErrTokenInvalidClaims, err)
	}

	out := TokenClaims{AdminID: adminID, SessionID: sessionID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

package api

import (
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/shopview/dashboard/pkg/errors"
)

// Identity holds the claims the dashboard reads from the bearer token. The
// token is decoded without signature verification: the server remains the
// authority on every request, the claims are only used client-side to match
// "the current customer" against records such as review authorship.
type Identity struct {
	CustomerID string
	Name       string
	Email      string
}

// DecodeIdentity extracts identity claims from a JWT bearer token.
func DecodeIdentity(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, apperrors.Unauthenticated("invalid session token")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, apperrors.Unauthenticated("session token carries no subject")
	}

	id := &Identity{CustomerID: sub}
	if name, ok := claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}

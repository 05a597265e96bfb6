package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims decodes the token's claims WITHOUT verifying the signature.
// The backend is the authority on token validity; this only lets the UI
// inspect what the token says (expiry, subject) for display and gating.
func Claims(token string) (jwt.MapClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}

// ExpiresAt returns the token's expiry, if it carries one.
func ExpiresAt(token string) (time.Time, bool) {
	claims, err := Claims(token)
	if err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

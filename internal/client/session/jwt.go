package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt peeks at the exp claim of a bearer token without verifying the
// signature; verification is the backend's job, the client only wants to
// warn before sending a token it knows is stale. Returns false when the
// token is not a JWT or carries no expiry.
func ExpiresAt(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the token carries an expiry in the past.
// Opaque tokens and tokens without an exp claim are never considered
// expired client-side.
func IsExpired(token string) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return time.Now().After(exp)
}

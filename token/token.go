// Package token inspects bearer tokens without verifying them.
//
// The backend is the only party that verifies signatures; the client just
// reads the claims it needs, mainly to drop a persisted session whose token
// already expired instead of replaying it on every request.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the client cares about from a bearer token.
type Claims struct {
	Subject   string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect parses the token without signature verification and extracts
// claims. Opaque (non-JWT) tokens return an error; callers treat that as
// "no local expiry information", not as an invalid session.
func Inspect(tokenString string) (*Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: not a parseable JWT: %w", err)
	}

	result := &Claims{}
	if sub, ok := claims["sub"].(string); ok {
		result.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		result.Role = role
	}
	if iat, ok := claims["iat"].(float64); ok {
		result.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return result, nil
}

// Expired reports whether the token carries an exp claim that has already
// passed. Tokens without a readable exp claim are never reported expired.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil {
		return false
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

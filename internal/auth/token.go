// Package auth implements the authentication core: password hashing,
// session token issuing/decoding, and request-to-user resolution.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Danskers/Finances-API/internal/config"
)

const issuer = "finances-api"

// getJWTKey returns the signing key from configuration.
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// Claims represents the claims carried by a session token. The user
// identifier travels in the registered Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the given subject with the
// given lifetime. The expiry is embedded in the claims; rotating the
// process secret invalidates every outstanding token.
func IssueToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// DecodeToken verifies signature and expiry and returns the claims,
// or nil on any failure: malformed token, wrong algorithm, bad
// signature, or expiry in the past. It never surfaces an error so
// that callers treat "no identity" uniformly regardless of cause.
func DecodeToken(tokenString string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}

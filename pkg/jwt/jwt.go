// Package jwt mints the HS256 tokens accepted by the auth middleware.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL is the lifetime of an access token.
	AccessTokenTTL = time.Hour * 24 * 7
	// RefreshTokenTTL is the lifetime of a refresh token.
	RefreshTokenTTL = time.Hour * 24 * 30
)

// GenerateTokenPair creates an access/refresh token pair for a user ID.
// Refresh tokens carry typ=refresh and are rejected by the auth middleware
// when presented as access tokens.
func GenerateTokenPair(userID uint, secret string) (access, refresh string, err error) {
	access, err = generate(userID, secret, AccessTokenTTL, "")
	if err != nil {
		return "", "", err
	}
	refresh, err = generate(userID, secret, RefreshTokenTTL, "refresh")
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func generate(userID uint, secret string, ttl time.Duration, typ string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	if typ != "" {
		claims["typ"] = typ
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

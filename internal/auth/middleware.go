// Package auth validates bearer tokens and supplies the acting-user identity
// to the handler layer. Failure bodies follow the wire contract of the token
// gateway exactly — distinct shapes for an absent header, a malformed header,
// and an unverifiable token.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
)

// userIDKey is the gin context key carrying the acting user's ID.
const userIDKey = "userID"

// UserID returns the acting user's ID set by Middleware. It is zero only on
// routes that skip the middleware.
func UserID(c *gin.Context) uint {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// Middleware requires a valid `Authorization: Bearer <token>` header and
// stores the token subject as the acting user. Every failure aborts with 401.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authorization header must contain two space-delimited values",
				"code":   "bad_authorization_header",
			})
			return
		}
		// A non-Bearer scheme means the credentials for this gateway were
		// never supplied, not that they are malformed.
		if parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}

		token, err := gojwt.Parse(parts[1], func(token *gojwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortTokenNotValid(c)
			return
		}

		claims, ok := token.Claims.(gojwt.MapClaims)
		if !ok {
			abortTokenNotValid(c)
			return
		}
		// Refresh tokens cannot be used as access tokens.
		if typ, _ := claims["typ"].(string); typ == "refresh" {
			abortTokenNotValid(c)
			return
		}
		userIDFloat, ok := claims["sub"].(float64)
		if !ok {
			abortTokenNotValid(c)
			return
		}

		c.Set(userIDKey, uint(userIDFloat))
		c.Next()
	}
}

func abortTokenNotValid(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"detail": "Given token not valid for any token type",
		"code":   "token_not_valid",
	})
}

package middleware

import (
	"net/http"
	"strings"

	"crewcall-shop/models"
	"crewcall-shop/services"
	"crewcall-shop/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "session_claims"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", false
	}
	return tokenParts[1], true
}

// SessionMiddleware requires a valid, unrevoked session token. Guest
// tokens pass; anonymous visitors get 401.
func SessionMiddleware(revoker services.SessionRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil || revoker.IsRevoked(claims.SessionID) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalSessionMiddleware resolves a session when a token is present
// but lets anonymous visitors through. Invalid tokens degrade to
// anonymous instead of failing the request.
func OptionalSessionMiddleware(revoker services.SessionRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := utils.ValidateSessionToken(token); err == nil && !revoker.IsRevoked(claims.SessionID) {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// SessionClaims returns the claims stored by the session middleware,
// or nil for an anonymous request.
func SessionClaims(c *gin.Context) *utils.SessionClaims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*utils.SessionClaims)
	return claims
}

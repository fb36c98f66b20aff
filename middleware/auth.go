package middleware

import (
	"net/http"

	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Key under which the decoded token claims are stored in the request context.
const decodedClaimsKey = "decoded"

// VerifyToken gates protected routes on the "token" cookie. A missing cookie
// is unauthorized; a bad signature or expired token is forbidden. On success
// the decoded claims are attached to the request context.
func VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(decodedClaimsKey, claims)
		c.Next()
	}
}

// DecodedClaims returns the token claims attached by VerifyToken, if any.
func DecodedClaims(c *gin.Context) (jwt.MapClaims, bool) {
	val, exists := c.Get(decodedClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(jwt.MapClaims)
	return claims, ok
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminPasswordHeader carries the shared admin secret on admin requests.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth returns a middleware that gates admin endpoints behind the
// configured shared secret. There is exactly one administrative identity;
// the comparison is constant-time so the secret cannot be probed
// byte-by-byte through response timing.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SecretMatches(secret, c.GetHeader(AdminPasswordHeader)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "invalid admin credentials",
				},
			})
			return
		}

		c.Next()
	}
}

// SecretMatches compares a supplied secret against the configured one in
// constant time. An empty configured secret never matches.
func SecretMatches(configured, supplied string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}

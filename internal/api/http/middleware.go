package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gearshed-backend/internal/logger"
	"gearshed-backend/internal/security"
	"gearshed-backend/internal/service"
)

const identityKey = "identity"

// AuthRequired verifies the bearer token, lazily creates the user document
// on first sight of a new identity, and stashes the identity in the
// request context.
func AuthRequired(verifier security.TokenVerifier, userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if _, err := userSvc.Ensure(c.Request.Context(), identity.UID, identity.Email); err != nil {
			logger.Error("Failed to ensure user document", "user_id", identity.UID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminOnly gates admin routes on the admin claim. Must run after
// AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CallerIdentity(c)
		if identity == nil || !identity.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CallerIdentity returns the verified identity set by AuthRequired, or nil.
func CallerIdentity(c *gin.Context) *security.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*security.Identity)
	return identity
}

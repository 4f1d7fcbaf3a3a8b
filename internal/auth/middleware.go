package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pmhub/mentor-back/internal/config"
	"github.com/pmhub/mentor-back/internal/store"
)

// ContextUsernameKey is where the gate stores the verified admin username.
const ContextUsernameKey = "username"

// AdminGate verifies the bearer token and re-checks that the admin account
// still exists before letting the request through.
func AdminGate(cfg *config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No token provided"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No token provided"})
			return
		}

		username, err := ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		if _, err := st.GetAdminByUsername(c.Request.Context(), username); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
				return
			}
			log.Println("verifying admin:", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to authenticate token"})
			return
		}

		c.Set(ContextUsernameKey, username)
		c.Next()
	}
}

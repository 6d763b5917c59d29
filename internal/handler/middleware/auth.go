package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-engine/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxHolderIDKey = "holder_id"

// AuthMiddleware resolves the holder identity from a bearer token. Identity
// and authorization policy belong to the external auth collaborator; once a
// token verifies, the engine trusts the holder ID inside it.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		holderID, err := m.tokens.Verify(token)
		if err != nil {
			slog.Warn("token verification failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxHolderIDKey, holderID)
		c.Next()
	}
}

func GetHolderID(c *gin.Context) (uuid.UUID, bool) {
	holderID, exists := c.Get(ctxHolderIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := holderID.(uuid.UUID)
	return id, ok
}

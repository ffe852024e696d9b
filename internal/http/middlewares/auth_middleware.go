package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/calverts/userhub/internal/auth"
	"github.com/gin-gonic/gin"
)

// Keep this small interface so tests can fake it easily.
type TokenVerifier interface {
	Verify(token string) error
}

// Gate intercepts every request except those on the exempt allow-list and
// rejects it before any handler runs unless it carries a valid, unexpired
// bearer token. A request is in exactly one of four states: exempt,
// authorized, or rejected for a missing/invalid/expired credential.
type Gate struct {
	jwt    TokenVerifier
	exempt []string
}

// NewGate builds the gate. exempt entries are path prefixes (login, docs,
// health, metrics).
func NewGate(jwt TokenVerifier, exempt []string) *Gate {
	return &Gate{jwt: jwt, exempt: exempt}
}

func (g *Gate) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range g.exempt {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))

		if err := g.jwt.Verify(raw); err != nil {
			msg := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msg,
			})
			return
		}

		c.Next()
	}
}

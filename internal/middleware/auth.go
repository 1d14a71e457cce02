package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/session"
)

const sessionKey = "session"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	return token, token != ""
}

// JWTAuthMiddleware rejects requests without a valid bearer token and stores
// the caller's session in the context.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization header is required.")
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid authorization header format.")
			c.Abort()
			return
		}

		s, err := session.Parse(secret, token)
		if err != nil {
			message := "Invalid access token."
			if errors.Is(err, session.ErrTokenExpired) {
				message = "Access token has expired."
			}
			helpers.RespondWithError(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Set("user_id", s.UserID)
		c.Next()
	}
}

// OptionalAuth attaches a session when a valid token is sent and otherwise
// lets the request through anonymously.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if s, err := session.Parse(secret, token); err == nil {
				c.Set(sessionKey, s)
				c.Set("user_id", s.UserID)
			}
		}
		c.Next()
	}
}

// RequireRole lets through sessions holding one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := GetSession(c)
		if s == nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
			c.Abort()
			return
		}
		if !slices.Contains(roles, s.Role) {
			helpers.RespondWithError(c, http.StatusForbidden, "Insufficient permissions.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the caller's session, or nil for anonymous requests.
func GetSession(c *gin.Context) *session.Session {
	s, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	return s.(*session.Session)
}

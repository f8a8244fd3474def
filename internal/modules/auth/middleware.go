package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenalyadmin/internal/pkg/response"
	"tenalyadmin/internal/session"
)

// Context keys set by RequireSession for downstream handlers.
const (
	TokenKey      = "tenaly_token"
	AdminEmailKey = "admin_email"
	AdminNameKey  = "admin_name"
	AdminRoleKey  = "admin_role"
)

// RequireSession guards admin routes. Every request re-reads the stored
// session so a logout or expiry takes effect immediately.
func RequireSession(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := service.Current()
		if err != nil {
			code := "SESSION_REQUIRED"
			if errors.Is(err, session.ErrExpired) {
				code = "SESSION_EXPIRED"
			} else if !errors.Is(err, session.ErrNoSession) {
				response.Error(c, http.StatusInternalServerError, "SESSION_READ_FAILED", "could not read session")
				c.Abort()
				return
			}
			response.Error(c, http.StatusUnauthorized, code, "sign in to continue")
			c.Abort()
			return
		}

		c.Set(TokenKey, sess.Token)
		c.Set(AdminEmailKey, sess.Email)
		c.Set(AdminNameKey, sess.FullName)
		c.Set(AdminRoleKey, sess.Role)
		c.Next()
	}
}

// Token returns the bearer token RequireSession stashed on the context.
func Token(c *gin.Context) string {
	return c.GetString(TokenKey)
}

package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgdesk.app/server/common/logger"
	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/service"
)

type contextKey string

const (
	// SessionCookieName holds the signed session token.
	SessionCookieName = "orgdesk_session"

	userContextKey contextKey = "user"
)

// RequireAuth resolves the session cookie to a live user record and stashes
// it in the request context. Anything that fails resolution redirects to the
// login page; protected routes never default-allow.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		user, err := authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			ClearSessionCookie(c)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			UserID:         &user.ID,
			OrganizationID: user.OrganizationID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUser returns the authenticated user from the request context, or nil.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetCookie(
		SessionCookieName,
		token,
		maxAge,
		"/",
		"",
		secure,
		true,
	)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}

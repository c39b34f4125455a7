package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgdesk.app/server/internal/http/flash"
	"orgdesk.app/server/internal/http/middleware"
	"orgdesk.app/server/internal/service"
)

const sessionMaxAge = 7 * 24 * 60 * 60 // seconds, matches the session TTL

type AuthHandler struct {
	authService  service.AuthService
	isProduction bool
}

func NewAuthHandler(authService service.AuthService, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		isProduction: isProduction,
	}
}

// LoginPage renders the login form with any pending flash messages.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Messages": flash.Take(c),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.PostForm("email")
	password := c.PostForm("password")

	user, session, err := h.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			flash.Add(c, flash.KindError, "Invalid email or password")
			c.Redirect(http.StatusFound, "/")
			return
		}
		slog.ErrorContext(ctx, "login failed", "error", err)
		flash.Add(c, flash.KindError, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	token, err := h.authService.IssueToken(session)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue session token", "error", err, "user_id", user.ID)
		flash.Add(c, flash.KindError, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	middleware.SetSessionCookie(c, token, sessionMaxAge, h.isProduction)
	c.Redirect(http.StatusFound, "/manager_dashboard")
}

// Logout destroys the current session and clears the cookie. Safe to call
// without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if token, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(ctx, token); err != nil {
			slog.WarnContext(ctx, "failed to delete session", "error", err)
		}
	}

	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

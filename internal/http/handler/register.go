package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"orgdesk.app/server/internal/http/flash"
	"orgdesk.app/server/internal/service"
)

type RegisterHandler struct {
	registration service.RegistrationService
}

func NewRegisterHandler(registration service.RegistrationService) *RegisterHandler {
	return &RegisterHandler{registration: registration}
}

func (h *RegisterHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Messages": flash.Take(c),
	})
}

// Register creates a new account. Validation reports one error at a time;
// the first failed check wins.
func (h *RegisterHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	input := service.RegisterInput{
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
	}

	if _, err := h.registration.Register(ctx, input); err != nil {
		flash.Add(c, flash.KindError, registrationMessage(err))
		if !isValidationError(err) {
			slog.ErrorContext(ctx, "registration failed", "error", err)
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Add(c, flash.KindSuccess, "Registration successful! You can log in now.")
	c.Redirect(http.StatusFound, "/")
}

func registrationMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return "Please fill out all fields."
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, service.ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(err, service.ErrEmailTaken):
		return "Email is already registered."
	default:
		return "Something went wrong. Please try again."
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrMissingFields) ||
		errors.Is(err, service.ErrPasswordMismatch) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrEmailTaken)
}

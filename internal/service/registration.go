package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"orgdesk.app/server/common/id"
	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/store"
)

var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmailTaken       = errors.New("email is already registered")
)

// bcryptCost matches the hashes already in production so existing
// credentials keep verifying.
const bcryptCost = 10

// emailPattern requires exactly one @ with a dot somewhere after it and no
// whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type RegistrationService interface {
	// Register validates the input and creates a user with no organization.
	// Checks run in order and the first failure wins.
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
}

type registrationService struct {
	userStore store.UserStore
}

func NewRegistrationService(userStore store.UserStore) RegistrationService {
	return &registrationService{userStore: userStore}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := normalizeEmail(input.Email)

	// Passwords are trimmed for the emptiness check only; the raw value is
	// what gets hashed.
	if firstName == "" || lastName == "" || email == "" ||
		strings.TrimSpace(input.Password) == "" || strings.TrimSpace(input.ConfirmPassword) == "" {
		return nil, ErrMissingFields
	}

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	// Early exit; the unique index on users.email is the real guarantee.
	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           id.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		slog.ErrorContext(ctx, "failed to create user",
			"error", err,
			"email", email,
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

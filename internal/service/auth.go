package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"orgdesk.app/server/common/id"
	"orgdesk.app/server/internal/model"
	"orgdesk.app/server/internal/store"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid session token")
)

const sessionTTL = 7 * 24 * time.Hour

type AuthService interface {
	// Login verifies the credentials and opens a session for the user.
	Login(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	// IssueToken signs a cookie-sized token carrying only the session ID.
	// The user record is rehydrated from the store on every request.
	IssueToken(session *model.Session) (string, error)
	// ValidateSession resolves a token back to a live user record.
	ValidateSession(ctx context.Context, token string) (*model.User, error)
	// Logout destroys the session named by the token. Unknown or mangled
	// tokens are ignored; logout is idempotent.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	secret       []byte
}

func NewAuthService(userStore store.UserStore, sessionStore store.SessionStore, secret []byte) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		secret:       secret,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	user, err := s.userStore.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID,
		)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"session_id", session.ID,
	)

	return user, session, nil
}

func (s *authService) IssueToken(session *model.Session) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(session.ID, 10),
		"exp": session.ExpiresAt.Unix(),
		"iat": now.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	slog.InfoContext(ctx, "session destroyed", "session_id", sessionID)
	return nil
}

func (s *authService) parseToken(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	sessionID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || sessionID == 0 {
		return 0, ErrInvalidToken
	}

	return sessionID, nil
}

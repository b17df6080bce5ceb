package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"reddybook/config"
	"reddybook/internal/auth"
	"reddybook/internal/models"
	"reddybook/internal/repository"
	"reddybook/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

var (
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidCreds     = errors.New("invalid email or password")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrNoSession        = errors.New("no active session")
)

// Session is a signed-in identity together with its bearer token.
type Session struct {
	ID        string           `json:"-"`
	Token     string           `json:"access_token,omitempty"`
	ExpiresAt time.Time        `json:"expires_at"`
	Identity  *models.Identity `json:"user"`
}

// IdentityProvider registers and authenticates back-office users.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, redirectTo string) (*models.Identity, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, token string) (*Session, error)
}

type IdentityService struct {
	cfg      *config.JWTConfig
	repo     *repository.IdentityRepository
	sessions session.Store
	mailer   Mailer
	logger   *zap.Logger
	now      func() time.Time
}

func NewIdentityService(cfg *config.JWTConfig, repo *repository.IdentityRepository, sessions session.Store, mailer Mailer, logger *zap.Logger) *IdentityService {
	return &IdentityService{cfg: cfg, repo: repo, sessions: sessions, mailer: mailer, logger: logger, now: time.Now}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (s *IdentityService) SignUp(ctx context.Context, email, password, redirectTo string) (*models.Identity, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	_, err = s.repo.GetByEmail(email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		RedirectTo:   redirectTo,
	}
	if err := s.repo.Create(identity); err != nil {
		return nil, err
	}
	if err := s.mailer.SendWelcome(email, redirectTo); err != nil {
		s.logger.Warn("welcome mail not sent", zap.String("email", email), zap.Error(err))
	}
	return identity, nil
}

func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	identity, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCreds
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCreds
	}

	now := s.now()
	token, sid, expiresAt, err := auth.GenerateAccessToken(s.cfg, identity.ID, identity.Email, now)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, &session.Session{
		ID:         sid,
		IdentityID: identity.ID,
		Email:      identity.Email,
		ExpiresAt:  expiresAt,
	}); err != nil {
		return nil, err
	}
	if err := s.repo.TouchSignIn(identity.ID, now); err != nil {
		s.logger.Warn("failed to record sign-in time", zap.String("identity_id", identity.ID), zap.Error(err))
	}
	identity.LastSignInAt = &now
	return &Session{ID: sid, Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

func (s *IdentityService) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// GetSession resolves a bearer token. A token whose server-side session was
// removed by sign-out is rejected even before it expires.
func (s *IdentityService) GetSession(ctx context.Context, token string) (*Session, error) {
	claims, err := auth.ParseAccessToken(s.cfg, token)
	if err != nil {
		return nil, ErrNoSession
	}
	sess, err := s.sessions.Get(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if sess.IdentityID != claims.IdentityID {
		return nil, ErrNoSession
	}
	identity, err := s.repo.GetByID(claims.IdentityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &Session{ID: sess.ID, ExpiresAt: sess.ExpiresAt, Identity: identity}, nil
}

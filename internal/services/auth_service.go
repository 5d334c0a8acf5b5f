package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/mely/internal/auth"
	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/repository"
	"github.com/example/mely/internal/utils"
	"github.com/example/mely/pkg/logger"
)

const minPasswordLength = 8

// AuthService issues, verifies and revokes admin sessions.
type AuthService struct {
	admins repository.AdminRepository
	secret string
	ttl    time.Duration
	now    func() time.Time
	log    logger.Logger
}

// NewAuthService constructs AuthService.
func NewAuthService(admins repository.AdminRepository, secret string, ttl time.Duration, log logger.Logger) *AuthService {
	return &AuthService{admins: admins, secret: secret, ttl: ttl, now: time.Now, log: log}
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	Token   string        `json:"token"`
	Session auth.Session  `json:"-"`
	Admin   *models.Admin `json:"admin"`
}

// Login checks credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if !utils.CheckPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	session := models.AdminSession{
		BaseModel: models.BaseModel{ID: uuid.New()},
		AdminID:   admin.ID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.admins.CreateSession(ctx, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := utils.GenerateToken(s.secret, admin.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.WithContext(ctx).Info("admin logged in",
		logger.Any("admin_id", admin.ID),
		logger.Any("session_id", session.ID),
	)

	return &LoginResult{
		Token: token,
		Session: auth.Session{
			ID:        session.ID,
			AdminID:   admin.ID,
			Email:     admin.Email,
			ExpiresAt: session.ExpiresAt,
		},
		Admin: admin,
	}, nil
}

// Authenticate turns a bearer token into a live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (auth.Session, error) {
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return auth.Session{}, ErrUnauthorized
	}

	session, err := s.admins.FindSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.Session{}, ErrUnauthorized
		}
		return auth.Session{}, fmt.Errorf("load session: %w", err)
	}

	if session.AdminID != claims.AdminID || !session.Active(s.now()) {
		return auth.Session{}, ErrUnauthorized
	}

	out := auth.Session{
		ID:        session.ID,
		AdminID:   session.AdminID,
		ExpiresAt: session.ExpiresAt,
	}
	if session.Admin != nil {
		out.Email = session.Admin.Email
	}
	return out, nil
}

// Logout revokes the session in ctx.
func (s *AuthService) Logout(ctx context.Context) error {
	session, err := auth.Require(ctx)
	if err != nil {
		return err
	}

	if err := s.admins.RevokeSession(ctx, session.ID, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.WithContext(ctx).Info("admin logged out", logger.Any("session_id", session.ID))
	return nil
}

// CreateAdmin registers a back-office account.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, displayName string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", ErrInvalidAdmin)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidAdmin, minPasswordLength)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if displayName == "" {
		displayName = email
	}

	admin := models.Admin{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, &admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return &admin, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/auth"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("too many failed attempts")
)

// LockoutError — вход временно заблокирован; Remaining — сколько ждать.
type LockoutError struct {
	Remaining time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("%v: retry in %s", ErrRateLimited, e.Remaining.Round(time.Second))
}

func (e *LockoutError) Unwrap() error { return ErrRateLimited }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var _ ports.AuthService = (*AuthService)(nil)

// AuthService — вход администратора: лимит попыток, bcrypt, выпуск JWT.
type AuthService struct {
	users   ports.AdminUserRepository
	tokens  *auth.TokenManager
	limiter *auth.AttemptLimiter
	log     ports.Logger
	now     func() time.Time
}

// NewAuthService — DI-конструктор.
func NewAuthService(
	users ports.AdminUserRepository,
	tokens *auth.TokenManager,
	limiter *auth.AttemptLimiter,
	log ports.Logger,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, log: log, now: time.Now}
}

// Login — проверка учётных данных. Неизвестный email и неверный пароль неразличимы снаружи
// и оба засчитываются как неудачная попытка.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if remaining, ok := s.limiter.Check(email); !ok {
		metrics.AuthAttempts.WithLabelValues("locked").Inc()
		s.log.Warnf(ctx, "admin login locked email=%s remaining=%s", email, remaining)
		return nil, &LockoutError{Remaining: remaining}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.Errorf(ctx, "admin lookup failed email=%s err=%v", email, err)
		return nil, err
	}
	if user == nil || !user.IsActive || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.limiter.RecordFailure(email)
		metrics.AuthAttempts.WithLabelValues("invalid").Inc()
		s.log.Warnf(ctx, "admin login failed email=%s", email)
		return nil, ErrInvalidCredentials
	}

	s.limiter.Reset(email)
	if err := s.users.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		s.log.Warnf(ctx, "update last_login failed id=%s err=%v", user.ID, err)
	}

	session := domain.AdminSession{ID: user.ID, Email: user.Email, Name: user.FullName, Role: user.Role, IsAdmin: true}
	token, _, err := s.tokens.Issue(session)
	if err != nil {
		s.log.Errorf(ctx, "token issue failed id=%s err=%v", user.ID, err)
		return nil, err
	}

	metrics.AuthAttempts.WithLabelValues("ok").Inc()
	s.log.Infof(ctx, "admin login ok email=%s", email)
	return &domain.LoginResult{Token: token, User: session, ExpiresIn: formatTTL(s.tokens.TTL())}, nil
}

// Verify — проверка токена (auth.ErrTokenInvalid / auth.ErrTokenExpired).
func (s *AuthService) Verify(_ context.Context, token string) (*domain.AdminSession, error) {
	return s.tokens.Verify(token)
}

// formatTTL — "24h" вместо "24h0m0s".
func formatTTL(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d/time.Hour))
	}
	if d%time.Minute == 0 {
		return fmt.Sprintf("%dm", int(d/time.Minute))
	}
	return d.String()
}

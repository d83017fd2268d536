// Пакет auth — токены администратора (JWT HS256) и ограничение попыток входа.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// DefaultTokenTTL — срок жизни токена администратора.
const DefaultTokenTTL = 24 * time.Hour

// Claims — полезная нагрузка токена.
type Claims struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenManager — выпуск и проверка токенов.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption — настройка TokenManager.
type TokenOption func(*TokenManager)

// WithTokenClock — источник времени (для тестов).
func WithTokenClock(now func() time.Time) TokenOption {
	return func(m *TokenManager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewTokenManager(secret string, ttl time.Duration, opts ...TokenOption) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	m := &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// TTL — срок жизни выпускаемых токенов.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue — подписывает токен для администратора; возвращает токен и момент истечения.
func (m *TokenManager) Issue(user domain.AdminSession) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	claims := Claims{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, exp, nil
}

// Verify — проверяет подпись, срок и признак администратора.
func (m *TokenManager) Verify(token string) (*domain.AdminSession, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	case !claims.IsAdmin:
		return nil, ErrTokenInvalid
	}

	return &domain.AdminSession{
		ID:      claims.ID,
		Email:   claims.Email,
		Name:    claims.Name,
		Role:    claims.Role,
		IsAdmin: claims.IsAdmin,
	}, nil
}

package auth_test

import (
	"testing"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/auth"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var admin = domain.AdminSession{ID: "u1", Email: "admin@shop.ru", Name: "Админ", Role: "admin"}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m, err := auth.NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	tok, exp, err := m.Issue(admin)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "admin@shop.ru", got.Email)
	require.True(t, got.IsAdmin)
}

func TestVerify_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }
	m, err := auth.NewTokenManager("secret", time.Hour, auth.WithTokenClock(clock))
	require.NoError(t, err)

	tok, _, err := m.Issue(admin)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = m.Verify(tok)
	require.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestVerify_Invalid(t *testing.T) {
	m, err := auth.NewTokenManager("secret", time.Hour)
	require.NoError(t, err)
	other, err := auth.NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, _, err := other.Issue(admin)
	require.NoError(t, err)

	// подписан правильным ключом, но без признака администратора
	notAdmin, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		ID: "u2",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{ID: "u3", IsAdmin: true}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"empty":       "",
		"garbage":     "not.a.jwt",
		"foreign key": foreign,
		"not admin":   notAdmin,
		"no exp":      noExp,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tok)
			require.ErrorIs(t, err, auth.ErrTokenInvalid)
		})
	}
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := auth.NewTokenManager("", time.Hour)
	require.Error(t, err)
}

// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkprod/portfolio-api/internal/config"
	"github.com/tkprod/portfolio-api/internal/core"
)

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(config.JWTConfig{
		Secret: secret,
		Issuer: "portfolio-api",
	})
	require.NoError(t, err)
	return svc
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService(config.JWTConfig{Secret: "  "})
	assert.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestNewTokenServiceDefaultsToThirtyDays(t *testing.T) {
	svc := newTestTokenService(t, "secret")
	assert.Equal(t, 30*24*time.Hour, svc.ExpiresIn())
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "secret")

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)

	parsed, err := jwt.ParseInsecure([]byte(token))
	require.NoError(t, err)
	exp, ok := parsed.Expiration()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, time.Minute)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, err := newTestTokenService(t, "other-secret").Issue("user-42")
	require.NoError(t, err)

	_, err = newTestTokenService(t, "secret").Verify(token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	svc := newTestTokenService(t, "secret")

	for _, token := range []string{"", "abc", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, core.ErrTokenInvalid, token)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := newTestTokenService(t, "secret")

	past := time.Now().Add(-time.Hour)
	token, err := jwt.NewBuilder().
		Issuer("portfolio-api").
		Subject("user-42").
		IssuedAt(past.Add(-time.Hour)).
		Expiration(past).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), []byte("secret")))
	require.NoError(t, err)

	_, err = svc.Verify(string(signed))
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, core.ErrTokenExpired) || errors.Is(err, core.ErrTokenInvalid),
		"unexpected error: %v", err,
	)
}

// AngelaMos | 2026
// jwt.go

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/tkprod/portfolio-api/internal/config"
	"github.com/tkprod/portfolio-api/internal/core"
)

var ErrMissingSigningKey = errors.New("jwt signing secret is not configured")

// TokenService issues and verifies HS256 bearer tokens carrying the user
// id as subject. There is no revocation list: a token is valid until it
// expires.
type TokenService struct {
	secret []byte
	expire time.Duration
	issuer string
}

func NewTokenService(cfg config.JWTConfig) (*TokenService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrMissingSigningKey
	}

	expire := cfg.Expire
	if expire <= 0 {
		expire = 30 * 24 * time.Hour
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		expire: expire,
		issuer: cfg.Issuer,
	}, nil
}

func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(s.issuer).
		Subject(subjectID).
		IssuedAt(now).
		Expiration(now.Add(s.expire)).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// Verify returns the subject of a well-formed, correctly signed and
// unexpired token.
func (s *TokenService) Verify(tokenString string) (string, error) {
	opts := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256(), s.secret),
		jwt.WithValidate(true),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse([]byte(tokenString), opts...)
	if err != nil {
		if isTokenExpiredError(err) {
			return "", fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return "", fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return "", fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	return subject, nil
}

func (s *TokenService) ExpiresIn() time.Duration {
	return s.expire
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

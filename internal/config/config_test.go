// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Database:  DatabaseConfig{URL: "postgres://localhost/portfolio"},
		Redis:     RedisConfig{URL: "redis://localhost:6379/0"},
		JWT:       JWTConfig{Secret: "secret", Expire: 720 * time.Hour},
		RateLimit: RateLimitConfig{Requests: 100, Window: 15 * time.Minute},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(validConfig()))

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing signing secret", func(c *Config) { c.JWT.Secret = "  " }, "JWT_SECRET"},
		{"missing database", func(c *Config) { c.Database.URL = "" }, "DATABASE_URL"},
		{"missing redis", func(c *Config) { c.Redis.URL = "" }, "REDIS_URL"},
		{"smtp without user", func(c *Config) { c.SMTP.Host = "smtp.example.com" }, "SMTP_USER"},
		{"zero rate window", func(c *Config) { c.RateLimit.Window = 0 }, "rate_limit"},
		{
			"wildcard with credentials",
			func(c *Config) {
				c.CORS.AllowCredentials = true
				c.CORS.AllowedOrigins = []string{"*"}
			},
			"CORS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnvValue(t *testing.T) {
	key, val := envValue("JWT_SECRET", "s3cret")
	assert.Equal(t, "jwt.secret", key)
	assert.Equal(t, "s3cret", val)

	key, val = envValue("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com,")
	assert.Equal(t, "cors.allowed_origins", key)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, val)

	key, val = envValue("TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.10")
	assert.Equal(t, "server.trusted_proxies", key)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, val)

	key, _ = envValue("UNRELATED", "x")
	assert.Empty(t, key)
}

// AngelaMos | 2026
// realip_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProxies(t *testing.T) {
	prefixes, err := ParseProxies([]string{"10.0.0.0/8", " 192.0.2.10 ", "", "::1"})
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	assert.Equal(t, "10.0.0.0/8", prefixes[0].String())
	assert.Equal(t, "192.0.2.10/32", prefixes[1].String())
	assert.Equal(t, "::1/128", prefixes[2].String())

	_, err = ParseProxies([]string{"not-an-ip"})
	require.Error(t, err)

	_, err = ParseProxies([]string{"10.0.0.0/99"})
	require.Error(t, err)
}

func TestTrustedRealIP(t *testing.T) {
	proxies, err := ParseProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	var seen string
	h := TrustedRealIP(proxies)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ClientIP(r)
	}))

	tests := []struct {
		name   string
		remote string
		header string
		want   string
	}{
		{"trusted proxy forwards client", "10.0.0.5:443", "198.51.100.7", "198.51.100.7"},
		{"untrusted peer keeps socket address", "192.0.2.1:4321", "198.51.100.7", "192.0.2.1"},
		{"trusted proxy without header", "10.0.0.5:443", "", "10.0.0.5"},
		{"garbage header ignored", "10.0.0.5:443", "nonsense", "10.0.0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.header != "" {
				req.Header.Set("X-Real-IP", tt.header)
			}

			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestTrustedRealIPWithoutProxies(t *testing.T) {
	var seen string
	h := TrustedRealIP(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ClientIP(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.1")
	req.Header.Set("True-Client-IP", "203.0.113.2")

	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "192.0.2.1", seen)
}

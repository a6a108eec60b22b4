package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))
}

func TestRateLimiterJanela(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("a"))
}

func TestRateLimitMiddlewarePorIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	h := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/api/leads/submit", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// outro usuário autenticado no mesmo IP tem a própria cota
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ComUsuario(req.Context(), 9, false)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitAposAutenticacaoContaPorUsuario(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	tokens := NewTokenService("segredo-de-teste")
	h := MiddlewareAutenticacao(tokens)(RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	chamar := func(userID uint) int {
		tok, err := tokens.GerarToken(userID, false)
		if !assert.NoError(t, err) {
			return 0
		}
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, chamar(1))
	assert.Equal(t, http.StatusTooManyRequests, chamar(1))
	// mesmo IP, outro usuário
	assert.Equal(t, http.StatusOK, chamar(2))
	assert.True(t, rl.Allow("ip:10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:5555"
	assert.Equal(t, "192.168.1.5", ClientIP(req))
}

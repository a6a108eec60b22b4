package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KromaEnergia/api-arremate/internal/utils/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novaSessao(t *testing.T) *Sessoes {
	t.Helper()
	database, err := db.OpenMemory(&RefreshToken{})
	require.NoError(t, err)
	return NewSessoes(database, NewTokenService("segredo-de-teste"), false)
}

func cookieRT(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == RefreshCookie {
			return c
		}
	}
	t.Fatal("cookie de refresh ausente")
	return nil
}

func TestRefreshRotaciona(t *testing.T) {
	s := novaSessao(t)

	rec := httptest.NewRecorder()
	resp, err := s.IniciarSessao(rec, 5, true)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	primeiro := cookieRT(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(primeiro)
	rec = httptest.NewRecorder()
	s.Refresh(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	segundo := cookieRT(t, rec)
	assert.NotEqual(t, primeiro.Value, segundo.Value)

	// reuso do primeiro revoga a família
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(primeiro)
	rec = httptest.NewRecorder()
	s.Refresh(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(segundo)
	rec = httptest.NewRecorder()
	s.Refresh(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevoga(t *testing.T) {
	s := novaSessao(t)
	rec := httptest.NewRecorder()
	_, err := s.IniciarSessao(rec, 5, false)
	require.NoError(t, err)
	c := cookieRT(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	s.Logout(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	s.Refresh(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshSemCookie(t *testing.T) {
	s := novaSessao(t)
	rec := httptest.NewRecorder()
	s.Refresh(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	s := NewTokenService("segredo-de-teste")
	tok, err := s.GerarToken(42, true)
	require.NoError(t, err)

	claims, err := s.ValidarToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidarTokenRecusa(t *testing.T) {
	s := NewTokenService("segredo-de-teste")
	tok, err := s.GerarToken(1, false)
	require.NoError(t, err)

	_, err = NewTokenService("outro-segredo").ValidarToken(tok)
	assert.Error(t, err)

	expirado := NewTokenService("segredo-de-teste")
	expirado.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tokVelho, err := expirado.GerarToken(1, false)
	require.NoError(t, err)
	_, err = s.ValidarToken(tokVelho)
	assert.Error(t, err)

	semAssinatura, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ValidarToken(semAssinatura)
	assert.Error(t, err)
}

func TestMiddlewareAutenticacao(t *testing.T) {
	s := NewTokenService("segredo-de-teste")
	var visto uint
	var admin bool
	h := MiddlewareAutenticacao(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto, _ = UsuarioID(r.Context())
		admin = IsAdmin(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clientes", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", "Bearer lixo")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok, _ := s.GerarToken(7, false)
	req = httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), visto)
	assert.False(t, admin)
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/convites", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ComUsuario(req.Context(), 3, false)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ComUsuario(req.Context(), 3, true)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

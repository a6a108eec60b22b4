package usuario

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/utils"
	"github.com/KromaEnergia/api-arremate/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoHandler(t *testing.T) *Handler {
	t.Helper()
	database, err := db.OpenMemory(&Usuario{}, &auth.RefreshToken{})
	require.NoError(t, err)
	sessoes := auth.NewSessoes(database, auth.NewTokenService("segredo-de-teste"), false)
	return NewHandler(database, NewRepository(), sessoes)
}

func criarUsuario(t *testing.T, h *Handler, email, senha string) *Usuario {
	t.Helper()
	hash, err := utils.HashSenha(senha)
	require.NoError(t, err)
	u := &Usuario{Username: "Ana", Email: email, Senha: hash}
	require.NoError(t, h.Repository.Salvar(h.DB, u))
	return u
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestLogin(t *testing.T) {
	h := novoHandler(t)
	criarUsuario(t, h, "ana@exemplo.com", "senha-forte-1")

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		jsonBody(t, LoginRequest{Email: "ANA@exemplo.com ", Senha: "senha-forte-1"}))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ana@exemplo.com", resp.Usuario.Email)
	assert.NotContains(t, rec.Body.String(), "senha-forte-1")

	var temCookie bool
	for _, c := range rec.Result().Cookies() {
		temCookie = temCookie || c.Name == auth.RefreshCookie
	}
	assert.True(t, temCookie)
}

func TestLoginRecusa(t *testing.T) {
	h := novoHandler(t)
	criarUsuario(t, h, "ana@exemplo.com", "senha-forte-1")

	casos := []struct {
		nome   string
		body   LoginRequest
		status int
	}{
		{"senha errada", LoginRequest{Email: "ana@exemplo.com", Senha: "x"}, http.StatusUnauthorized},
		{"usuário inexistente", LoginRequest{Email: "bia@exemplo.com", Senha: "x"}, http.StatusUnauthorized},
		{"sem senha", LoginRequest{Email: "ana@exemplo.com"}, http.StatusBadRequest},
		{"email inválido", LoginRequest{Email: "ana", Senha: "x"}, http.StatusBadRequest},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, c.body)))
			assert.Equal(t, c.status, rec.Code)
		})
	}
}

func TestMeEAtualizarPerfil(t *testing.T) {
	h := novoHandler(t)
	u := criarUsuario(t, h, "ana@exemplo.com", "senha-forte-1")
	ctx := auth.ComUsuario(context.Background(), u.ID, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/me",
		jsonBody(t, AtualizarPerfilRequest{Username: " Ana Souza ", Telefone: "11999990000"})).WithContext(ctx)
	h.AtualizarPerfil(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil).WithContext(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	var me Usuario
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&me))
	assert.Equal(t, "Ana Souza", me.Username)
	assert.Equal(t, "11999990000", me.Telefone)
}

func TestAlterarSenha(t *testing.T) {
	h := novoHandler(t)
	u := criarUsuario(t, h, "ana@exemplo.com", "senha-forte-1")
	ctx := auth.ComUsuario(context.Background(), u.ID, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/me/senha",
		jsonBody(t, AlterarSenhaRequest{SenhaAtual: "errada", NovaSenha: "nova-senha-123"})).WithContext(ctx)
	h.AlterarSenha(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/me/senha",
		jsonBody(t, AlterarSenhaRequest{SenhaAtual: "senha-forte-1", NovaSenha: "curta"})).WithContext(ctx)
	h.AlterarSenha(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/me/senha",
		jsonBody(t, AlterarSenhaRequest{SenhaAtual: "senha-forte-1", NovaSenha: "nova-senha-123"})).WithContext(ctx)
	h.AlterarSenha(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	salvo, err := h.Repository.BuscarPorID(h.DB, u.ID)
	require.NoError(t, err)
	assert.True(t, utils.VerificarSenha(salvo.Senha, "nova-senha-123"))
}

func TestRedefinirSenhaAdmin(t *testing.T) {
	h := novoHandler(t)
	u := criarUsuario(t, h, "ana@exemplo.com", "senha-forte-1")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/usuarios/1/redefinir-senha", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	h.RedefinirSenha(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SenhaTemporariaResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.SenhaTemporaria, 12)

	salvo, err := h.Repository.BuscarPorID(h.DB, u.ID)
	require.NoError(t, err)
	assert.True(t, salvo.PrecisaRedefinirSenha)
	assert.True(t, utils.VerificarSenha(salvo.Senha, resp.SenhaTemporaria))

	req = mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": "99"})
	rec = httptest.NewRecorder()
	h.RedefinirSenha(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGarantirAdmin(t *testing.T) {
	h := novoHandler(t)
	var saida bytes.Buffer

	require.NoError(t, GarantirAdmin(h.DB, h.Repository, AdminInicial{}))
	require.NoError(t, GarantirAdmin(h.DB, h.Repository, AdminInicial{Email: "Admin@Exemplo.com", Saida: &saida}))

	admin, err := h.Repository.BuscarPorEmail(h.DB, "admin@exemplo.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.PrecisaRedefinirSenha)

	// a senha gerada sai uma única vez e confere com o hash gravado
	linha := strings.TrimSpace(saida.String())
	require.Contains(t, linha, "admin@exemplo.com: ")
	senha := linha[strings.LastIndex(linha, " ")+1:]
	assert.True(t, utils.VerificarSenha(admin.Senha, senha))

	// segunda chamada não duplica nem imprime de novo
	saida.Reset()
	require.NoError(t, GarantirAdmin(h.DB, h.Repository, AdminInicial{Email: "admin@exemplo.com", Senha: "outra", Saida: &saida}))
	todos, err := h.Repository.ListarTodos(h.DB)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
	assert.Empty(t, saida.String())
}

func TestGarantirAdminComSenha(t *testing.T) {
	h := novoHandler(t)
	var saida bytes.Buffer
	require.NoError(t, GarantirAdmin(h.DB, h.Repository, AdminInicial{Email: "root@exemplo.com", Senha: "senha-do-env", ExigirSenha: true, Saida: &saida}))

	admin, err := h.Repository.BuscarPorEmail(h.DB, "root@exemplo.com")
	require.NoError(t, err)
	assert.False(t, admin.PrecisaRedefinirSenha)
	assert.True(t, utils.VerificarSenha(admin.Senha, "senha-do-env"))
	assert.Empty(t, saida.String())
}

func TestGarantirAdminExigeSenha(t *testing.T) {
	h := novoHandler(t)
	err := GarantirAdmin(h.DB, h.Repository, AdminInicial{Email: "root@exemplo.com", ExigirSenha: true})
	assert.ErrorIs(t, err, ErrSenhaAdminObrigatoria)

	_, err = h.Repository.BuscarPorEmail(h.DB, "root@exemplo.com")
	assert.Error(t, err)
}

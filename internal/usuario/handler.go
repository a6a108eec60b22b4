package usuario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Sessoes    *auth.Sessoes
}

func NewHandler(db *gorm.DB, repo Repository, sessoes *auth.Sessoes) *Handler {
	return &Handler{DB: db, Repository: repo, Sessoes: sessoes}
}

// Login valida as credenciais, emite o access token e grava o cookie de refresh.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}

	u, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil || !utils.VerificarSenha(u.Senha, req.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	tok, err := h.Sessoes.IniciarSessao(w, u.ID, u.IsAdmin)
	if err != nil {
		logger.Error().Err(err).Uint("user_id", u.ID).Msg("Falha ao iniciar sessão")
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	pkg.ResponderJSON(w, http.StatusOK, LoginResponse{
		AccessToken:           tok.AccessToken,
		TokenType:             tok.TokenType,
		ExpiresIn:             tok.ExpiresIn,
		PrecisaRedefinirSenha: u.PrecisaRedefinirSenha,
		Usuario:               *u,
	})
}

// GET /api/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.UsuarioID(r.Context())
	u, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, u)
}

// PUT /api/me
func (h *Handler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.UsuarioID(r.Context())

	var req AtualizarPerfilRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	u, err := h.Repository.AtualizarPerfil(h.DB, id, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao atualizar perfil", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, u)
}

// PUT /api/me/senha. Troca a senha e derruba as outras sessões.
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.UsuarioID(r.Context())

	var req AlterarSenhaRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	if !utils.VerificarSenha(u.Senha, req.SenhaAtual) {
		http.Error(w, "Senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.AtualizarSenha(h.DB, id, hash, false); err != nil {
		http.Error(w, "Erro ao alterar senha", http.StatusInternalServerError)
		return
	}
	if err := h.Sessoes.RevogarUsuario(id); err != nil {
		logger.Warn().Err(err).Uint("user_id", id).Msg("Falha ao revogar sessões")
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/admin/usuarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarios)
}

// POST /api/admin/usuarios/{id}/redefinir-senha
func (h *Handler) RedefinirSenha(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	senha, err := utils.GerarSenhaTemporaria(12)
	if err != nil {
		http.Error(w, "Erro ao gerar senha", http.StatusInternalServerError)
		return
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	err = h.Repository.AtualizarSenha(h.DB, id, hash, true)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao redefinir senha", http.StatusInternalServerError)
		return
	}
	if err := h.Sessoes.RevogarUsuario(id); err != nil {
		logger.Warn().Err(err).Uint("user_id", id).Msg("Falha ao revogar sessões")
	}
	pkg.ResponderJSON(w, http.StatusOK, SenhaTemporariaResponse{SenhaTemporaria: senha})
}

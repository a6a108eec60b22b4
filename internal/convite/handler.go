package convite

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/usuario"
	"github.com/KromaEnergia/api-arremate/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errConviteInvalido = errors.New("convite inválido")
	errEmailEmUso      = errors.New("email em uso")
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Usuarios   usuario.Repository
	now        func() time.Time
}

func NewHandler(db *gorm.DB, repo Repository, usuarios usuario.Repository) *Handler {
	return &Handler{DB: db, Repository: repo, Usuarios: usuarios, now: time.Now}
}

// POST /api/admin/convites
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarConviteRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	adminID, _ := auth.UsuarioID(r.Context())

	c := Convite{
		Token:     uuid.NewString(),
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
		CriadoPor: adminID,
		ExpiraEm:  h.now().Add(Validade),
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao criar convite", http.StatusInternalServerError)
		return
	}
	logger.Info().Uint("admin_id", adminID).Str("email", c.Email).Msg("Convite criado")
	pkg.ResponderJSON(w, http.StatusCreated, c)
}

// GET /api/admin/convites
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	convites, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar convites", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(convites)
}

// POST /api/convites/aceitar. Cria o usuário e consome o convite na mesma transação.
func (h *Handler) Aceitar(w http.ResponseWriter, r *http.Request) {
	var req AceitarConviteRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	var novo usuario.Usuario
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		c, err := h.Repository.BuscarPorToken(tx, req.Token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errConviteInvalido
			}
			return err
		}
		agora := h.now()
		if !c.Valido(agora) {
			return errConviteInvalido
		}
		email := req.Email
		if c.Email != "" && c.Email != email {
			return errConviteInvalido
		}
		if _, err := h.Usuarios.BuscarPorEmail(tx, email); err == nil {
			return errEmailEmUso
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		novo = usuario.Usuario{
			Username: req.Username,
			Email:    email,
			Senha:    hash,
			IsAdmin:  c.IsAdmin,
		}
		if err := h.Usuarios.Salvar(tx, &novo); err != nil {
			return err
		}
		if err := h.Repository.MarcarUsado(tx, c.ID, agora); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errConviteInvalido
			}
			return err
		}
		return nil
	})

	switch {
	case errors.Is(err, errConviteInvalido):
		http.Error(w, "Convite inválido ou expirado", http.StatusGone)
		return
	case errors.Is(err, errEmailEmUso):
		http.Error(w, "Email já cadastrado", http.StatusConflict)
		return
	case err != nil:
		logger.Error().Err(err).Msg("Falha ao aceitar convite")
		http.Error(w, "Erro ao aceitar convite", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, novo)
}

package calculosalvo

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/carteira"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/utils"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Carteira   carteira.Repository
	Padroes    viabilidade.Padroes
	now        func() time.Time
}

func NewHandler(db *gorm.DB, repo Repository, cart carteira.Repository, p viabilidade.Padroes) *Handler {
	return &Handler{DB: db, Repository: repo, Carteira: cart, Padroes: p, now: time.Now}
}

func idDaRota(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// POST /api/calculos
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())

	var req SalvarRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		http.Error(w, "O nome do cálculo é obrigatório", http.StatusBadRequest)
		return
	}

	c := CalculoSalvo{UserID: userID, Nome: nome, Cidade: req.Cidade, Dados: req.Dados}
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar o cálculo", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, c)
}

// GET /api/calculos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	calculos, err := h.Repository.Listar(h.DB, userID)
	if err != nil {
		http.Error(w, "Erro ao buscar cálculos", http.StatusInternalServerError)
		return
	}
	if calculos == nil {
		calculos = []CalculoSalvo{}
	}
	pkg.ResponderJSON(w, http.StatusOK, calculos)
}

// GET /api/calculos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	c, err := h.Repository.Buscar(h.DB, userID, id)
	if err != nil {
		http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
		return
	}
	e := viabilidade.EntradaDeFormulario(c.Dados, h.Padroes)
	pkg.ResponderJSON(w, http.StatusOK, CalculoDetalhe{
		CalculoSalvo: *c,
		Entrada:      e,
		Resultado:    viabilidade.CalcularViabilidade(e),
	})
}

// PUT /api/calculos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	var req AtualizarRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	err := h.Repository.AtualizarDados(h.DB, userID, id, req.Dados)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao atualizar cálculo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/calculos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	err := h.Repository.Deletar(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao excluir cálculo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/calculos/{id}/importar. Cria o imóvel e os custos iniciais numa transação.
func (h *Handler) ImportarParaCarteira(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}

	t := h.now()
	hoje := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	var im models.Imovel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		c, err := h.Repository.Buscar(tx, userID, id)
		if err != nil {
			return err
		}
		im = ImovelDoCalculo(*c, h.Padroes, userID, hoje)
		return h.Carteira.CriarImovel(tx, &im)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Uint("calculo_id", id).Msg("Erro ao importar cálculo")
		http.Error(w, "Erro ao importar cálculo", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, im)
}

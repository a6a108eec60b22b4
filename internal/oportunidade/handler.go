package oportunidade

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/calculosalvo"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/utils"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

const (
	tituloPadrao = "Oportunidade sem Título"
	tipoPadrao   = "Indefinido"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Calculos   calculosalvo.Repository
	Padroes    viabilidade.Padroes
}

func NewHandler(db *gorm.DB, repo Repository, calculos calculosalvo.Repository, p viabilidade.Padroes) *Handler {
	return &Handler{DB: db, Repository: repo, Calculos: calculos, Padroes: p}
}

func padrao(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

// GET /api/oportunidades
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repository.Listar(h.DB)
	if err != nil {
		logger.Error().Err(err).Msg("Erro ao carregar oportunidades")
		http.Error(w, "Erro ao carregar oportunidades", http.StatusInternalServerError)
		return
	}
	if lista == nil {
		lista = []OportunidadeListagem{}
	}
	pkg.ResponderJSON(w, http.StatusOK, lista)
}

// POST /api/oportunidades
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())

	var req OportunidadeRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}

	o := Oportunidade{
		UserID:        userID,
		Titulo:        padrao(req.Titulo, tituloPadrao),
		Descricao:     req.Descricao,
		ValorArremate: req.ValorArremate.Float64(),
		ValorVenda:    req.ValorVenda.Float64(),
		LucroEstimado: req.LucroEstimado.Float64(),
		RoiEstimado:   req.RoiEstimado.Float64(),
		Cidade:        req.Cidade,
		Estado:        strings.ToUpper(req.Estado),
		TipoImovel:    padrao(req.TipoImovel, tipoPadrao),
		LinkCaixa:     req.LinkCaixa,
		FotoCapa:      req.FotoCapa,
		Status:        StatusDisponivel,
	}
	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "Erro ao publicar oportunidade", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, o)
}

// DaProjecao monta a oportunidade com lucro e ROI da projeção de 4 meses do cálculo.
func DaProjecao(c calculosalvo.CalculoSalvo, p viabilidade.Padroes) Oportunidade {
	e := viabilidade.EntradaDeFormulario(c.Dados, p)
	proj := viabilidade.CalcularViabilidade(e).Projecao4Meses
	id := c.ID
	return Oportunidade{
		UserID:          c.UserID,
		Titulo:          padrao(c.Nome, tituloPadrao),
		Descricao:       fmt.Sprintf("Imóvel estudado. ROI: %.2f%%", proj.RoiLiquido),
		ValorArremate:   e.ValorArrematado,
		ValorVenda:      e.ValorVendaFinal,
		LucroEstimado:   proj.ResultadoLiquido,
		RoiEstimado:     proj.RoiLiquido,
		Cidade:          c.Cidade,
		TipoImovel:      tipoPadrao,
		CalculoOrigemID: &id,
		Status:          StatusDisponivel,
	}
}

// POST /api/oportunidades/calculo/{id}
func (h *Handler) CriarDoCalculo(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	calcID, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req DoCalculoRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}

	c, err := h.Calculos.Buscar(h.DB, userID, calcID)
	if err != nil {
		http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
		return
	}

	o := DaProjecao(*c, h.Padroes)
	o.Titulo = padrao(req.Titulo, o.Titulo)
	o.Cidade = padrao(req.Cidade, o.Cidade)
	o.Estado = strings.ToUpper(req.Estado)
	o.TipoImovel = padrao(req.TipoImovel, o.TipoImovel)
	o.LinkCaixa = req.LinkCaixa
	o.FotoCapa = req.FotoCapa

	if err := h.Repository.Criar(h.DB, &o); err != nil {
		http.Error(w, "Erro ao salvar oportunidade", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, o)
}

// dono busca a oportunidade e confere se o usuário pode alterá-la.
func (h *Handler) dono(w http.ResponseWriter, r *http.Request) (*Oportunidade, bool) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}
	o, err := h.Repository.Buscar(h.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Oportunidade não encontrada", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "Erro ao buscar oportunidade", http.StatusInternalServerError)
		return nil, false
	}
	userID, _ := auth.UsuarioID(r.Context())
	if o.UserID != userID && !auth.IsAdmin(r.Context()) {
		http.Error(w, "Acesso negado", http.StatusForbidden)
		return nil, false
	}
	return o, true
}

// PUT /api/oportunidades/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	o, ok := h.dono(w, r)
	if !ok {
		return
	}
	var req StatusRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	if err := h.Repository.AtualizarStatus(h.DB, o.ID, req.Status); err != nil {
		http.Error(w, "Erro ao atualizar oportunidade", http.StatusInternalServerError)
		return
	}
	o.Status = req.Status
	pkg.ResponderJSON(w, http.StatusOK, o)
}

// DELETE /api/oportunidades/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	o, ok := h.dono(w, r)
	if !ok {
		return
	}
	if err := h.Repository.Deletar(h.DB, o.ID); err != nil {
		http.Error(w, "Erro ao remover oportunidade", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

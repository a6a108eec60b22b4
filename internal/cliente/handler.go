package cliente

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

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var errImoveisVinculados = errors.New("cliente com imóveis vinculados")

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Carteira   carteira.Repository
	now        func() time.Time
}

func NewHandler(db *gorm.DB, repo Repository, cart carteira.Repository) *Handler {
	return &Handler{DB: db, Repository: repo, Carteira: cart, now: time.Now}
}

func (h *Handler) buscar(w http.ResponseWriter, r *http.Request) (*models.Cliente, bool) {
	assessorID, _ := auth.UsuarioID(r.Context())
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}
	c, err := h.Repository.Buscar(h.DB, assessorID, id)
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return nil, false
	}
	return c, true
}

func (h *Handler) aplicar(c *models.Cliente, req ClienteRequest) error {
	inicio, err := utils.ParseData(req.DataInicio)
	if err != nil {
		return err
	}
	c.Nome = strings.TrimSpace(req.Nome)
	c.CPF = req.CPF
	c.Email = req.Email
	c.Telefone = strings.TrimSpace(req.Telefone)
	c.Status = req.Status
	if c.Status == "" {
		c.Status = models.ClienteAtivo
	}
	if inicio != nil {
		c.DataInicio = *inicio
	} else if c.DataInicio.IsZero() {
		t := h.now()
		c.DataInicio = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	c.Observacoes = req.Observacoes
	return nil
}

// GET /api/clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	assessorID, _ := auth.UsuarioID(r.Context())
	clientes, err := h.Repository.Listar(h.DB, assessorID)
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}

	out := make([]ClienteListagem, 0, len(clientes))
	for _, c := range clientes {
		imoveis, err := h.Carteira.ListarPorCliente(h.DB, c.ID)
		if err != nil {
			http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
			return
		}
		investido, roi := carteira.TotaisListagem(imoveis)
		out = append(out, ClienteListagem{
			Cliente:        c,
			TotalImoveis:   len(imoveis),
			TotalInvestido: investido,
			RoiMedio:       roi,
		})
	}
	pkg.ResponderJSON(w, http.StatusOK, out)
}

// POST /api/clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	assessorID, _ := auth.UsuarioID(r.Context())

	var req ClienteRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	c := models.Cliente{AssessorID: assessorID}
	if err := h.aplicar(&c, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao criar cliente", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, c)
}

// GET /api/clientes/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscar(w, r)
	if !ok {
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, c)
}

// PUT /api/clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscar(w, r)
	if !ok {
		return
	}
	var req ClienteRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	if err := h.aplicar(c, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repository.Salvar(h.DB, c); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, c)
}

// DELETE /api/clientes/{id}. Recusa se houver imóveis e devolve o lead de origem à piscina.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscar(w, r)
	if !ok {
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		n, err := h.Carteira.ContarPorCliente(tx, c.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errImoveisVinculados
		}
		if c.Telefone != "" {
			if err := h.Repository.LiberarLead(tx, c.Telefone, c.AssessorID); err != nil {
				return err
			}
		}
		return h.Repository.Deletar(tx, c.ID)
	})
	if errors.Is(err, errImoveisVinculados) {
		http.Error(w, "Não é possível deletar cliente com imóveis vinculados. Remova os imóveis primeiro.", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error().Err(err).Uint("cliente_id", c.ID).Msg("Falha ao deletar cliente")
		http.Error(w, "Erro ao deletar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type dashboardCliente struct {
	Cliente *models.Cliente        `json:"cliente"`
	KPIs    carteira.ResumoCliente `json:"kpis"`
	Imoveis []models.Imovel        `json:"imoveis"`
}

// GET /api/clientes/{id}/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscar(w, r)
	if !ok {
		return
	}
	imoveis, err := h.Carteira.ListarPorCliente(h.DB, c.ID)
	if err != nil {
		http.Error(w, "Erro ao obter dashboard", http.StatusInternalServerError)
		return
	}
	if imoveis == nil {
		imoveis = []models.Imovel{}
	}
	pkg.ResponderJSON(w, http.StatusOK, dashboardCliente{
		Cliente: c,
		KPIs:    carteira.ResumirCliente(imoveis),
		Imoveis: imoveis,
	})
}

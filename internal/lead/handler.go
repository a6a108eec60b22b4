package lead

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/notificacao"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/usuario"
	"github.com/KromaEnergia/api-arremate/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var errLeadIndisponivel = errors.New("lead indisponível")

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Pontuador   Pontuador
	Notificador *notificacao.Notificador
	// score mínimo para disparar o webhook
	ScoreAlerta int
	now         func() time.Time
}

func NewHandler(db *gorm.DB, repo Repository, p Pontuador, n *notificacao.Notificador, scoreAlerta int) *Handler {
	if p == nil {
		p = PontuadorPadrao{}
	}
	return &Handler{DB: db, Repository: repo, Pontuador: p, Notificador: n, ScoreAlerta: scoreAlerta, now: time.Now}
}

func padrao(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

// POST /api/leads (público)
func (h *Handler) Submeter(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}

	restricao := utils.ParseBool(req.RestricaoNome)
	capital := req.CapitalDisponivel.Float64()
	l := models.Lead{
		Nome:              strings.TrimSpace(req.Nome),
		Whatsapp:          strings.TrimSpace(req.Whatsapp),
		Objetivo:          req.Objetivo,
		Experiencia:       padrao(req.Experiencia, "primeira_vez"),
		RestricaoNome:     restricao,
		CapitalDisponivel: capital,
		PreferenciaPgto:   req.PreferenciaPgto,
		Estado:            strings.ToUpper(req.Estado),
		Cidade:            req.Cidade,
		Interesse:         padrao(req.Interesse, "nao_informado"),
		Status:            models.LeadNovo,
		IPAddress:         auth.ClientIP(r),
		Fingerprint:       req.Fingerprint,
	}
	l.Score = h.Pontuador.Pontuar(Perfil{
		Experiencia:       l.Experiencia,
		CapitalDisponivel: capital,
		PreferenciaPgto:   l.PreferenciaPgto,
		RestricaoNome:     restricao,
	})

	if err := h.Repository.Criar(h.DB, &l); err != nil {
		logger.Error().Err(err).Msg("Erro ao salvar lead")
		http.Error(w, "Erro ao processar perfil", http.StatusInternalServerError)
		return
	}
	logger.Info().Uint("lead_id", l.ID).Int("score", l.Score).Msg("Lead recebido")

	if h.ScoreAlerta > 0 && l.Score >= h.ScoreAlerta {
		h.Notificador.AlertarLead(l)
	}
	pkg.ResponderJSON(w, http.StatusCreated, LeadResponse{ID: l.ID, Score: l.Score})
}

// GET /api/leads/piscina
func (h *Handler) Piscina(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repository.ListarNovos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao carregar leads", http.StatusInternalServerError)
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	pkg.ResponderJSON(w, http.StatusOK, leads)
}

// POST /api/leads/{id}/puxar. O lead vira cliente do assessor na mesma transação.
func (h *Handler) Puxar(w http.ResponseWriter, r *http.Request) {
	assessorID, _ := auth.UsuarioID(r.Context())
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	agora := h.now()
	var cliente models.Cliente
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		l, err := h.Repository.BuscarPorID(tx, id)
		if err != nil {
			return err
		}
		ok, err := h.Repository.MarcarContactado(tx, id, assessorID, agora)
		if err != nil {
			return err
		}
		if !ok {
			return errLeadIndisponivel
		}

		obs := fmt.Sprintf("Lead vindo do funil (Score: %d). Objetivo: %s. Capital: %s",
			l.Score, l.Objetivo, utils.FormatarBRL(l.CapitalDisponivel))
		cliente = models.Cliente{
			AssessorID:  assessorID,
			Nome:        l.Nome,
			Telefone:    l.Whatsapp,
			Status:      models.ClienteAtivo,
			DataInicio:  time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC),
			Observacoes: obs,
		}
		return tx.Create(&cliente).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Lead não encontrado", http.StatusNotFound)
		return
	case errors.Is(err, errLeadIndisponivel):
		http.Error(w, "Lead já assumido por outro assessor", http.StatusConflict)
		return
	case err != nil:
		logger.Error().Err(err).Uint("lead_id", id).Msg("Erro ao puxar lead")
		http.Error(w, "Erro ao processar sua solicitação", http.StatusInternalServerError)
		return
	}

	logger.Info().Uint("assessor_id", assessorID).Uint("lead_id", id).Msg("Lead puxado")
	pkg.ResponderJSON(w, http.StatusCreated, cliente)
}

// GET /api/admin/leads/historico?page=&limit=
func (h *Handler) Historico(w http.ResponseWriter, r *http.Request) {
	pagina, err := h.Repository.Historico(h.DB, pkg.PaginacaoDaQuery(r))
	if err != nil {
		http.Error(w, "Erro ao carregar histórico", http.StatusInternalServerError)
		return
	}

	ids := make([]uint, 0, len(pagina.Data))
	for _, l := range pagina.Data {
		if l.ClaimedBy != nil {
			ids = append(ids, *l.ClaimedBy)
		}
	}
	nomes := map[uint]string{}
	if len(ids) > 0 {
		var assessores []usuario.Usuario
		if err := h.DB.Where("id IN ?", ids).Find(&assessores).Error; err != nil {
			http.Error(w, "Erro ao carregar histórico", http.StatusInternalServerError)
			return
		}
		for _, a := range assessores {
			nomes[a.ID] = a.Username
		}
	}

	itens := make([]LeadHistorico, 0, len(pagina.Data))
	for _, l := range pagina.Data {
		item := LeadHistorico{Lead: l}
		if l.ClaimedBy != nil {
			item.AssessorNome = nomes[*l.ClaimedBy]
		}
		itens = append(itens, item)
	}
	pkg.ResponderJSON(w, http.StatusOK, pkg.PaginatedResponse[LeadHistorico]{
		Data:       itens,
		Page:       pagina.Page,
		Limit:      pagina.Limit,
		Total:      pagina.Total,
		TotalPages: pagina.TotalPages,
	})
}

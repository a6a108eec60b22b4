package carteira

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	now        func() time.Time
}

func NewHandler(db *gorm.DB, repo Repository) *Handler {
	return &Handler{DB: db, Repository: repo, now: time.Now}
}

func hoje(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func idDaRota(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// clienteDoAssessor confere se o cliente informado pertence ao assessor.
func (h *Handler) clienteDoAssessor(userID uint, clienteID *uint) bool {
	if clienteID == nil || *clienteID == 0 {
		return true
	}
	var n int64
	h.DB.Model(&models.Cliente{}).Where("id = ? AND assessor_id = ?", *clienteID, userID).Count(&n)
	return n > 0
}

func aplicar(im *models.Imovel, req ImovelRequest) error {
	data, err := utils.ParseData(req.DataAquisicao)
	if err != nil {
		return err
	}
	im.Descricao = strings.TrimSpace(req.Descricao)
	im.Endereco = req.Endereco
	im.ValorCompra = req.ValorCompra.Float64()
	im.DataAquisicao = data
	im.ValorVendaEstimado = req.ValorVendaEstimado.Float64()
	im.CondominioEstimado = req.CondominioEstimado.Float64()
	im.IptuEstimado = req.IptuEstimado.Float64()
	im.Observacoes = req.Observacoes
	im.Status = req.Status
	if im.Status == "" {
		im.Status = models.StatusArrematado
	}
	if req.ClienteID != nil && *req.ClienteID == 0 {
		im.ClienteID = nil
	} else {
		im.ClienteID = req.ClienteID
	}
	return nil
}

// GET /api/carteira/imoveis
func (h *Handler) ListarImoveis(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	imoveis, err := h.Repository.ListarImoveis(h.DB, userID)
	if err != nil {
		http.Error(w, "Erro ao buscar imóveis", http.StatusInternalServerError)
		return
	}
	resumos, _ := Resumir(imoveis)
	pkg.ResponderJSON(w, http.StatusOK, resumos)
}

// POST /api/carteira/imoveis
func (h *Handler) CriarImovel(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())

	var req ImovelRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	if !h.clienteDoAssessor(userID, req.ClienteID) {
		http.Error(w, "Cliente não encontrado", http.StatusBadRequest)
		return
	}

	im := models.Imovel{UserID: userID}
	if err := aplicar(&im, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	im.LucroEstimado = req.LucroEstimado.Float64()
	im.RoiEstimado = req.RoiEstimado.Float64()
	if im.LucroEstimado == 0 && im.RoiEstimado == 0 {
		est := Estimar(im)
		im.LucroEstimado, im.RoiEstimado = est.ResultadoLiquido, est.RoiLiquido
	}

	if err := h.Repository.CriarImovel(h.DB, &im); err != nil {
		http.Error(w, "Erro ao salvar imóvel", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, im)
}

// GET /api/carteira/imoveis/{id}
func (h *Handler) BuscarImovel(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	im, err := h.Repository.BuscarImovel(h.DB, userID, id)
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}
	resumos, _ := Resumir([]models.Imovel{*im})
	pkg.ResponderJSON(w, http.StatusOK, resumos[0])
}

// PUT /api/carteira/imoveis/{id}. Lucro e ROI são recalculados com os custos já lançados.
func (h *Handler) AtualizarImovel(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}

	var req ImovelRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	if !h.clienteDoAssessor(userID, req.ClienteID) {
		http.Error(w, "Cliente não encontrado", http.StatusBadRequest)
		return
	}

	im, err := h.Repository.BuscarImovel(h.DB, userID, id)
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}
	if err := aplicar(im, req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	est := Estimar(*im)
	im.LucroEstimado, im.RoiEstimado = est.ResultadoLiquido, est.RoiLiquido

	if err := h.Repository.SalvarImovel(h.DB, im); err != nil {
		http.Error(w, "Erro ao salvar alterações", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, im)
}

// DELETE /api/carteira/imoveis/{id}
func (h *Handler) DeletarImovel(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	err := h.Repository.DeletarImovel(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao excluir imóvel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/carteira/imoveis/{id}/custos
func (h *Handler) AdicionarCusto(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}

	var req CustoRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	if _, err := h.Repository.BuscarImovel(h.DB, userID, id); err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}

	data := hoje(h.now())
	if d, err := utils.ParseData(req.DataCusto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if d != nil {
		data = *d
	}

	c := models.Custo{
		ImovelID:  id,
		UserID:    userID,
		TipoCusto: req.TipoCusto,
		Descricao: req.Descricao,
		Valor:     req.Valor.Float64(),
		DataCusto: data,
	}
	if err := h.Repository.AdicionarCusto(h.DB, &c); err != nil {
		http.Error(w, "Erro ao adicionar custo", http.StatusInternalServerError)
		return
	}
	logger.Debug().Uint("imovel_id", id).Str("tipo", c.TipoCusto).Float64("valor", c.Valor).Msg("Custo lançado")
	pkg.ResponderJSON(w, http.StatusCreated, c)
}

// DELETE /api/carteira/custos/{id}
func (h *Handler) DeletarCusto(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	err := h.Repository.DeletarCusto(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Custo não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao excluir custo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CustosMensais monta os lançamentos de condomínio e IPTU do mês de ref.
func CustosMensais(im models.Imovel, ref time.Time) []models.Custo {
	mes := MesAno(ref)
	var custos []models.Custo
	if im.CondominioEstimado > 0 {
		custos = append(custos, models.Custo{
			ImovelID:  im.ID,
			UserID:    im.UserID,
			TipoCusto: models.CustoCondominio,
			Descricao: "Condomínio - " + mes,
			Valor:     im.CondominioEstimado,
			DataCusto: hoje(ref),
		})
	}
	if im.IptuEstimado > 0 {
		custos = append(custos, models.Custo{
			ImovelID:  im.ID,
			UserID:    im.UserID,
			TipoCusto: models.CustoImpostos,
			Descricao: "IPTU - " + mes,
			Valor:     im.IptuEstimado,
			DataCusto: hoje(ref),
		})
	}
	return custos
}

// POST /api/carteira/imoveis/{id}/lancar-mensais
func (h *Handler) LancarMensais(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, ok := idDaRota(w, r)
	if !ok {
		return
	}
	im, err := h.Repository.BuscarImovel(h.DB, userID, id)
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}

	custos := CustosMensais(*im, h.now())
	if len(custos) == 0 {
		http.Error(w, "Nenhum valor estimado configurado para este imóvel", http.StatusBadRequest)
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for i := range custos {
			if err := h.Repository.AdicionarCusto(tx, &custos[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, "Erro ao lançar custos mensais", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusCreated, custos)
}

// GET /api/carteira/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())

	imoveis, err := h.Repository.ListarImoveis(h.DB, userID)
	if err != nil {
		http.Error(w, "Erro ao carregar dashboard", http.StatusInternalServerError)
		return
	}
	todos, err := h.Repository.CustosDoUsuario(h.DB, userID)
	if err != nil {
		http.Error(w, "Erro ao carregar dashboard", http.StatusInternalServerError)
		return
	}
	recentes, err := h.Repository.CustosDesde(h.DB, userID, hoje(h.now()).AddDate(0, -12, 0))
	if err != nil {
		http.Error(w, "Erro ao carregar dashboard", http.StatusInternalServerError)
		return
	}

	_, kpis := Resumir(imoveis)
	pkg.ResponderJSON(w, http.StatusOK, Dashboard{
		KPIs:               kpis,
		DistribuicaoCustos: DistribuirCustos(todos),
		CustosPorMes:       AgruparPorMes(recentes),
	})
}

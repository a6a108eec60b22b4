package arremate

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/carteira"
	"github.com/KromaEnergia/api-arremate/internal/cliente"
	"github.com/KromaEnergia/api-arremate/internal/logger"
	"github.com/KromaEnergia/api-arremate/internal/pkg"
	"github.com/KromaEnergia/api-arremate/internal/usuario"
	"github.com/KromaEnergia/api-arremate/internal/utils"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var errClienteInvalido = errors.New("cliente não pertence ao assessor")

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Carteira   carteira.Repository
	Clientes   cliente.Repository
	Usuarios   usuario.Repository
	Padroes    viabilidade.Padroes
	now        func() time.Time
}

func NewHandler(db *gorm.DB, repo Repository, cart carteira.Repository, clientes cliente.Repository,
	usuarios usuario.Repository, p viabilidade.Padroes) *Handler {
	return &Handler{
		DB:         db,
		Repository: repo,
		Carteira:   cart,
		Clientes:   clientes,
		Usuarios:   usuarios,
		Padroes:    p,
		now:        time.Now,
	}
}

func formatar(arremates []Arremate) []ArremateListagem {
	out := make([]ArremateListagem, 0, len(arremates))
	for _, a := range arremates {
		out = append(out, ArremateListagem{Arremate: a, ValorFormatado: utils.FormatarBRL(a.ValorArremate)})
	}
	return out
}

// POST /api/arremates
// Registra o arremate e coloca o imóvel na carteira com os custos iniciais.
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())

	var req ArremateRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	data, err := utils.ParseData(req.DataArremate)
	if err != nil || data == nil {
		http.Error(w, "A data do arremate é inválida", http.StatusBadRequest)
		return
	}

	a := Arremate{
		UserID:          userID,
		DescricaoImovel: strings.TrimSpace(req.DescricaoImovel),
		Endereco:        strings.TrimSpace(req.Endereco),
		DataArremate:    *data,
		ValorArremate:   req.ValorArremate.Float64(),
		Leiloeiro:       req.Leiloeiro,
		Edital:          req.Edital,
	}
	estudo := Estudar(req.Calculo, a.ValorArremate, h.Padroes)
	if estudo != nil {
		estudo.Fotografar(&a)
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if req.ClienteID != nil {
			if _, err := h.Clientes.Buscar(tx, userID, *req.ClienteID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errClienteInvalido
				}
				return err
			}
		}
		im := ImovelDoArremate(a, estudo, req.ClienteID)
		if err := h.Carteira.CriarImovel(tx, &im); err != nil {
			return err
		}
		a.ImovelID = &im.ID
		return h.Repository.Criar(tx, &a)
	})
	if errors.Is(err, errClienteInvalido) {
		http.Error(w, "Cliente não encontrado", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("Erro ao salvar arremate")
		http.Error(w, "Erro ao salvar o arremate", http.StatusInternalServerError)
		return
	}

	logger.Info().Uint("arremate_id", a.ID).Uint("imovel_id", *a.ImovelID).Msg("Arremate registrado e adicionado à carteira")
	pkg.ResponderJSON(w, http.StatusCreated, ArremateListagem{Arremate: a, ValorFormatado: utils.FormatarBRL(a.ValorArremate)})
}

// GET /api/arremates
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	arremates, err := h.Repository.Listar(h.DB, userID, false)
	if err != nil {
		http.Error(w, "Erro ao carregar o histórico", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, formatar(arremates))
}

// GET /api/arremates/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.Buscar(h.DB, userID, id)
	if err != nil {
		http.Error(w, "Arremate não encontrado", http.StatusNotFound)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, ArremateListagem{Arremate: *a, ValorFormatado: utils.FormatarBRL(a.ValorArremate)})
}

// PUT /api/arremates/{id}
func (h *Handler) Editar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	id, err := utils.ParseID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req EdicaoRequest
	if !pkg.DecodificarEValidar(w, r, &req) {
		return
	}
	data, err := utils.ParseData(req.DataArremate)
	if err != nil || data == nil {
		http.Error(w, "A data do arremate é inválida", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.Buscar(h.DB, userID, id)
	if err != nil {
		http.Error(w, "Arremate não encontrado", http.StatusNotFound)
		return
	}
	a.DescricaoImovel = strings.TrimSpace(req.DescricaoImovel)
	a.Endereco = strings.TrimSpace(req.Endereco)
	a.DataArremate = *data
	a.ValorArremate = req.ValorArremate.Float64()
	a.Leiloeiro = req.Leiloeiro
	a.Edital = req.Edital

	if err := h.Repository.Salvar(h.DB, a); err != nil {
		http.Error(w, "Erro ao salvar as alterações", http.StatusInternalServerError)
		return
	}
	pkg.ResponderJSON(w, http.StatusOK, ArremateListagem{Arremate: *a, ValorFormatado: utils.FormatarBRL(a.ValorArremate)})
}

// GET /api/arremates/relatorio
// Ordem cronológica, com o total arrematado no período.
func (h *Handler) Relatorio(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioID(r.Context())
	arremates, err := h.Repository.Listar(h.DB, userID, true)
	if err != nil {
		http.Error(w, "Erro ao gerar o relatório", http.StatusInternalServerError)
		return
	}

	var assessor string
	if u, err := h.Usuarios.BuscarPorID(h.DB, userID); err == nil {
		assessor = u.Username
	}

	var total float64
	for _, a := range arremates {
		total += a.ValorArremate
	}
	total = viabilidade.Arredondar(total)

	pkg.ResponderJSON(w, http.StatusOK, Relatorio{
		Assessor:        assessor,
		GeradoEm:        h.now().Format("02/01/2006"),
		Arremates:       formatar(arremates),
		TotalArrematado: total,
		TotalFormatado:  utils.FormatarBRL(total),
	})
}

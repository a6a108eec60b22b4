package cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/auth"
	"github.com/KromaEnergia/api-arremate/internal/carteira"
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoHandler(t *testing.T) *Handler {
	t.Helper()
	database, err := db.OpenMemory(&models.Cliente{}, &models.Imovel{}, &models.Custo{}, &models.Lead{})
	require.NoError(t, err)
	h := NewHandler(database, NewRepository(), carteira.NewRepository())
	h.now = func() time.Time { return time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC) }
	return h
}

func requisicao(t *testing.T, assessorID uint, body any, id uint) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r = r.WithContext(auth.ComUsuario(context.Background(), assessorID, false))
	if id != 0 {
		r = mux.SetURLVars(r, map[string]string{"id": strconv.Itoa(int(id))})
	}
	return r
}

func criarCliente(t *testing.T, h *Handler, assessorID uint, body map[string]any) models.Cliente {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Criar(rec, requisicao(t, assessorID, body, 0))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c models.Cliente
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	return c
}

func TestCriarClientePadroes(t *testing.T) {
	h := novoHandler(t)
	c := criarCliente(t, h, 3, map[string]any{"nome": " Carla "})
	assert.Equal(t, "Carla", c.Nome)
	assert.Equal(t, models.ClienteAtivo, c.Status)
	assert.Equal(t, "2026-04-02", c.DataInicio.Format("2006-01-02"))
	assert.Equal(t, uint(3), c.AssessorID)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicao(t, 3, map[string]any{"email": "x@y.com"}, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListarComTotais(t *testing.T) {
	h := novoHandler(t)
	c := criarCliente(t, h, 3, map[string]any{"nome": "Carla"})
	criarCliente(t, h, 4, map[string]any{"nome": "De outro assessor"})

	im := models.Imovel{
		UserID:             3,
		ClienteID:          &c.ID,
		Descricao:          "Apto",
		ValorCompra:        200000,
		ValorVendaEstimado: 300000,
		Custos:             []models.Custo{{TipoCusto: models.CustoReforma, Valor: 21000}},
	}
	require.NoError(t, h.Carteira.CriarImovel(h.DB, &im))

	rec := httptest.NewRecorder()
	h.Listar(rec, requisicao(t, 3, nil, 0))
	require.Equal(t, http.StatusOK, rec.Code)
	var lista []ClienteListagem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lista))
	require.Len(t, lista, 1)
	assert.Equal(t, 1, lista[0].TotalImoveis)
	assert.Equal(t, 200000.0, lista[0].TotalInvestido)
	assert.Equal(t, 23.46, lista[0].RoiMedio)

	rec = httptest.NewRecorder()
	h.Dashboard(rec, requisicao(t, 3, nil, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	var dash dashboardCliente
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dash))
	assert.Equal(t, 221000.0, dash.KPIs.TotalInvestido)
	assert.Equal(t, 51850.0, dash.KPIs.TotalLucroEstimado)
	assert.Len(t, dash.Imoveis, 1)

	rec = httptest.NewRecorder()
	h.Dashboard(rec, requisicao(t, 4, nil, c.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAtualizarCliente(t *testing.T) {
	h := novoHandler(t)
	c := criarCliente(t, h, 3, map[string]any{"nome": "Carla", "dataInicio": "2025-10-01"})

	rec := httptest.NewRecorder()
	h.Atualizar(rec, requisicao(t, 3, map[string]any{"nome": "Carla Lima", "status": "inativo"}, c.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	var atualizado models.Cliente
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&atualizado))
	assert.Equal(t, "Carla Lima", atualizado.Nome)
	assert.Equal(t, "inativo", atualizado.Status)
	// data de início mantida quando não enviada
	assert.Equal(t, "2025-10-01", atualizado.DataInicio.Format("2006-01-02"))
}

func TestDeletarClienteComImoveis(t *testing.T) {
	h := novoHandler(t)
	c := criarCliente(t, h, 3, map[string]any{"nome": "Carla"})
	require.NoError(t, h.Carteira.CriarImovel(h.DB, &models.Imovel{UserID: 3, ClienteID: &c.ID, Descricao: "Casa"}))

	rec := httptest.NewRecorder()
	h.Deletar(rec, requisicao(t, 3, nil, c.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletarClienteDevolveLead(t *testing.T) {
	h := novoHandler(t)
	assessor := uint(3)
	lead := models.Lead{Nome: "Davi", Whatsapp: "11988887777", Status: models.LeadContactado, ClaimedBy: &assessor}
	require.NoError(t, h.DB.Create(&lead).Error)
	c := criarCliente(t, h, 3, map[string]any{"nome": "Davi", "telefone": "11988887777"})

	rec := httptest.NewRecorder()
	h.Deletar(rec, requisicao(t, 3, nil, c.ID))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var salvo models.Lead
	require.NoError(t, h.DB.First(&salvo, lead.ID).Error)
	assert.Equal(t, models.LeadNovo, salvo.Status)
	assert.Nil(t, salvo.ClaimedBy)

	rec = httptest.NewRecorder()
	h.Buscar(rec, requisicao(t, 3, nil, c.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package carteira

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
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoHandler(t *testing.T) *Handler {
	t.Helper()
	database, err := db.OpenMemory(&models.Cliente{}, &models.Imovel{}, &models.Custo{})
	require.NoError(t, err)
	h := NewHandler(database, NewRepository())
	h.now = func() time.Time { return time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC) }
	return h
}

func requisicao(t *testing.T, userID uint, body any, id uint) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r = r.WithContext(auth.ComUsuario(context.Background(), userID, false))
	if id != 0 {
		r = mux.SetURLVars(r, map[string]string{"id": strconv.Itoa(int(id))})
	}
	return r
}

var imovelCentro = map[string]any{
	"descricao":          "Apto Centro",
	"valorCompra":        "200.000,00",
	"valorVendaEstimado": 300000,
	"condominioEstimado": 500,
	"iptuEstimado":       100,
	"dataAquisicao":      "2026-01-05",
}

func criarImovel(t *testing.T, h *Handler, userID uint) models.Imovel {
	t.Helper()
	rec := httptest.NewRecorder()
	h.CriarImovel(rec, requisicao(t, userID, imovelCentro, 0))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var im models.Imovel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&im))
	return im
}

func TestFluxoCarteira(t *testing.T) {
	h := novoHandler(t)
	im := criarImovel(t, h, 7)
	assert.Equal(t, 200000.0, im.ValorCompra)
	assert.Equal(t, models.StatusArrematado, im.Status)
	assert.Equal(t, 69700.0, im.LucroEstimado)
	assert.Equal(t, 34.85, im.RoiEstimado)

	for _, c := range []map[string]any{
		{"tipoCusto": models.CustoReforma, "valor": 15000, "dataCusto": "2026-02-01"},
		{"tipoCusto": models.CustoImpostos, "valor": "6.000,00", "descricao": "ITBI"},
	} {
		rec := httptest.NewRecorder()
		h.AdicionarCusto(rec, requisicao(t, 7, c, im.ID))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// edição recalcula com os custos lançados
	rec := httptest.NewRecorder()
	h.AtualizarImovel(rec, requisicao(t, 7, imovelCentro, im.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var editado models.Imovel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&editado))
	assert.Equal(t, 51850.0, editado.LucroEstimado)
	assert.Equal(t, 23.46, editado.RoiEstimado)

	rec = httptest.NewRecorder()
	h.LancarMensais(rec, requisicao(t, 7, nil, im.ID))
	require.Equal(t, http.StatusCreated, rec.Code)
	var lancados []models.Custo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lancados))
	require.Len(t, lancados, 2)
	assert.Equal(t, "Condomínio - Março de 2026", lancados[0].Descricao)
	assert.Equal(t, "IPTU - Março de 2026", lancados[1].Descricao)
	assert.Equal(t, models.CustoImpostos, lancados[1].TipoCusto)

	rec = httptest.NewRecorder()
	h.Dashboard(rec, requisicao(t, 7, nil, 0))
	require.Equal(t, http.StatusOK, rec.Code)
	var dash Dashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dash))
	assert.Equal(t, 221600.0, dash.TotalInvestido)
	assert.Equal(t, 51340.0, dash.LucroPotencial)
	assert.Equal(t, 23.2, dash.RoiMedio)
	assert.Equal(t, 1, dash.TotalImoveis)
	assert.Equal(t, 600.0, dash.CustoRecorrenteMensal)
	assert.Equal(t, []TotalPorMes{{Mes: "2026-02", Total: 15000}, {Mes: "2026-03", Total: 6600}}, dash.CustosPorMes)
	assert.Equal(t, []TotalPorTipo{
		{TipoCusto: models.CustoCondominio, Total: 500},
		{TipoCusto: models.CustoImpostos, Total: 6100},
		{TipoCusto: models.CustoReforma, Total: 15000},
	}, dash.DistribuicaoCustos)

	rec = httptest.NewRecorder()
	h.BuscarImovel(rec, requisicao(t, 7, nil, im.ID))
	require.Equal(t, http.StatusOK, rec.Code)
	var detalhe ImovelResumo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detalhe))
	assert.Len(t, detalhe.Custos, 4)
	assert.Equal(t, 21600.0, detalhe.TotalCustos)
}

func TestCarteiraIsoladaPorAssessor(t *testing.T) {
	h := novoHandler(t)
	im := criarImovel(t, h, 7)

	rec := httptest.NewRecorder()
	h.BuscarImovel(rec, requisicao(t, 8, nil, im.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.AdicionarCusto(rec, requisicao(t, 8, map[string]any{"tipoCusto": "Outros", "valor": 10}, im.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.DeletarImovel(rec, requisicao(t, 8, nil, im.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ListarImoveis(rec, requisicao(t, 8, nil, 0))
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestDeletarImovelRemoveCustos(t *testing.T) {
	h := novoHandler(t)
	im := criarImovel(t, h, 7)

	rec := httptest.NewRecorder()
	h.AdicionarCusto(rec, requisicao(t, 7, map[string]any{"tipoCusto": "Outros", "valor": 10}, im.ID))
	require.Equal(t, http.StatusCreated, rec.Code)
	var c models.Custo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	assert.Equal(t, "2026-03-15", c.DataCusto.Format("2006-01-02"))

	rec = httptest.NewRecorder()
	h.DeletarCusto(rec, requisicao(t, 8, nil, c.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.DeletarImovel(rec, requisicao(t, 7, nil, im.ID))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var restantes int64
	h.DB.Model(&models.Custo{}).Where("imovel_id = ?", im.ID).Count(&restantes)
	assert.Zero(t, restantes)
}

func TestValidacoesCarteira(t *testing.T) {
	h := novoHandler(t)

	rec := httptest.NewRecorder()
	h.CriarImovel(rec, requisicao(t, 7, map[string]any{"valorCompra": 1000}, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	outro := models.Cliente{AssessorID: 8, Nome: "Cliente de outro"}
	require.NoError(t, h.DB.Create(&outro).Error)
	rec = httptest.NewRecorder()
	h.CriarImovel(rec, requisicao(t, 7, map[string]any{"descricao": "Casa", "clienteId": outro.ID}, 0))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	im := models.Imovel{UserID: 7, Descricao: "Sem estimativas"}
	require.NoError(t, h.DB.Create(&im).Error)
	rec = httptest.NewRecorder()
	h.LancarMensais(rec, requisicao(t, 7, nil, im.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.AdicionarCusto(rec, requisicao(t, 7, map[string]any{"tipoCusto": "Outros"}, im.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

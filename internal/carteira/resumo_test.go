package carteira

import (
	"testing"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func data(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func carteiraExemplo() []models.Imovel {
	return []models.Imovel{
		{
			ValorCompra:        200000,
			ValorVendaEstimado: 300000,
			CondominioEstimado: 500,
			IptuEstimado:       100,
			Custos: []models.Custo{
				{TipoCusto: models.CustoReforma, Valor: 15000, DataCusto: data("2026-01-10")},
				{TipoCusto: models.CustoImpostos, Valor: 6000, DataCusto: data("2026-01-20")},
			},
		},
		{
			ValorCompra:   100000,
			LucroEstimado: 10000,
			RoiEstimado:   10,
			Custos: []models.Custo{
				{TipoCusto: models.CustoCondominio, Valor: 700, DataCusto: data("2026-03-01")},
			},
		},
	}
}

func TestResumir(t *testing.T) {
	resumos, kpis := Resumir(carteiraExemplo())

	require.Len(t, resumos, 2)
	assert.Equal(t, 21000.0, resumos[0].TotalCustos)
	assert.Equal(t, 221000.0, resumos[0].TotalInvestido)
	assert.Equal(t, 51850.0, resumos[0].LucroLiquidoEstimado)
	assert.Equal(t, 23.46, resumos[0].RoiCalculado)
	// sem venda estimada não há lucro
	assert.Zero(t, resumos[1].LucroLiquidoEstimado)

	assert.Equal(t, 321700.0, kpis.TotalInvestido)
	assert.Equal(t, 51850.0, kpis.LucroPotencial)
	assert.Equal(t, 23.5, kpis.RoiMedio)
	assert.Equal(t, 2, kpis.TotalImoveis)
	assert.Equal(t, 600.0, kpis.CustoRecorrenteMensal)
}

func TestResumirCarteiraVazia(t *testing.T) {
	resumos, kpis := Resumir(nil)
	assert.Empty(t, resumos)
	assert.Zero(t, kpis.RoiMedio)
}

func TestDistribuirEAgruparCustos(t *testing.T) {
	var custos []models.Custo
	for _, im := range carteiraExemplo() {
		custos = append(custos, im.Custos...)
	}

	assert.Equal(t, []TotalPorTipo{
		{TipoCusto: models.CustoCondominio, Total: 700},
		{TipoCusto: models.CustoImpostos, Total: 6000},
		{TipoCusto: models.CustoReforma, Total: 15000},
	}, DistribuirCustos(custos))

	assert.Equal(t, []TotalPorMes{
		{Mes: "2026-01", Total: 21000},
		{Mes: "2026-03", Total: 700},
	}, AgruparPorMes(custos))
}

func TestResumirCliente(t *testing.T) {
	r := ResumirCliente(carteiraExemplo())
	assert.Equal(t, 321700.0, r.TotalInvestido)
	// 51850 estimado + 10000 gravado
	assert.Equal(t, 61850.0, r.TotalLucroEstimado)
	assert.Equal(t, 16.73, r.RoiMedio)
	assert.Equal(t, 2, r.TotalImoveis)
	assert.Equal(t, 600.0, r.CustosMensaisRecorrentes)
}

func TestTotaisListagem(t *testing.T) {
	investido, roi := TotaisListagem(carteiraExemplo())
	assert.Equal(t, 300000.0, investido)
	assert.Equal(t, 23.46, roi)
}

func TestMesAno(t *testing.T) {
	assert.Equal(t, "Março de 2026", MesAno(data("2026-03-15")))
	assert.Equal(t, "Dezembro de 2025", MesAno(data("2025-12-01")))
}

func TestCustosMensais(t *testing.T) {
	im := models.Imovel{UserID: 3, CondominioEstimado: 450}
	im.ID = 9
	custos := CustosMensais(im, data("2026-05-20"))
	require.Len(t, custos, 1)
	assert.Equal(t, "Condomínio - Maio de 2026", custos[0].Descricao)
	assert.Equal(t, uint(9), custos[0].ImovelID)
	assert.Equal(t, uint(3), custos[0].UserID)

	assert.Empty(t, CustosMensais(models.Imovel{}, data("2026-05-20")))
}

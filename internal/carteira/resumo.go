package carteira

import (
	"sort"
	"strings"
	"time"

	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"
	"github.com/shopspring/decimal"
)

// ImovelResumo acrescenta ao imóvel os totais calculados a partir dos custos lançados.
type ImovelResumo struct {
	models.Imovel
	TotalCustos          float64 `json:"totalCustos"`
	TotalInvestido       float64 `json:"totalInvestido"`
	LucroLiquidoEstimado float64 `json:"lucroLiquidoEstimado"`
	RoiCalculado         float64 `json:"roiCalculado"`
}

type KPIs struct {
	TotalInvestido        float64 `json:"totalInvestido"`
	LucroPotencial        float64 `json:"lucroPotencial"`
	RoiMedio              float64 `json:"roiMedio"`
	TotalImoveis          int     `json:"totalImoveis"`
	CustoRecorrenteMensal float64 `json:"custoRecorrenteMensal"`
}

type TotalPorTipo struct {
	TipoCusto string  `json:"tipoCusto"`
	Total     float64 `json:"total"`
}

type TotalPorMes struct {
	Mes   string  `json:"mes"`
	Total float64 `json:"total"`
}

type Dashboard struct {
	KPIs
	DistribuicaoCustos []TotalPorTipo `json:"distribuicaoCustos"`
	CustosPorMes       []TotalPorMes  `json:"custosPorMes"`
}

func somarCustos(custos []models.Custo) decimal.Decimal {
	total := decimal.Zero
	for _, c := range custos {
		total = total.Add(decimal.NewFromFloat(c.Valor))
	}
	return total
}

// investidoTotal é compra mais tudo que já foi lançado como custo.
func investidoTotal(im models.Imovel) decimal.Decimal {
	return decimal.NewFromFloat(im.ValorCompra).Add(somarCustos(im.Custos))
}

// Estimar recalcula lucro e ROI do imóvel a partir da compra e dos custos lançados.
func Estimar(im models.Imovel) viabilidade.Estimativa {
	return viabilidade.EstimarResultado(investidoTotal(im).InexactFloat64(), im.ValorVendaEstimado)
}

// Resumir monta os totais por imóvel e os KPIs da carteira. O ROI médio é
// ponderado: lucro potencial sobre o investido nos imóveis com venda estimada.
func Resumir(imoveis []models.Imovel) ([]ImovelResumo, KPIs) {
	resumos := make([]ImovelResumo, 0, len(imoveis))
	investido := decimal.Zero
	comEstimativa := decimal.Zero
	lucro := decimal.Zero
	recorrente := decimal.Zero

	for _, im := range imoveis {
		custos := somarCustos(im.Custos)
		total := decimal.NewFromFloat(im.ValorCompra).Add(custos)
		est := viabilidade.EstimarResultado(total.InexactFloat64(), im.ValorVendaEstimado)

		investido = investido.Add(total)
		if im.ValorVendaEstimado > 0 {
			comEstimativa = comEstimativa.Add(total)
			lucro = lucro.Add(decimal.NewFromFloat(est.ResultadoLiquido))
		}
		recorrente = recorrente.
			Add(decimal.NewFromFloat(im.CondominioEstimado)).
			Add(decimal.NewFromFloat(im.IptuEstimado))

		resumos = append(resumos, ImovelResumo{
			Imovel:               im,
			TotalCustos:          custos.InexactFloat64(),
			TotalInvestido:       total.InexactFloat64(),
			LucroLiquidoEstimado: est.ResultadoLiquido,
			RoiCalculado:         est.RoiLiquido,
		})
	}

	kpis := KPIs{
		TotalInvestido:        investido.InexactFloat64(),
		LucroPotencial:        lucro.InexactFloat64(),
		TotalImoveis:          len(imoveis),
		CustoRecorrenteMensal: recorrente.InexactFloat64(),
	}
	if comEstimativa.IsPositive() {
		kpis.RoiMedio = lucro.Div(comEstimativa).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
	}
	return resumos, kpis
}

// DistribuirCustos soma os custos por tipo, em ordem alfabética de tipo.
func DistribuirCustos(custos []models.Custo) []TotalPorTipo {
	totais := map[string]decimal.Decimal{}
	for _, c := range custos {
		totais[c.TipoCusto] = totais[c.TipoCusto].Add(decimal.NewFromFloat(c.Valor))
	}
	out := make([]TotalPorTipo, 0, len(totais))
	for tipo, total := range totais {
		out = append(out, TotalPorTipo{TipoCusto: tipo, Total: total.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TipoCusto < out[j].TipoCusto })
	return out
}

// AgruparPorMes soma os custos por mês (YYYY-MM), em ordem crescente.
func AgruparPorMes(custos []models.Custo) []TotalPorMes {
	totais := map[string]decimal.Decimal{}
	for _, c := range custos {
		mes := c.DataCusto.Format("2006-01")
		totais[mes] = totais[mes].Add(decimal.NewFromFloat(c.Valor))
	}
	out := make([]TotalPorMes, 0, len(totais))
	for mes, total := range totais {
		out = append(out, TotalPorMes{Mes: mes, Total: total.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mes < out[j].Mes })
	return out
}

// ResumoCliente são os números da carteira de um único cliente.
type ResumoCliente struct {
	TotalInvestido           float64 `json:"totalInvestido"`
	TotalLucroEstimado       float64 `json:"totalLucroEstimado"`
	RoiMedio                 float64 `json:"roiMedio"`
	TotalImoveis             int     `json:"totalImoveis"`
	CustosMensaisRecorrentes float64 `json:"custosMensaisRecorrentes"`
}

// ResumirCliente usa o lucro e o ROI gravados no imóvel quando houver; senão estima.
// O ROI médio é a média simples dos imóveis que têm ROI.
func ResumirCliente(imoveis []models.Imovel) ResumoCliente {
	investido := decimal.Zero
	lucro := decimal.Zero
	recorrente := decimal.Zero
	somaROI := decimal.Zero
	comROI := 0

	for _, im := range imoveis {
		total := investidoTotal(im)
		investido = investido.Add(total)

		liquido := im.LucroEstimado
		if liquido == 0 {
			liquido = viabilidade.EstimarResultado(total.InexactFloat64(), im.ValorVendaEstimado).ResultadoLiquido
		}
		lucro = lucro.Add(decimal.NewFromFloat(liquido))

		switch {
		case im.RoiEstimado != 0:
			somaROI = somaROI.Add(decimal.NewFromFloat(im.RoiEstimado))
			comROI++
		case total.IsPositive() && liquido != 0:
			roi := decimal.NewFromFloat(liquido).Div(total).Mul(decimal.NewFromInt(100))
			somaROI = somaROI.Add(roi)
			comROI++
		}

		recorrente = recorrente.
			Add(decimal.NewFromFloat(im.CondominioEstimado)).
			Add(decimal.NewFromFloat(im.IptuEstimado))
	}

	r := ResumoCliente{
		TotalInvestido:           investido.InexactFloat64(),
		TotalLucroEstimado:       lucro.InexactFloat64(),
		TotalImoveis:             len(imoveis),
		CustosMensaisRecorrentes: recorrente.InexactFloat64(),
	}
	if comROI > 0 {
		r.RoiMedio = viabilidade.Arredondar(somaROI.Div(decimal.NewFromInt(int64(comROI))).InexactFloat64())
	}
	return r
}

// TotaisListagem são os números exibidos na lista de clientes: compra somada
// e média simples do ROI estimado dos imóveis com venda e investimento.
func TotaisListagem(imoveis []models.Imovel) (totalInvestido, roiMedio float64) {
	compra := decimal.Zero
	somaROI := decimal.Zero
	n := 0
	for _, im := range imoveis {
		compra = compra.Add(decimal.NewFromFloat(im.ValorCompra))
		total := investidoTotal(im)
		if im.ValorVendaEstimado > 0 && total.IsPositive() {
			somaROI = somaROI.Add(decimal.NewFromFloat(Estimar(im).RoiLiquido))
			n++
		}
	}
	if n > 0 {
		roiMedio = viabilidade.Arredondar(somaROI.Div(decimal.NewFromInt(int64(n))).InexactFloat64())
	}
	return compra.InexactFloat64(), roiMedio
}

var mesesPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MesAno formata como "Março de 2026".
func MesAno(t time.Time) string {
	mes := mesesPT[t.Month()-1]
	return strings.ToUpper(mes[:1]) + mes[1:] + " de " + t.Format("2006")
}

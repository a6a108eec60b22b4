package viabilidade

// Formas de pagamento aceitas em Entrada.TipoPagamento.
const (
	PagamentoVista      = "vista"
	PagamentoFinanciado = "financiado"
)

// Bases de cálculo do ITBI aceitas em Entrada.ItbiBase.
const (
	BaseAvaliacao = "avaliacao"
	BaseArremate  = "arremate"
)

// Valores padrão usados quando a entrada não informa o campo.
const (
	PadraoAssessoriaLimite      = 120000.0
	PadraoAssessoriaTaxaFixa    = 6000.0
	PadraoAssessoriaPercentual  = 5.0
	PadraoItbiFinanciadoPercent = 0.5
	PadraoCorretagemPercent     = 6.0
	PadraoAliquotaIRGC          = 0.15

	percentualLeiloeiro = 0.05
)

// Horizontes de venda projetados (em meses).
const (
	HorizonteCurto1 = 4
	HorizonteCurto2 = 8
	HorizonteLongo1 = 12
	HorizonteLongo2 = 16
)

// Entrada reúne todos os valores de um estudo de viabilidade.
// Campos numéricos ausentes valem 0. Os campos ponteiro distinguem
// "não informado" (usa o padrão) de um zero informado.
type Entrada struct {
	ValorArrematado       float64 `json:"valorArrematado"`
	ValorAvaliacao        float64 `json:"valorAvaliacao"`
	Itbi                  float64 `json:"itbi"`
	ItbiBase              string  `json:"itbiBase"`
	ItbiFinanciadoPercent float64 `json:"itbiFinanciadoPercent"`
	CustosCartorarios     float64 `json:"custosCartorarios"`
	Reforma               float64 `json:"reforma"`
	DebitosPendentes      float64 `json:"debitosPendentes"`
	CustosAdicionais      float64 `json:"custosAdicionais"`
	CustoDesocupacao      float64 `json:"custoDesocupacao"`
	IncluirLeiloeiro      bool    `json:"incluirLeiloeiro"`

	TipoPagamento            string  `json:"tipoPagamento"`
	ValorEntrada             float64 `json:"valorEntrada"`
	ValorFinanciado          float64 `json:"valorFinanciado"`
	CustoMensalFinanciamento float64 `json:"custoMensalFinanciamento"`

	ValorAssessoria           float64  `json:"valorAssessoria"`
	AssessoriaThreshold       *float64 `json:"assessoriaThreshold,omitempty"`
	AssessoriaFeeBelow        *float64 `json:"assessoriaFeeBelow,omitempty"`
	AssessoriaFeeAbovePercent *float64 `json:"assessoriaFeeAbovePercent,omitempty"`

	CondominioMensal float64 `json:"condominioMensal"`
	IptuMensal       float64 `json:"iptuMensal"`
	IptuAnual        float64 `json:"iptuAnual"`
	TaxaSeguroMensal float64 `json:"taxaSeguroMensal"`
	TaxaSeguroCaixa  float64 `json:"taxaSeguroCaixa"`

	ValorVendaFinal   float64 `json:"valorVendaFinal"`
	ValorVendaLongo   float64 `json:"valorVendaLongo"`
	CorretagemPercent float64 `json:"corretagemPercent"`

	// fração: 0.15 = 15%
	AliquotaIRGC *float64 `json:"aliquotaIRGC,omitempty"`
}

func (e Entrada) financiado() bool {
	return e.TipoPagamento == PagamentoFinanciado
}

// valorFinanciado devolve o saldo financiado informado ou, na falta dele,
// arremate menos entrada.
func (e Entrada) valorFinanciado() float64 {
	if e.ValorFinanciado != 0 {
		return e.ValorFinanciado
	}
	return e.ValorArrematado - e.ValorEntrada
}

// Aquisicao é o resultado do resolvedor de custos de aquisição.
type Aquisicao struct {
	ValorAssessoria  float64 `json:"valorAssessoria"`
	ValorITBI        float64 `json:"valorITBI"`
	ValorLeiloeiro   float64 `json:"valorLeiloeiro"`
	InvestimentoBase float64 `json:"investimentoBase"`
}

// Projecao é o resultado financeiro de um horizonte de venda.
type Projecao struct {
	Meses                 int     `json:"meses"`
	CustosPeriodo         float64 `json:"custosPeriodo"`
	CustoMensalRecorrente float64 `json:"custoMensalRecorrente"`
	InvestimentoTotal     float64 `json:"investimentoTotal"`
	ResultadoBruto        float64 `json:"resultadoBruto"`
	ResultadoLiquido      float64 `json:"resultadoLiquido"`
	RoiLiquido            float64 `json:"roiLiquido"`
	ImpostoDevido         float64 `json:"impostoDevido"`
	TributacaoEntrada     float64 `json:"tributacaoEntrada"`
	ImpostoLucro          float64 `json:"impostoLucro"`
	ValorVenda            float64 `json:"valorVenda"`
}

// Comum agrupa os valores compartilhados por todos os horizontes.
type Comum struct {
	InvestimentoBase float64 `json:"investimentoBase"`
	Corretagem       float64 `json:"corretagem"`
	ValorAssessoria  float64 `json:"valorAssessoria"`
	ValorITBI        float64 `json:"valorITBI"`
	ValorLeiloeiro   float64 `json:"valorLeiloeiro"`
}

// Resultado é a resposta completa da calculadora.
type Resultado struct {
	Comum           Comum    `json:"common"`
	Projecao4Meses  Projecao `json:"projection4Months"`
	Projecao8Meses  Projecao `json:"projection8Months"`
	Projecao12Meses Projecao `json:"projection12Months"`
	Projecao16Meses Projecao `json:"projection16Months"`
}

// Projecoes retorna os horizontes em ordem crescente de meses.
func (r Resultado) Projecoes() []Projecao {
	return []Projecao{r.Projecao4Meses, r.Projecao8Meses, r.Projecao12Meses, r.Projecao16Meses}
}

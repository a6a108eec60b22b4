package viabilidade

import "math"

const epsilon = 2.220446049250313e-16

// Arredondar arredonda para centavos. Metade sobe em direção a +∞,
// com um empurrão de epsilon para valores como 1.005.
func Arredondar(v float64) float64 {
	centavos := float64((v + epsilon) * 100)
	return math.Floor(centavos+0.5) / 100
}

func valorOuPadrao(v *float64, padrao float64) float64 {
	if v == nil {
		return padrao
	}
	return *v
}

// ResolverAquisicao calcula assessoria, ITBI, leiloeiro e o investimento
// inicial. Não altera a entrada.
func ResolverAquisicao(e Entrada) Aquisicao {
	limite := valorOuPadrao(e.AssessoriaThreshold, PadraoAssessoriaLimite)
	taxaFixa := valorOuPadrao(e.AssessoriaFeeBelow, PadraoAssessoriaTaxaFixa)
	percentual := valorOuPadrao(e.AssessoriaFeeAbovePercent, PadraoAssessoriaPercentual)

	var assessoria float64
	switch {
	case e.ValorAssessoria > 0:
		assessoria = e.ValorAssessoria
	case e.ValorArrematado <= limite:
		assessoria = taxaFixa
	default:
		assessoria = Arredondar(e.ValorArrematado * percentual / 100)
	}

	base := e.ValorArrematado
	if e.ItbiBase != BaseArremate && e.ValorAvaliacao > 0 {
		base = e.ValorAvaliacao
	}

	var itbi float64
	if e.financiado() {
		financiado := e.valorFinanciado()
		taxaFinanciado := e.ItbiFinanciadoPercent
		if taxaFinanciado == 0 {
			taxaFinanciado = PadraoItbiFinanciadoPercent
		}
		// a base nunca fica abaixo do valor financiado
		baseCalculo := math.Max(base, financiado)
		restante := math.Max(0, baseCalculo-financiado)
		itbi = Arredondar(financiado*taxaFinanciado/100) + Arredondar(restante*e.Itbi/100)
	} else {
		itbi = Arredondar(base * e.Itbi / 100)
	}

	var leiloeiro float64
	if e.IncluirLeiloeiro {
		leiloeiro = Arredondar(e.ValorArrematado * percentualLeiloeiro)
	}

	aquisicao := e.ValorArrematado
	if e.financiado() {
		aquisicao = e.ValorEntrada
	}

	investimento := Arredondar(aquisicao + assessoria + itbi + e.CustosCartorarios + e.Reforma +
		e.DebitosPendentes + e.CustosAdicionais + leiloeiro + e.CustoDesocupacao)

	return Aquisicao{
		ValorAssessoria:  assessoria,
		ValorITBI:        itbi,
		ValorLeiloeiro:   leiloeiro,
		InvestimentoBase: investimento,
	}
}

// ProjetarHorizonte projeta custos, impostos e retorno para uma venda em
// `meses`, usando e.ValorVendaFinal como preço de venda do horizonte.
func ProjetarHorizonte(meses int, e Entrada, investimentoBase, corretagem float64) Projecao {
	m := float64(meses)

	iptuMensal := 0.0
	switch {
	case e.IptuMensal > 0:
		iptuMensal = e.IptuMensal
	case e.IptuAnual > 0:
		iptuMensal = e.IptuAnual / 12
	}

	// seguro da Caixa é valor fixo, não escala com o prazo
	seguro := 0.0
	switch {
	case e.TaxaSeguroCaixa > 0:
		seguro = e.TaxaSeguroCaixa
	case e.TaxaSeguroMensal > 0:
		seguro = e.TaxaSeguroMensal * m
	}

	manutencao := e.CondominioMensal*m + iptuMensal*m + seguro
	if e.financiado() {
		manutencao += e.CustoMensalFinanciamento * m
	}

	custosPeriodo := Arredondar(manutencao)
	var mensal float64
	if meses > 0 {
		mensal = Arredondar(manutencao / m)
	}
	investimentoTotal := Arredondar(investimentoBase + custosPeriodo)

	// sem ValorFinanciado informado, quita-se arremate menos entrada e
	// não zero
	var quitacao float64
	if e.financiado() {
		quitacao = e.valorFinanciado()
	}

	bruto := Arredondar(e.ValorVendaFinal - corretagem - investimentoTotal - quitacao)

	// Tributação fixa sobre a venda (3,75%) desativada; mantida zerada
	// até que o regime PJ seja suportado.
	const tributacaoEntrada = 0.0

	var impostoLucro float64
	if bruto > 0 {
		impostoLucro = Arredondar(bruto * valorOuPadrao(e.AliquotaIRGC, PadraoAliquotaIRGC))
	}
	impostoTotal := Arredondar(tributacaoEntrada + impostoLucro)
	liquido := Arredondar(bruto - impostoTotal)

	var roi float64
	if investimentoTotal > 0 {
		roi = Arredondar(liquido / investimentoTotal * 100)
	}

	return Projecao{
		Meses:                 meses,
		CustosPeriodo:         custosPeriodo,
		CustoMensalRecorrente: mensal,
		InvestimentoTotal:     investimentoTotal,
		ResultadoBruto:        bruto,
		ResultadoLiquido:      liquido,
		RoiLiquido:            roi,
		ImpostoDevido:         impostoTotal,
		TributacaoEntrada:     tributacaoEntrada,
		ImpostoLucro:          impostoLucro,
		ValorVenda:            e.ValorVendaFinal,
	}
}

// CalcularViabilidade resolve a aquisição uma vez e projeta os quatro
// horizontes: 4 e 8 meses com o preço de venda curto, 12 e 16 com o longo.
func CalcularViabilidade(e Entrada) Resultado {
	aq := ResolverAquisicao(e)

	percentual := e.CorretagemPercent
	if percentual == 0 {
		percentual = PadraoCorretagemPercent
	}

	vendaCurta := e.ValorVendaFinal
	vendaLonga := vendaCurta
	if e.ValorVendaLongo > 0 {
		vendaLonga = e.ValorVendaLongo
	}

	projetar := func(meses int, venda float64) Projecao {
		h := e
		h.ValorVendaFinal = venda
		return ProjetarHorizonte(meses, h, aq.InvestimentoBase, Arredondar(venda*percentual/100))
	}

	return Resultado{
		Comum: Comum{
			InvestimentoBase: aq.InvestimentoBase,
			Corretagem:       Arredondar(vendaCurta * percentual / 100),
			ValorAssessoria:  aq.ValorAssessoria,
			ValorITBI:        aq.ValorITBI,
			ValorLeiloeiro:   aq.ValorLeiloeiro,
		},
		Projecao4Meses:  projetar(HorizonteCurto1, vendaCurta),
		Projecao8Meses:  projetar(HorizonteCurto2, vendaCurta),
		Projecao12Meses: projetar(HorizonteLongo1, vendaLonga),
		Projecao16Meses: projetar(HorizonteLongo2, vendaLonga),
	}
}

// Estimativa é o resultado simplificado usado pela carteira, onde o
// investimento já é conhecido pelos custos lançados.
type Estimativa struct {
	Corretagem       float64 `json:"corretagem"`
	ResultadoBruto   float64 `json:"resultadoBruto"`
	ImpostoLucro     float64 `json:"impostoLucro"`
	ResultadoLiquido float64 `json:"resultadoLiquido"`
	RoiLiquido       float64 `json:"roiLiquido"`
}

// EstimarResultado aplica corretagem e IR sobre ganho de capital a um
// investimento já realizado. Sem preço de venda não há estimativa.
func EstimarResultado(investido, valorVenda float64) Estimativa {
	if valorVenda <= 0 {
		return Estimativa{}
	}
	corretagem := Arredondar(valorVenda * PadraoCorretagemPercent / 100)
	bruto := Arredondar(valorVenda - corretagem - investido)
	var imposto float64
	if bruto > 0 {
		imposto = Arredondar(bruto * PadraoAliquotaIRGC)
	}
	liquido := Arredondar(bruto - imposto)
	var roi float64
	if investido > 0 {
		roi = Arredondar(liquido / investido * 100)
	}
	return Estimativa{
		Corretagem:       corretagem,
		ResultadoBruto:   bruto,
		ImpostoLucro:     imposto,
		ResultadoLiquido: liquido,
		RoiLiquido:       roi,
	}
}

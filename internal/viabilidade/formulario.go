package viabilidade

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/KromaEnergia/api-arremate/internal/utils"
)

// Padroes sobrescreve, por configuração, os valores usados quando o
// formulário não informa o campo. Nil mantém o padrão da calculadora.
type Padroes struct {
	AssessoriaThreshold       *float64
	AssessoriaFeeBelow        *float64
	AssessoriaFeeAbovePercent *float64
	CorretagemPercent         float64
	ItbiFinanciadoPercent     float64
	// fração, como em Entrada.AliquotaIRGC
	AliquotaIRGC *float64
}

// LerDados extrai os campos brutos da requisição, em JSON ou form-urlencoded.
func LerDados(r *http.Request) (map[string]any, error) {
	dados := map[string]any{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&dados); err != nil {
			return nil, fmt.Errorf("json inválido: %w", err)
		}
		return dados, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("formulário inválido: %w", err)
	}
	for k, v := range r.PostForm {
		if len(v) > 0 {
			dados[k] = v[0]
		}
	}
	return dados, nil
}

func texto(v any, padrao string) string {
	s, ok := v.(string)
	if !ok {
		return padrao
	}
	s = utils.Normalizar(s)
	if s == "" {
		return padrao
	}
	return s
}

// EntradaDeFormulario converte os campos brutos em Entrada. Números em
// texto passam por utils.ParseMonetario e valores inválidos viram 0. A
// alíquota de IR chega em percentual e é convertida para fração.
func EntradaDeFormulario(dados map[string]any, p Padroes) Entrada {
	num := func(k string) float64 {
		return utils.ParseMonetario(dados[k])
	}
	opcional := func(k string) *float64 {
		d, ok := utils.ParseMonetarioDecimal(dados[k])
		if !ok {
			return nil
		}
		f := d.InexactFloat64()
		return &f
	}

	e := Entrada{
		ValorArrematado:           num("valorArrematado"),
		ValorAvaliacao:            num("valorAvaliacao"),
		Itbi:                      num("itbi"),
		ItbiBase:                  texto(dados["itbiBase"], BaseAvaliacao),
		ItbiFinanciadoPercent:     num("itbiFinanciadoPercent"),
		CustosCartorarios:         num("custosCartorarios"),
		Reforma:                   num("reforma"),
		DebitosPendentes:          num("debitosPendentes"),
		CustosAdicionais:          num("custosAdicionais"),
		CustoDesocupacao:          num("custoDesocupacao"),
		IncluirLeiloeiro:          utils.ParseBool(dados["incluirLeiloeiro"]),
		TipoPagamento:             texto(dados["tipoPagamento"], PagamentoVista),
		ValorEntrada:              num("valorEntrada"),
		ValorFinanciado:           num("valorFinanciado"),
		CustoMensalFinanciamento:  num("custoMensalFinanciamento"),
		ValorAssessoria:           num("valorAssessoria"),
		AssessoriaThreshold:       opcional("assessoriaThreshold"),
		AssessoriaFeeBelow:        opcional("assessoriaFeeBelow"),
		AssessoriaFeeAbovePercent: opcional("assessoriaFeeAbovePercent"),
		CondominioMensal:          num("condominioMensal"),
		IptuMensal:                num("iptuMensal"),
		IptuAnual:                 num("iptuAnual"),
		TaxaSeguroMensal:          num("taxaSeguroMensal"),
		TaxaSeguroCaixa:           num("taxaSeguroCaixa"),
		ValorVendaFinal:           num("valorVendaFinal"),
		ValorVendaLongo:           num("valorVendaLongo"),
		CorretagemPercent:         num("corretagemPercent"),
	}

	if a := opcional("aliquotaIRGC"); a != nil {
		fracao := *a / 100
		e.AliquotaIRGC = &fracao
	} else {
		e.AliquotaIRGC = p.AliquotaIRGC
	}

	if e.AssessoriaThreshold == nil {
		e.AssessoriaThreshold = p.AssessoriaThreshold
	}
	if e.AssessoriaFeeBelow == nil {
		e.AssessoriaFeeBelow = p.AssessoriaFeeBelow
	}
	if e.AssessoriaFeeAbovePercent == nil {
		e.AssessoriaFeeAbovePercent = p.AssessoriaFeeAbovePercent
	}
	if e.CorretagemPercent == 0 {
		e.CorretagemPercent = p.CorretagemPercent
	}
	if e.ItbiFinanciadoPercent == 0 {
		e.ItbiFinanciadoPercent = p.ItbiFinanciadoPercent
	}
	return e
}

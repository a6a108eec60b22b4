package arremate

import (
	"time"

	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"
)

const enderecoPendente = "Endereço a definir"

// Estudo é a viabilidade calculada no servidor no momento do registro.
type Estudo struct {
	Entrada   viabilidade.Entrada
	Resultado viabilidade.Resultado
}

// Estudar roda a calculadora sobre os campos enviados. O valor arrematado
// registrado prevalece sobre o que vier no formulário.
func Estudar(calculo map[string]any, valorArremate float64, p viabilidade.Padroes) *Estudo {
	if len(calculo) == 0 {
		return nil
	}
	e := viabilidade.EntradaDeFormulario(calculo, p)
	e.ValorArrematado = valorArremate
	return &Estudo{Entrada: e, Resultado: viabilidade.CalcularViabilidade(e)}
}

// iptuMensal prefere o valor mensal informado e cai para o anual / 12.
func (s *Estudo) iptuMensal() float64 {
	if s.Entrada.IptuMensal > 0 {
		return s.Entrada.IptuMensal
	}
	if s.Entrada.IptuAnual > 0 {
		return viabilidade.Arredondar(s.Entrada.IptuAnual / 12)
	}
	return 0
}

// Fotografar copia para o arremate os números do horizonte de 4 meses.
func (s *Estudo) Fotografar(a *Arremate) {
	e, c := s.Entrada, s.Resultado.Comum
	p := s.Resultado.Projecao4Meses
	a.CalcValorAvaliacao = e.ValorAvaliacao
	a.CalcCustoITBI = c.ValorITBI
	a.CalcCustoRegistro = e.CustosCartorarios
	a.CalcCustoLeiloeiro = c.ValorLeiloeiro
	a.CalcCustoReforma = e.Reforma
	a.CalcOutrosCustos = e.CustosAdicionais
	a.CalcValorVenda = p.ValorVenda
	a.CalcCustoCorretagem = c.Corretagem
	a.CalcImpostoGanhoCapital = p.ImpostoDevido
	a.CalcLucroLiquido = p.ResultadoLiquido
	a.CalcRoiLiquido = p.RoiLiquido
}

// custosIniciais lista os lançamentos de abertura do imóvel na carteira.
// Valores zerados ficam de fora.
func (s *Estudo) custosIniciais(data time.Time) []models.Custo {
	e, c := s.Entrada, s.Resultado.Comum
	candidatos := []models.Custo{
		{TipoCusto: models.CustoReforma, Descricao: "Estimativa de reforma", Valor: e.Reforma},
		{TipoCusto: models.CustoImpostos, Descricao: "ITBI", Valor: c.ValorITBI},
		{TipoCusto: models.CustoDocumentacao, Descricao: "Custos de registro", Valor: e.CustosCartorarios},
		{TipoCusto: models.CustoComissao, Descricao: "Comissão do leiloeiro", Valor: c.ValorLeiloeiro},
		{TipoCusto: models.CustoComissao, Descricao: "Assessoria", Valor: c.ValorAssessoria},
		{TipoCusto: models.CustoOutros, Descricao: "Custos adicionais", Valor: e.CustosAdicionais},
		{TipoCusto: models.CustoOutros, Descricao: "Débitos pendentes", Valor: e.DebitosPendentes},
		{TipoCusto: models.CustoOutros, Descricao: "Desocupação / advogado", Valor: e.CustoDesocupacao},
		{TipoCusto: models.CustoSeguro, Descricao: "Seguro fixo", Valor: e.TaxaSeguroCaixa},
		{TipoCusto: models.CustoCondominio, Descricao: "Condomínio (estimativa mensal)", Valor: e.CondominioMensal},
		{TipoCusto: models.CustoImpostos, Descricao: "IPTU (estimativa mensal)", Valor: s.iptuMensal()},
	}
	custos := make([]models.Custo, 0, len(candidatos))
	for _, custo := range candidatos {
		if custo.Valor > 0 {
			custo.DataCusto = data
			custos = append(custos, custo)
		}
	}
	return custos
}

// ImovelDoArremate monta o imóvel que entra na carteira junto com o arremate.
func ImovelDoArremate(a Arremate, s *Estudo, clienteID *uint) models.Imovel {
	data := a.DataArremate
	endereco := a.Endereco
	if endereco == "" {
		endereco = enderecoPendente
	}
	im := models.Imovel{
		UserID:        a.UserID,
		ClienteID:     clienteID,
		Descricao:     a.DescricaoImovel,
		Endereco:      endereco,
		ValorCompra:   a.ValorArremate,
		DataAquisicao: &data,
		Status:        models.StatusArrematado,
	}
	if s == nil {
		return im
	}
	im.ValorVendaEstimado = s.Entrada.ValorVendaFinal
	im.CondominioEstimado = s.Entrada.CondominioMensal
	im.IptuEstimado = s.iptuMensal()
	im.LucroEstimado = s.Resultado.Projecao4Meses.ResultadoLiquido
	im.RoiEstimado = s.Resultado.Projecao4Meses.RoiLiquido
	im.Custos = s.custosIniciais(data)
	return im
}

package calculosalvo

import (
	"time"

	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/viabilidade"
)

const enderecoPendente = "Endereço a definir"

// ImovelDoCalculo monta o imóvel da carteira a partir do cálculo salvo.
// Lucro e ROI vêm da projeção de 4 meses; Reforma e ITBI entram como custos iniciais.
func ImovelDoCalculo(c CalculoSalvo, p viabilidade.Padroes, userID uint, hoje time.Time) models.Imovel {
	e := viabilidade.EntradaDeFormulario(c.Dados, p)
	res := viabilidade.CalcularViabilidade(e)

	iptu := e.IptuMensal
	if e.IptuAnual > 0 {
		iptu = viabilidade.Arredondar(e.IptuAnual / 12)
	}

	im := models.Imovel{
		UserID:             userID,
		Descricao:          c.Nome,
		Endereco:           enderecoPendente,
		ValorCompra:        e.ValorArrematado,
		DataAquisicao:      &hoje,
		ValorVendaEstimado: e.ValorVendaFinal,
		Status:             models.StatusArrematado,
		CondominioEstimado: e.CondominioMensal,
		IptuEstimado:       iptu,
		LucroEstimado:      res.Projecao4Meses.ResultadoLiquido,
		RoiEstimado:        res.Projecao4Meses.RoiLiquido,
	}
	if e.Reforma > 0 {
		im.Custos = append(im.Custos, models.Custo{
			TipoCusto: models.CustoReforma,
			Descricao: "Estimativa Reforma",
			Valor:     e.Reforma,
			DataCusto: hoje,
		})
	}
	if res.Comum.ValorITBI > 0 {
		im.Custos = append(im.Custos, models.Custo{
			TipoCusto: models.CustoImpostos,
			Descricao: "ITBI",
			Valor:     res.Comum.ValorITBI,
			DataCusto: hoje,
		})
	}
	return im
}

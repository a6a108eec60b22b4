package carteira

import "github.com/KromaEnergia/api-arremate/internal/utils"

type ImovelRequest struct {
	Descricao          string          `json:"descricao" validate:"required,max=200"`
	Endereco           string          `json:"endereco"`
	ValorCompra        utils.Monetario `json:"valorCompra" validate:"gte=0"`
	DataAquisicao      string          `json:"dataAquisicao" validate:"omitempty,datetime=2006-01-02"`
	ValorVendaEstimado utils.Monetario `json:"valorVendaEstimado" validate:"gte=0"`
	Status             string          `json:"status"`
	CondominioEstimado utils.Monetario `json:"condominioEstimado" validate:"gte=0"`
	IptuEstimado       utils.Monetario `json:"iptuEstimado" validate:"gte=0"`
	Observacoes        string          `json:"observacoes"`
	ClienteID          *uint           `json:"clienteId"`
	LucroEstimado      utils.Monetario `json:"lucroEstimado"`
	RoiEstimado        utils.Monetario `json:"roiEstimado"`
}

type CustoRequest struct {
	TipoCusto string          `json:"tipoCusto" validate:"required"`
	Descricao string          `json:"descricao"`
	Valor     utils.Monetario `json:"valor" validate:"required"`
	DataCusto string          `json:"dataCusto" validate:"omitempty,datetime=2006-01-02"`
}

package arremate

import "github.com/KromaEnergia/api-arremate/internal/utils"

type ArremateRequest struct {
	DescricaoImovel string          `json:"descricaoImovel" validate:"required,max=200"`
	Endereco        string          `json:"endereco"`
	DataArremate    string          `json:"dataArremate" validate:"required,datetime=2006-01-02"`
	ValorArremate   utils.Monetario `json:"valorArremate" validate:"gt=0"`
	Leiloeiro       string          `json:"leiloeiro"`
	Edital          string          `json:"edital"`
	ClienteID       *uint           `json:"clienteId"`
	// campos da calculadora, no mesmo formato aceito por POST /api/calculadora
	Calculo map[string]any `json:"calculo"`
}

// EdicaoRequest altera só os dados descritivos; o estudo fica como foi registrado.
type EdicaoRequest struct {
	DescricaoImovel string          `json:"descricaoImovel" validate:"required,max=200"`
	Endereco        string          `json:"endereco"`
	DataArremate    string          `json:"dataArremate" validate:"required,datetime=2006-01-02"`
	ValorArremate   utils.Monetario `json:"valorArremate" validate:"gt=0"`
	Leiloeiro       string          `json:"leiloeiro"`
	Edital          string          `json:"edital"`
}

type ArremateListagem struct {
	Arremate
	ValorFormatado string `json:"valorFormatado"`
}

type Relatorio struct {
	Assessor        string             `json:"assessor"`
	GeradoEm        string             `json:"geradoEm"`
	Arremates       []ArremateListagem `json:"arremates"`
	TotalArrematado float64            `json:"totalArrematado"`
	TotalFormatado  string             `json:"totalFormatado"`
}

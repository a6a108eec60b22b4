package cliente

import "github.com/KromaEnergia/api-arremate/internal/models"

type ClienteRequest struct {
	Nome        string `json:"nome" validate:"required,max=120"`
	CPF         string `json:"cpf" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Telefone    string `json:"telefone" validate:"max=30"`
	Status      string `json:"status"`
	DataInicio  string `json:"dataInicio" validate:"omitempty,datetime=2006-01-02"`
	Observacoes string `json:"observacoes"`
}

// ClienteListagem é o cliente com os totais da carteira dele.
type ClienteListagem struct {
	models.Cliente
	TotalImoveis   int     `json:"totalImoveis"`
	TotalInvestido float64 `json:"totalInvestido"`
	RoiMedio       float64 `json:"roiMedio"`
}

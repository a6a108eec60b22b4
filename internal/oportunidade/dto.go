package oportunidade

import "github.com/KromaEnergia/api-arremate/internal/utils"

type OportunidadeRequest struct {
	Titulo        string          `json:"titulo" validate:"max=150"`
	Descricao     string          `json:"descricao"`
	ValorArremate utils.Monetario `json:"valorArremate" validate:"gte=0"`
	ValorVenda    utils.Monetario `json:"valorVenda" validate:"gte=0"`
	LucroEstimado utils.Monetario `json:"lucroEstimado"`
	RoiEstimado   utils.Monetario `json:"roiEstimado"`
	Cidade        string          `json:"cidade"`
	Estado        string          `json:"estado" validate:"max=2"`
	TipoImovel    string          `json:"tipoImovel"`
	LinkCaixa     string          `json:"linkCaixa" validate:"omitempty,url"`
	FotoCapa      string          `json:"fotoCapa"`
}

// DoCalculoRequest traz só o que o cálculo salvo não tem.
type DoCalculoRequest struct {
	Titulo     string `json:"titulo" validate:"max=150"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado" validate:"max=2"`
	TipoImovel string `json:"tipoImovel"`
	LinkCaixa  string `json:"linkCaixa" validate:"omitempty,url"`
	FotoCapa   string `json:"fotoCapa"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=disponivel reservado vendido"`
}

// OportunidadeListagem acrescenta o nome do assessor que publicou.
type OportunidadeListagem struct {
	Oportunidade
	Autor string `json:"autor"`
}

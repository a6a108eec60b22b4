package oportunidade

import "gorm.io/gorm"

// Situações de uma oportunidade na vitrine.
const (
	StatusDisponivel = "disponivel"
	StatusReservado  = "reservado"
	StatusVendido    = "vendido"
)

// Oportunidade é um imóvel estudado e publicado na vitrine dos assessores.
type Oportunidade struct {
	gorm.Model
	UserID          uint    `gorm:"index" json:"userId"`
	Titulo          string  `gorm:"not null" json:"titulo"`
	Descricao       string  `json:"descricao"`
	ValorArremate   float64 `json:"valorArremate"`
	ValorVenda      float64 `json:"valorVenda"`
	LucroEstimado   float64 `json:"lucroEstimado"`
	RoiEstimado     float64 `json:"roiEstimado"`
	Cidade          string  `json:"cidade"`
	Estado          string  `gorm:"size:2" json:"estado"`
	TipoImovel      string  `json:"tipoImovel"`
	LinkCaixa       string  `json:"linkCaixa"`
	FotoCapa        string  `json:"fotoCapa"`
	CalculoOrigemID *uint   `json:"calculoOrigemId"`
	Status          string  `gorm:"default:disponivel" json:"status"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const StatusArrematado = "Arrematado"

// Tipos de custo lançados na carteira.
const (
	CustoReforma      = "Reforma"
	CustoImpostos     = "Impostos"
	CustoDocumentacao = "Documentação"
	CustoComissao     = "Comissão"
	CustoOutros       = "Outros"
	CustoSeguro       = "Seguro"
	CustoCondominio   = "Condomínio"
)

// Imovel é um imóvel da carteira do assessor, opcionalmente ligado a um cliente.
type Imovel struct {
	gorm.Model
	UserID             uint       `gorm:"index;not null" json:"userId"`
	ClienteID          *uint      `gorm:"index" json:"clienteId"`
	Descricao          string     `gorm:"not null" json:"descricao"`
	Endereco           string     `json:"endereco"`
	ValorCompra        float64    `json:"valorCompra"`
	DataAquisicao      *time.Time `json:"dataAquisicao"`
	ValorVendaEstimado float64    `json:"valorVendaEstimado"`
	Status             string     `gorm:"default:Arrematado" json:"status"`
	CondominioEstimado float64    `json:"condominioEstimado"`
	IptuEstimado       float64    `json:"iptuEstimado"`
	Observacoes        string     `json:"observacoes"`
	LucroEstimado      float64    `json:"lucroEstimado"`
	RoiEstimado        float64    `json:"roiEstimado"`

	Custos []Custo `gorm:"foreignKey:ImovelID;constraint:OnDelete:CASCADE" json:"custos,omitempty"`
}

func (Imovel) TableName() string { return "carteira_imoveis" }

// Custo é um lançamento de despesa de um imóvel.
type Custo struct {
	gorm.Model
	ImovelID  uint      `gorm:"index;not null" json:"imovelId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	TipoCusto string    `gorm:"not null" json:"tipoCusto"`
	Descricao string    `json:"descricao"`
	Valor     float64   `json:"valor"`
	DataCusto time.Time `json:"dataCusto"`
}

func (Custo) TableName() string { return "carteira_custos" }

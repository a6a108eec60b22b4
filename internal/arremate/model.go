package arremate

import (
	"time"

	"gorm.io/gorm"
)

// Arremate é um leilão vencido pelo assessor. Os campos Calc* guardam o
// estudo de viabilidade no momento do registro e não mudam depois.
type Arremate struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"userId"`
	ImovelID        *uint     `gorm:"index" json:"imovelId"`
	DescricaoImovel string    `gorm:"not null" json:"descricaoImovel"`
	Endereco        string    `json:"endereco"`
	DataArremate    time.Time `gorm:"index;not null" json:"dataArremate"`
	ValorArremate   float64   `gorm:"not null" json:"valorArremate"`
	Leiloeiro       string    `json:"leiloeiro"`
	Edital          string    `json:"edital"`

	CalcValorAvaliacao      float64 `json:"calcValorAvaliacao"`
	CalcCustoITBI           float64 `json:"calcCustoItbi"`
	CalcCustoRegistro       float64 `json:"calcCustoRegistro"`
	CalcCustoLeiloeiro      float64 `json:"calcCustoLeiloeiro"`
	CalcCustoReforma        float64 `json:"calcCustoReforma"`
	CalcOutrosCustos        float64 `json:"calcOutrosCustos"`
	CalcValorVenda          float64 `json:"calcValorVenda"`
	CalcCustoCorretagem     float64 `json:"calcCustoCorretagem"`
	CalcImpostoGanhoCapital float64 `json:"calcImpostoGanhoCapital"`
	CalcLucroLiquido        float64 `json:"calcLucroLiquido"`
	CalcRoiLiquido          float64 `json:"calcRoiLiquido"`
}

package calculosalvo

import "gorm.io/gorm"

// CalculoSalvo guarda os campos da calculadora como vieram do formulário.
// A conversão para número acontece só quando o cálculo é usado.
type CalculoSalvo struct {
	gorm.Model
	UserID uint           `gorm:"index;not null" json:"userId"`
	Nome   string         `gorm:"not null" json:"nome"`
	Cidade string         `json:"cidade"`
	Dados  map[string]any `gorm:"type:jsonb;serializer:json" json:"dados"`
}

func (CalculoSalvo) TableName() string { return "saved_calculations" }

package models

import (
	"time"

	"gorm.io/gorm"
)

const ClienteAtivo = "ativo"

// Cliente é o investidor assessorado. Pertence a um único assessor.
type Cliente struct {
	gorm.Model
	AssessorID  uint      `gorm:"index;not null" json:"assessorId"`
	Nome        string    `gorm:"not null" json:"nome"`
	CPF         string    `json:"cpf"`
	Email       string    `json:"email"`
	Telefone    string    `gorm:"index" json:"telefone"`
	Status      string    `gorm:"default:ativo" json:"status"`
	DataInicio  time.Time `json:"dataInicio"`
	Observacoes string    `json:"observacoes"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Status do lead no funil.
const (
	LeadNovo       = "novo"
	LeadContactado = "contactado"
)

// Lead é o interessado que preencheu o funil público.
type Lead struct {
	gorm.Model
	Nome              string     `json:"nome"`
	Whatsapp          string     `gorm:"index;not null" json:"whatsapp"`
	Objetivo          string     `json:"objetivo"`
	Experiencia       string     `json:"experiencia"`
	RestricaoNome     bool       `json:"restricaoNome"`
	CapitalDisponivel float64    `json:"capitalDisponivel"`
	PreferenciaPgto   string     `json:"preferenciaPgto"`
	Estado            string     `json:"estado"`
	Cidade            string     `json:"cidade"`
	Interesse         string     `json:"interesse"`
	Score             int        `gorm:"index" json:"score"`
	Status            string     `gorm:"index;default:novo" json:"status"`
	ClaimedBy         *uint      `gorm:"index" json:"claimedBy"`
	ClaimedAt         *time.Time `json:"claimedAt"`
	IPAddress         string     `json:"-"`
	Fingerprint       string     `json:"-"`
}

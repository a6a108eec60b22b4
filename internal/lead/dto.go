package lead

import (
	"github.com/KromaEnergia/api-arremate/internal/models"
	"github.com/KromaEnergia/api-arremate/internal/utils"
)

type LeadRequest struct {
	Nome              string          `json:"nome" validate:"max=120"`
	Whatsapp          string          `json:"whatsapp" validate:"required,max=30"`
	Objetivo          string          `json:"objetivo"`
	Experiencia       string          `json:"experiencia"`
	RestricaoNome     any             `json:"restricaoNome"`
	CapitalDisponivel utils.Monetario `json:"capitalDisponivel" validate:"gte=0"`
	PreferenciaPgto   string          `json:"preferenciaPgto"`
	Estado            string          `json:"estado" validate:"max=2"`
	Cidade            string          `json:"cidade"`
	Interesse         string          `json:"interesse"`
	Fingerprint       string          `json:"fingerprint"`
}

type LeadResponse struct {
	ID    uint `json:"id"`
	Score int  `json:"score"`
}

// LeadHistorico é o lead já distribuído, com o nome de quem o puxou.
type LeadHistorico struct {
	models.Lead
	AssessorNome string `json:"assessorNome"`
}

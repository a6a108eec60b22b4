package convite

import (
	"time"

	"gorm.io/gorm"
)

const Validade = 7 * 24 * time.Hour

type Convite struct {
	gorm.Model
	Token     string     `json:"token" gorm:"uniqueIndex;size:36;not null"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"isAdmin"`
	CriadoPor uint       `json:"criadoPor"`
	ExpiraEm  time.Time  `json:"expiraEm"`
	UsadoEm   *time.Time `json:"usadoEm,omitempty"`
}

// Valido indica se o convite ainda pode ser aceito em agora.
func (c *Convite) Valido(agora time.Time) bool {
	return c.UsadoEm == nil && agora.Before(c.ExpiraEm)
}

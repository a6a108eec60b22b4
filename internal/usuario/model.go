package usuario

import "gorm.io/gorm"

// Usuario é o assessor que usa a plataforma.
type Usuario struct {
	gorm.Model
	Username              string `json:"username"`
	Email                 string `json:"email" gorm:"uniqueIndex;not null"`
	Senha                 string `json:"-"`
	Telefone              string `json:"telefone"`
	FotoURL               string `json:"fotoUrl"`
	IsAdmin               bool   `json:"isAdmin"`
	PrecisaRedefinirSenha bool   `json:"precisaRedefinirSenha"`
}

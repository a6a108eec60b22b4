package convite

import "strings"

type CriarConviteRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	IsAdmin bool   `json:"isAdmin"`
}

func (r *CriarConviteRequest) Normalizar() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type AceitarConviteRequest struct {
	Token    string `json:"token" validate:"required,uuid4"`
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Senha    string `json:"senha" validate:"required,min=8"`
}

func (r *AceitarConviteRequest) Normalizar() {
	r.Token = strings.TrimSpace(r.Token)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

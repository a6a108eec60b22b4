package usuario

import "strings"

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

func (r *LoginRequest) Normalizar() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginResponse struct {
	AccessToken           string  `json:"access_token"`
	TokenType             string  `json:"token_type"`
	ExpiresIn             int     `json:"expires_in"`
	PrecisaRedefinirSenha bool    `json:"precisaRedefinirSenha"`
	Usuario               Usuario `json:"usuario"`
}

type AtualizarPerfilRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Telefone string `json:"telefone" validate:"max=30"`
	FotoURL  string `json:"fotoUrl" validate:"omitempty,url"`
}

type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual" validate:"required"`
	NovaSenha  string `json:"novaSenha" validate:"required,min=8"`
}

type SenhaTemporariaResponse struct {
	SenhaTemporaria string `json:"senhaTemporaria"`
}

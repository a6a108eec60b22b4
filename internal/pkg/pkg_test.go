package pkg

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type exemploDTO struct {
	Nome  string  `json:"nome" validate:"required"`
	Email string  `json:"email" validate:"omitempty,email"`
	Valor float64 `json:"valor" validate:"gt=0"`
}

func TestValidarMensagens(t *testing.T) {
	err := Validar(&exemploDTO{Email: "x"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "nome é obrigatório")
		assert.Contains(t, err.Error(), "email inválido")
		assert.Contains(t, err.Error(), "valor deve ser maior que 0")
	}
	assert.NoError(t, Validar(&exemploDTO{Nome: "Ana", Valor: 1}))
}

func TestDecodificarEValidar(t *testing.T) {
	var dto exemploDTO
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":""}`))
	assert.False(t, DecodificarEValidar(rec, req, &dto))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Ana","valor":10}`))
	assert.True(t, DecodificarEValidar(rec, req, &dto))
	assert.Equal(t, "Ana", dto.Nome)
}

type emailDTO struct {
	Email string `json:"email" validate:"required,email"`
}

func (d *emailDTO) Normalizar() {
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
}

func TestDecodificarEValidarNormalizaAntesDeValidar(t *testing.T) {
	var dto emailDTO
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":" ANA@Exemplo.com "}`))
	assert.True(t, DecodificarEValidar(rec, req, &dto))
	assert.Equal(t, "ana@exemplo.com", dto.Email)
}

func TestPaginacao(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=0&limit=500", nil)
	p := PaginacaoDaQuery(req)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	resp := NewPaginatedResponse([]int{1, 2}, PaginationParams{Page: 2, Limit: 2}, 5)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)

	vazio := NewPaginatedResponse[int](nil, PaginationParams{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 1, vazio.TotalPages)
	assert.NotNil(t, vazio.Data)
}

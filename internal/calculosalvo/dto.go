package calculosalvo

import "github.com/KromaEnergia/api-arremate/internal/viabilidade"

type SalvarRequest struct {
	Nome   string         `json:"nome" validate:"required,max=120"`
	Cidade string         `json:"cidade"`
	Dados  map[string]any `json:"dados" validate:"required"`
}

type AtualizarRequest struct {
	Dados map[string]any `json:"dados" validate:"required"`
}

// CalculoDetalhe devolve o cálculo junto com o resultado recalculado.
type CalculoDetalhe struct {
	CalculoSalvo
	Entrada   viabilidade.Entrada   `json:"inputData"`
	Resultado viabilidade.Resultado `json:"results"`
}

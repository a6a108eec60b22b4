package viabilidade

import (
	"encoding/json"
	"net/http"
)

// Handler expõe a calculadora via HTTP.
type Handler struct {
	Padroes Padroes
}

func NewHandler(p Padroes) *Handler {
	return &Handler{Padroes: p}
}

type respostaCalculo struct {
	Entrada   Entrada   `json:"inputData"`
	Resultado Resultado `json:"results"`
}

// POST /api/calculadora
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	dados, err := LerDados(r)
	if err != nil {
		http.Error(w, "Dados do cálculo inválidos", http.StatusBadRequest)
		return
	}

	e := EntradaDeFormulario(dados, h.Padroes)
	res := CalcularViabilidade(e)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(respostaCalculo{Entrada: e, Resultado: res})
}

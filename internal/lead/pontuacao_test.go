package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPontuadorPadrao(t *testing.T) {
	casos := []struct {
		nome   string
		perfil Perfil
		score  int
	}{
		{"experiente com muito capital", Perfil{Experiencia: "ja_arrematei", CapitalDisponivel: 250000, PreferenciaPgto: "vista"}, 100},
		{"capital médio financiado", Perfil{Experiencia: "primeira_vez", CapitalDisponivel: 60000, PreferenciaPgto: "financiado"}, 75},
		{"restrito sem capital", Perfil{CapitalDisponivel: 30000, RestricaoNome: true}, 0},
		{"restrito com capital", Perfil{CapitalDisponivel: 100000, PreferenciaPgto: "vista", RestricaoNome: true}, 55},
		{"pouco capital à vista", Perfil{CapitalDisponivel: 10000, PreferenciaPgto: "Vista"}, 60},
		{"limite de 200 mil", Perfil{CapitalDisponivel: 200000}, 90},
		{"limite de 50 mil", Perfil{CapitalDisponivel: 50000}, 75},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.score, PontuadorPadrao{}.Pontuar(c.perfil))
		})
	}
}

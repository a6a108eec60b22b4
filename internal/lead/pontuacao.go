package lead

import "github.com/KromaEnergia/api-arremate/internal/utils"

// Pontuador dá uma nota de 0 a 100 ao perfil informado no funil.
type Pontuador interface {
	Pontuar(p Perfil) int
}

// Perfil são os dados do funil que entram na pontuação.
type Perfil struct {
	Experiencia       string
	CapitalDisponivel float64
	PreferenciaPgto   string
	RestricaoNome     bool
}

// PontuadorPadrao é a heurística de qualificação do funil.
type PontuadorPadrao struct{}

func (PontuadorPadrao) Pontuar(p Perfil) int {
	score := 50

	if utils.Normalizar(p.Experiencia) == "ja_arrematei" {
		score += 10
	}

	switch {
	case p.CapitalDisponivel >= 200000:
		score += 30
	case p.CapitalDisponivel >= 50000:
		score += 15
	default:
		score -= 10
	}

	if utils.Normalizar(p.PreferenciaPgto) == "vista" {
		score += 10
	}

	if p.RestricaoNome {
		score -= 20
		// restrição sem capital inviabiliza financiamento e compra à vista
		if p.CapitalDisponivel < 50000 {
			score -= 20
		}
	} else {
		score += 10
	}

	return min(100, max(0, score))
}

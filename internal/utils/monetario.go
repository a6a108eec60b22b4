package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	foraDoFormatoBR      = regexp.MustCompile(`[^\d,-]`)
	foraDoFormatoMaquina = regexp.MustCompile(`[^\d.-]`)
	prefixoNumerico      = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ParseMonetario converte valores vindos de formulários ou JSON em número.
// Aceita "1.234,56" (BRL) e "1234.56". Vazio ou inválido vira 0.
func ParseMonetario(v any) float64 {
	d, ok := ParseMonetarioDecimal(v)
	if !ok {
		return 0
	}
	return d.InexactFloat64()
}

// ParseMonetarioDecimal é a versão sem perda de precisão de ParseMonetario.
// O segundo retorno é false quando nada numérico foi encontrado.
func ParseMonetarioDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case json.Number:
		// número JSON vale como está, inclusive em notação científica
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d, true
		}
		return parseTexto(t.String())
	case string:
		return parseTexto(t)
	default:
		return decimal.Zero, false
	}
}

func parseTexto(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	var limpo string
	if strings.Contains(s, ",") {
		limpo = foraDoFormatoBR.ReplaceAllString(s, "")
		limpo = strings.Replace(limpo, ",", ".", 1)
	} else {
		limpo = foraDoFormatoMaquina.ReplaceAllString(s, "")
	}

	// como parseFloat: vale o maior prefixo numérico
	m := prefixoNumerico.FindString(limpo)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseBool interpreta checkboxes de formulário ("1", "on", "true").
func ParseBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "on", "true":
			return true
		}
		return false
	case float64:
		return t == 1
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 1
	default:
		return false
	}
}

// ParseID converte um parâmetro de rota em ID.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// Monetario aceita no JSON tanto número quanto texto ("1.234,56").
type Monetario float64

func (m *Monetario) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*m = Monetario(ParseMonetario(v))
	return nil
}

func (m Monetario) Float64() float64 { return float64(m) }

// ParseData aceita "2006-01-02" ou RFC3339. Vazio devolve nil.
func ParseData(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("data inválida: %q", s)
}

package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonetario(t *testing.T) {
	casos := []struct {
		entrada  any
		esperado float64
	}{
		{nil, 0},
		{"", 0},
		{"   ", 0},
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"1234.56", 1234.56},
		{"200000", 200000},
		{"-150,5", -150.5},
		{"abc", 0},
		{"12abc", 12},
		{"12.abc", 12},
		{1500.25, 1500.25},
		{42, 42},
		{json.Number("99.9"), 99.9},
		{json.Number("1e5"), 100000},
		{json.Number("2.5E3"), 2500},
		{json.Number("5e-7"), 0.0000005},
		{true, 0},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, ParseMonetario(c.entrada), "ParseMonetario(%#v)", c.entrada)
	}
}

func TestParseMonetarioDecimalInformaAusencia(t *testing.T) {
	_, ok := ParseMonetarioDecimal("")
	assert.False(t, ok)

	d, ok := ParseMonetarioDecimal("0")
	assert.True(t, ok)
	assert.True(t, d.IsZero())
}

func TestParseBool(t *testing.T) {
	for _, v := range []any{"1", "on", "true", "TRUE", true, 1.0, json.Number("1"), json.Number("1e0")} {
		assert.True(t, ParseBool(v), "%#v", v)
	}
	for _, v := range []any{"0", "off", "", nil, false, "sim", json.Number("0"), json.Number("2")} {
		assert.False(t, ParseBool(v), "%#v", v)
	}
}

func TestSenha(t *testing.T) {
	hash, err := HashSenha("segredo123")
	assert.NoError(t, err)
	assert.True(t, VerificarSenha(hash, "segredo123"))
	assert.False(t, VerificarSenha(hash, "outra"))

	s, err := GerarSenhaTemporaria(4)
	assert.NoError(t, err)
	assert.Len(t, s, 8)
}

func TestMonetarioJSON(t *testing.T) {
	var dto struct {
		Texto  Monetario `json:"texto"`
		Numero Monetario `json:"numero"`
		Vazio  Monetario `json:"vazio"`
	}
	err := json.Unmarshal([]byte(`{"texto":"R$ 1.500,75","numero":320000.5,"vazio":""}`), &dto)
	require.NoError(t, err)
	assert.Equal(t, 1500.75, dto.Texto.Float64())
	assert.Equal(t, 320000.5, dto.Numero.Float64())
	assert.Zero(t, dto.Vazio.Float64())
}

func TestParseData(t *testing.T) {
	d, err := ParseData("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.March, d.Month())

	d, err = ParseData("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseData("15/03/2026")
	assert.Error(t, err)
}

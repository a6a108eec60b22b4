package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var semAcento = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar deixa o texto em minúsculas e sem acentos ("Avaliação" -> "avaliacao").
func Normalizar(s string) string {
	out, _, err := transform.String(semAcento, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatarBRL formata como moeda brasileira: R$ 1.234,56.
func FormatarBRL(v float64) string {
	if v < 0 {
		return "-R$ " + brl.Sprintf("%.2f", -v)
	}
	return "R$ " + brl.Sprintf("%.2f", v)
}

package sheetsync

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const currencyMarker = "R$"

// leadingNumber aceita o maior prefixo numérico, como o parseFloat do navegador
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseLocaleNumber converte valores no formato brasileiro ("1.234,56", "R$ 10") em float64.
// Entradas vazias ou inválidas resultam em 0.
func ParseLocaleNumber(value string) float64 {
	if value == "" {
		return 0
	}

	cleaned := strings.ReplaceAll(value, `"`, "")
	cleaned = strings.Replace(cleaned, currencyMarker, "", 1)
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return 0
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0
	}

	return num
}

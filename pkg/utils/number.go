package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFormattedNumber converte valores numéricos no formato brasileiro
// ("1.234,56") ou no formato padrão ("1234.56") para float64.
// Valores não numéricos resultam em zero, como nos formulários do painel.
func ParseFormattedNumber(valor string) float64 {
	limpo := strings.TrimSpace(valor)
	if limpo == "" {
		return 0
	}

	limpo = strings.TrimPrefix(limpo, "R$")
	limpo = strings.TrimSpace(limpo)

	// Vírgula presente: formato brasileiro, pontos são separadores de milhar
	if strings.Contains(limpo, ",") {
		limpo = strings.ReplaceAll(limpo, ".", "")
		limpo = strings.Replace(limpo, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0
	}

	return f
}

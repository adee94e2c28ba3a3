package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormattedNumber(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado float64
	}{
		{"1.234,56", 1234.56},
		{"R$ 1.234,56", 1234.56},
		{"R$1.234,56", 1234.56},
		{"1234.56", 1234.56},
		{"2500", 2500},
		{"0,5", 0.5},
		{"  150,00  ", 150},
		{"", 0},
		{"abc", 0},
		{"R$ ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			assert.Equal(t, tt.esperado, ParseFormattedNumber(tt.entrada))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.333333))
	assert.Equal(t, 33.34, RoundWithTwoDecimalPlace(33.335))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

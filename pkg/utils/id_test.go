package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarNumeroCotacao(t *testing.T) {
	agora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	numero, err := GerarNumeroCotacao(agora)

	require.NoError(t, err)
	assert.Regexp(t, `^COT-202406-[A-Z0-9]{6}$`, numero)
}

func TestGerarNumeroCotacao_SufixosDistintos(t *testing.T) {
	agora := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	a, err := GerarNumeroCotacao(agora)
	require.NoError(t, err)
	b, err := GerarNumeroCotacao(agora)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

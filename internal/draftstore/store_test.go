package draftstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brcargo/cotacao-panel/internal/domain"
)

func TestChaveRascunho(t *testing.T) {
	assert.Equal(t, "rascunho_cotacao_42", ChaveRascunho(42))
}

func TestSalvarECarregar(t *testing.T) {
	store, err := New("")
	require.NoError(t, err)

	rascunho := domain.Rascunho{
		CotacaoID:  7,
		ValorFrete: 1800,
		Timestamp:  time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Salvar(ChaveRascunho(7), rascunho))

	carregado, ok := store.Carregar(ChaveRascunho(7))
	require.True(t, ok)
	assert.Equal(t, rascunho, *carregado)
}

func TestCarregar_ChaveInexistente(t *testing.T) {
	store, err := New("")
	require.NoError(t, err)

	carregado, ok := store.Carregar(ChaveRascunho(99))

	assert.False(t, ok)
	assert.Nil(t, carregado)
}

func TestSalvar_UltimaEscritaVence(t *testing.T) {
	store, err := New("")
	require.NoError(t, err)

	require.NoError(t, store.Salvar(ChaveRascunho(1), domain.Rascunho{CotacaoID: 1, ValorFrete: 100}))
	require.NoError(t, store.Salvar(ChaveRascunho(1), domain.Rascunho{CotacaoID: 1, ValorFrete: 200}))

	carregado, ok := store.Carregar(ChaveRascunho(1))
	require.True(t, ok)
	assert.Equal(t, 200.0, carregado.ValorFrete)
}

func TestRemover(t *testing.T) {
	store, err := New("")
	require.NoError(t, err)

	require.NoError(t, store.Salvar(ChaveRascunho(1), domain.Rascunho{CotacaoID: 1}))
	store.Remover(ChaveRascunho(1))

	_, ok := store.Carregar(ChaveRascunho(1))
	assert.False(t, ok)
}

func TestPersistenciaEntreInstancias(t *testing.T) {
	arquivo := filepath.Join(t.TempDir(), "rascunhos.gob")

	primeira, err := New(arquivo)
	require.NoError(t, err)
	require.NoError(t, primeira.Salvar(ChaveRascunho(5), domain.Rascunho{CotacaoID: 5, ValorFrete: 3200}))

	segunda, err := New(arquivo)
	require.NoError(t, err)

	carregado, ok := segunda.Carregar(ChaveRascunho(5))
	require.True(t, ok)
	assert.Equal(t, 3200.0, carregado.ValorFrete)
}

// Package draftstore é o armazenamento local de rascunhos usado quando o
// backend está indisponível: um mapa chave/valor em memória, opcionalmente
// persistido em arquivo, equivalente ao localStorage do painel original.
package draftstore

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

func init() {
	// O go-cache serializa via gob; o tipo concreto precisa estar registrado
	// para SaveFile/LoadFile.
	gob.Register(domain.Rascunho{})
}

// ChaveRascunho monta a chave determinística de um rascunho de cotação.
func ChaveRascunho(cotacaoID int) string {
	return fmt.Sprintf("rascunho_cotacao_%d", cotacaoID)
}

type Store interface {
	Salvar(chave string, rascunho domain.Rascunho) error
	Carregar(chave string) (*domain.Rascunho, bool)
	Remover(chave string)
}

// LocalStore implementa Store sobre um cache em memória sem expiração.
// Escritas são last-write-wins por chave.
type LocalStore struct {
	cache   *cache.Cache
	arquivo string
}

// New cria um LocalStore. Com arquivo não vazio, o conteúdo anterior é
// recarregado na criação e cada escrita é persistida no mesmo arquivo.
func New(arquivo string) (*LocalStore, error) {
	c := cache.New(cache.NoExpiration, cache.NoExpiration)

	if arquivo != "" {
		if err := os.MkdirAll(filepath.Dir(arquivo), 0o755); err != nil {
			return nil, fmt.Errorf("erro ao preparar diretório de rascunhos: %w", err)
		}
		if err := c.LoadFile(arquivo); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Não foi possível recarregar rascunhos locais, iniciando vazio")
		}
	}

	return &LocalStore{cache: c, arquivo: arquivo}, nil
}

func (s *LocalStore) Salvar(chave string, rascunho domain.Rascunho) error {
	s.cache.Set(chave, rascunho, cache.NoExpiration)
	return s.persistir()
}

func (s *LocalStore) Carregar(chave string) (*domain.Rascunho, bool) {
	valor, encontrado := s.cache.Get(chave)
	if !encontrado {
		return nil, false
	}

	rascunho, ok := valor.(domain.Rascunho)
	if !ok {
		return nil, false
	}

	return &rascunho, true
}

func (s *LocalStore) Remover(chave string) {
	s.cache.Delete(chave)
	if err := s.persistir(); err != nil {
		logrus.WithError(err).Warn("Erro ao persistir remoção de rascunho local")
	}
}

func (s *LocalStore) persistir() error {
	if s.arquivo == "" {
		return nil
	}
	return s.cache.SaveFile(s.arquivo)
}

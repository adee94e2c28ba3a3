package painelclient

import (
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/draftstore"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

const (
	msgRascunhoLocal         = "Rascunho salvo localmente"
	msgRascunhoNaoEncontrado = "Nenhum rascunho encontrado"
)

// SalvarRascunho grava o rascunho no backend e, se ele estiver fora do ar,
// no armazenamento local. O rascunho nunca se perde por indisponibilidade.
func (c *PainelClient) SalvarRascunho(cotacaoID int, rascunho domain.Rascunho) (*domain.RascunhoResponse, domain.Fonte, error) {
	rascunho.CotacaoID = cotacaoID
	if rascunho.Timestamp.IsZero() {
		rascunho.Timestamp = c.agora()
	}

	var resp domain.RascunhoResponse
	if err := c.postCritico(caminhoCotacao(cotacaoID, "rascunho"), rascunho, &resp); err != nil {
		log.L.WithError(err).WithField("cotacao_id", cotacaoID).
			Warn("backend indisponível, salvando rascunho localmente")

		if err := c.rascunhos.Salvar(draftstore.ChaveRascunho(cotacaoID), rascunho); err != nil {
			return nil, domain.FonteLocal, err
		}

		return &domain.RascunhoResponse{
			Success:  true,
			Message:  msgRascunhoLocal,
			Rascunho: &rascunho,
		}, domain.FonteLocal, nil
	}

	// Mantém a cópia local em sincronia com a versão aceita pelo backend.
	if err := c.rascunhos.Salvar(draftstore.ChaveRascunho(cotacaoID), rascunho); err != nil {
		log.L.WithError(err).Warn("falha ao atualizar a cópia local do rascunho")
	}

	return &resp, domain.FonteRemota, nil
}

// CarregarRascunho recupera o rascunho do backend, caindo para a cópia local
// quando a busca remota falha ou não encontra nada.
func (c *PainelClient) CarregarRascunho(cotacaoID int) (*domain.RascunhoResponse, domain.Fonte, error) {
	var resp domain.RascunhoResponse
	err := c.getJSON(caminhoCotacao(cotacaoID, "rascunho"), nil, &resp)
	if err == nil && resp.Rascunho != nil {
		return &resp, domain.FonteRemota, nil
	}

	if err != nil {
		log.L.WithError(err).WithField("cotacao_id", cotacaoID).
			Warn("falha ao carregar rascunho remoto, tentando cópia local")
	}

	if rascunho, ok := c.rascunhos.Carregar(draftstore.ChaveRascunho(cotacaoID)); ok {
		return &domain.RascunhoResponse{
			Success:  true,
			Rascunho: rascunho,
		}, domain.FonteLocal, nil
	}

	return &domain.RascunhoResponse{
		Success: false,
		Message: msgRascunhoNaoEncontrado,
	}, domain.FonteLocal, nil
}

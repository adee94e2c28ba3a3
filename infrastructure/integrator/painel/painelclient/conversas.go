package painelclient

import (
	"fmt"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

// GetConversas busca o histórico de mensagens de uma cotação para um
// operador. Sem backend, a conversa aparece vazia em vez de quebrar o modal.
func (c *PainelClient) GetConversas(cotacaoID, operadorID int) (*domain.ConversasResponse, domain.Fonte, error) {
	caminho := fmt.Sprintf("/v133/cotacoes/%d/conversas/%d", cotacaoID, operadorID)

	var resp domain.ConversasResponse
	if err := c.getJSON(caminho, nil, &resp); err != nil {
		log.L.WithError(err).WithField("cotacao_id", cotacaoID).
			Warn("falha ao buscar conversas, exibindo conversa vazia")
		fallback := fallbackConversas()
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

// SalvarMensagem acrescenta uma mensagem à conversa. Escrita crítica, o erro
// propaga para o autor saber que a mensagem não foi registrada.
func (c *PainelClient) SalvarMensagem(cotacaoID, operadorID int, mensagem string) (*domain.MensagemResponse, error) {
	caminho := fmt.Sprintf("/v133/cotacoes/%d/conversas/%d/mensagens", cotacaoID, operadorID)
	corpo := map[string]string{"mensagem": mensagem}

	var resp domain.MensagemResponse
	if err := c.postCritico(caminho, corpo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

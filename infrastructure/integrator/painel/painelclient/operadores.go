package painelclient

import (
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

// ListarOperadores busca os operadores disponíveis para atribuição. Degrada
// para a equipe de demonstração, que preenche os seletores da interface.
func (c *PainelClient) ListarOperadores() (*domain.OperadoresResponse, domain.Fonte, error) {
	var resp domain.OperadoresResponse
	if err := c.getJSON("/v133/operadores", nil, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao listar operadores, usando dados de demonstração")
		fallback := fallbackOperadores()
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

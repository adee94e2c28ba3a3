package painelclient

import (
	"fmt"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

// AnalyticsGeral busca o relatório consolidado. A seção de analytics nunca
// quebra por indisponibilidade, degrada para os números de demonstração.
func (c *PainelClient) AnalyticsGeral() (*domain.AnalyticsGeralResponse, domain.Fonte, error) {
	var resp domain.AnalyticsGeralResponse
	if err := c.getJSON("/v133/analytics/geral", nil, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao buscar relatório geral, usando dados de demonstração")
		fallback := fallbackAnalyticsGeral()
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

func (c *PainelClient) AnalyticsEmpresas() (*domain.RankingEmpresasResponse, error) {
	var resp domain.RankingEmpresasResponse
	if err := c.getJSON("/v133/analytics/empresas/ranking", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) AnalyticsEmpresa(empresaID int) (*domain.MetricasEmpresaResponse, error) {
	var resp domain.MetricasEmpresaResponse
	if err := c.getJSON(fmt.Sprintf("/v133/analytics/empresas/%d/metricas", empresaID), nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) AnalyticsUsuarios() (*domain.RankingUsuariosResponse, error) {
	var resp domain.RankingUsuariosResponse
	if err := c.getJSON("/v133/analytics/usuarios/ranking", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

package painelclient

import (
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/dashboarding"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

// DashboardStats busca os cartões de resumo do dashboard. Degrada para as
// métricas de demonstração, que batem com as seis cotações de exemplo.
func (c *PainelClient) DashboardStats() (*domain.StatsResponse, domain.Fonte, error) {
	var resp domain.StatsResponse
	if err := c.getJSON("/v133/dashboard/stats", nil, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao buscar stats do dashboard, usando dados de demonstração")
		fallback := fallbackStats()
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

func (c *PainelClient) DashboardCharts() (*domain.GraficosResponse, domain.Fonte, error) {
	var resp domain.GraficosResponse
	if err := c.getJSON("/v133/dashboard/charts", nil, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao buscar gráficos do dashboard, usando dados de demonstração")
		fallback := fallbackCharts()
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

// DadosDashboard monta o dashboard completo a partir da listagem de cotações.
// Se a listagem falhar, processa o conjunto de demonstração, de modo que o
// resultado agregado sempre existe.
func (c *PainelClient) DadosDashboard() (*domain.DadosDashboard, domain.Fonte, error) {
	agora := c.agora()

	resp, err := c.ListarCotacoes(nil)
	if err != nil {
		log.L.WithError(err).Warn("falha ao listar cotações para o dashboard, usando dados de demonstração")
		dados := dashboarding.Processar(fallbackCotacoesDemo(agora), agora)
		return &dados, domain.FonteFallback, nil
	}

	dados := dashboarding.Processar(resp.Cotacoes, agora)
	return &dados, domain.FonteRemota, nil
}

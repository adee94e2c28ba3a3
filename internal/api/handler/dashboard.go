package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/dashboarding"
	"github.com/brcargo/cotacao-panel/internal/usecases/quoting"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

// DashboardStats resolve GET /api/v133/dashboard/stats derivando os contadores do
// conjunto completo de cotações.
func DashboardStats(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cotacoes, err := service.ListCotacoes(repository.FiltroCotacoes{})
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar estatísticas do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}

		dados := dashboarding.Processar(cotacoes, time.Now())

		writeJSON(w, http.StatusOK, domain.StatsResponse{
			Success: true,
			Stats: domain.StatsDashboard{
				TotalCotacoes:       dados.Metricas.Total,
				CotacoesFinalizadas: dados.Metricas.Finalizadas,
				CotacoesPendentes:   dados.Metricas.Pendentes,
				TaxaConversao:       dados.Metricas.TaxaConversao,
				ValorTotal:          dados.Metricas.ValorTotal,
			},
		})
	})
}

// DashboardCharts resolve GET /api/v133/dashboard/charts com os buckets de status
// e de modalidade já rotulados.
func DashboardCharts(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cotacoes, err := service.ListCotacoes(repository.FiltroCotacoes{})
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar gráficos do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}

		dados := dashboarding.Processar(cotacoes, time.Now())

		status := make([]domain.BucketGrafico, 0, len(dados.PorStatus))
		for _, contagem := range dados.PorStatus {
			status = append(status, domain.BucketGrafico{
				Label: contagem.Label,
				Count: contagem.Count,
			})
		}

		modalidade := make([]domain.BucketGrafico, 0, len(dados.PorModalidade))
		for _, contagem := range dados.PorModalidade {
			modalidade = append(modalidade, domain.BucketGrafico{
				Label: contagem.Label,
				Count: contagem.Count,
			})
		}

		writeJSON(w, http.StatusOK, domain.GraficosResponse{
			Success: true,
			Charts: domain.GraficosDashboard{
				Status:     status,
				Modalidade: modalidade,
			},
		})
	})
}

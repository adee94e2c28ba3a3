package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/reporting"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

func AnalyticsGeral(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relatorio, err := service.RelatorioGeral()
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar relatório geral")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.AnalyticsGeralResponse{
			Success:        true,
			RelatorioGeral: *relatorio,
		})
	})
}

// AnalyticsEmpresa resolve GET /api/v133/analytics/empresas/:id. O ranking
// compartilha o prefixo e é desviado pelo valor do parâmetro.
func AnalyticsEmpresa(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if idStr == "ranking" {
			ranking, err := service.RankingEmpresas()
			if err != nil {
				logrus.WithError(err).Error("Erro ao montar ranking de empresas")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
				return
			}

			writeJSON(w, http.StatusOK, domain.RankingEmpresasResponse{
				Success: true,
				Ranking: ranking,
			})
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de empresa inválido", nil)
			return
		}

		metricas, err := service.MetricasEmpresa(id)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar métricas da empresa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}
		if metricas == nil {
			apiErrors.WriteError(w, apiErrors.ErrEmpresaNotFound, "Empresa não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.MetricasEmpresaResponse{
			Success:  true,
			Metricas: *metricas,
		})
	})
}

// MetricasEmpresa resolve GET /api/v133/analytics/empresas/:id/metricas, o caminho
// explícito usado pelo painel nas telas de detalhe.
func MetricasEmpresa(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador de empresa inválido", nil)
			return
		}

		metricas, err := service.MetricasEmpresa(id)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar métricas da empresa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}
		if metricas == nil {
			apiErrors.WriteError(w, apiErrors.ErrEmpresaNotFound, "Empresa não encontrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.MetricasEmpresaResponse{
			Success:  true,
			Metricas: *metricas,
		})
	})
}

func RankingUsuarios(service reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ranking, err := service.RankingUsuarios()
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar ranking de operadores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.RankingUsuariosResponse{
			Success: true,
			Ranking: ranking,
		})
	})
}

package handler

import (
	"net/http"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/api/handler/router"
	"github.com/brcargo/cotacao-panel/internal/usecases/authenticating"
	"github.com/brcargo/cotacao-panel/internal/usecases/quoting"
	"github.com/brcargo/cotacao-panel/internal/usecases/registering"
	"github.com/brcargo/cotacao-panel/internal/usecases/reporting"
	"github.com/brcargo/cotacao-panel/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Auth(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(),
		},
		{
			Path:        "/api/auth/check-permission",
			Method:      http.MethodGet,
			Handler:     CheckPermission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
	}
}

// Empresas registra o CRUD de empresas. A exportação compartilha o padrão
// /api/empresas/:id e é desviada dentro do handler GetEmpresa; o template
// entra por /api/empresas/template/excel, que o roteador casa como :id/excel.
func Empresas(service registering.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/api/empresas",
			Method:      http.MethodGet,
			Handler:     ListEmpresas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/empresas",
			Method:      http.MethodGet,
			Handler:     ListEmpresas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/empresas",
			Method:      http.MethodPost,
			Handler:     CreateEmpresa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/empresas/:id",
			Method:      http.MethodGet,
			Handler:     GetEmpresa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/empresas/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEmpresa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/empresas/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEmpresa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/empresas/import",
			Method:      http.MethodPost,
			Handler:     ImportEmpresas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/empresas/import/excel",
			Method:      http.MethodPost,
			Handler:     ImportPlanilha(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/empresas/:id/excel",
			Method:      http.MethodGet,
			Handler:     TemplatePlanilha(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/empresas-prestadoras",
			Method:      http.MethodGet,
			Handler:     ListPrestadoras(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
	}
}

func Operadores(repo repository.UsuarioRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v133/operadores",
			Method:      http.MethodGet,
			Handler:     ListOperadores(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
	}
}

func Cotacoes(service quoting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v133/cotacoes",
			Method:      http.MethodGet,
			Handler:     ListCotacoes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/cotacoes",
			Method:      http.MethodPost,
			Handler:     CreateCotacao(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id",
			Method:      http.MethodGet,
			Handler:     GetCotacao(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/cotacoes/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCotacao(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/aceitar-operador",
			Method:      http.MethodPost,
			Handler:     AceitarOperador(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperadorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/negar-operador",
			Method:      http.MethodPost,
			Handler:     NegarOperador(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperadorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/enviar-resposta",
			Method:      http.MethodPost,
			Handler:     EnviarResposta(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperadorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/aceitar-consultor",
			Method:      http.MethodPost,
			Handler:     AceitarConsultor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/negar-consultor",
			Method:      http.MethodPost,
			Handler:     NegarConsultor(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/finalizar",
			Method:      http.MethodPost,
			Handler:     Finalizar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/reatribuir",
			Method:      http.MethodPost,
			Handler:     Reatribuir(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/rascunho",
			Method:      http.MethodGet,
			Handler:     GetRascunho(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/rascunho",
			Method:      http.MethodPost,
			Handler:     SalvarRascunho(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/conversas/:operador_id",
			Method:      http.MethodGet,
			Handler:     GetConversas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/cotacoes/:id/conversas/:operador_id/mensagens",
			Method:      http.MethodPost,
			Handler:     SalvarMensagem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
	}
}

func Dashboard(service quoting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v133/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     DashboardStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
		{
			Path:        "/api/v133/dashboard/charts",
			Method:      http.MethodGet,
			Handler:     DashboardCharts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.TodosPapeis()},
		},
	}
}

// Analytics registra os agregados. O ranking de empresas compartilha o padrão
// /api/v133/analytics/empresas/:id e é desviado dentro do handler AnalyticsEmpresa.
func Analytics(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/api/v133/analytics/geral",
			Method:      http.MethodGet,
			Handler:     AnalyticsGeral(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/analytics/empresas/:id",
			Method:      http.MethodGet,
			Handler:     AnalyticsEmpresa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/analytics/empresas/:id/metricas",
			Method:      http.MethodGet,
			Handler:     MetricasEmpresa(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
		{
			Path:        "/api/v133/analytics/usuarios/ranking",
			Method:      http.MethodGet,
			Handler:     RankingUsuarios(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ConsultorOuAdmin()},
		},
	}
}

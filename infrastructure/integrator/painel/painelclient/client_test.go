package painelclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/draftstore"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newTestClient(t *testing.T, baseURL string) *PainelClient {
	rascunhos, err := draftstore.New("")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Painel.BaseURL = baseURL
	cfg.Painel.RequestTimeout = 2 * time.Second
	cfg.Painel.PorPagina = 10

	client := NewClient(cfg, rascunhos).(*PainelClient)
	client.agora = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return client
}

// servidorIndisponivel devolve a URL de um servidor já encerrado, para que
// qualquer requisição falhe no transporte.
func servidorIndisponivel() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func TestAceitarCotacao_StatusSemCorpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/cotacoes/1/aceitar-operador", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.AceitarCotacao(1)

	require.Error(t, err)
	assert.Equal(t, "HTTP 503: Service Unavailable", err.Error())
}

func TestAceitarCotacao_PrefereMensagemDoServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "transição de \"solicitada\" para \"finalizada\" não permitida"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.AceitarCotacao(1)

	require.Error(t, err)
	assert.Equal(t, `transição de "solicitada" para "finalizada" não permitida`, err.Error())
}

func TestListarCotacoes_PropagaErro(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, err := client.ListarCotacoes(nil)

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestListarCotacoes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/cotacoes", r.URL.Path)
		assert.Equal(t, "finalizada", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"success": true, "cotacoes": [{"id": 5, "status": "finalizada"}], "total": 1}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, err := client.ListarCotacoes(map[string]string{"status": "finalizada"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Cotacoes, 1)
	assert.Equal(t, 5, resp.Cotacoes[0].ID)
}

func TestListarOperadores_Fallback(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.ListarOperadores()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)
	require.Len(t, resp.Operadores, 5)
	assert.Equal(t, "Maria Santos", resp.Operadores[0].Nome)
	assert.Equal(t, "carlos@brcargo.com", resp.Operadores[4].Email)
}

// Um backend respondendo nos caminhos versionados deve ser preferido aos
// dados de demonstração.
func TestListarOperadores_Remoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/operadores", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "operadores": [{"id": 9, "nome": "Real", "email": "real@brcargo.com"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, fonte, err := client.ListarOperadores()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteRemota, fonte)
	require.Len(t, resp.Operadores, 1)
	assert.Equal(t, "Real", resp.Operadores[0].Nome)
}

func TestDashboardStats_Remoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/dashboard/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "stats": {"total_cotacoes": 42, "cotacoes_finalizadas": 10, "cotacoes_pendentes": 32, "taxa_conversao": 24, "valor_total": 99000.5}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, fonte, err := client.DashboardStats()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteRemota, fonte)
	assert.Equal(t, 42, resp.Stats.TotalCotacoes)
	assert.Equal(t, 99000.5, resp.Stats.ValorTotal)
}

func TestListarEmpresas_FallbackPreservaPagina(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.ListarEmpresas(3, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)
	assert.Equal(t, 3, resp.CurrentPage)
	require.Len(t, resp.Empresas, 3)
	assert.Equal(t, "Transportadora ABC Ltda", resp.Empresas[0].RazaoSocial)
	assert.Equal(t, "12.345.678/0001-90", resp.Empresas[0].CNPJ)
}

func TestListarEmpresas_Remoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/empresas", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "SP", r.URL.Query().Get("estado"))
		_, _ = w.Write([]byte(`{"success": true, "empresas": [], "current_page": 2, "pages": 0, "total": 0, "per_page": 10}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, fonte, err := client.ListarEmpresas(2, map[string]string{"estado": "SP"})

	require.NoError(t, err)
	assert.Equal(t, domain.FonteRemota, fonte)
	assert.Equal(t, 2, resp.CurrentPage)
}

func TestDashboardStats_Fallback(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.DashboardStats()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)
	assert.Equal(t, 6, resp.Stats.TotalCotacoes)
	assert.Equal(t, 2, resp.Stats.CotacoesFinalizadas)
	assert.Equal(t, 4, resp.Stats.CotacoesPendentes)
	assert.Equal(t, 33, resp.Stats.TaxaConversao)
	assert.Equal(t, 14200.00, resp.Stats.ValorTotal)
}

func TestDashboardCharts_Fallback(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.DashboardCharts()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)
	assert.Equal(t, []domain.BucketGrafico{
		{Label: "Solicitadas", Count: 1},
		{Label: "Aceitas", Count: 2},
		{Label: "Enviadas", Count: 1},
		{Label: "Finalizadas", Count: 2},
	}, resp.Charts.Status)
	assert.Equal(t, []domain.BucketGrafico{
		{Label: "Rodoviário", Count: 4},
		{Label: "Marítimo", Count: 2},
	}, resp.Charts.Modalidade)
}

func TestDadosDashboard_FallbackDemo(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	dados, fonte, err := client.DadosDashboard()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)

	// O agregado é derivado das seis cotações de demonstração
	assert.Equal(t, 6, dados.Metricas.Total)
	assert.Equal(t, 2, dados.Metricas.Finalizadas)
	assert.Equal(t, 4, dados.Metricas.Pendentes)
	assert.Equal(t, 33, dados.Metricas.TaxaConversao)
	assert.Equal(t, 11700.0, dados.Metricas.ValorTotal)
}

func TestGetConversas_Fallback(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.GetConversas(1, 2)

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)
	assert.Empty(t, resp.Conversas)
	assert.Empty(t, resp.Mensagens)
}

func TestSalvarRascunho_LocalQuandoBackendCai(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.SalvarRascunho(7, domain.Rascunho{ValorFrete: 1800})

	require.NoError(t, err)
	assert.Equal(t, domain.FonteLocal, fonte)
	assert.True(t, resp.Success)
	assert.Equal(t, "Rascunho salvo localmente", resp.Message)
	require.NotNil(t, resp.Rascunho)
	assert.Equal(t, 7, resp.Rascunho.CotacaoID)

	// A cópia local responde pelas leituras enquanto o backend não volta
	carregado, fonte, err := client.CarregarRascunho(7)
	require.NoError(t, err)
	assert.Equal(t, domain.FonteLocal, fonte)
	assert.True(t, carregado.Success)
	assert.Equal(t, 1800.0, carregado.Rascunho.ValorFrete)
}

func TestCarregarRascunho_SemRascunho(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.CarregarRascunho(42)

	require.NoError(t, err)
	assert.Equal(t, domain.FonteLocal, fonte)
	assert.False(t, resp.Success)
	assert.Equal(t, "Nenhum rascunho encontrado", resp.Message)
	assert.Nil(t, resp.Rascunho)
}

func TestEnviarResposta_PreencheTimestamp(t *testing.T) {
	var recebido domain.RespostaCotacaoRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/cotacoes/3/enviar-resposta", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recebido))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.EnviarResposta(3, domain.RespostaCotacaoRequest{ValorFrete: 2500})

	require.NoError(t, err)
	assert.Equal(t, 2500.0, recebido.ValorFrete)
	assert.Equal(t, "2024-06-15T12:00:00Z", recebido.Timestamp)
}

func TestNegarCotacao_MotivoPadrao(t *testing.T) {
	var recebido domain.NegarCotacaoRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recebido))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.NegarCotacao(4, "")

	require.NoError(t, err)
	assert.Equal(t, "Cotação negada pelo operador", recebido.Motivo)
}

func TestReatribuirCotacao_ExigeNovoOperador(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	_, err := client.ReatribuirCotacao(1, domain.ReatribuirRequest{})

	assert.Error(t, err)
}

func TestAnalyticsGeral_Fallback(t *testing.T) {
	client := newTestClient(t, servidorIndisponivel())

	resp, fonte, err := client.AnalyticsGeral()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteFallback, fonte)
	assert.Equal(t, 25, resp.RelatorioGeral.TotalCotacoesFinalizadas)
	assert.Equal(t, 150000.0, resp.RelatorioGeral.ValorTotalCotacoes)
	assert.Equal(t, 2.5, resp.RelatorioGeral.TempoMedioResposta)
}

func TestAnalyticsGeral_Remoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/analytics/geral", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "relatorio_geral": {"total_cotacoes_finalizadas": 7}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, fonte, err := client.AnalyticsGeral()

	require.NoError(t, err)
	assert.Equal(t, domain.FonteRemota, fonte)
	assert.Equal(t, 7, resp.RelatorioGeral.TotalCotacoesFinalizadas)
}

func TestCheckPermission_QueryString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/check-permission", r.URL.Path)
		assert.Equal(t, "aprovar_cotacao", r.URL.Query().Get("permission"))
		_, _ = w.Write([]byte(`{"success": true, "permitido": true, "permissao": "aprovar_cotacao"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, err := client.CheckPermission("aprovar_cotacao")

	require.NoError(t, err)
	assert.True(t, resp.Permitido)
}

func TestSalvarMensagem_CaminhoMensagens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v133/cotacoes/4/conversas/2/mensagens", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	resp, err := client.SalvarMensagem(4, 2, "Olá")

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestAceitarCotacao_CorpoObjetoVazio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corpo, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(corpo))
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.AceitarCotacao(1)

	require.NoError(t, err)
}

func TestBaixarTemplateExcel_Caminho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/empresas/template/excel", r.URL.Path)
		_, _ = w.Write([]byte("razao_social,cnpj,cidade,estado,modalidade\n"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	conteudo, err := client.BaixarTemplateExcel()

	require.NoError(t, err)
	assert.Contains(t, string(conteudo), "razao_social")
}

func TestExportarEmpresasBinario_ChaveFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/empresas/export", r.URL.Path)
		assert.Equal(t, "excel", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte("conteudo"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	_, err := client.ExportarEmpresasBinario("excel")

	require.NoError(t, err)
}

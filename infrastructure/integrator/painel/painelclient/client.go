// Package painelclient centraliza todas as chamadas do painel administrativo
// ao backend de cotações. Cada operação é uma única ida e volta HTTP.
//
// A política de erro é assimétrica, por endpoint: operações críticas de
// escrita (aceitar/negar/enviar/finalizar/reatribuir cotação, mensagens)
// propagam um erro normalizado; leituras de listagem/agregados degradam
// silenciosamente para payloads fixos de demonstração, marcados com
// domain.FonteFallback. Rascunhos têm um caminho secundário de persistência
// local. Essa assimetria reproduz o comportamento observado do painel e não
// deve ser unificada.
package painelclient

import (
	"io"
	"net/http"
	"time"

	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/draftstore"
)

type Client interface {
	// Autenticação
	Login(username, password string) (*domain.LoginResponse, error)
	Logout() (*domain.LogoutResponse, error)
	CheckPermission(permissao string) (*domain.PermissaoResponse, error)

	// Empresas
	ListarEmpresas(pagina int, filtros map[string]string) (*domain.EmpresasResponse, domain.Fonte, error)
	GetEmpresaByID(id int) (*domain.EmpresaResponse, error)
	CriarEmpresa(empresa domain.Empresa) (*domain.EmpresaResponse, error)
	AtualizarEmpresa(id int, empresa domain.Empresa) (*domain.EmpresaResponse, error)
	ExcluirEmpresa(id int) (*domain.EmpresaResponse, error)
	ExportarEmpresas() (*domain.EmpresasResponse, domain.Fonte, error)
	ExportarEmpresasBinario(formato string) ([]byte, error)
	ImportarEmpresas(empresas []domain.Empresa) (*domain.ImportacaoResponse, error)
	ImportarExcel(nomeArquivo string, conteudo io.Reader) (*domain.ImportacaoResponse, error)
	BaixarTemplateExcel() ([]byte, error)
	EmpresasPrestadoras() (*domain.EmpresasPrestadorasResponse, domain.Fonte, error)

	// Cotações
	ListarCotacoes(filtros map[string]string) (*domain.CotacoesResponse, error)
	GetCotacaoByID(id int) (*domain.CotacaoResponse, error)
	CriarCotacao(cotacao domain.Cotacao) (*domain.CotacaoResponse, error)
	AtualizarCotacao(id int, cotacao domain.Cotacao) (*domain.CotacaoResponse, error)
	AceitarCotacao(id int) (*domain.CotacaoResponse, error)
	NegarCotacao(id int, motivo string) (*domain.CotacaoResponse, error)
	EnviarResposta(id int, resposta domain.RespostaCotacaoRequest) (*domain.CotacaoResponse, error)
	FinalizarCotacao(id int, observacoes string) (*domain.CotacaoResponse, error)
	AprovarCotacao(id int, observacoes string) (*domain.CotacaoResponse, error)
	RecusarCotacao(id int, observacoes string) (*domain.CotacaoResponse, error)
	ReatribuirCotacao(id int, reatribuicao domain.ReatribuirRequest) (*domain.CotacaoResponse, error)

	// Conversas e rascunhos
	GetConversas(cotacaoID, operadorID int) (*domain.ConversasResponse, domain.Fonte, error)
	SalvarMensagem(cotacaoID, operadorID int, mensagem string) (*domain.MensagemResponse, error)
	SalvarRascunho(cotacaoID int, rascunho domain.Rascunho) (*domain.RascunhoResponse, domain.Fonte, error)
	CarregarRascunho(cotacaoID int) (*domain.RascunhoResponse, domain.Fonte, error)

	// Operadores e analytics
	ListarOperadores() (*domain.OperadoresResponse, domain.Fonte, error)
	AnalyticsGeral() (*domain.AnalyticsGeralResponse, domain.Fonte, error)
	AnalyticsEmpresas() (*domain.RankingEmpresasResponse, error)
	AnalyticsEmpresa(empresaID int) (*domain.MetricasEmpresaResponse, error)
	AnalyticsUsuarios() (*domain.RankingUsuariosResponse, error)

	// Dashboard
	DashboardStats() (*domain.StatsResponse, domain.Fonte, error)
	DashboardCharts() (*domain.GraficosResponse, domain.Fonte, error)
	DadosDashboard() (*domain.DadosDashboard, domain.Fonte, error)
}

type PainelClient struct {
	httpClient *http.Client
	cfg        *config.Config
	rascunhos  draftstore.Store
	agora      func() time.Time
}

func NewClient(cfg *config.Config, rascunhos draftstore.Store) Client {
	timeout := cfg.Painel.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &PainelClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg:       cfg,
		rascunhos: rascunhos,
		agora:     time.Now,
	}
}

// Package view implementa a orquestração de navegação do painel: troca de
// seções, visibilidade de rodapé, modais, formulários e paginação. A lógica
// de cada página (listar empresas, renderizar cotações) fica fora, injetada
// como callbacks de carregamento.
package view

import (
	"sync"
	"time"

	"github.com/brcargo/cotacao-panel/pkg/log"
)

// Secao identifica uma seção navegável do painel.
type Secao string

const (
	SecaoDashboard Secao = "dashboard"
	SecaoEmpresas  Secao = "empresas"
	SecaoCadastro  Secao = "cadastro"
	SecaoCotacoes  Secao = "cotacoes"
	SecaoAnalytics Secao = "analytics"
)

const (
	// AtrasoCarregamentoDashboard espera o layout assentar antes de carregar
	// os dados do dashboard.
	AtrasoCarregamentoDashboard = 100 * time.Millisecond

	// AtrasoVarreduraModais espera o carregamento completo do documento
	// antes de configurar os modais.
	AtrasoVarreduraModais = time.Second
)

// Secoes é a enumeração completa, na ordem da barra de navegação.
var Secoes = []Secao{SecaoDashboard, SecaoEmpresas, SecaoCadastro, SecaoCotacoes, SecaoAnalytics}

// containerDaSecao resolve o id do contêiner de cada seção. Cotações e
// analytics vivem em contêineres especiais com ids próprios.
func containerDaSecao(secao Secao) string {
	switch secao {
	case SecaoCotacoes:
		return "secao-cotacoes"
	case SecaoAnalytics:
		return "secao-analytics-v133"
	default:
		return string(secao)
	}
}

// Loaders são as rotinas de carregamento de cada seção, fornecidas pelos
// módulos de página. Entradas nulas são ignoradas.
type Loaders struct {
	Dashboard func()
	Empresas  func()
	Cadastro  func()
	Cotacoes  func()
	Analytics func()
}

// Controller mantém a seção corrente e aplica as transições de navegação.
// Nenhuma transição é rejeitada; navegações rápidas em sequência resolvem
// por último-escreve-vence, sem cancelar carregamentos em voo.
type Controller struct {
	doc     Document
	loaders Loaders
	logger  log.Logger

	mu    sync.Mutex
	secao Secao
}

func New(doc Document, loaders Loaders, logger log.Logger) *Controller {
	if logger == nil {
		logger = log.L
	}

	return &Controller{
		doc:     doc,
		loaders: loaders,
		logger:  logger,
		secao:   SecaoDashboard,
	}
}

// Init configura o comportamento padrão dos modais depois de uma espera de
// assentamento. O timer não é cancelável.
func (c *Controller) Init() {
	time.AfterFunc(AtrasoVarreduraModais, c.SetupAllModals)
}

// CurrentSection devolve a seção visível no momento.
func (c *Controller) CurrentSection() Secao {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.secao
}

// ShowSection esconde todos os contêineres, exibe o da seção pedida e dispara
// a rotina de carregamento correspondente. O dashboard carrega após um
// pequeno atraso, em timer solto, que não é cancelado se o usuário navegar
// de novo antes de ele disparar.
func (c *Controller) ShowSection(secao Secao) {
	for _, s := range Secoes {
		c.doc.Hide(string(s))
	}
	c.doc.Hide("secao-cotacoes")
	c.doc.Hide("secao-analytics-v133")

	c.mu.Lock()
	c.secao = secao
	c.mu.Unlock()

	c.doc.Show(containerDaSecao(secao))

	c.logger.WithField("secao", string(secao)).Debug("seção exibida")

	switch secao {
	case SecaoDashboard:
		if c.loaders.Dashboard != nil {
			time.AfterFunc(AtrasoCarregamentoDashboard, c.loaders.Dashboard)
		}
	case SecaoEmpresas:
		if c.loaders.Empresas != nil {
			c.loaders.Empresas()
		}
	case SecaoCadastro:
		if c.loaders.Cadastro != nil {
			c.loaders.Cadastro()
		}
	case SecaoCotacoes:
		if c.loaders.Cotacoes != nil {
			c.loaders.Cotacoes()
		}
	case SecaoAnalytics:
		if c.loaders.Analytics != nil {
			c.loaders.Analytics()
		}
	}

	c.atualizarRodape(secao)
}

// Rodapé oculto somente na seção de analytics.
func (c *Controller) atualizarRodape(secao Secao) {
	for _, id := range c.doc.FooterIDs() {
		if secao == SecaoAnalytics {
			c.doc.Hide(id)
		} else {
			c.doc.Show(id)
		}
	}
}

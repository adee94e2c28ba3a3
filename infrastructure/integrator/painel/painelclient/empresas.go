package painelclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

// ListarEmpresas busca uma página do cadastro. Se o backend não responder, a
// listagem degrada para as três empresas de demonstração, preservando o
// número de página pedido.
func (c *PainelClient) ListarEmpresas(pagina int, filtros map[string]string) (*domain.EmpresasResponse, domain.Fonte, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pagina))
	query.Set("per_page", strconv.Itoa(c.cfg.Painel.PorPagina))
	for chave, valor := range filtros {
		if valor != "" {
			query.Set(chave, valor)
		}
	}

	var resp domain.EmpresasResponse
	if err := c.getJSON("/v133/empresas", query, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao listar empresas, usando dados de demonstração")
		fallback := fallbackEmpresas(pagina)
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

func (c *PainelClient) GetEmpresaByID(id int) (*domain.EmpresaResponse, error) {
	var resp domain.EmpresaResponse
	if err := c.getJSON(fmt.Sprintf("/empresas/%d", id), nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) CriarEmpresa(empresa domain.Empresa) (*domain.EmpresaResponse, error) {
	var resp domain.EmpresaResponse
	if err := c.postCritico("/empresas", empresa, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) AtualizarEmpresa(id int, empresa domain.Empresa) (*domain.EmpresaResponse, error) {
	var resp domain.EmpresaResponse
	if err := c.sendJSON(http.MethodPut, fmt.Sprintf("/empresas/%d", id), empresa, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) ExcluirEmpresa(id int) (*domain.EmpresaResponse, error) {
	var resp domain.EmpresaResponse
	if err := c.sendJSON(http.MethodDelete, fmt.Sprintf("/empresas/%d", id), nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ExportarEmpresas devolve o cadastro completo em JSON. Sem backend, exporta
// as empresas de demonstração para o download não ficar vazio.
func (c *PainelClient) ExportarEmpresas() (*domain.EmpresasResponse, domain.Fonte, error) {
	var resp domain.EmpresasResponse
	if err := c.getJSON("/empresas/export", url.Values{"format": {"json"}}, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao exportar empresas, usando dados de demonstração")
		fallback := fallbackEmpresas(1)
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

// ExportarEmpresasBinario baixa o export em formato binário (csv ou excel).
// Download de arquivo não tem fallback sensato, então o erro propaga.
func (c *PainelClient) ExportarEmpresasBinario(formato string) ([]byte, error) {
	return c.getBinario("/empresas/export", url.Values{"format": {formato}})
}

func (c *PainelClient) ImportarEmpresas(empresas []domain.Empresa) (*domain.ImportacaoResponse, error) {
	var resp domain.ImportacaoResponse
	if err := c.postCritico("/empresas/import", empresas, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) ImportarExcel(nomeArquivo string, conteudo io.Reader) (*domain.ImportacaoResponse, error) {
	var resp domain.ImportacaoResponse
	if err := c.postMultipart("/empresas/import/excel", "arquivo", nomeArquivo, conteudo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) BaixarTemplateExcel() ([]byte, error) {
	return c.getBinario("/empresas/template/excel", nil)
}

// EmpresasPrestadoras lista as transportadoras selecionáveis no formulário de
// resposta. Degrada para a lista fixa de prestadoras BRCargo.
func (c *PainelClient) EmpresasPrestadoras() (*domain.EmpresasPrestadorasResponse, domain.Fonte, error) {
	var resp domain.EmpresasPrestadorasResponse
	if err := c.getJSON("/v133/empresas-prestadoras", nil, &resp); err != nil {
		log.L.WithError(err).Warn("falha ao listar prestadoras, usando dados de demonstração")
		fallback := fallbackEmpresasPrestadoras()
		return &fallback, domain.FonteFallback, nil
	}

	return &resp, domain.FonteRemota, nil
}

package painelclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/brcargo/cotacao-panel/internal/domain"
)

// MotivoNegacaoPadrao é usado quando o operador nega sem informar motivo.
const MotivoNegacaoPadrao = "Cotação negada pelo operador"

// ListarCotacoes busca as cotações visíveis ao usuário logado. A listagem do
// painel de cotações propaga o erro, diferente das listas auxiliares.
func (c *PainelClient) ListarCotacoes(filtros map[string]string) (*domain.CotacoesResponse, error) {
	query := url.Values{}
	for chave, valor := range filtros {
		if valor != "" {
			query.Set(chave, valor)
		}
	}

	var resp domain.CotacoesResponse
	if err := c.getJSON("/v133/cotacoes", query, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) GetCotacaoByID(id int) (*domain.CotacaoResponse, error) {
	var resp domain.CotacaoResponse
	if err := c.getJSON(caminhoCotacao(id, ""), nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) CriarCotacao(cotacao domain.Cotacao) (*domain.CotacaoResponse, error) {
	var resp domain.CotacaoResponse
	if err := c.postCritico("/v133/cotacoes", cotacao, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) AtualizarCotacao(id int, cotacao domain.Cotacao) (*domain.CotacaoResponse, error) {
	var resp domain.CotacaoResponse
	if err := c.sendJSON(http.MethodPut, caminhoCotacao(id, ""), cotacao, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// AceitarCotacao assume a cotação para o operador logado. Operação crítica, o
// erro chega normalizado para a interface exibir.
func (c *PainelClient) AceitarCotacao(id int) (*domain.CotacaoResponse, error) {
	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "aceitar-operador"), struct{}{}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) NegarCotacao(id int, motivo string) (*domain.CotacaoResponse, error) {
	if motivo == "" {
		motivo = MotivoNegacaoPadrao
	}

	corpo := domain.NegarCotacaoRequest{Motivo: motivo}

	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "negar-operador"), corpo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// EnviarResposta submete a proposta comercial do operador. O timestamp é
// preenchido aqui para o backend registrar o momento do envio.
func (c *PainelClient) EnviarResposta(id int, resposta domain.RespostaCotacaoRequest) (*domain.CotacaoResponse, error) {
	if resposta.Timestamp == "" {
		resposta.Timestamp = c.agora().Format(time.RFC3339)
	}

	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "enviar-resposta"), resposta, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) FinalizarCotacao(id int, observacoes string) (*domain.CotacaoResponse, error) {
	corpo := domain.ConsultorDecisaoRequest{Observacoes: observacoes}

	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "finalizar"), corpo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) AprovarCotacao(id int, observacoes string) (*domain.CotacaoResponse, error) {
	corpo := domain.ConsultorDecisaoRequest{Observacoes: observacoes}

	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "aceitar-consultor"), corpo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) RecusarCotacao(id int, observacoes string) (*domain.CotacaoResponse, error) {
	corpo := domain.ConsultorDecisaoRequest{Observacoes: observacoes}

	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "negar-consultor"), corpo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ReatribuirCotacao transfere a cotação para outro operador, levando junto o
// histórico de mensagens da conversa atual.
func (c *PainelClient) ReatribuirCotacao(id int, reatribuicao domain.ReatribuirRequest) (*domain.CotacaoResponse, error) {
	if reatribuicao.NovoOperadorID == 0 {
		return nil, fmt.Errorf("reatribuição da cotação %d sem operador de destino", id)
	}

	var resp domain.CotacaoResponse
	if err := c.postCritico(caminhoCotacao(id, "reatribuir"), reatribuicao, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

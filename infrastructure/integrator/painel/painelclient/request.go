package painelclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// corpoErro é a forma mínima do corpo de erro do backend.
type corpoErro struct {
	Message string `json:"message"`
}

func (c *PainelClient) montarURL(caminho string, query url.Values) string {
	completa := c.cfg.Painel.BaseURL + caminho
	if len(query) > 0 {
		completa += "?" + query.Encode()
	}
	return completa
}

// getJSON executa um GET e decodifica o corpo em out. Status fora de 2xx vira
// erro simples; cabe ao chamador decidir entre propagar e degradar.
func (c *PainelClient) getJSON(caminho string, query url.Values, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.montarURL(caminho, query), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiErrors.NewRequestError(resp.StatusCode, "")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

// getBinario executa um GET e devolve o corpo bruto (export/template).
func (c *PainelClient) getBinario(caminho string, query url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.montarURL(caminho, query), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrors.NewRequestError(resp.StatusCode, "")
	}

	return io.ReadAll(resp.Body)
}

// sendJSON executa uma requisição com corpo JSON e decodifica a resposta.
// Mesma política de erro simples do getJSON.
func (c *PainelClient) sendJSON(metodo, caminho string, corpo any, out any) error {
	var leitor io.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo")
		}
		leitor = bytes.NewReader(dados)
	}

	req, err := http.NewRequest(metodo, c.montarURL(caminho, nil), leitor)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiErrors.NewRequestError(resp.StatusCode, "")
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

// postCritico executa um POST de operação crítica. Em status de falha devolve
// um RequestError cuja mensagem prefere o campo `message` do corpo do servidor
// e, sem corpo decodificável, assume "HTTP <status>: <statusText>".
func (c *PainelClient) postCritico(caminho string, corpo any, out any) error {
	var leitor io.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo")
		}
		leitor = bytes.NewReader(dados)
	}

	req, err := http.NewRequest(http.MethodPost, c.montarURL(caminho, nil), leitor)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var decodificado corpoErro
		if err := json.NewDecoder(resp.Body).Decode(&decodificado); err != nil {
			decodificado.Message = ""
		}
		return apiErrors.NewRequestError(resp.StatusCode, decodificado.Message)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

// postMultipart envia um arquivo via multipart/form-data (importação de planilha).
func (c *PainelClient) postMultipart(caminho, campo, nomeArquivo string, conteudo io.Reader, out any) error {
	var buffer bytes.Buffer
	escritor := multipart.NewWriter(&buffer)

	parte, err := escritor.CreateFormFile(campo, nomeArquivo)
	if err != nil {
		return errors.Wrap(err, "erro ao montar o formulário")
	}
	if _, err := io.Copy(parte, conteudo); err != nil {
		return errors.Wrap(err, "erro ao copiar o arquivo")
	}
	if err := escritor.Close(); err != nil {
		return errors.Wrap(err, "erro ao finalizar o formulário")
	}

	req, err := http.NewRequest(http.MethodPost, c.montarURL(caminho, nil), &buffer)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", escritor.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var decodificado corpoErro
		if err := json.NewDecoder(resp.Body).Decode(&decodificado); err != nil {
			decodificado.Message = ""
		}
		return apiErrors.NewRequestError(resp.StatusCode, decodificado.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

func caminhoCotacao(id int, sufixo string) string {
	if sufixo == "" {
		return fmt.Sprintf("/v133/cotacoes/%d", id)
	}
	return fmt.Sprintf("/v133/cotacoes/%d/%s", id, sufixo)
}

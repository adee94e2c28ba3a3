package painelclient

import (
	"net/http"
	"net/url"

	"github.com/brcargo/cotacao-panel/internal/domain"
)

// Login autentica o usuário no backend. Falhas de credencial chegam como
// RequestError com a mensagem do servidor.
func (c *PainelClient) Login(username, password string) (*domain.LoginResponse, error) {
	corpo := domain.LoginRequest{
		Username: username,
		Password: password,
	}

	var resp domain.LoginResponse
	if err := c.postCritico("/auth/login", corpo, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) Logout() (*domain.LogoutResponse, error) {
	var resp domain.LogoutResponse
	if err := c.sendJSON(http.MethodPost, "/auth/logout", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *PainelClient) CheckPermission(permissao string) (*domain.PermissaoResponse, error) {
	var resp domain.PermissaoResponse
	if err := c.getJSON("/auth/check-permission", url.Values{"permission": {permissao}}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

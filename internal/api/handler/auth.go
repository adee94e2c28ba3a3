package handler

import (
	"encoding/json"
	"net/http"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/authenticating"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
	"github.com/brcargo/cotacao-panel/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, usuario, err := service.LoginUser(req.Username, req.Password)
		if err != nil {
			apiErrors.WriteError(w, authenticating.CodigoDoErro(err), err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.LoginResponse{
			Success: true,
			Token:   token,
			Usuario: usuario,
		})
	})
}

// Logout é sem estado do lado do servidor: o painel descarta o token.
func Logout() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.LogoutResponse{
			Success: true,
			Message: "Sessão encerrada",
		})
	})
}

func CheckPermission(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		permissao := r.URL.Query().Get("permission")
		if permissao == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Permissão é obrigatória", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.PermissaoResponse{
			Success:   true,
			Permitido: service.CheckPermission(claims, permissao),
			Permissao: permissao,
		})
	})
}

package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

// PapelMiddleware restringe a rota aos papéis informados.
func PapelMiddleware(papeisPermitidos []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			permitido := false
			for _, papel := range papeisPermitidos {
				if userClaims.Papel == papel {
					permitido = true
					break
				}
			}

			if !permitido {
				logrus.Warningf("Acesso negado para usuário ID=%d, Papel=%s", userClaims.UserID, userClaims.Papel)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return PapelMiddleware([]string{domain.PapelAdmin})
}

// ConsultorOuAdmin permite acesso para consultores e administradores
func ConsultorOuAdmin() func(http.Handler) http.Handler {
	return PapelMiddleware([]string{domain.PapelAdmin, domain.PapelConsultor})
}

// OperadorOuAdmin permite acesso para operadores e administradores
func OperadorOuAdmin() func(http.Handler) http.Handler {
	return PapelMiddleware([]string{domain.PapelAdmin, domain.PapelOperador})
}

// TodosPapeis permite acesso para qualquer usuário autenticado
func TodosPapeis() func(http.Handler) http.Handler {
	return PapelMiddleware([]string{domain.PapelAdmin, domain.PapelConsultor, domain.PapelOperador})
}

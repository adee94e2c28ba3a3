package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brcargo/cotacao-panel/internal/domain"
)

func requisicaoComPapel(papel string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/empresas", nil)
	claims := &domain.Claims{UserID: 1, Username: "teste", Papel: papel}
	return req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
}

func TestPapelMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		papel      string
		esperado   int
	}{
		{"admin em rota de admin", AdminOnly(), domain.PapelAdmin, http.StatusOK},
		{"operador em rota de admin", AdminOnly(), domain.PapelOperador, http.StatusForbidden},
		{"consultor em rota de consultor", ConsultorOuAdmin(), domain.PapelConsultor, http.StatusOK},
		{"operador em rota de consultor", ConsultorOuAdmin(), domain.PapelOperador, http.StatusForbidden},
		{"operador em rota de operador", OperadorOuAdmin(), domain.PapelOperador, http.StatusOK},
		{"consultor em rota de operador", OperadorOuAdmin(), domain.PapelConsultor, http.StatusForbidden},
		{"qualquer papel autenticado", TodosPapeis(), domain.PapelOperador, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := tc.middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requisicaoComPapel(tc.papel))

			assert.Equal(t, tc.esperado, rec.Code)
		})
	}
}

func TestPapelMiddleware_SemClaims(t *testing.T) {
	handler := TodosPapeis()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/empresas", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

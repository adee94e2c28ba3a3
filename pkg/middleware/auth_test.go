package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/brcargo/cotacao-panel/infrastructure/repository/mocks"
	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/authenticating"
)

func novoAuthenticator(t *testing.T) (authenticating.Authenticator, string) {
	ctrl := gomock.NewController(t)
	usuarioRepo := mocks.NewMockUsuarioRepository(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)

	usuarioRepo.EXPECT().
		GetUsuarioByUsername("maria").
		Return(&domain.Usuario{
			ID:           7,
			Username:     "maria",
			Nome:         "Maria Santos",
			Papel:        domain.PapelConsultor,
			Ativo:        true,
			PasswordHash: string(hash),
		}, nil)

	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"

	authService := authenticating.NewService(usuarioRepo, cfg)

	token, _, err := authService.LoginUser("maria", "senha123")
	require.NoError(t, err)

	return authService, token
}

func proximoQueRegistraClaims(chamado *bool, claims **domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*chamado = true
		if c, ok := r.Context().Value(ContextKeyUser).(*domain.Claims); ok {
			*claims = c
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_RotaPublicaSemToken(t *testing.T) {
	authService, _ := novoAuthenticator(t)

	var chamado bool
	var claims *domain.Claims
	handler := AuthMiddleware(authService)(proximoQueRegistraClaims(&chamado, &claims))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, chamado)
	assert.Nil(t, claims)
}

func TestAuthMiddleware_SemAuthorization(t *testing.T) {
	authService, _ := novoAuthenticator(t)

	var chamado bool
	var claims *domain.Claims
	handler := AuthMiddleware(authService)(proximoQueRegistraClaims(&chamado, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/v133/cotacoes", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.False(t, chamado)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_SemPrefixoBearer(t *testing.T) {
	authService, token := novoAuthenticator(t)

	var chamado bool
	var claims *domain.Claims
	handler := AuthMiddleware(authService)(proximoQueRegistraClaims(&chamado, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/v133/cotacoes", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.False(t, chamado)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_TokenValidoInjetaClaims(t *testing.T) {
	authService, token := novoAuthenticator(t)

	var chamado bool
	var claims *domain.Claims
	handler := AuthMiddleware(authService)(proximoQueRegistraClaims(&chamado, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/v133/cotacoes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.True(t, chamado)
	require.NotNil(t, claims)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.PapelConsultor, claims.Papel)
}

func TestAuthMiddleware_TokenAdulterado(t *testing.T) {
	authService, token := novoAuthenticator(t)

	var chamado bool
	var claims *domain.Claims
	handler := AuthMiddleware(authService)(proximoQueRegistraClaims(&chamado, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/v133/cotacoes", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.False(t, chamado)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

var (
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrUsuarioDesativado    = errors.New("conta desativada")
	ErrTokenInvalido        = errors.New("token inválido")
)

// Permissões concedidas por papel. Admin tem todas.
var permissoesPorPapel = map[string][]string{
	domain.PapelConsultor: {"ver_cotacoes", "aprovar_cotacao", "solicitar_cotacao", "ver_analytics"},
	domain.PapelOperador:  {"ver_cotacoes", "responder_cotacao"},
}

type Authenticator interface {
	LoginUser(username, password string) (string, *domain.Usuario, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CheckPermission(claims *domain.Claims, permissao string) bool
}

type Service struct {
	usuarioRepo repository.UsuarioRepository
	cfg         *config.Config
}

func NewService(usuarioRepo repository.UsuarioRepository, cfg *config.Config) Authenticator {
	return &Service{
		usuarioRepo: usuarioRepo,
		cfg:         cfg,
	}
}

// LoginUser valida as credenciais e devolve o token JWT junto com o perfil
// do usuário, já sem o hash de senha.
func (s *Service) LoginUser(username, password string) (string, *domain.Usuario, error) {
	if username == "" || password == "" {
		return "", nil, ErrCredenciaisInvalidas
	}

	username = strings.TrimSpace(strings.ToLower(username))

	usuario, err := s.usuarioRepo.GetUsuarioByUsername(username)
	if err != nil {
		return "", nil, err
	}

	if usuario == nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	if !usuario.Ativo {
		return "", nil, ErrUsuarioDesativado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	token, err := s.generateJWT(usuario)
	if err != nil {
		return "", nil, err
	}

	usuario.PasswordHash = ""
	return token, usuario, nil
}

func (s *Service) generateJWT(usuario *domain.Usuario) (string, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl == 0 {
		ttl = 8 * time.Hour
	}

	claims := domain.Claims{
		UserID:   usuario.ID,
		Username: usuario.Username,
		Papel:    usuario.Papel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}

// CheckPermission decide se o papel das claims concede a permissão pedida.
func (s *Service) CheckPermission(claims *domain.Claims, permissao string) bool {
	if claims == nil {
		return false
	}

	if claims.Papel == domain.PapelAdmin {
		return true
	}

	for _, p := range permissoesPorPapel[claims.Papel] {
		if p == permissao {
			return true
		}
	}

	return false
}

// CodigoDoErro traduz os erros de autenticação para o catálogo da API.
func CodigoDoErro(err error) string {
	switch {
	case errors.Is(err, ErrCredenciaisInvalidas):
		return apiErrors.ErrInvalidCredentials
	case errors.Is(err, ErrUsuarioDesativado):
		return apiErrors.ErrUserDisabled
	case errors.Is(err, ErrTokenInvalido):
		return apiErrors.ErrInvalidToken
	default:
		return apiErrors.ErrInternalServer
	}
}

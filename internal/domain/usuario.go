package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de usuário do painel
const (
	PapelAdmin     = "admin"
	PapelConsultor = "consultor"
	PapelOperador  = "operador"
)

type Usuario struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	Papel        string     `json:"papel"`
	Ativo        bool       `json:"ativo"`
	PasswordHash string     `json:"-"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Claims são as claims do token JWT emitido no login.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Papel    string `json:"papel"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token,omitempty"`
	Usuario *Usuario `json:"usuario,omitempty"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type PermissaoResponse struct {
	Success   bool   `json:"success"`
	Permitido bool   `json:"permitido"`
	Permissao string `json:"permissao"`
}

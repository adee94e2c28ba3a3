package apiErrors

import (
	"fmt"
	"net/http"
)

// RequestError é o erro normalizado que o gateway do painel devolve quando um
// endpoint crítico responde com status de falha. A mensagem prioriza o campo
// `message` do corpo de erro do servidor; sem corpo decodificável, assume o
// formato "HTTP <status>: <statusText>".
type RequestError struct {
	StatusCode int
	Mensagem   string
}

func (e *RequestError) Error() string {
	if e.Mensagem != "" {
		return e.Mensagem
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NewRequestError cria um RequestError a partir do status HTTP e da mensagem
// decodificada do corpo (vazia quando o corpo não era decodificável).
func NewRequestError(statusCode int, mensagem string) *RequestError {
	return &RequestError{
		StatusCode: statusCode,
		Mensagem:   mensagem,
	}
}

package domain

import "time"

// Mensagem é uma entrada da conversa entre consultor e operador sobre uma
// cotação. A lista é apenas de acréscimo, por par (cotação, operador).
type Mensagem struct {
	ID         int       `json:"id"`
	CotacaoID  int       `json:"cotacao_id"`
	OperadorID int       `json:"operador_id"`
	Autor      string    `json:"autor"`
	Mensagem   string    `json:"mensagem"`
	Timestamp  time.Time `json:"timestamp"`
}

type ConversasResponse struct {
	Success   bool       `json:"success"`
	Conversas []Mensagem `json:"conversas"`
	Mensagens []Mensagem `json:"mensagens"`
}

type MensagemResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Mensagem *Mensagem `json:"mensagem,omitempty"`
}

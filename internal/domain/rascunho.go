package domain

import "time"

// Rascunho é a resposta em elaboração de um operador para uma cotação.
// Quando o backend está indisponível, é persistido localmente sob a chave
// "rascunho_cotacao_<id>".
type Rascunho struct {
	CotacaoID         int       `json:"cotacao_id"`
	ValorFrete        float64   `json:"valor_frete"`
	PrazoEntrega      int       `json:"prazo_entrega"`
	TaxaColeta        float64   `json:"taxa_coleta"`
	TaxaEntrega       float64   `json:"taxa_entrega"`
	ValorSeguro       float64   `json:"valor_seguro"`
	Observacoes       string    `json:"observacoes"`
	EmpresaPrestadora string    `json:"empresa_prestadora"`
	Timestamp         time.Time `json:"timestamp"`
}

type RascunhoResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Rascunho *Rascunho `json:"rascunho,omitempty"`
}

package domain

import "time"

// Status de cotação, na ordem do ciclo de vida. O gateway trata os tokens como
// opacos; quem valida transições é o backend.
const (
	StatusSolicitada      = "solicitada"
	StatusAceitaOperador  = "aceita_operador"
	StatusCotacaoEnviada  = "cotacao_enviada"
	StatusAceitaConsultor = "aceita_consultor"
	StatusNegadaConsultor = "negada_consultor"
	StatusFinalizada      = "finalizada"
	StatusCancelada       = "cancelada"
)

// Modalidades de transporte
const (
	ModalidadeRodoviario = "brcargo_rodoviario"
	ModalidadeMaritimo   = "brcargo_maritimo"
	ModalidadeAereo      = "brcargo_aereo"
)

// OperadorNaoAtribuido é o marcador usado quando a cotação não tem operador
// responsável. Os gráficos do dashboard indexam por este literal.
const OperadorNaoAtribuido = "Não atribuído"

type Cotacao struct {
	ID                  int        `json:"id"`
	NumeroCotacao       string     `json:"numero_cotacao,omitempty"`
	Status              string     `json:"status"`
	Modalidade          string     `json:"modalidade"`
	OperadorResponsavel *string    `json:"operador_responsavel"`
	OperadorID          *int       `json:"operador_id,omitempty"`
	ConsultorID         int        `json:"consultor_id,omitempty"`
	ClienteNome         string     `json:"cliente_nome"`
	ClienteCNPJ         string     `json:"cliente_cnpj,omitempty"`
	Origem              string     `json:"origem,omitempty"`
	Destino             string     `json:"destino,omitempty"`
	ValorFrete          *float64   `json:"valor_frete"`
	PrazoEntrega        *int       `json:"prazo_entrega,omitempty"`
	Observacoes         string     `json:"observacoes,omitempty"`
	DataCriacao         *time.Time `json:"data_criacao,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	DataFinalizacao     *time.Time `json:"data_finalizacao,omitempty"`
}

// DataReferencia devolve a data usada para posicionar a cotação na série
// temporal do dashboard: data_criacao, com created_at como reserva.
func (c Cotacao) DataReferencia() *time.Time {
	if c.DataCriacao != nil {
		return c.DataCriacao
	}
	return c.CreatedAt
}

type CotacoesResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Cotacoes []Cotacao `json:"cotacoes"`
	Total    int       `json:"total,omitempty"`
}

type CotacaoResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Cotacao *Cotacao `json:"cotacao,omitempty"`
}

// NegarCotacaoRequest é o corpo enviado ao negar uma cotação.
type NegarCotacaoRequest struct {
	Motivo string `json:"motivo"`
}

// RespostaCotacaoRequest é o corpo da resposta do operador a uma cotação.
// Campos numéricos ausentes assumem zero.
type RespostaCotacaoRequest struct {
	ValorFrete         float64 `json:"valor_frete"`
	PrazoEntrega       int     `json:"prazo_entrega"`
	TaxaColeta         float64 `json:"taxa_coleta"`
	TaxaEntrega        float64 `json:"taxa_entrega"`
	ValorSeguro        float64 `json:"valor_seguro"`
	ObservacoesGerais  string  `json:"observacoes_gerais"`
	CondicoesEspeciais string  `json:"condicoes_especiais"`
	EmpresaPrestadora  string  `json:"empresa_prestadora"`
	Timestamp          string  `json:"timestamp"`
}

// ConsultorDecisaoRequest é o corpo de aprovação/recusa na etapa do consultor.
type ConsultorDecisaoRequest struct {
	Observacoes string `json:"observacoes"`
}

// ReatribuirRequest é o corpo de reatribuição de cotação entre operadores.
type ReatribuirRequest struct {
	NovoOperadorID int      `json:"novo_operador_id"`
	Motivo         string   `json:"motivo"`
	Observacoes    string   `json:"observacoes"`
	Mensagens      []string `json:"mensagens"`
}

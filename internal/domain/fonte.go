package domain

// Fonte indica de onde veio o payload devolvido por uma operação de leitura do
// gateway. As leituras degradáveis nunca falham: quando o backend está fora do
// ar elas devolvem o payload de demonstração com FonteFallback, e os testes
// conseguem distinguir sucesso genuíno de degradação.
type Fonte string

const (
	// FonteRemota: resposta decodificada do backend.
	FonteRemota Fonte = "remota"
	// FonteFallback: payload fixo de demonstração substituído na falha.
	FonteFallback Fonte = "fallback"
	// FonteLocal: lido/gravado no armazenamento local (rascunhos).
	FonteLocal Fonte = "local"
)

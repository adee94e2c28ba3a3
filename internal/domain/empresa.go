package domain

type Empresa struct {
	ID          int    `json:"id"`
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Modalidade  string `json:"modalidade"`
}

// EmpresasResponse é o envelope de listagem paginada de empresas.
type EmpresasResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message,omitempty"`
	Empresas    []Empresa `json:"empresas"`
	CurrentPage int       `json:"current_page"`
	Pages       int       `json:"pages"`
	Total       int       `json:"total"`
	PerPage     int       `json:"per_page"`
}

type EmpresaResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Empresa *Empresa `json:"empresa,omitempty"`
}

// EmpresaPrestadora é uma transportadora habilitada a executar o frete.
type EmpresaPrestadora struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Tipo  string `json:"tipo"`
	Ativa bool   `json:"ativa"`
}

type EmpresasPrestadorasResponse struct {
	Success  bool                `json:"success"`
	Empresas []EmpresaPrestadora `json:"empresas"`
}

// ImportacaoResponse é o resultado de uma importação de empresas (JSON ou planilha).
type ImportacaoResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	Importadas int      `json:"importadas"`
	Ignoradas  int      `json:"ignoradas"`
	Erros      []string `json:"erros,omitempty"`
}

package domain

type Operador struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type OperadoresResponse struct {
	Success    bool       `json:"success"`
	Operadores []Operador `json:"operadores"`
}

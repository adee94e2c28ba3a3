package domain

// MetricasDashboard são os contadores de topo do dashboard.
type MetricasDashboard struct {
	Total         int     `json:"total"`
	Finalizadas   int     `json:"finalizadas"`
	Pendentes     int     `json:"pendentes"`
	TaxaConversao int     `json:"taxa_conversao"`
	ValorTotal    float64 `json:"valor_total"`
}

type ContagemStatus struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Label  string `json:"label"`
}

type ContagemModalidade struct {
	Modalidade string `json:"modalidade"`
	Count      int    `json:"count"`
	Label      string `json:"label"`
}

type ContagemOperador struct {
	Operador    string `json:"operador"`
	Count       int    `json:"count"`
	Finalizadas int    `json:"finalizadas"`
}

// PontoEvolucao é um dia da série temporal de 30 dias do dashboard.
type PontoEvolucao struct {
	Data        string `json:"data"` // AAAA-MM-DD
	Total       int    `json:"total"`
	Finalizadas int    `json:"finalizadas"`
}

type ValorModalidade struct {
	Modalidade string  `json:"modalidade"`
	ValorMedio float64 `json:"valor_medio"`
	Label      string  `json:"label"`
}

// DadosDashboard é o agregado derivado de uma sequência de cotações.
type DadosDashboard struct {
	Metricas             MetricasDashboard    `json:"metricas"`
	PorStatus            []ContagemStatus     `json:"por_status"`
	PorModalidade        []ContagemModalidade `json:"por_modalidade"`
	PorOperador          []ContagemOperador   `json:"por_operador"`
	Evolucao             []PontoEvolucao      `json:"evolucao"`
	ValoresPorModalidade []ValorModalidade    `json:"valores_por_modalidade"`
}

// StatsDashboard é o resumo servido por /v133/dashboard/stats.
type StatsDashboard struct {
	TotalCotacoes       int     `json:"total_cotacoes"`
	CotacoesFinalizadas int     `json:"cotacoes_finalizadas"`
	CotacoesPendentes   int     `json:"cotacoes_pendentes"`
	TaxaConversao       int     `json:"taxa_conversao"`
	ValorTotal          float64 `json:"valor_total"`
}

type StatsResponse struct {
	Success bool           `json:"success"`
	Stats   StatsDashboard `json:"stats"`
}

type BucketGrafico struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type GraficosDashboard struct {
	Status     []BucketGrafico `json:"status"`
	Modalidade []BucketGrafico `json:"modalidade"`
}

type GraficosResponse struct {
	Success bool              `json:"success"`
	Charts  GraficosDashboard `json:"charts"`
}

// RelatorioGeral é o agregado servido por /v133/analytics/geral.
type RelatorioGeral struct {
	CotacoesPorStatus        map[string]int `json:"cotacoes_por_status"`
	TotalCotacoesFinalizadas int            `json:"total_cotacoes_finalizadas"`
	ValorTotalCotacoes       float64        `json:"valor_total_cotacoes"`
	TempoMedioResposta       float64        `json:"tempo_medio_resposta"`
}

type AnalyticsGeralResponse struct {
	Success        bool           `json:"success"`
	RelatorioGeral RelatorioGeral `json:"relatorio_geral"`
}

// RankingEmpresa é uma linha do ranking de empresas por volume de cotações.
type RankingEmpresa struct {
	EmpresaID   int     `json:"empresa_id"`
	RazaoSocial string  `json:"razao_social"`
	Cotacoes    int     `json:"cotacoes"`
	ValorTotal  float64 `json:"valor_total"`
}

type RankingEmpresasResponse struct {
	Success bool             `json:"success"`
	Ranking []RankingEmpresa `json:"ranking"`
}

// MetricasEmpresa são as métricas de uma única empresa.
type MetricasEmpresa struct {
	EmpresaID   int     `json:"empresa_id"`
	Cotacoes    int     `json:"cotacoes"`
	Finalizadas int     `json:"finalizadas"`
	ValorTotal  float64 `json:"valor_total"`
}

type MetricasEmpresaResponse struct {
	Success  bool            `json:"success"`
	Metricas MetricasEmpresa `json:"metricas"`
}

// RankingUsuario é uma linha do ranking de operadores.
type RankingUsuario struct {
	Operador    string `json:"operador"`
	Cotacoes    int    `json:"cotacoes"`
	Finalizadas int    `json:"finalizadas"`
}

type RankingUsuariosResponse struct {
	Success bool             `json:"success"`
	Ranking []RankingUsuario `json:"ranking"`
}

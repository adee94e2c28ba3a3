package painelclient

import (
	"time"

	"github.com/brcargo/cotacao-panel/internal/domain"
)

// Payloads de demonstração substituídos quando um endpoint de leitura falha.
// Os registros são fixos e idênticos ao schema de sucesso; o código de
// renderização a jusante depende desses literais exatos. Cada função devolve
// uma cópia nova para o chamador poder modificar sem afetar as demais.

func fallbackOperadores() domain.OperadoresResponse {
	return domain.OperadoresResponse{
		Success: true,
		Operadores: []domain.Operador{
			{ID: 1, Nome: "Maria Santos", Email: "maria@brcargo.com"},
			{ID: 2, Nome: "João Silva", Email: "joao@brcargo.com"},
			{ID: 3, Nome: "Pedro Costa", Email: "pedro@brcargo.com"},
			{ID: 4, Nome: "Ana Oliveira", Email: "ana@brcargo.com"},
			{ID: 5, Nome: "Carlos Mendes", Email: "carlos@brcargo.com"},
		},
	}
}

func fallbackEmpresas(pagina int) domain.EmpresasResponse {
	return domain.EmpresasResponse{
		Success: true,
		Empresas: []domain.Empresa{
			{
				ID:          1,
				RazaoSocial: "Transportadora ABC Ltda",
				CNPJ:        "12.345.678/0001-90",
				Cidade:      "São Paulo",
				Estado:      "SP",
				Modalidade:  "Rodoviário",
			},
			{
				ID:          2,
				RazaoSocial: "Logística XYZ S.A.",
				CNPJ:        "98.765.432/0001-10",
				Cidade:      "Rio de Janeiro",
				Estado:      "RJ",
				Modalidade:  "Marítimo",
			},
			{
				ID:          3,
				RazaoSocial: "Cargo Express Ltda",
				CNPJ:        "11.222.333/0001-44",
				Cidade:      "Belo Horizonte",
				Estado:      "MG",
				Modalidade:  "Rodoviário",
			},
		},
		CurrentPage: pagina,
		Pages:       1,
		Total:       3,
		PerPage:     10,
	}
}

func fallbackEmpresasPrestadoras() domain.EmpresasPrestadorasResponse {
	return domain.EmpresasPrestadorasResponse{
		Success: true,
		Empresas: []domain.EmpresaPrestadora{
			{ID: 1, Nome: "BRCargo Rodoviário", Tipo: "rodoviario", Ativa: true},
			{ID: 2, Nome: "BRCargo Marítimo", Tipo: "maritimo", Ativa: true},
			{ID: 3, Nome: "BRCargo Aéreo", Tipo: "aereo", Ativa: true},
			{ID: 4, Nome: "Transportadora Parceira 1", Tipo: "rodoviario", Ativa: true},
			{ID: 5, Nome: "Transportadora Parceira 2", Tipo: "maritimo", Ativa: true},
		},
	}
}

func fallbackStats() domain.StatsResponse {
	return domain.StatsResponse{
		Success: true,
		Stats: domain.StatsDashboard{
			TotalCotacoes:       6,
			CotacoesFinalizadas: 2,
			CotacoesPendentes:   4,
			TaxaConversao:       33,
			ValorTotal:          14200.00,
		},
	}
}

func fallbackCharts() domain.GraficosResponse {
	return domain.GraficosResponse{
		Success: true,
		Charts: domain.GraficosDashboard{
			Status: []domain.BucketGrafico{
				{Label: "Solicitadas", Count: 1},
				{Label: "Aceitas", Count: 2},
				{Label: "Enviadas", Count: 1},
				{Label: "Finalizadas", Count: 2},
			},
			Modalidade: []domain.BucketGrafico{
				{Label: "Rodoviário", Count: 4},
				{Label: "Marítimo", Count: 2},
			},
		},
	}
}

func fallbackAnalyticsGeral() domain.AnalyticsGeralResponse {
	return domain.AnalyticsGeralResponse{
		Success: true,
		RelatorioGeral: domain.RelatorioGeral{
			CotacoesPorStatus: map[string]int{
				domain.StatusSolicitada:     15,
				domain.StatusAceitaOperador: 8,
				domain.StatusCotacaoEnviada: 12,
				domain.StatusFinalizada:     25,
			},
			TotalCotacoesFinalizadas: 25,
			ValorTotalCotacoes:       150000,
			TempoMedioResposta:       2.5,
		},
	}
}

func fallbackConversas() domain.ConversasResponse {
	return domain.ConversasResponse{
		Success:   true,
		Conversas: []domain.Mensagem{},
		Mensagens: []domain.Mensagem{},
	}
}

// fallbackCotacoesDemo é o conjunto de demonstração processado pelo dashboard
// quando a listagem real não está disponível.
func fallbackCotacoesDemo(agora time.Time) []domain.Cotacao {
	diasAtras := func(dias int) *time.Time {
		t := agora.AddDate(0, 0, -dias)
		return &t
	}
	nome := func(s string) *string { return &s }
	valor := func(v float64) *float64 { return &v }

	return []domain.Cotacao{
		{
			ID:          1,
			Status:      domain.StatusSolicitada,
			Modalidade:  domain.ModalidadeRodoviario,
			ClienteNome: "Empresa Demo 1",
			DataCriacao: diasAtras(2),
		},
		{
			ID:                  2,
			Status:              domain.StatusAceitaOperador,
			Modalidade:          domain.ModalidadeRodoviario,
			OperadorResponsavel: nome("Maria Santos"),
			ClienteNome:         "Empresa Demo 2",
			DataCriacao:         diasAtras(1),
		},
		{
			ID:                  3,
			Status:              domain.StatusAceitaOperador,
			Modalidade:          domain.ModalidadeMaritimo,
			OperadorResponsavel: nome("Maria Santos"),
			ClienteNome:         "Empresa Demo 3",
			DataCriacao:         diasAtras(0),
		},
		{
			ID:                  4,
			Status:              domain.StatusCotacaoEnviada,
			Modalidade:          domain.ModalidadeRodoviario,
			OperadorResponsavel: nome("João Silva"),
			ClienteNome:         "Empresa Demo 4",
			DataCriacao:         diasAtras(3),
			ValorFrete:          valor(2500.00),
		},
		{
			ID:                  5,
			Status:              domain.StatusFinalizada,
			Modalidade:          domain.ModalidadeRodoviario,
			OperadorResponsavel: nome("Pedro Costa"),
			ClienteNome:         "Empresa Demo 5",
			DataCriacao:         diasAtras(5),
			ValorFrete:          valor(3200.00),
		},
		{
			ID:                  6,
			Status:              domain.StatusFinalizada,
			Modalidade:          domain.ModalidadeMaritimo,
			OperadorResponsavel: nome("Ana Oliveira"),
			ClienteNome:         "Empresa Demo 6",
			DataCriacao:         diasAtras(7),
			ValorFrete:          valor(8500.00),
		},
	}
}

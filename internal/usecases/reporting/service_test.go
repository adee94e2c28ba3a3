package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/infrastructure/repository/mocks"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestService(t *testing.T) (Service, *mocks.MockCotacaoRepository, *mocks.MockEmpresaRepository) {
	ctrl := gomock.NewController(t)
	cotacaoRepo := mocks.NewMockCotacaoRepository(ctrl)
	empresaRepo := mocks.NewMockEmpresaRepository(ctrl)
	return NewService(cotacaoRepo, empresaRepo), cotacaoRepo, empresaRepo
}

func TestRelatorioGeral(t *testing.T) {
	svc, cotacaoRepo, _ := newTestService(t)

	criada := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	finalizada := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)

	cotacaoRepo.EXPECT().
		ListCotacoes(repository.FiltroCotacoes{}).
		Return([]domain.Cotacao{
			{ID: 1, Status: domain.StatusSolicitada},
			{ID: 2, Status: domain.StatusSolicitada},
			{
				ID:              3,
				Status:          domain.StatusFinalizada,
				ValorFrete:      floatPtr(3200),
				DataCriacao:     timePtr(criada),
				DataFinalizacao: timePtr(finalizada),
			},
		}, nil)

	relatorio, err := svc.RelatorioGeral()

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{
		domain.StatusSolicitada: 2,
		domain.StatusFinalizada: 1,
	}, relatorio.CotacoesPorStatus)
	assert.Equal(t, 1, relatorio.TotalCotacoesFinalizadas)
	assert.Equal(t, 3200.0, relatorio.ValorTotalCotacoes)
	assert.Equal(t, 2.0, relatorio.TempoMedioResposta)
}

func TestRelatorioGeral_SemFinalizadas(t *testing.T) {
	svc, cotacaoRepo, _ := newTestService(t)

	cotacaoRepo.EXPECT().
		ListCotacoes(repository.FiltroCotacoes{}).
		Return([]domain.Cotacao{{ID: 1, Status: domain.StatusSolicitada}}, nil)

	relatorio, err := svc.RelatorioGeral()

	assert.NoError(t, err)
	assert.Equal(t, 0, relatorio.TotalCotacoesFinalizadas)
	assert.Equal(t, 0.0, relatorio.TempoMedioResposta)
}

func TestRankingEmpresas(t *testing.T) {
	svc, cotacaoRepo, empresaRepo := newTestService(t)

	cotacaoRepo.EXPECT().
		ListCotacoes(repository.FiltroCotacoes{}).
		Return([]domain.Cotacao{
			{ID: 1, ClienteCNPJ: "12.345.678/0001-90", Status: domain.StatusFinalizada, ValorFrete: floatPtr(2500)},
			{ID: 2, ClienteCNPJ: "12.345.678/0001-90", Status: domain.StatusSolicitada},
			{ID: 3, ClienteCNPJ: "98.765.432/0001-10", Status: domain.StatusSolicitada},
			{ID: 4, ClienteCNPJ: "00.000.000/0001-00", Status: domain.StatusSolicitada}, // sem cadastro
		}, nil)
	empresaRepo.EXPECT().
		ListAllEmpresas().
		Return([]domain.Empresa{
			{ID: 1, RazaoSocial: "Transportadora ABC Ltda", CNPJ: "12.345.678/0001-90"},
			{ID: 2, RazaoSocial: "Logística XYZ S.A.", CNPJ: "98.765.432/0001-10"},
			{ID: 3, RazaoSocial: "Cargo Express Ltda", CNPJ: "11.222.333/0001-44"},
		}, nil)

	ranking, err := svc.RankingEmpresas()

	assert.NoError(t, err)
	assert.Equal(t, []domain.RankingEmpresa{
		{EmpresaID: 1, RazaoSocial: "Transportadora ABC Ltda", Cotacoes: 2, ValorTotal: 2500},
		{EmpresaID: 2, RazaoSocial: "Logística XYZ S.A.", Cotacoes: 1},
	}, ranking)
}

func TestMetricasEmpresa(t *testing.T) {
	svc, cotacaoRepo, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		GetEmpresaByID(1).
		Return(&domain.Empresa{ID: 1, CNPJ: "12.345.678/0001-90"}, nil)
	cotacaoRepo.EXPECT().
		ListCotacoes(repository.FiltroCotacoes{}).
		Return([]domain.Cotacao{
			{ID: 1, ClienteCNPJ: "12.345.678/0001-90", Status: domain.StatusFinalizada, ValorFrete: floatPtr(3200)},
			{ID: 2, ClienteCNPJ: "12.345.678/0001-90", Status: domain.StatusSolicitada},
			{ID: 3, ClienteCNPJ: "98.765.432/0001-10", Status: domain.StatusFinalizada, ValorFrete: floatPtr(9000)},
		}, nil)

	metricas, err := svc.MetricasEmpresa(1)

	assert.NoError(t, err)
	assert.Equal(t, &domain.MetricasEmpresa{
		EmpresaID:   1,
		Cotacoes:    2,
		Finalizadas: 1,
		ValorTotal:  3200,
	}, metricas)
}

func TestMetricasEmpresa_NaoEncontrada(t *testing.T) {
	svc, _, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		GetEmpresaByID(99).
		Return(nil, nil)

	metricas, err := svc.MetricasEmpresa(99)

	assert.NoError(t, err)
	assert.Nil(t, metricas)
}

func TestRankingUsuarios(t *testing.T) {
	svc, cotacaoRepo, _ := newTestService(t)

	cotacaoRepo.EXPECT().
		ListCotacoes(repository.FiltroCotacoes{}).
		Return([]domain.Cotacao{
			{ID: 1, OperadorResponsavel: stringPtr("Maria Santos"), Status: domain.StatusFinalizada},
			{ID: 2, OperadorResponsavel: stringPtr("Maria Santos"), Status: domain.StatusAceitaOperador},
			{ID: 3, OperadorResponsavel: stringPtr("João Silva"), Status: domain.StatusCotacaoEnviada},
			{ID: 4, OperadorResponsavel: nil, Status: domain.StatusSolicitada},
		}, nil)

	ranking, err := svc.RankingUsuarios()

	assert.NoError(t, err)
	assert.Equal(t, []domain.RankingUsuario{
		{Operador: "Maria Santos", Cotacoes: 2, Finalizadas: 1},
		{Operador: "João Silva", Cotacoes: 1, Finalizadas: 0},
	}, ranking)
}

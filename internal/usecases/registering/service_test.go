package registering

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/infrastructure/repository/mocks"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

func newTestService(t *testing.T) (Service, *mocks.MockEmpresaRepository) {
	ctrl := gomock.NewController(t)
	empresaRepo := mocks.NewMockEmpresaRepository(ctrl)
	return NewService(empresaRepo), empresaRepo
}

func TestListEmpresas_Paginacao(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		ListEmpresas(2, 10, repository.FiltroEmpresas{}).
		Return([]domain.Empresa{{ID: 11}}, 25, nil)

	resp, err := svc.ListEmpresas(2, 10, repository.FiltroEmpresas{})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 3, resp.Pages)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, 10, resp.PerPage)
}

func TestListEmpresas_PaginaInvalidaAssumePadrao(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		ListEmpresas(1, 10, repository.FiltroEmpresas{}).
		Return(nil, 0, nil)

	resp, err := svc.ListEmpresas(0, 0, repository.FiltroEmpresas{})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 0, resp.Pages)
}

func TestCreateEmpresa_CNPJDuplicado(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		GetEmpresaByCNPJ("12.345.678/0001-90").
		Return(&domain.Empresa{ID: 1, CNPJ: "12.345.678/0001-90"}, nil)

	_, err := svc.CreateEmpresa(domain.Empresa{
		RazaoSocial: "Transportadora ABC Ltda",
		CNPJ:        "12.345.678/0001-90",
	})

	assert.ErrorIs(t, err, ErrCNPJDuplicado)
}

func TestGetEmpresa_NaoEncontrada(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		GetEmpresaByID(99).
		Return(nil, nil)

	_, err := svc.GetEmpresa(99)

	assert.ErrorIs(t, err, ErrEmpresaNaoEncontrada)
}

func TestImportCSV(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	planilha := strings.Join([]string{
		"razao_social,cnpj,cidade,estado,modalidade",
		"Transportadora ABC Ltda,12.345.678/0001-90,São Paulo,SP,Rodoviário",
		"Logística XYZ S.A.,98.765.432/0001-10,Rio de Janeiro,RJ,Marítimo",
	}, "\n")

	empresaRepo.EXPECT().
		ImportEmpresas(gomock.Any(), []domain.Empresa{
			{RazaoSocial: "Transportadora ABC Ltda", CNPJ: "12.345.678/0001-90", Cidade: "São Paulo", Estado: "SP", Modalidade: "Rodoviário"},
			{RazaoSocial: "Logística XYZ S.A.", CNPJ: "98.765.432/0001-10", Cidade: "Rio de Janeiro", Estado: "RJ", Modalidade: "Marítimo"},
		}).
		Return(2, 0, nil)

	resultado, err := svc.ImportCSV(context.Background(), strings.NewReader(planilha))

	assert.NoError(t, err)
	assert.Equal(t, 2, resultado.Importadas)
	assert.Equal(t, 0, resultado.Ignoradas)
	assert.Empty(t, resultado.Erros)
	assert.Equal(t, "2 empresas importadas, 0 ignoradas", resultado.Message)
}

func TestImportCSV_LinhaInvalidaNaoAbortaOLote(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	planilha := strings.Join([]string{
		"razao_social,cnpj,cidade,estado,modalidade",
		",12.345.678/0001-90,São Paulo,SP,Rodoviário",
		"Cargo Express Ltda,11.222.333/0001-44,Belo Horizonte,MG,Rodoviário",
	}, "\n")

	empresaRepo.EXPECT().
		ImportEmpresas(gomock.Any(), []domain.Empresa{
			{RazaoSocial: "Cargo Express Ltda", CNPJ: "11.222.333/0001-44", Cidade: "Belo Horizonte", Estado: "MG", Modalidade: "Rodoviário"},
		}).
		Return(1, 0, nil)

	resultado, err := svc.ImportCSV(context.Background(), strings.NewReader(planilha))

	assert.NoError(t, err)
	assert.Equal(t, 1, resultado.Importadas)
	assert.Equal(t, 1, resultado.Ignoradas)
	assert.Len(t, resultado.Erros, 1)
	assert.Contains(t, resultado.Erros[0], "linha 2")
}

func TestImportCSV_CabecalhoInvalido(t *testing.T) {
	svc, _ := newTestService(t)

	planilha := "nome,documento,cidade,uf,tipo\nTransportadora ABC Ltda,123,São Paulo,SP,Rodoviário"

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(planilha))

	assert.ErrorIs(t, err, ErrPlanilhaInvalida)
}

func TestExportCSV(t *testing.T) {
	svc, empresaRepo := newTestService(t)

	empresaRepo.EXPECT().
		ListAllEmpresas().
		Return([]domain.Empresa{
			{RazaoSocial: "Transportadora ABC Ltda", CNPJ: "12.345.678/0001-90", Cidade: "São Paulo", Estado: "SP", Modalidade: "Rodoviário"},
		}, nil)

	conteudo, err := svc.ExportCSV()

	assert.NoError(t, err)
	linhas := strings.Split(strings.TrimSpace(string(conteudo)), "\n")
	assert.Len(t, linhas, 2)
	assert.Equal(t, "razao_social,cnpj,cidade,estado,modalidade", linhas[0])
	assert.Contains(t, linhas[1], "Transportadora ABC Ltda")
}

func TestTemplateCSV(t *testing.T) {
	svc, _ := newTestService(t)

	linhas := strings.Split(strings.TrimSpace(string(svc.TemplateCSV())), "\n")

	assert.Len(t, linhas, 2)
	assert.Equal(t, "razao_social,cnpj,cidade,estado,modalidade", linhas[0])
	assert.Contains(t, linhas[1], "Transportadora Exemplo Ltda")
}

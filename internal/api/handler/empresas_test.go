package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/infrastructure/repository/mocks"
	"github.com/brcargo/cotacao-panel/internal/api/handler/router"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/registering"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

func newEmpresasRouter(t *testing.T) (router.Router, *mocks.MockEmpresaRepository) {
	ctrl := gomock.NewController(t)
	empresaRepo := mocks.NewMockEmpresaRepository(ctrl)
	service := registering.NewService(empresaRepo)

	rt := router.New(
		router.WithRoutes(
			router.Route{Path: "/api/empresas", Method: http.MethodGet, Handler: ListEmpresas(service)},
			router.Route{Path: "/api/empresas", Method: http.MethodPost, Handler: CreateEmpresa(service)},
			router.Route{Path: "/api/empresas/:id", Method: http.MethodGet, Handler: GetEmpresa(service)},
			router.Route{Path: "/api/empresas/import/excel", Method: http.MethodPost, Handler: ImportPlanilha(service)},
			router.Route{Path: "/api/empresas/:id/excel", Method: http.MethodGet, Handler: TemplatePlanilha(service)},
		),
	)

	return rt, empresaRepo
}

func decodeAPIError(t *testing.T, corpo *bytes.Buffer) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(corpo).Decode(&apiErr))
	return apiErr
}

func TestListEmpresasHandler(t *testing.T) {
	rt, empresaRepo := newEmpresasRouter(t)

	empresaRepo.EXPECT().
		ListEmpresas(2, 5, repository.FiltroEmpresas{Busca: "abc"}).
		Return([]domain.Empresa{{ID: 1, RazaoSocial: "Transportadora ABC Ltda"}}, 6, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas?page=2&per_page=5&busca=abc", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.EmpresasResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 2, resp.Pages)
	assert.Equal(t, 6, resp.Total)
}

func TestGetEmpresaHandler_IDInvalido(t *testing.T) {
	rt, _ := newEmpresasRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/abc", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec.Body).Code)
}

func TestGetEmpresaHandler_NaoEncontrada(t *testing.T) {
	rt, empresaRepo := newEmpresasRouter(t)

	empresaRepo.EXPECT().
		GetEmpresaByID(99).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/99", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrEmpresaNotFound, decodeAPIError(t, rec.Body).Code)
}

// O caminho de exportação compartilha o padrão /api/empresas/:id.
func TestGetEmpresaHandler_DesvioParaExport(t *testing.T) {
	rt, empresaRepo := newEmpresasRouter(t)

	empresaRepo.EXPECT().
		ListAllEmpresas().
		Return([]domain.Empresa{{ID: 1, RazaoSocial: "Transportadora ABC Ltda"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/export?format=json", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.EmpresasResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Total)
}

func TestGetEmpresaHandler_ExportCSV(t *testing.T) {
	rt, empresaRepo := newEmpresasRouter(t)

	empresaRepo.EXPECT().
		ListAllEmpresas().
		Return([]domain.Empresa{{RazaoSocial: "Transportadora ABC Ltda", CNPJ: "12.345.678/0001-90"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/export?format=csv", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "empresas.csv")
	assert.Contains(t, rec.Body.String(), "razao_social,cnpj")
}

// O roteador casa /api/empresas/template/excel como :id/excel.
func TestTemplatePlanilhaHandler(t *testing.T) {
	rt, _ := newEmpresasRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/template/excel", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "empresas_template.csv")
	assert.Contains(t, rec.Body.String(), "Transportadora Exemplo Ltda")
}

func TestTemplatePlanilhaHandler_IDDesconhecido(t *testing.T) {
	rt, _ := newEmpresasRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/7/excel", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec.Body).Code)
}

func TestCreateEmpresaHandler_DadosObrigatorios(t *testing.T) {
	rt, _ := newEmpresasRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/empresas", strings.NewReader(`{"razao_social": ""}`))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec.Body).Code)
}

func TestCreateEmpresaHandler_CNPJDuplicado(t *testing.T) {
	rt, empresaRepo := newEmpresasRouter(t)

	empresaRepo.EXPECT().
		GetEmpresaByCNPJ("12.345.678/0001-90").
		Return(&domain.Empresa{ID: 1}, nil)

	corpo := `{"razao_social": "Transportadora ABC Ltda", "cnpj": "12.345.678/0001-90"}`
	req := httptest.NewRequest(http.MethodPost, "/api/empresas", strings.NewReader(corpo))
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrCNPJDuplicado, decodeAPIError(t, rec.Body).Code)
}

func TestImportPlanilhaHandler(t *testing.T) {
	rt, empresaRepo := newEmpresasRouter(t)

	empresaRepo.EXPECT().
		ImportEmpresas(gomock.Any(), gomock.Len(1)).
		Return(1, 0, nil)

	var corpo bytes.Buffer
	escritor := multipart.NewWriter(&corpo)
	parte, err := escritor.CreateFormFile("arquivo", "empresas.csv")
	require.NoError(t, err)
	_, err = parte.Write([]byte("razao_social,cnpj,cidade,estado,modalidade\nTransportadora ABC Ltda,12.345.678/0001-90,São Paulo,SP,Rodoviário\n"))
	require.NoError(t, err)
	require.NoError(t, escritor.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/empresas/import/excel", &corpo)
	req.Header.Set("Content-Type", escritor.FormDataContentType())
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resultado domain.ImportacaoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resultado))
	assert.Equal(t, 1, resultado.Importadas)
}

func TestImportPlanilhaHandler_LayoutInvalido(t *testing.T) {
	rt, _ := newEmpresasRouter(t)

	var corpo bytes.Buffer
	escritor := multipart.NewWriter(&corpo)
	parte, err := escritor.CreateFormFile("arquivo", "empresas.csv")
	require.NoError(t, err)
	_, err = parte.Write([]byte("nome,documento,cidade,uf,tipo\n"))
	require.NoError(t, err)
	require.NoError(t, escritor.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/empresas/import/excel", &corpo)
	req.Header.Set("Content-Type", escritor.FormDataContentType())
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec.Body).Code)
}

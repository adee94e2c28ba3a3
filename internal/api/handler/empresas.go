package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/usecases/registering"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

func ListEmpresas(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		pagina, _ := strconv.Atoi(query.Get("page"))
		porPagina, _ := strconv.Atoi(query.Get("per_page"))

		filtro := repository.FiltroEmpresas{
			Busca:      query.Get("busca"),
			Estado:     query.Get("estado"),
			Modalidade: query.Get("modalidade"),
		}

		resp, err := service.ListEmpresas(pagina, porPagina, filtro)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar empresas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar empresas", nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// GetEmpresa resolve GET /api/empresas/:id. O caminho de exportação
// compartilha o prefixo e é desviado pelo valor do parâmetro.
func GetEmpresa(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if idStr == "export" {
			exportEmpresas(service, w, r)
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de empresa inválido", nil)
			return
		}

		empresa, err := service.GetEmpresa(id)
		if err != nil {
			writeEmpresaError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.EmpresaResponse{
			Success: true,
			Empresa: empresa,
		})
	})
}

// TemplatePlanilha serve o modelo de importação em GET
// /api/empresas/template/excel, que o roteador casa como :id/excel.
func TemplatePlanilha(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") != "template" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Recurso desconhecido", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="empresas_template.csv"`)
		_, _ = w.Write(service.TemplateCSV())
	})
}

func exportEmpresas(service registering.Service, w http.ResponseWriter, r *http.Request) {
	formato := r.URL.Query().Get("format")

	if formato == "" || formato == "json" {
		empresas, err := service.ExportEmpresas()
		if err != nil {
			logrus.WithError(err).Error("Erro ao exportar empresas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar empresas", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.EmpresasResponse{
			Success:  true,
			Empresas: empresas,
			Total:    len(empresas),
		})
		return
	}

	conteudo, err := service.ExportCSV()
	if err != nil {
		logrus.WithError(err).Error("Erro ao exportar empresas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar empresas", nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="empresas.csv"`)
	_, _ = w.Write(conteudo)
}

func CreateEmpresa(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var empresa domain.Empresa
		if err := json.NewDecoder(r.Body).Decode(&empresa); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if empresa.RazaoSocial == "" || empresa.CNPJ == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Razão social e CNPJ são obrigatórios", nil)
			return
		}

		criada, err := service.CreateEmpresa(empresa)
		if err != nil {
			writeEmpresaError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, domain.EmpresaResponse{
			Success: true,
			Empresa: criada,
		})
	})
}

func UpdateEmpresa(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := empresaID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de empresa inválido", nil)
			return
		}

		var empresa domain.Empresa
		if err := json.NewDecoder(r.Body).Decode(&empresa); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		atualizada, err := service.UpdateEmpresa(id, empresa)
		if err != nil {
			writeEmpresaError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.EmpresaResponse{
			Success: true,
			Empresa: atualizada,
		})
	})
}

func DeleteEmpresa(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := empresaID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de empresa inválido", nil)
			return
		}

		if err := service.DeleteEmpresa(id); err != nil {
			writeEmpresaError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.EmpresaResponse{
			Success: true,
			Message: "Empresa excluída",
		})
	})
}

func ImportEmpresas(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var empresas []domain.Empresa
		if err := json.NewDecoder(r.Body).Decode(&empresas); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resultado, err := service.ImportEmpresas(r.Context(), empresas)
		if err != nil {
			logrus.WithError(err).Error("Erro ao importar empresas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar empresas", nil)
			return
		}

		writeJSON(w, http.StatusOK, resultado)
	})
}

// ImportPlanilha recebe a planilha CSV via multipart, no campo "arquivo".
func ImportPlanilha(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		arquivo, _, err := r.FormFile("arquivo")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de planilha ausente", nil)
			return
		}
		defer arquivo.Close()

		resultado, err := service.ImportCSV(r.Context(), arquivo)
		if err != nil {
			if errors.Is(err, registering.ErrPlanilhaInvalida) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Planilha fora do layout esperado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao importar planilha")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar planilha", nil)
			return
		}

		writeJSON(w, http.StatusOK, resultado)
	})
}

func ListPrestadoras(service registering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prestadoras, err := service.ListPrestadoras()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar prestadoras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar prestadoras", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.EmpresasPrestadorasResponse{
			Success:  true,
			Empresas: prestadoras,
		})
	})
}

func empresaID(r *http.Request) (int, error) {
	return strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
}

func writeEmpresaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registering.ErrEmpresaNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrEmpresaNotFound, "Empresa não encontrada", nil)
	case errors.Is(err, registering.ErrCNPJDuplicado):
		apiErrors.WriteError(w, apiErrors.ErrCNPJDuplicado, "CNPJ já cadastrado", nil)
	default:
		logrus.WithError(err).Error("Erro em operação de empresa")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o cadastro de empresas", nil)
	}
}

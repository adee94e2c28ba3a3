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
	"github.com/brcargo/cotacao-panel/internal/usecases/quoting"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
	"github.com/brcargo/cotacao-panel/pkg/middleware"
	"github.com/brcargo/cotacao-panel/pkg/utils"
)

func ListCotacoes(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filtro := repository.FiltroCotacoes{
			Status:     query.Get("status"),
			Modalidade: query.Get("modalidade"),
		}
		if operadorID, err := strconv.Atoi(query.Get("operador_id")); err == nil {
			filtro.OperadorID = operadorID
		}

		if valor := query.Get("data_inicio"); valor != "" {
			dataInicio, err := utils.ParseDate(valor)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use AAAA-MM-DD", nil)
				return
			}
			filtro.DataInicio = dataInicio
		}

		if valor := query.Get("data_fim"); valor != "" {
			dataFim, err := utils.ParseDate(valor)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use AAAA-MM-DD", nil)
				return
			}
			filtro.DataFim = dataFim
		}

		// Operadores só enxergam as próprias cotações
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			if claims.Papel == domain.PapelOperador {
				filtro.OperadorID = claims.UserID
			}
		}

		cotacoes, err := service.ListCotacoes(filtro)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar cotações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cotações", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacoesResponse{
			Success:  true,
			Cotacoes: cotacoes,
			Total:    len(cotacoes),
		})
	})
}

func GetCotacao(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		cotacao, err := service.GetCotacao(id)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Cotacao: cotacao,
		})
	})
}

func CreateCotacao(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cotacao domain.Cotacao
		if err := json.NewDecoder(r.Body).Decode(&cotacao); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if cotacao.ClienteNome == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente é obrigatório", nil)
			return
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			cotacao.ConsultorID = claims.UserID
		}

		criada, err := service.CreateCotacao(&cotacao)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, domain.CotacaoResponse{
			Success: true,
			Cotacao: criada,
		})
	})
}

func UpdateCotacao(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		var cotacao domain.Cotacao
		if err := json.NewDecoder(r.Body).Decode(&cotacao); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		atualizada, err := service.UpdateCotacao(id, cotacao)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Cotacao: atualizada,
		})
	})
}

// AceitarOperador transiciona a cotação para o operador autenticado.
func AceitarOperador(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		operador := &domain.Usuario{ID: claims.UserID, Nome: claims.Username}

		cotacao, err := service.AceitarOperador(id, operador)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Message: "Cotação aceita",
			Cotacao: cotacao,
		})
	})
}

func NegarOperador(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		var req domain.NegarCotacaoRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		cotacao, err := service.NegarOperador(id, req.Motivo)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Message: "Cotação negada",
			Cotacao: cotacao,
		})
	})
}

func EnviarResposta(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		var resposta domain.RespostaCotacaoRequest
		if err := json.NewDecoder(r.Body).Decode(&resposta); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if resposta.ValorFrete <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Valor do frete é obrigatório", nil)
			return
		}

		cotacao, err := service.EnviarResposta(id, resposta)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Message: "Resposta enviada",
			Cotacao: cotacao,
		})
	})
}

func AceitarConsultor(service quoting.Service) http.Handler {
	return decisaoConsultor(service.AceitarConsultor, "Cotação aprovada")
}

func NegarConsultor(service quoting.Service) http.Handler {
	return decisaoConsultor(service.NegarConsultor, "Cotação recusada")
}

func Finalizar(service quoting.Service) http.Handler {
	return decisaoConsultor(service.Finalizar, "Cotação finalizada")
}

func decisaoConsultor(operacao func(int, string) (*domain.Cotacao, error), mensagem string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		var req domain.ConsultorDecisaoRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		cotacao, err := operacao(id, req.Observacoes)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Message: mensagem,
			Cotacao: cotacao,
		})
	})
}

func Reatribuir(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		var req domain.ReatribuirRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		cotacao, err := service.Reatribuir(r.Context(), id, req)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.CotacaoResponse{
			Success: true,
			Message: "Cotação reatribuída",
			Cotacao: cotacao,
		})
	})
}

func GetConversas(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, operadorID, err := conversaIDs(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificadores inválidos", nil)
			return
		}

		mensagens, err := service.ListConversas(id, operadorID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar conversas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar conversas", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.ConversasResponse{
			Success:   true,
			Conversas: mensagens,
			Mensagens: mensagens,
		})
	})
}

func SalvarMensagem(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, operadorID, err := conversaIDs(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificadores inválidos", nil)
			return
		}

		var req struct {
			Mensagem string `json:"mensagem"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Mensagem == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Mensagem é obrigatória", nil)
			return
		}

		autor := "consultor"
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			autor = claims.Papel
		}

		mensagem, err := service.SalvarMensagem(id, operadorID, autor, req.Mensagem)
		if err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, domain.MensagemResponse{
			Success:  true,
			Mensagem: mensagem,
		})
	})
}

func SalvarRascunho(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		var rascunho domain.Rascunho
		if err := json.NewDecoder(r.Body).Decode(&rascunho); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SalvarRascunho(id, rascunho); err != nil {
			writeCotacaoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.RascunhoResponse{
			Success:  true,
			Message:  "Rascunho salvo",
			Rascunho: &rascunho,
		})
	})
}

func GetRascunho(service quoting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cotacaoID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cotação inválido", nil)
			return
		}

		rascunho, err := service.GetRascunho(id)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar rascunho")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar rascunho", nil)
			return
		}

		if rascunho == nil {
			apiErrors.WriteError(w, apiErrors.ErrRascunhoNotFound, "Nenhum rascunho encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.RascunhoResponse{
			Success:  true,
			Rascunho: rascunho,
		})
	})
}

func cotacaoID(r *http.Request) (int, error) {
	return strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
}

func conversaIDs(r *http.Request) (int, int, error) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return 0, 0, err
	}

	operadorID, err := strconv.Atoi(params.ByName("operador_id"))
	if err != nil {
		return 0, 0, err
	}

	return id, operadorID, nil
}

func writeCotacaoError(w http.ResponseWriter, err error) {
	var errTransicao *quoting.ErrTransicao

	switch {
	case errors.Is(err, quoting.ErrCotacaoNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrCotacaoNotFound, "Cotação não encontrada", nil)
	case errors.As(err, &errTransicao):
		apiErrors.WriteError(w, apiErrors.ErrTransicaoInvalida, errTransicao.Error(), nil)
	case errors.Is(err, quoting.ErrOperadorObrigatorio):
		apiErrors.WriteError(w, apiErrors.ErrOperadorObrigatorio, "Operação exige um operador válido", nil)
	default:
		logrus.WithError(err).Error("Erro em operação de cotação")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar as cotações", nil)
	}
}

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/apiErrors"
)

func ListOperadores(repo repository.UsuarioRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operadores, err := repo.ListOperadores()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar operadores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar operadores", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.OperadoresResponse{
			Success:    true,
			Operadores: operadores,
		})
	})
}

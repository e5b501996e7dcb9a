package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// Setup cria as tabelas de apoio do sistema; idempotente
func Setup(setupRepo repository.SetupRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Setup")

		if err := setupRepo.Setup(r.Context()); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar setup", nil)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"message": "Setup concluído com sucesso",
		})
	}
}

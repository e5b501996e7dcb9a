package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledgering"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/registering"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// writeDomainError traduz os erros tipados dos casos de uso para a resposta
// padronizada da API; erros não reconhecidos viram erro interno
func writeDomainError(w http.ResponseWriter, err error) {
	var regErr *registering.RegistryError
	if errors.As(err, &regErr) {
		apiErrors.WriteError(w, regErr.Code, regErr.Error(), nil)
		return
	}

	var ledErr *ledgering.LedgerError
	if errors.As(err, &ledErr) {
		apiErrors.WriteError(w, ledErr.Code, ledErr.Error(), nil)
		return
	}

	if errors.Is(err, repository.ErrSetupRequired) || errors.Is(err, repository.ErrCounterNotInitialized) {
		apiErrors.WriteError(w, apiErrors.ErrSetupRequired, err.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// GetSummary devolve o resumo mensal persistido na última reconstrução
func GetSummary(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.ListSummary()
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"summary": entries,
		})
	}
}

// RebuildSummary reconstrói o resumo mensal inteiro a partir dos segmentos
func RebuildSummary(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RebuildSummary")

		entries, err := service.RebuildSummary()
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"summary": entries,
		})
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledgering"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// RegisterSale registra uma venda no segmento do mês corrente
func RegisterSale(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterSale")

		var req domain.RegisterSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := service.RegisterSale(&req)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"sale": sale,
		})
	}
}

// ApplyPayment aplica um pagamento a uma venda existente
func ApplyPayment(service ledgering.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApplyPayment")

		saleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if saleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da venda não fornecido", nil)
			return
		}

		var req domain.ApplyPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, err := service.ApplyPayment(saleID, &req)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"sale": sale,
		})
	}
}

// ListPendingSales devolve as vendas com saldo devedor dos meses marcados
// como pendentes no resumo persistido
func ListPendingSales(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListPendingSales()
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"sales": sales,
		})
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/registering"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// ListCustomers devolve todos os clientes cadastrados. Com os parâmetros
// phone ou email, a rota vira uma busca pontual e devolve um único
// cliente (ou nulo, com sucesso, quando não há correspondência).
func ListCustomers(service registering.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		email := r.URL.Query().Get("email")

		if phone != "" || email != "" {
			searchCustomer(w, service, phone, email)
			return
		}

		customers, err := service.List()
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"customers": customers,
		})
	}
}

// RegisterCustomer cadastra um novo cliente
func RegisterCustomer(service registering.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterCustomer")

		var req domain.RegisterCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		customer, err := service.Register(&req)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"customer": customer,
		})
	}
}

// GetCustomer busca um cliente pelo identificador
func GetCustomer(service registering.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não fornecido", nil)
			return
		}

		customer, err := service.FindByID(customerID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		if customer == nil {
			apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, "Cliente não encontrado", nil)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"customer": customer,
		})
	}
}

// searchCustomer busca um cliente por telefone ou email. Valores
// inexistentes (ou não normalizáveis) devolvem customer nulo com sucesso,
// não um erro.
func searchCustomer(w http.ResponseWriter, service registering.Registry, phone, email string) {
	var customer *domain.Customer
	var err error

	if phone != "" {
		customer, err = service.FindByPhone(phone)
	} else {
		customer, err = service.FindByEmail(email)
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}

	apiErrors.WriteSuccess(w, map[string]any{
		"customer": customer,
	})
}

// UpdateCustomer aplica uma atualização parcial sobre um cliente existente
func UpdateCustomer(service registering.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCustomer")

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não fornecido", nil)
			return
		}

		var req domain.UpdateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = customerID

		customer, err := service.Update(&req)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"customer": customer,
		})
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

// ListUsers lista todos os usuários do sistema
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			handleAuthError(w, err)
			return
		}

		apiErrors.WriteSuccess(w, map[string]any{
			"users": users,
		})
	}
}

// CreateUser cria um novo usuário do sistema
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateUser(&user)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		created.PasswordHash = ""
		apiErrors.WriteSuccess(w, map[string]any{
			"user": created,
		})
	}
}

package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação (AUTH)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuário já existe

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do cadastro de clientes (REG)
	ErrCustomerNotFound   = "REG_001" // Cliente não encontrado
	ErrPhoneAlreadyExists = "REG_002" // Telefone já cadastrado
	ErrEmailAlreadyExists = "REG_003" // Email já cadastrado

	// Erros do livro de vendas (LED)
	ErrSaleNotFound        = "LED_001" // Venda não encontrada
	ErrPaymentExceedsTotal = "LED_002" // Pagamento maior que o valor total
	ErrSegmentNotFound     = "LED_003" // Segmento mensal inexistente

	// Erros de inicialização (SETUP)
	ErrSetupRequired = "SETUP_001" // Tabelas de apoio ausentes, executar setup

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrCustomerNotFound:      http.StatusNotFound,
	ErrPhoneAlreadyExists:    http.StatusConflict,
	ErrEmailAlreadyExists:    http.StatusConflict,
	ErrSaleNotFound:          http.StatusNotFound,
	ErrPaymentExceedsTotal:   http.StatusBadRequest,
	ErrSegmentNotFound:       http.StatusNotFound,
	ErrSetupRequired:         http.StatusPreconditionFailed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado. Toda resposta da API
// carrega o campo success; a camada de rotas traduz o código para o status
// HTTP correspondente.
type APIError struct {
	Success bool   `json:"success"`           // Sempre false em respostas de erro
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"error,omitempty"`   // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteSuccess escreve uma resposta de sucesso com o payload mesclado ao
// campo success exigido pelo contrato da API
func WriteSuccess(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"success": true}
	for key, value := range payload {
		body[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

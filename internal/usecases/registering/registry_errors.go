package registering

import (
	"errors"
	"fmt"
)

// Erros do cadastro de clientes
var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidPhone        = errors.New("telefone inválido")
	ErrInvalidEmail        = errors.New("email inválido")
	ErrInvalidCustomerID   = errors.New("identificador de cliente inválido")
	ErrPhoneAlreadyExists  = errors.New("telefone já cadastrado")
	ErrEmailAlreadyExists  = errors.New("email já cadastrado")
	ErrCustomerNotFound    = errors.New("cliente não encontrado")
)

// RegistryError é um erro com contexto adicional do cadastro de clientes
type RegistryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegistryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegistryError) Unwrap() error {
	return e.Err
}

// IsConflictError verifica se o erro é de conflito de unicidade
func IsConflictError(err error) bool {
	return errors.Is(err, ErrPhoneAlreadyExists) ||
		errors.Is(err, ErrEmailAlreadyExists)
}

// NewRegistryError cria um novo erro de cadastro
func NewRegistryError(baseErr error, code string, details string) *RegistryError {
	return &RegistryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

package ledgering

import (
	"errors"
	"fmt"
)

// Erros do livro de vendas
var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidCustomerID   = errors.New("identificador de cliente inválido")
	ErrCustomerNotFound    = errors.New("cliente não encontrado")
	ErrInvalidQuantity     = errors.New("quantidade deve ser um inteiro positivo")
	ErrInvalidAmountPaid   = errors.New("valor pago não pode ser negativo")
	ErrPaymentExceedsTotal = errors.New("valor pago excede o valor total da venda")
	ErrInvalidSaleID       = errors.New("identificador de venda inválido")
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrInvalidPayment      = errors.New("pagamento deve ser um valor positivo")
)

// LedgerError é um erro com contexto adicional do livro de vendas
type LedgerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError cria um novo erro do livro de vendas
func NewLedgerError(baseErr error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

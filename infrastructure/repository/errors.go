package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrSetupRequired indica que uma tabela de apoio não existe; nenhuma
	// operação dependente funciona até o setup ser (re)executado
	ErrSetupRequired = errors.New("tabelas de apoio ausentes, execute o setup")

	// ErrCounterNotInitialized indica ausência da linha do contador na
	// tabela settings; a alocação de identificadores falha de forma dura,
	// nunca devolve um identificador duplicado ou improvisado
	ErrCounterNotInitialized = errors.New("contador de identificadores não inicializado, execute o setup")
)

// Códigos de erro do Postgres inspecionados pelos repositórios
const (
	pqUndefinedTable  = "42P01"
	pqUniqueViolation = "23505"
)

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUndefinedTable
	}
	return false
}

// IsUniqueViolation informa se o erro veio de um índice único do Postgres.
// Fecha a corrida "verificar unicidade → inserir" entre requisições
// concorrentes: a pré-checagem nos casos de uso cobre o caminho comum e o
// índice único é a garantia final.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

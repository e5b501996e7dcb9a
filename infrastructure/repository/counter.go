package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
)

const settingsTable = "settings"

// Chaves dos contadores monotônicos persistidos na tabela settings
const (
	CounterCustomer = "last_customer_id_number"
	CounterSale     = "last_sale_id_number"
)

type CounterRepository interface {
	AllocateNext(kind string) (int64, error)
	Current(kind string) (int64, error)
}

type counterRepository struct {
	conn *postgres.Connection
}

func NewCounterRepository(conn *postgres.Connection) CounterRepository {
	return &counterRepository{
		conn: conn,
	}
}

// AllocateNext incrementa e devolve o contador em um único UPDATE ...
// RETURNING, atômico no Postgres mesmo com chamadores concorrentes. O
// contador nunca é decrementado nem reutilizado; uma gravação que falhe
// depois da alocação deixa uma lacuna na sequência.
func (r *counterRepository) AllocateNext(kind string) (int64, error) {
	query, args, err := squirrel.
		Update(settingsTable).
		Set("value", squirrel.Expr("value + 1")).
		Where(squirrel.Eq{"key": kind}).
		Suffix("RETURNING value").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value int64
	err = r.conn.QueryRow(query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, ErrCounterNotInitialized
	}
	if err != nil {
		if isUndefinedTable(err) {
			return 0, ErrCounterNotInitialized
		}
		return 0, fmt.Errorf("erro ao alocar próximo valor de %s: %w", kind, err)
	}

	return value, nil
}

// Current devolve o último valor alocado sem incrementar
func (r *counterRepository) Current(kind string) (int64, error) {
	query, args, err := squirrel.
		Select("value").
		From(settingsTable).
		Where(squirrel.Eq{"key": kind}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value int64
	err = r.conn.QueryRow(query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, ErrCounterNotInitialized
	}
	if err != nil {
		if isUndefinedTable(err) {
			return 0, ErrCounterNotInitialized
		}
		return 0, fmt.Errorf("erro ao consultar contador %s: %w", kind, err)
	}

	return value, nil
}

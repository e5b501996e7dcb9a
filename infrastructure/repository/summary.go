package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

const summaryTable = "sales_summary"

type SummaryRepository interface {
	ReplaceAll(entries []*domain.SummaryEntry) error
	List() ([]*domain.SummaryEntry, error)
}

type summaryRepository struct {
	conn *postgres.Connection
}

func NewSummaryRepository(conn *postgres.Connection) SummaryRepository {
	return &summaryRepository{
		conn: conn,
	}
}

// ReplaceAll apaga e regrava a coleção inteira de resumos em uma única
// transação. Linhas adicionadas manualmente à tabela são perdidas a cada
// reconstrução.
func (r *summaryRepository) ReplaceAll(entries []*domain.SummaryEntry) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(summaryTable).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			if isUndefinedTable(err) {
				return ErrSetupRequired
			}
			return fmt.Errorf("erro ao limpar resumo: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		builder := squirrel.
			Insert(summaryTable).
			Columns("month", "status", "last_updated_at").
			PlaceholderFormat(squirrel.Dollar)

		for _, entry := range entries {
			builder = builder.Values(entry.Month, string(entry.Status), entry.LastUpdatedAt)
		}

		insertSQL, insertArgs, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao regravar resumo: %w", err)
		}

		return nil
	})
}

func (r *summaryRepository) List() ([]*domain.SummaryEntry, error) {
	query, args, err := squirrel.
		Select("month", "status", "last_updated_at").
		From(summaryTable).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSetupRequired
		}
		return nil, fmt.Errorf("erro ao listar resumo: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SummaryEntry, 0)
	for rows.Next() {
		entry := &domain.SummaryEntry{}
		var status string
		if err := rows.Scan(&entry.Month, &status, &entry.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de resumo: %w", err)
		}
		entry.Status = domain.SummaryStatus(status)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

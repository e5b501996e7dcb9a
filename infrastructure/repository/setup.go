package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
)

// SetupRepository cria as tabelas de apoio do sistema. Os segmentos mensais
// de vendas não são criados aqui; cada um nasce na primeira venda do mês.
type SetupRepository interface {
	Setup(ctx context.Context) error
}

type setupRepository struct {
	conn *postgres.Connection
}

func NewSetupRepository(conn *postgres.Connection) SetupRepository {
	return &setupRepository{
		conn: conn,
	}
}

// Setup é idempotente: tabelas existentes são preservadas e os contadores
// só são semeados quando ainda não existem
func (r *setupRepository) Setup(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id   TEXT PRIMARY KEY,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			phone         TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL DEFAULT '',
			registered_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS customers_email_unique
			ON customers (email) WHERE email <> ''`,
		`CREATE TABLE IF NOT EXISTS sales_summary (
			month           TEXT PRIMARY KEY,
			status          TEXT NOT NULL,
			last_updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            SERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			lastname      TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			active        BOOLEAN NOT NULL DEFAULT FALSE,
			role_id       INTEGER NOT NULL DEFAULT 3,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		fmt.Sprintf(`INSERT INTO settings (key, value) VALUES ('%s', 0)
			ON CONFLICT (key) DO NOTHING`, CounterCustomer),
		fmt.Sprintf(`INSERT INTO settings (key, value) VALUES ('%s', 0)
			ON CONFLICT (key) DO NOTHING`, CounterSale),
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range statements {
			if _, err := tx.Exec(statement); err != nil {
				return fmt.Errorf("erro ao executar setup: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Info("Setup das tabelas de apoio concluído")
	return nil
}

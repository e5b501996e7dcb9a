package repository

import (
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/utils"
)

// Cada segmento mensal é uma tabela independente sales_YYYY_MM, criada
// sob demanda na primeira venda do mês
const segmentTablePrefix = "sales_"

var segmentTablePattern = regexp.MustCompile(`^sales_(\d{4})_(\d{2})$`)

var saleColumns = []string{
	"sale_id",
	"customer_id",
	"quantity",
	"unit_price",
	"total_price",
	"amount_paid",
	"pending_balance",
	"status",
	"sale_datetime",
	"last_payment_datetime",
}

type SaleRepository interface {
	EnsureSegment(month string) error
	Append(month string, sale *domain.Sale) error
	ListMonths() ([]string, error)
	ListByMonth(month string) ([]*domain.Sale, error)
	ListPendingByMonth(month string) ([]*domain.Sale, error)
	GetByID(month, saleID string) (*domain.Sale, error)
	UpdatePayment(month string, sale *domain.Sale) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// segmentTable converte a chave YYYY-MM no nome da tabela do segmento. A
// chave é validada antes de ser interpolada como identificador SQL.
func segmentTable(month string) (string, error) {
	if !utils.IsMonthKey(month) {
		return "", fmt.Errorf("chave de segmento inválida: %q", month)
	}

	return segmentTablePrefix + strings.ReplaceAll(month, "-", "_"), nil
}

// EnsureSegment cria a tabela do segmento se ainda não existir; idempotente
func (r *saleRepository) EnsureSegment(month string) error {
	table, err := segmentTable(month)
	if err != nil {
		return err
	}

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			sale_id               TEXT PRIMARY KEY,
			customer_id           TEXT NOT NULL,
			quantity              INTEGER NOT NULL,
			unit_price            BIGINT NOT NULL,
			total_price           BIGINT NOT NULL,
			amount_paid           BIGINT NOT NULL,
			pending_balance       BIGINT NOT NULL,
			status                TEXT NOT NULL,
			sale_datetime         TIMESTAMPTZ NOT NULL,
			last_payment_datetime TIMESTAMPTZ NOT NULL
		)`, table)

	if _, err := r.conn.Exec(ddl); err != nil {
		return fmt.Errorf("erro ao criar segmento %s: %w", month, err)
	}

	return nil
}

func (r *saleRepository) Append(month string, sale *domain.Sale) error {
	table, err := segmentTable(month)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert(table).
		Columns(saleColumns...).
		Values(
			sale.ID,
			sale.CustomerID,
			sale.Quantity,
			sale.UnitPrice,
			sale.TotalPrice,
			sale.AmountPaid,
			sale.PendingBalance,
			string(sale.Status),
			sale.SaleDatetime,
			sale.LastPaymentDatetime,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return ErrSetupRequired
		}
		return fmt.Errorf("erro ao registrar venda no segmento %s: %w", month, err)
	}

	return nil
}

// ListMonths enumera todos os segmentos mensais existentes, em ordem
// crescente de mês
func (r *saleRepository) ListMonths() ([]string, error) {
	rows, err := r.conn.Query(
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_name LIKE 'sales\_%' ESCAPE '\'`,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao enumerar segmentos: %w", err)
	}
	defer rows.Close()

	months := make([]string, 0)
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, fmt.Errorf("erro ao escanear nome de tabela: %w", err)
		}

		matches := segmentTablePattern.FindStringSubmatch(tableName)
		if matches == nil {
			continue
		}
		months = append(months, matches[1]+"-"+matches[2])
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	sort.Strings(months)
	return months, nil
}

func (r *saleRepository) ListByMonth(month string) ([]*domain.Sale, error) {
	return r.list(month, nil)
}

func (r *saleRepository) ListPendingByMonth(month string) ([]*domain.Sale, error) {
	return r.list(month, squirrel.Gt{"pending_balance": 0})
}

func (r *saleRepository) list(month string, where squirrel.Sqlizer) ([]*domain.Sale, error) {
	table, err := segmentTable(month)
	if err != nil {
		return nil, err
	}

	builder := squirrel.
		Select(saleColumns...).
		From(table).
		OrderBy("sale_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSetupRequired
		}
		return nil, fmt.Errorf("erro ao listar vendas do segmento %s: %w", month, err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetByID(month, saleID string) (*domain.Sale, error) {
	table, err := segmentTable(month)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(saleColumns...).
		From(table).
		Where(squirrel.Eq{"sale_id": saleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	sale := &domain.Sale{}
	var status string
	err = row.Scan(
		&sale.ID,
		&sale.CustomerID,
		&sale.Quantity,
		&sale.UnitPrice,
		&sale.TotalPrice,
		&sale.AmountPaid,
		&sale.PendingBalance,
		&status,
		&sale.SaleDatetime,
		&sale.LastPaymentDatetime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSetupRequired
		}
		return nil, fmt.Errorf("erro ao buscar venda %s no segmento %s: %w", saleID, month, err)
	}

	sale.Status = domain.SaleStatus(status)
	return sale, nil
}

// UpdatePayment regrava apenas os campos derivados de pagamento; os campos
// de criação da venda são imutáveis
func (r *saleRepository) UpdatePayment(month string, sale *domain.Sale) error {
	table, err := segmentTable(month)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update(table).
		Set("amount_paid", sale.AmountPaid).
		Set("pending_balance", sale.PendingBalance).
		Set("status", string(sale.Status)).
		Set("last_payment_datetime", sale.LastPaymentDatetime).
		Where(squirrel.Eq{"sale_id": sale.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return ErrSetupRequired
		}
		return fmt.Errorf("erro ao atualizar pagamento da venda %s: %w", sale.ID, err)
	}

	return nil
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var status string

	err := rows.Scan(
		&sale.ID,
		&sale.CustomerID,
		&sale.Quantity,
		&sale.UnitPrice,
		&sale.TotalPrice,
		&sale.AmountPaid,
		&sale.PendingBalance,
		&status,
		&sale.SaleDatetime,
		&sale.LastPaymentDatetime,
	)
	if err != nil {
		return nil, err
	}

	sale.Status = domain.SaleStatus(status)
	return sale, nil
}

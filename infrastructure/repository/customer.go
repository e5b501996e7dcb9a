package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

const customersTable = "customers"

var customerColumns = []string{
	"customer_id",
	"first_name",
	"last_name",
	"phone",
	"email",
	"registered_at",
}

type CustomerRepository interface {
	Insert(customer *domain.Customer) error
	GetByID(customerID string) (*domain.Customer, error)
	GetByPhone(phone string) (*domain.Customer, error)
	GetByEmail(email string) (*domain.Customer, error)
	List() ([]*domain.Customer, error)
	Update(customer *domain.Customer) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) Insert(customer *domain.Customer) error {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns(customerColumns...).
		Values(
			customer.ID,
			customer.FirstName,
			customer.LastName,
			customer.Phone,
			customer.Email,
			customer.RegisteredAt,
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
		return fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return nil
}

func (r *customerRepository) GetByID(customerID string) (*domain.Customer, error) {
	return r.getByField("customer_id", customerID)
}

func (r *customerRepository) GetByPhone(phone string) (*domain.Customer, error) {
	return r.getByField("phone", phone)
}

// GetByEmail busca por email já normalizado (minúsculas, sem espaços)
func (r *customerRepository) GetByEmail(email string) (*domain.Customer, error) {
	return r.getByField("email", email)
}

func (r *customerRepository) getByField(field, value string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{field: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	customer, err := scanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrSetupRequired
		}
		return nil, fmt.Errorf("erro ao buscar cliente por %s: %w", field, err)
	}

	return customer, nil
}

func (r *customerRepository) List() ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		OrderBy("customer_id ASC").
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
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Phone,
			&customer.Email,
			&customer.RegisteredAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

// Update regrava os campos mutáveis do cliente; customer_id e registered_at
// são imutáveis e nunca aparecem no SET
func (r *customerRepository) Update(customer *domain.Customer) error {
	query, args, err := squirrel.
		Update(customersTable).
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("phone", customer.Phone).
		Set("email", customer.Email).
		Where(squirrel.Eq{"customer_id": customer.ID}).
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
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return nil
}

func scanCustomer(row *sql.Row) (*domain.Customer, error) {
	customer := &domain.Customer{}

	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.Email,
		&customer.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

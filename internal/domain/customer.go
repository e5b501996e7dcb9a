package domain

import (
	"regexp"
	"time"
)

// CustomerIDPattern valida o formato dos identificadores de cliente (C + 5 dígitos ou mais)
var CustomerIDPattern = regexp.MustCompile(`^C\d{5,}$`)

type Customer struct {
	ID           string    `json:"customer_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

type RegisterCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// UpdateCustomerRequest carrega apenas os campos fornecidos pelo cliente;
// ponteiros nulos indicam "não alterar"
type UpdateCustomerRequest struct {
	ID        string  `json:"customer_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

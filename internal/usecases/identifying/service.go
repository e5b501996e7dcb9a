// Package identifying aloca identificadores únicos, monotônicos e
// formatados para as entidades do sistema
package identifying

import (
	"fmt"

	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
)

// Allocator produz o próximo identificador de cada tipo de entidade.
// Estratégia única: contador persistido com incremento atômico; uma linha
// de contador ausente é erro duro de setup, nunca há varredura de máximos
// nem identificador improvisado a partir de timestamp.
type Allocator interface {
	NextCustomerID() (string, error)
	NextSaleID() (string, error)
}

type Service struct {
	counterRepo repository.CounterRepository
}

func NewService(counterRepo repository.CounterRepository) Allocator {
	return &Service{
		counterRepo: counterRepo,
	}
}

// NextCustomerID devolve o próximo identificador de cliente (C + 5 dígitos)
func (s *Service) NextCustomerID() (string, error) {
	next, err := s.counterRepo.AllocateNext(repository.CounterCustomer)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("C%05d", next), nil
}

// NextSaleID devolve o próximo identificador de venda (S + 5 dígitos). O
// contador é global, compartilhado por todos os segmentos mensais, para que
// um sale_id seja dereferenciável sem conhecer o mês.
func (s *Service) NextSaleID() (string, error) {
	next, err := s.counterRepo.AllocateNext(repository.CounterSale)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("S%05d", next), nil
}

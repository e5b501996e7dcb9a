// Package registering é o cadastro de clientes: criação com garantia de
// unicidade, buscas normalizadas e atualização parcial atômica
package registering

import (
	"strings"
	"time"

	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/identifying"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/validation"
)

type Registry interface {
	Register(req *domain.RegisterCustomerRequest) (*domain.Customer, error)
	FindByID(customerID string) (*domain.Customer, error)
	FindByPhone(rawPhone string) (*domain.Customer, error)
	FindByEmail(rawEmail string) (*domain.Customer, error)
	List() ([]*domain.Customer, error)
	Update(req *domain.UpdateCustomerRequest) (*domain.Customer, error)
}

type Service struct {
	customerRepo repository.CustomerRepository
	allocator    identifying.Allocator
}

func NewService(customerRepo repository.CustomerRepository, allocator identifying.Allocator) Registry {
	return &Service{
		customerRepo: customerRepo,
		allocator:    allocator,
	}
}

// Register valida, normaliza e grava um novo cliente. Toda validação e
// checagem de unicidade acontece antes da alocação do identificador, então
// uma tentativa rejeitada não consome número da sequência.
func (s *Service) Register(req *domain.RegisterCustomerRequest) (*domain.Customer, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if firstName == "" || lastName == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, NewRegistryError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"Nome, sobrenome e telefone são obrigatórios")
	}

	phone, ok := validation.NormalizePhone(req.Phone)
	if !ok {
		return nil, NewRegistryError(ErrInvalidPhone, apiErrors.ErrInvalidFormat,
			"O telefone deve conter exatamente 10 dígitos")
	}

	email := ""
	if strings.TrimSpace(req.Email) != "" {
		normalized, ok := validation.NormalizeEmail(req.Email)
		if !ok {
			return nil, NewRegistryError(ErrInvalidEmail, apiErrors.ErrInvalidFormat,
				"O email informado não tem um formato válido")
		}
		email = normalized
	}

	if err := s.checkUniqueness(phone, email, ""); err != nil {
		return nil, err
	}

	customerID, err := s.allocator.NextCustomerID()
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:           customerID,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		Email:        email,
		RegisteredAt: time.Now(),
	}

	if err := s.customerRepo.Insert(customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewRegistryError(ErrPhoneAlreadyExists, apiErrors.ErrPhoneAlreadyExists,
				"Já existe um cliente com este telefone ou email")
		}
		return nil, err
	}

	return customer, nil
}

// FindByID valida o formato do identificador antes de buscar; formato
// inválido devolve nil sem consultar o banco
func (s *Service) FindByID(customerID string) (*domain.Customer, error) {
	if !domain.CustomerIDPattern.MatchString(customerID) {
		return nil, nil
	}

	return s.customerRepo.GetByID(customerID)
}

// FindByPhone normaliza a entrada com o mesmo validador do cadastro; uma
// entrada não normalizável devolve nil sem buscar
func (s *Service) FindByPhone(rawPhone string) (*domain.Customer, error) {
	phone, ok := validation.NormalizePhone(rawPhone)
	if !ok {
		return nil, nil
	}

	return s.customerRepo.GetByPhone(phone)
}

func (s *Service) FindByEmail(rawEmail string) (*domain.Customer, error) {
	email, ok := validation.NormalizeEmail(rawEmail)
	if !ok {
		return nil, nil
	}

	return s.customerRepo.GetByEmail(email)
}

func (s *Service) List() ([]*domain.Customer, error) {
	return s.customerRepo.List()
}

// Update aplica uma atualização parcial: apenas os campos fornecidos são
// mesclados sobre o registro existente, e a gravação só acontece depois que
// todos os campos fornecidos passam por validação e unicidade. Identificador
// e registered_at são imutáveis.
func (s *Service) Update(req *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	if !domain.CustomerIDPattern.MatchString(req.ID) {
		return nil, NewRegistryError(ErrInvalidCustomerID, apiErrors.ErrInvalidFormat,
			"O identificador deve ter o formato C00000")
	}

	customer, err := s.customerRepo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, NewRegistryError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound,
			"Nenhum cliente com o identificador "+req.ID)
	}

	if req.FirstName != nil {
		firstName := strings.TrimSpace(*req.FirstName)
		if firstName == "" {
			return nil, NewRegistryError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
				"O nome não pode ficar vazio")
		}
		customer.FirstName = firstName
	}

	if req.LastName != nil {
		lastName := strings.TrimSpace(*req.LastName)
		if lastName == "" {
			return nil, NewRegistryError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
				"O sobrenome não pode ficar vazio")
		}
		customer.LastName = lastName
	}

	if req.Phone != nil {
		phone, ok := validation.NormalizePhone(*req.Phone)
		if !ok {
			return nil, NewRegistryError(ErrInvalidPhone, apiErrors.ErrInvalidFormat,
				"O telefone deve conter exatamente 10 dígitos")
		}
		customer.Phone = phone
	}

	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			// Email é opcional; string vazia remove o email do cadastro
			customer.Email = ""
		} else {
			email, ok := validation.NormalizeEmail(*req.Email)
			if !ok {
				return nil, NewRegistryError(ErrInvalidEmail, apiErrors.ErrInvalidFormat,
					"O email informado não tem um formato válido")
			}
			customer.Email = email
		}
	}

	// Unicidade contra todos os outros clientes; colidir consigo mesmo é
	// permitido
	if err := s.checkUniqueness(customer.Phone, customer.Email, customer.ID); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewRegistryError(ErrPhoneAlreadyExists, apiErrors.ErrPhoneAlreadyExists,
				"Já existe um cliente com este telefone ou email")
		}
		return nil, err
	}

	return customer, nil
}

func (s *Service) checkUniqueness(phone, email, selfID string) error {
	existing, err := s.customerRepo.GetByPhone(phone)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return NewRegistryError(ErrPhoneAlreadyExists, apiErrors.ErrPhoneAlreadyExists,
			"Já existe um cliente com o telefone "+phone)
	}

	if email != "" {
		existing, err := s.customerRepo.GetByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != selfID {
			return NewRegistryError(ErrEmailAlreadyExists, apiErrors.ErrEmailAlreadyExists,
				"Já existe um cliente com o email "+email)
		}
	}

	return nil
}

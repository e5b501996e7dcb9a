// Package ledgering é o livro de vendas: registro de vendas particionado
// por segmento mensal e aplicação de pagamentos
package ledgering

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/identifying"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

type Ledger interface {
	RegisterSale(req *domain.RegisterSaleRequest) (*domain.Sale, error)
	ApplyPayment(saleID string, req *domain.ApplyPaymentRequest) (*domain.Sale, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	allocator    identifying.Allocator
	cfg          *config.Config
}

func NewService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	allocator identifying.Allocator,
	cfg *config.Config,
) Ledger {
	return &Service{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		allocator:    allocator,
		cfg:          cfg,
	}
}

// RegisterSale valida as entradas, resolve o segmento do mês corrente
// (criando-o na primeira venda do mês) e grava a venda completa. Toda
// validação acontece antes de qualquer mutação: ou a linha é gravada
// inteira, ou nada é escrito.
func (s *Service) RegisterSale(req *domain.RegisterSaleRequest) (*domain.Sale, error) {
	if req.CustomerID == "" {
		return nil, NewLedgerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"O identificador do cliente é obrigatório")
	}

	if !domain.CustomerIDPattern.MatchString(req.CustomerID) {
		return nil, NewLedgerError(ErrInvalidCustomerID, apiErrors.ErrInvalidFormat,
			"O identificador deve ter o formato C00000")
	}

	if req.Quantity <= 0 {
		return nil, NewLedgerError(ErrInvalidQuantity, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Quantidade recebida: %d", req.Quantity))
	}

	if req.AmountPaid < 0 {
		return nil, NewLedgerError(ErrInvalidAmountPaid, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Valor pago recebido: %d", req.AmountPaid))
	}

	unitPrice := s.cfg.Ledger.DefaultUnitPrice
	if req.UnitPrice > 0 {
		unitPrice = req.UnitPrice
	}

	totalPrice := int64(req.Quantity) * unitPrice
	if req.AmountPaid > totalPrice {
		return nil, NewLedgerError(ErrPaymentExceedsTotal, apiErrors.ErrPaymentExceedsTotal,
			fmt.Sprintf("Valor pago %d maior que o total %d", req.AmountPaid, totalPrice))
	}

	customer, err := s.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, NewLedgerError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound,
			"Nenhum cliente com o identificador "+req.CustomerID)
	}

	saleDatetime := time.Now()
	month := domain.MonthKey(saleDatetime)

	if err := s.saleRepo.EnsureSegment(month); err != nil {
		return nil, err
	}

	saleID, err := s.allocator.NextSaleID()
	if err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:                  saleID,
		CustomerID:          req.CustomerID,
		Quantity:            req.Quantity,
		UnitPrice:           unitPrice,
		TotalPrice:          totalPrice,
		AmountPaid:          req.AmountPaid,
		PendingBalance:      totalPrice - req.AmountPaid,
		Status:              domain.ComputeSaleStatus(totalPrice, req.AmountPaid),
		SaleDatetime:        saleDatetime,
		LastPaymentDatetime: saleDatetime,
	}

	if err := s.saleRepo.Append(month, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// ApplyPayment soma um pagamento a uma venda existente e recalcula saldo e
// status. Quando o mês não é informado, os segmentos são percorridos do
// mais recente para o mais antigo até a venda ser encontrada.
func (s *Service) ApplyPayment(saleID string, req *domain.ApplyPaymentRequest) (*domain.Sale, error) {
	if !domain.SaleIDPattern.MatchString(saleID) {
		return nil, NewLedgerError(ErrInvalidSaleID, apiErrors.ErrInvalidFormat,
			"O identificador deve ter o formato S00000")
	}

	if req.Amount <= 0 {
		return nil, NewLedgerError(ErrInvalidPayment, apiErrors.ErrInvalidFormat,
			fmt.Sprintf("Valor recebido: %d", req.Amount))
	}

	month, sale, err := s.locateSale(saleID, req.Month)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, NewLedgerError(ErrSaleNotFound, apiErrors.ErrSaleNotFound,
			"Nenhuma venda com o identificador "+saleID)
	}

	newAmountPaid := sale.AmountPaid + req.Amount
	if newAmountPaid > sale.TotalPrice {
		return nil, NewLedgerError(ErrPaymentExceedsTotal, apiErrors.ErrPaymentExceedsTotal,
			fmt.Sprintf("Saldo devedor é %d, pagamento de %d excede o total", sale.PendingBalance, req.Amount))
	}

	sale.AmountPaid = newAmountPaid
	sale.PendingBalance = sale.TotalPrice - newAmountPaid
	sale.Status = domain.ComputeSaleStatus(sale.TotalPrice, newAmountPaid)
	sale.LastPaymentDatetime = time.Now()

	if err := s.saleRepo.UpdatePayment(month, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *Service) locateSale(saleID, month string) (string, *domain.Sale, error) {
	if month != "" {
		sale, err := s.saleRepo.GetByID(month, saleID)
		return month, sale, err
	}

	months, err := s.saleRepo.ListMonths()
	if err != nil {
		return "", nil, err
	}

	for i := len(months) - 1; i >= 0; i-- {
		sale, err := s.saleRepo.GetByID(months[i], saleID)
		if err != nil {
			return "", nil, err
		}
		if sale != nil {
			return months[i], sale, nil
		}
	}

	return "", nil, nil
}

package ledgering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	allocatormocks "github.com/vfg2006/sales-ledger-api/internal/usecases/identifying/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.Ledger{
			DefaultUnitPrice: 5000,
		},
	}
}

func TestService_RegisterSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currentMonth := domain.MonthKey(time.Now())

	tests := []struct {
		name      string
		req       *domain.RegisterSaleRequest
		setup     func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator)
		expectErr error
		validate  func(t *testing.T, sale *domain.Sale)
	}{
		{
			name: "Pagamento parcial calcula saldo devedor e status Partial",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00001",
				Quantity:   3,
				AmountPaid: 10000,
			},
			setup: func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				customerRepo.EXPECT().GetByID("C00001").Return(&domain.Customer{ID: "C00001"}, nil)
				saleRepo.EXPECT().EnsureSegment(currentMonth).Return(nil)
				allocator.EXPECT().NextSaleID().Return("S00001", nil)
				saleRepo.EXPECT().Append(currentMonth, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, "S00001", sale.ID)
				assert.Equal(t, int64(5000), sale.UnitPrice)
				assert.Equal(t, int64(15000), sale.TotalPrice)
				assert.Equal(t, int64(10000), sale.AmountPaid)
				assert.Equal(t, int64(5000), sale.PendingBalance)
				assert.Equal(t, domain.SaleStatusPartial, sale.Status)
			},
		},
		{
			name: "Pagamento integral resulta em status Paid e saldo zero",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00001",
				Quantity:   2,
				AmountPaid: 10000,
			},
			setup: func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				customerRepo.EXPECT().GetByID("C00001").Return(&domain.Customer{ID: "C00001"}, nil)
				saleRepo.EXPECT().EnsureSegment(currentMonth).Return(nil)
				allocator.EXPECT().NextSaleID().Return("S00002", nil)
				saleRepo.EXPECT().Append(currentMonth, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, int64(10000), sale.TotalPrice)
				assert.Equal(t, int64(0), sale.PendingBalance)
				assert.Equal(t, domain.SaleStatusPaid, sale.Status)
			},
		},
		{
			name: "Sem pagamento o status é Unpaid e o saldo é o total",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00001",
				Quantity:   1,
				AmountPaid: 0,
			},
			setup: func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				customerRepo.EXPECT().GetByID("C00001").Return(&domain.Customer{ID: "C00001"}, nil)
				saleRepo.EXPECT().EnsureSegment(currentMonth).Return(nil)
				allocator.EXPECT().NextSaleID().Return("S00003", nil)
				saleRepo.EXPECT().Append(currentMonth, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, int64(5000), sale.PendingBalance)
				assert.Equal(t, domain.SaleStatusUnpaid, sale.Status)
			},
		},
		{
			name: "Preço unitário informado na venda sobrepõe o padrão",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00001",
				Quantity:   2,
				AmountPaid: 0,
				UnitPrice:  7500,
			},
			setup: func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				customerRepo.EXPECT().GetByID("C00001").Return(&domain.Customer{ID: "C00001"}, nil)
				saleRepo.EXPECT().EnsureSegment(currentMonth).Return(nil)
				allocator.EXPECT().NextSaleID().Return("S00004", nil)
				saleRepo.EXPECT().Append(currentMonth, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, int64(7500), sale.UnitPrice)
				assert.Equal(t, int64(15000), sale.TotalPrice)
			},
		},
		{
			name: "Pagamento acima do total é rejeitado sem gravar nada",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00001",
				Quantity:   1,
				AmountPaid: 99999,
			},
			setup: func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				// Nenhuma chamada aos repositórios: a rejeição acontece antes
			},
			expectErr: ErrPaymentExceedsTotal,
		},
		{
			name: "Quantidade não positiva é rejeitada",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00001",
				Quantity:   0,
				AmountPaid: 0,
			},
			setup:     func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {},
			expectErr: ErrInvalidQuantity,
		},
		{
			name: "Identificador de cliente com formato inválido é rejeitado",
			req: &domain.RegisterSaleRequest{
				CustomerID: "00001",
				Quantity:   1,
			},
			setup:     func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {},
			expectErr: ErrInvalidCustomerID,
		},
		{
			name: "Cliente inexistente é rejeitado sem consumir identificador",
			req: &domain.RegisterSaleRequest{
				CustomerID: "C00099",
				Quantity:   1,
			},
			setup: func(saleRepo *mocks.MockSaleRepository, customerRepo *mocks.MockCustomerRepository, allocator *allocatormocks.MockAllocator) {
				customerRepo.EXPECT().GetByID("C00099").Return(nil, nil)
				// Nenhuma chamada a NextSaleID nem a Append
			},
			expectErr: ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
			mockAllocator := allocatormocks.NewMockAllocator(ctrl)
			tt.setup(mockSaleRepo, mockCustomerRepo, mockAllocator)

			service := NewService(mockSaleRepo, mockCustomerRepo, mockAllocator, testConfig())

			sale, err := service.RegisterSale(tt.req)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, sale)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, sale)
		})
	}
}

func TestService_ApplyPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existingSale := func() *domain.Sale {
		return &domain.Sale{
			ID:             "S00001",
			CustomerID:     "C00001",
			Quantity:       3,
			UnitPrice:      5000,
			TotalPrice:     15000,
			AmountPaid:     10000,
			PendingBalance: 5000,
			Status:         domain.SaleStatusPartial,
		}
	}

	t.Run("Pagamento quita a venda e recalcula o status", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)

		mockSaleRepo.EXPECT().GetByID("2026-08", "S00001").Return(existingSale(), nil)
		mockSaleRepo.EXPECT().UpdatePayment("2026-08", gomock.Any()).
			DoAndReturn(func(month string, sale *domain.Sale) error {
				assert.Equal(t, int64(15000), sale.AmountPaid)
				assert.Equal(t, int64(0), sale.PendingBalance)
				assert.Equal(t, domain.SaleStatusPaid, sale.Status)
				assert.False(t, sale.LastPaymentDatetime.IsZero())
				return nil
			})

		service := NewService(mockSaleRepo, mockCustomerRepo, mockAllocator, testConfig())

		sale, err := service.ApplyPayment("S00001", &domain.ApplyPaymentRequest{
			Amount: 5000,
			Month:  "2026-08",
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.SaleStatusPaid, sale.Status)
	})

	t.Run("Sem mês informado os segmentos são varridos do mais recente", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)

		mockSaleRepo.EXPECT().ListMonths().Return([]string{"2026-06", "2026-07", "2026-08"}, nil)
		gomock.InOrder(
			mockSaleRepo.EXPECT().GetByID("2026-08", "S00001").Return(nil, nil),
			mockSaleRepo.EXPECT().GetByID("2026-07", "S00001").Return(existingSale(), nil),
		)
		mockSaleRepo.EXPECT().UpdatePayment("2026-07", gomock.Any()).Return(nil)

		service := NewService(mockSaleRepo, mockCustomerRepo, mockAllocator, testConfig())

		sale, err := service.ApplyPayment("S00001", &domain.ApplyPaymentRequest{Amount: 2000})

		assert.NoError(t, err)
		assert.Equal(t, int64(12000), sale.AmountPaid)
		assert.Equal(t, int64(3000), sale.PendingBalance)
		assert.Equal(t, domain.SaleStatusPartial, sale.Status)
	})

	t.Run("Pagamento acima do saldo devedor é rejeitado sem gravar", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)

		mockSaleRepo.EXPECT().GetByID("2026-08", "S00001").Return(existingSale(), nil)
		// Nenhuma chamada a UpdatePayment

		service := NewService(mockSaleRepo, mockCustomerRepo, mockAllocator, testConfig())

		sale, err := service.ApplyPayment("S00001", &domain.ApplyPaymentRequest{
			Amount: 6000,
			Month:  "2026-08",
		})

		assert.ErrorIs(t, err, ErrPaymentExceedsTotal)
		assert.Nil(t, sale)
	})

	t.Run("Venda inexistente em todos os segmentos devolve erro", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)

		mockSaleRepo.EXPECT().ListMonths().Return([]string{"2026-08"}, nil)
		mockSaleRepo.EXPECT().GetByID("2026-08", "S00099").Return(nil, nil)

		service := NewService(mockSaleRepo, mockCustomerRepo, mockAllocator, testConfig())

		sale, err := service.ApplyPayment("S00099", &domain.ApplyPaymentRequest{Amount: 1000})

		assert.ErrorIs(t, err, ErrSaleNotFound)
		assert.Nil(t, sale)
	})

	t.Run("Valor não positivo é rejeitado", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockCustomerRepo := mocks.NewMockCustomerRepository(ctrl)
		mockAllocator := allocatormocks.NewMockAllocator(ctrl)

		service := NewService(mockSaleRepo, mockCustomerRepo, mockAllocator, testConfig())

		sale, err := service.ApplyPayment("S00001", &domain.ApplyPaymentRequest{Amount: 0})

		assert.ErrorIs(t, err, ErrInvalidPayment)
		assert.Nil(t, sale)
	})
}

package summarizing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RebuildSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSummaryRepository)
		validate func(t *testing.T, entries []*domain.SummaryEntry)
	}{
		{
			name: "Mês com saldo devedor fica pendente, mês quitado fica settled",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSummaryRepository) {
				saleRepo.EXPECT().ListMonths().Return([]string{"2026-07", "2026-08"}, nil)
				saleRepo.EXPECT().ListByMonth("2026-07").Return([]*domain.Sale{
					{ID: "S00001", PendingBalance: 0, Status: domain.SaleStatusPaid},
					{ID: "S00002", PendingBalance: 0, Status: domain.SaleStatusPaid},
				}, nil)
				saleRepo.EXPECT().ListByMonth("2026-08").Return([]*domain.Sale{
					{ID: "S00003", PendingBalance: 0, Status: domain.SaleStatusPaid},
					{ID: "S00004", PendingBalance: 5000, Status: domain.SaleStatusPartial},
				}, nil)
				summaryRepo.EXPECT().ReplaceAll(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entries []*domain.SummaryEntry) {
				assert.Len(t, entries, 2)
				assert.Equal(t, "2026-07", entries[0].Month)
				assert.Equal(t, domain.SummaryStatusSettled, entries[0].Status)
				assert.Equal(t, "2026-08", entries[1].Month)
				assert.Equal(t, domain.SummaryStatusPending, entries[1].Status)
			},
		},
		{
			name: "Segmento vazio é considerado quitado",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSummaryRepository) {
				saleRepo.EXPECT().ListMonths().Return([]string{"2026-08"}, nil)
				saleRepo.EXPECT().ListByMonth("2026-08").Return([]*domain.Sale{}, nil)
				summaryRepo.EXPECT().ReplaceAll(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, entries []*domain.SummaryEntry) {
				assert.Len(t, entries, 1)
				assert.Equal(t, domain.SummaryStatusSettled, entries[0].Status)
			},
		},
		{
			name: "Sem segmentos a coleção de resumos é regravada vazia",
			setup: func(saleRepo *mocks.MockSaleRepository, summaryRepo *mocks.MockSummaryRepository) {
				saleRepo.EXPECT().ListMonths().Return([]string{}, nil)
				summaryRepo.EXPECT().ReplaceAll(gomock.Len(0)).Return(nil)
			},
			validate: func(t *testing.T, entries []*domain.SummaryEntry) {
				assert.Empty(t, entries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
			tt.setup(mockSaleRepo, mockSummaryRepo)

			service := NewService(mockSaleRepo, mockSummaryRepo)

			entries, err := service.RebuildSummary()
			assert.NoError(t, err)
			tt.validate(t, entries)
		})
	}
}

func TestService_RebuildSummary_FlipsStatusOnNewPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
	service := NewService(mockSaleRepo, mockSummaryRepo)

	// Primeira reconstrução: a venda ainda deve
	mockSaleRepo.EXPECT().ListMonths().Return([]string{"2026-08"}, nil)
	mockSaleRepo.EXPECT().ListByMonth("2026-08").Return([]*domain.Sale{
		{ID: "S00001", PendingBalance: 5000, Status: domain.SaleStatusPartial},
	}, nil)
	mockSummaryRepo.EXPECT().ReplaceAll(gomock.Any()).Return(nil)

	entries, err := service.RebuildSummary()
	assert.NoError(t, err)
	assert.Equal(t, domain.SummaryStatusPending, entries[0].Status)

	// Segunda reconstrução depois da quitação: o mesmo mês vira settled
	mockSaleRepo.EXPECT().ListMonths().Return([]string{"2026-08"}, nil)
	mockSaleRepo.EXPECT().ListByMonth("2026-08").Return([]*domain.Sale{
		{ID: "S00001", PendingBalance: 0, Status: domain.SaleStatusPaid},
	}, nil)
	mockSummaryRepo.EXPECT().ReplaceAll(gomock.Any()).Return(nil)

	entries, err = service.RebuildSummary()
	assert.NoError(t, err)
	assert.Equal(t, domain.SummaryStatusSettled, entries[0].Status)
}

func TestService_ListPendingSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Lê apenas os segmentos marcados como pendentes", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
		service := NewService(mockSaleRepo, mockSummaryRepo)

		now := time.Now()
		mockSummaryRepo.EXPECT().List().Return([]*domain.SummaryEntry{
			{Month: "2026-06", Status: domain.SummaryStatusSettled, LastUpdatedAt: now},
			{Month: "2026-07", Status: domain.SummaryStatusPending, LastUpdatedAt: now},
			{Month: "2026-08", Status: domain.SummaryStatusPending, LastUpdatedAt: now},
		}, nil)

		// 2026-06 está quitado e não é varrido
		mockSaleRepo.EXPECT().ListPendingByMonth("2026-07").Return([]*domain.Sale{
			{ID: "S00001", PendingBalance: 3000},
		}, nil)
		mockSaleRepo.EXPECT().ListPendingByMonth("2026-08").Return([]*domain.Sale{
			{ID: "S00005", PendingBalance: 5000},
			{ID: "S00009", PendingBalance: 1000},
		}, nil)

		pending, err := service.ListPendingSales()
		assert.NoError(t, err)
		assert.Len(t, pending, 3)
		assert.Equal(t, "S00001", pending[0].ID)
		assert.Equal(t, "S00005", pending[1].ID)
	})

	t.Run("Resumo vazio devolve lista vazia sem varrer segmentos", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
		service := NewService(mockSaleRepo, mockSummaryRepo)

		mockSummaryRepo.EXPECT().List().Return([]*domain.SummaryEntry{}, nil)

		pending, err := service.ListPendingSales()
		assert.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Falha na leitura do resumo é propagada", func(t *testing.T) {
		mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
		mockSummaryRepo := mocks.NewMockSummaryRepository(ctrl)
		service := NewService(mockSaleRepo, mockSummaryRepo)

		repoErr := errors.New("conexão recusada")
		mockSummaryRepo.EXPECT().List().Return(nil, repoErr)

		pending, err := service.ListPendingSales()
		assert.ErrorIs(t, err, repoErr)
		assert.Nil(t, pending)
	})
}

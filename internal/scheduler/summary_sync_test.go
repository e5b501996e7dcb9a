package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/summarizing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(summarizer *mocks.MockSummarizer, enabled bool) *SummarySyncService {
	return &SummarySyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config: SummarySyncConfig{
			CronSchedule: "0 5 * * *",
			SyncEnabled:  enabled,
		},
		summarizer: summarizer,
	}
}

func TestSummarySyncService_rebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Reconstrução bem sucedida atualiza os carimbos de status", func(t *testing.T) {
		mockSummarizer := mocks.NewMockSummarizer(ctrl)
		mockSummarizer.EXPECT().RebuildSummary().Return([]*domain.SummaryEntry{
			{Month: "2026-08", Status: domain.SummaryStatusPending},
		}, nil)

		service := newTestService(mockSummarizer, true)
		service.rebuild()

		status := service.GetStatus()
		assert.False(t, status["running"].(bool))
		assert.Empty(t, status["last_sync_error"])
		assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Erro na reconstrução é registrado no status", func(t *testing.T) {
		mockSummarizer := mocks.NewMockSummarizer(ctrl)
		mockSummarizer.EXPECT().RebuildSummary().Return(nil, errors.New("conexão recusada"))

		service := newTestService(mockSummarizer, true)
		service.rebuild()

		status := service.GetStatus()
		assert.Equal(t, "conexão recusada", status["last_sync_error"])
	})

	t.Run("Reconstrução concorrente é ignorada enquanto outra roda", func(t *testing.T) {
		mockSummarizer := mocks.NewMockSummarizer(ctrl)

		service := newTestService(mockSummarizer, true)
		service.syncRunning = true

		// Nenhuma chamada a RebuildSummary é esperada
		service.rebuild()

		status := service.GetStatus()
		assert.True(t, status["running"].(bool))
	})
}

func TestSummarySyncService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarizer := mocks.NewMockSummarizer(ctrl)
	service := newTestService(mockSummarizer, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.False(t, status["enabled"].(bool))
}

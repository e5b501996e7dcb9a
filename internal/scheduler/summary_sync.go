package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/summarizing"
)

// SummarySyncConfig representa a configuração do agendador de reconstrução
// do resumo de vendas
type SummarySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SummarySyncService agenda e executa a reconstrução periódica do resumo
// mensal de vendas, para que a coleção persistida raramente fique defasada
type SummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              SummarySyncConfig
	summarizer          summarizing.Summarizer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewSummarySyncService cria uma nova instância do serviço de sincronização
func NewSummarySyncService(summarizer summarizing.Summarizer, appConfig *config.Config) *SummarySyncService {
	syncConfig := SummarySyncConfig{
		CronSchedule: appConfig.SummarySync.CronSchedule,
		SyncEnabled:  appConfig.SummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de resumo de vendas carregada")

	return &SummarySyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		summarizer: summarizer,
	}
}

// Start inicia o agendador
func (s *SummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconstrução agendada do resumo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconstrução do resumo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rebuild()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconstrução do resumo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconstrução do resumo")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma reconstrução fora do horário agendado
func (s *SummarySyncService) TriggerManualSync() {
	go s.rebuild()
}

// GetStatus devolve o estado corrente do agendador
func (s *SummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"cron_schedule":          s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}

func (s *SummarySyncService) rebuild() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconstrução do resumo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	entries, err := s.summarizer.RebuildSummary()
	if err != nil {
		logrus.WithError(err).Error("Erro na reconstrução agendada do resumo")
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.WithField("segments", len(entries)).Info("Reconstrução agendada do resumo concluída")
}

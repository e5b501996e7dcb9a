// Package summarizing reconstrói o status consolidado (pendente/quitado)
// de cada segmento mensal de vendas
package summarizing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

type Summarizer interface {
	RebuildSummary() ([]*domain.SummaryEntry, error)
	ListSummary() ([]*domain.SummaryEntry, error)
	ListPendingSales() ([]*domain.Sale, error)
}

type Service struct {
	saleRepo    repository.SaleRepository
	summaryRepo repository.SummaryRepository
}

func NewService(saleRepo repository.SaleRepository, summaryRepo repository.SummaryRepository) Summarizer {
	return &Service{
		saleRepo:    saleRepo,
		summaryRepo: summaryRepo,
	}
}

// RebuildSummary enumera todos os segmentos mensais e regrava a coleção de
// resumos inteira (clear-then-rewrite, nunca um merge incremental). Um mês
// é pendente se qualquer venda dele tem saldo devedor; um segmento vazio é
// quitado.
func (s *Service) RebuildSummary() ([]*domain.SummaryEntry, error) {
	months, err := s.saleRepo.ListMonths()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries := make([]*domain.SummaryEntry, 0, len(months))

	for _, month := range months {
		sales, err := s.saleRepo.ListByMonth(month)
		if err != nil {
			return nil, err
		}

		status := domain.SummaryStatusSettled
		for _, sale := range sales {
			if sale.PendingBalance > 0 {
				status = domain.SummaryStatusPending
				break
			}
		}

		entries = append(entries, &domain.SummaryEntry{
			Month:         month,
			Status:        status,
			LastUpdatedAt: now,
		})
	}

	if err := s.summaryRepo.ReplaceAll(entries); err != nil {
		return nil, err
	}

	logrus.WithField("segments", len(entries)).Info("Resumo de vendas reconstruído")
	return entries, nil
}

// ListSummary devolve o resumo persistido na última reconstrução
func (s *Service) ListSummary() ([]*domain.SummaryEntry, error) {
	return s.summaryRepo.List()
}

// ListPendingSales lê apenas os segmentos marcados como pendentes no
// resumo persistido, evitando varrer meses já quitados. Um resumo
// defasado é aceito; quem precisa de dados frescos reconstrói antes.
func (s *Service) ListPendingSales() ([]*domain.Sale, error) {
	entries, err := s.summaryRepo.List()
	if err != nil {
		return nil, err
	}

	pending := make([]*domain.Sale, 0)
	for _, entry := range entries {
		if entry.Status != domain.SummaryStatusPending {
			continue
		}

		sales, err := s.saleRepo.ListPendingByMonth(entry.Month)
		if err != nil {
			return nil, err
		}
		pending = append(pending, sales...)
	}

	return pending, nil
}

package domain

import "time"

type SummaryStatus string

const (
	SummaryStatusPending SummaryStatus = "pending"
	SummaryStatusSettled SummaryStatus = "settled"
)

// SummaryEntry é o status consolidado de um segmento mensal, totalmente
// derivado das vendas do segmento a cada reconstrução
type SummaryEntry struct {
	Month         string        `json:"month"`
	Status        SummaryStatus `json:"status"`
	LastUpdatedAt time.Time     `json:"last_updated_at"`
}

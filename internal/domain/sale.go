package domain

import (
	"regexp"
	"time"
)

// SaleIDPattern valida o formato dos identificadores de venda (S + 5 dígitos ou mais)
var SaleIDPattern = regexp.MustCompile(`^S\d{5,}$`)

// MonthLayout é o formato da chave dos segmentos mensais (YYYY-MM)
const MonthLayout = "2006-01"

type SaleStatus string

const (
	SaleStatusPaid    SaleStatus = "Paid"
	SaleStatusPartial SaleStatus = "Partial"
	SaleStatusUnpaid  SaleStatus = "Unpaid"
)

type Sale struct {
	ID                  string     `json:"sale_id"`
	CustomerID          string     `json:"customer_id"`
	Quantity            int        `json:"quantity"`
	UnitPrice           int64      `json:"unit_price"`
	TotalPrice          int64      `json:"total_price"`
	AmountPaid          int64      `json:"amount_paid"`
	PendingBalance      int64      `json:"pending_balance"`
	Status              SaleStatus `json:"status"`
	SaleDatetime        time.Time  `json:"sale_datetime"`
	LastPaymentDatetime time.Time  `json:"last_payment_datetime"`
}

type RegisterSaleRequest struct {
	CustomerID string `json:"customer_id"`
	Quantity   int    `json:"quantity"`
	AmountPaid int64  `json:"amount_paid"`
	// UnitPrice sobrescreve o preço unitário padrão quando maior que zero
	UnitPrice int64 `json:"unit_price"`
}

type ApplyPaymentRequest struct {
	Amount int64 `json:"amount"`
	// Month indica o segmento da venda; quando vazio, todos os segmentos
	// são percorridos do mais recente para o mais antigo
	Month string `json:"month"`
}

// ComputeSaleStatus deriva o status de uma venda exclusivamente do par
// (total_price, amount_paid), conforme exigido pelo agregador de resumo
func ComputeSaleStatus(totalPrice, amountPaid int64) SaleStatus {
	switch {
	case amountPaid >= totalPrice:
		return SaleStatusPaid
	case amountPaid > 0:
		return SaleStatusPartial
	default:
		return SaleStatusUnpaid
	}
}

// MonthKey retorna a chave do segmento mensal correspondente à data
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending           = "pending"
	StatusPendingPayment    = "pending payment"
	StatusPaymentReceived   = "payment received"
	StatusPaid              = "paid"
	StatusPaymentConfirmed  = "payment confirmed"
	StatusProcessing        = "processing"
	StatusSentToBeneficiary = "sent to beneficiary"
	StatusCompleted         = "completed"
	StatusCancelled         = "cancelled"
	StatusFailed            = "failed"
)

const (
	ColorNeutral = "neutral"
	ColorWarning = "warning"
	ColorInfo    = "info"
	ColorPrimary = "primary"
	ColorSuccess = "success"
	ColorDanger  = "danger"
)

// OrderRecord is the canonical view of one money-transfer order. It is built
// once per successful lookup and never mutated; a refresh replaces it.
type OrderRecord struct {
	OrderRef        string          `json:"orderRef"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	USDAmount       decimal.Decimal `json:"usdAmount"`
	ZARTotal        decimal.Decimal `json:"zarTotal"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	PayiziFee       decimal.Decimal `json:"payiziFee"`
	BeneficiaryName string          `json:"beneficiaryName"`
	Location        string          `json:"location"`
	Destination     string          `json:"destination"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}

// DisplayState drives the progress bar, badge color and timeline stepper.
// It is derived from the status string alone.
type DisplayState struct {
	ProgressPercent int    `json:"progressPercent"`
	ColorClass      string `json:"colorClass"`
	TimelineStep    int    `json:"timelineStep"`
	Label           string `json:"label"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction records an actual cash movement, optionally split across
// budget lines via allocations. Amounts are stored in their native
// currency; conversion happens only at report time.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Counterparty  string          `json:"counterparty"` // optional
	Amount        decimal.Decimal `json:"amount"`       // positive, native currency
	CurrencyCode  string          `json:"currencyCode"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Account       string          `json:"account"` // optional, one of the configured labels
	Notes         string          `json:"notes"`
	Allocations   []Allocation    `json:"allocations"`
	AuditFields
}

// AllocationTotal implements Allocatable: transaction allocations must sum
// to the transaction amount.
func (t Transaction) AllocationTotal() decimal.Decimal {
	return t.Amount
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Counterparty  string          `json:"counterparty"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	PaymentMethod string          `json:"paymentMethod"`
	Account       string          `json:"account"`
	Notes         string          `json:"notes"`
	AuditFields
}

// TransactionAllocation is the transaction_allocations table row.
type TransactionAllocation struct {
	AllocationID  string          `json:"allocationID"`
	TransactionID string          `json:"transactionID"`
	BudgetLineID  string          `json:"budgetLineID"`
	Amount        decimal.Decimal `json:"amount"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a cash
// movement. Allocations, when present, must sum to the amount.
type CreateTransactionRequest struct {
	Type          string              `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Date          time.Time           `json:"date" binding:"required"`
	Description   string              `json:"description" binding:"required"`
	Counterparty  string              `json:"counterparty"`
	Amount        decimal.Decimal     `json:"amount" binding:"required"`
	CurrencyCode  string              `json:"currencyCode" binding:"required,len=3,uppercase"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=BANK_TRANSFER CARD CASH OTHER"`
	Account       string              `json:"account"`
	Notes         string              `json:"notes"`
	Allocations   []AllocationRequest `json:"allocations"`
}

// UpdateTransactionRequest replaces the transaction's fields and its full
// allocation set. Clients always resend the whole allocation list.
type UpdateTransactionRequest = CreateTransactionRequest

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string               `json:"transactionID"`
	Type          string               `json:"type"`
	Date          time.Time            `json:"date"`
	Description   string               `json:"description"`
	Counterparty  string               `json:"counterparty"`
	Amount        decimal.Decimal      `json:"amount"`
	CurrencyCode  string               `json:"currencyCode"`
	PaymentMethod string               `json:"paymentMethod"`
	Account       string               `json:"account"`
	Notes         string               `json:"notes"`
	Allocations   []AllocationResponse `json:"allocations"`
	AuditResponse
}

// ListTransactionsResponse is a page of transactions plus the token for
// the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Date:          txn.Date,
		Description:   txn.Description,
		Counterparty:  txn.Counterparty,
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		PaymentMethod: string(txn.PaymentMethod),
		Account:       txn.Account,
		Notes:         txn.Notes,
		Allocations:   ToAllocationResponses(txn.Allocations),
		AuditResponse: toAuditResponse(txn.AuditFields),
	}
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}

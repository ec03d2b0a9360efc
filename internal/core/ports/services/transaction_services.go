package services

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/dto"
)

// TransactionSvcFacade defines the operations of the transaction ledger.
// Create and update validate the allocation set against the transaction
// amount; a violation rejects the whole mutation.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

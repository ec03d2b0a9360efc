package repositories

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Returned transactions always carry their full allocation set.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction and its allocations.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions ordered by date
	// descending using token-based pagination. It returns the
	// transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactions retrieves every transaction with allocations,
	// for reporting and export.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Both save and update replace the allocation set atomically with the
// transaction row itself; a validation or write failure leaves nothing
// committed.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction row and its allocations in
	// one database transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction, allocations []domain.Allocation) error

	// UpdateTransaction replaces the row's fields and the full allocation
	// set (delete-then-insert) in one database transaction. Returns
	// apperrors.ErrNotFound if no row matched.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, allocations []domain.Allocation) error

	// DeleteTransaction removes the transaction and its allocations.
	// Returns apperrors.ErrNotFound if no row matched.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}

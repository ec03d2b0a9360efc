package repositories

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
)

// BudgetLineReader defines read operations for budget line data.
type BudgetLineReader interface {
	// FindBudgetLineByID retrieves a single budget line by its identifier.
	FindBudgetLineByID(ctx context.Context, budgetLineID string) (*domain.BudgetLine, error)

	// ListBudgetLines retrieves every budget line, ordered by macro
	// category then name. The chart of an event is tens of lines, so no
	// pagination is needed here.
	ListBudgetLines(ctx context.Context) ([]domain.BudgetLine, error)
}

// BudgetLineWriter defines write operations for budget line data.
type BudgetLineWriter interface {
	// SaveBudgetLine inserts a new budget line.
	SaveBudgetLine(ctx context.Context, line domain.BudgetLine) error

	// UpdateBudgetLine replaces all fields of an existing budget line.
	// Returns apperrors.ErrNotFound if no row matched.
	UpdateBudgetLine(ctx context.Context, line domain.BudgetLine) error

	// DeleteBudgetLine removes the line and cascades to every transaction
	// and sponsorship allocation referencing it, within one database
	// transaction. Returns apperrors.ErrNotFound if no row matched.
	DeleteBudgetLine(ctx context.Context, budgetLineID string) error
}

// BudgetLineRepositoryFacade combines all budget line repository interfaces.
type BudgetLineRepositoryFacade interface {
	BudgetLineReader
	BudgetLineWriter
}

// BudgetLineRepositoryWithTx extends the facade with transaction capabilities.
type BudgetLineRepositoryWithTx interface {
	BudgetLineRepositoryFacade
	TransactionManager
}

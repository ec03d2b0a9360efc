package services

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/evfin/event_finance_app/internal/dto"
)

// BudgetLineSvcFacade defines the operations of the budget line registry.
type BudgetLineSvcFacade interface {
	// CreateBudgetLine validates and persists a new budget line.
	CreateBudgetLine(ctx context.Context, req dto.CreateBudgetLineRequest, creatorUserID string) (*domain.BudgetLine, error)

	// UpdateBudgetLine replaces all fields of an existing line.
	UpdateBudgetLine(ctx context.Context, budgetLineID string, req dto.UpdateBudgetLineRequest, updaterUserID string) (*domain.BudgetLine, error)

	// DeleteBudgetLine removes the line and cascades to allocations
	// referencing it.
	DeleteBudgetLine(ctx context.Context, budgetLineID string) error

	// GetBudgetLineByID retrieves a single budget line.
	GetBudgetLineByID(ctx context.Context, budgetLineID string) (*domain.BudgetLine, error)

	// ListBudgetLines retrieves the whole chart.
	ListBudgetLines(ctx context.Context) ([]domain.BudgetLine, error)
}

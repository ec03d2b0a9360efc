package services

import (
	"context"

	"github.com/evfin/event_finance_app/internal/core/domain"
)

// ReportingSvcFacade computes read-only rollups across the three record
// families, expressed in the reporting currency at the current rate.
type ReportingSvcFacade interface {
	// BudgetLineRollups returns one row per budget line with planned,
	// spent, income and sponsored figures.
	BudgetLineRollups(ctx context.Context) ([]domain.BudgetLineRollup, error)

	// MacroCategoryRollups groups the line figures by macro category.
	MacroCategoryRollups(ctx context.Context) ([]domain.MacroCategoryRollup, error)

	// AccountRollups groups raw transactions by account label, with the
	// "No account" bucket sorted last.
	AccountRollups(ctx context.Context) ([]domain.AccountRollup, error)

	// Overview returns the event-wide totals.
	Overview(ctx context.Context) (*domain.OverviewTotals, error)

	// Dataset returns the full current ledger state in one read.
	Dataset(ctx context.Context) (*domain.Dataset, error)
}

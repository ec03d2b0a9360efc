package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/evfin/event_finance_app/internal/core/domain"
	portsrepo "github.com/evfin/event_finance_app/internal/core/ports/repositories"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/evfin/event_finance_app/internal/utils/fx"
)

// reportingService computes rollups across budget lines, transactions and
// sponsorships. Everything is read-only; sums are carried at full
// precision in the reporting currency and converted once per contributing
// record at the single current rate.
type reportingService struct {
	budgetLineRepo  portsrepo.BudgetLineReader
	transactionRepo portsrepo.TransactionReader
	sponsorshipRepo portsrepo.SponsorshipReader
	settingsRepo    portsrepo.SettingsRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	budgetLineRepo portsrepo.BudgetLineReader,
	transactionRepo portsrepo.TransactionReader,
	sponsorshipRepo portsrepo.SponsorshipReader,
	settingsRepo portsrepo.SettingsRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		budgetLineRepo:  budgetLineRepo,
		transactionRepo: transactionRepo,
		sponsorshipRepo: sponsorshipRepo,
		settingsRepo:    settingsRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadAll fetches the inputs every rollup needs. The three reads are not
// a single snapshot; eventual consistency is acceptable for this tool.
func (s *reportingService) loadAll(ctx context.Context) (*domain.Dataset, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for reporting: %w", err)
	}
	lines, err := s.budgetLineRepo.ListBudgetLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget lines for reporting: %w", err)
	}
	txns, err := s.transactionRepo.ListAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for reporting: %w", err)
	}
	sponsorships, err := s.sponsorshipRepo.ListAllSponsorships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sponsorships for reporting: %w", err)
	}
	return &domain.Dataset{
		Settings:     *settings,
		BudgetLines:  lines,
		Transactions: txns,
		Sponsorships: sponsorships,
	}, nil
}

// buildLineRollups computes the per-line figures. Allocation amounts are
// converted from their parent's currency into the reporting currency and
// the line-native figures are derived from that, so a HUF transaction can
// feed a EUR line. Allocations pointing at unknown lines are skipped;
// cascade delete should make them impossible, but reporting must not
// count orphans.
func (s *reportingService) buildLineRollups(ctx context.Context, ds *domain.Dataset) ([]domain.BudgetLineRollup, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	byID := make(map[string]*domain.BudgetLineRollup, len(ds.BudgetLines))
	order := make([]string, 0, len(ds.BudgetLines))
	for _, line := range ds.BudgetLines {
		planned := line.PlannedTotal()
		plannedReporting, err := fx.ToReporting(planned, line.CurrencyCode, ds.Settings)
		if err != nil {
			return nil, err
		}
		byID[line.BudgetLineID] = &domain.BudgetLineRollup{
			BudgetLineID:       line.BudgetLineID,
			Name:               line.Name,
			MacroCategory:      line.MacroCategory,
			CurrencyCode:       line.CurrencyCode,
			Planned:            planned,
			PlannedReporting:   plannedReporting,
			Spent:              decimal.Zero,
			Income:             decimal.Zero,
			Sponsored:          decimal.Zero,
			SpentReporting:     decimal.Zero,
			IncomeReporting:    decimal.Zero,
			SponsoredReporting: decimal.Zero,
		}
		order = append(order, line.BudgetLineID)
	}

	addAllocation := func(lineID string, amount decimal.Decimal, currency string, apply func(r *domain.BudgetLineRollup, reporting decimal.Decimal)) error {
		rollup, ok := byID[lineID]
		if !ok {
			logger.Warn("Skipping allocation referencing unknown budget line", slog.String("budget_line_id", lineID))
			return nil
		}
		reporting, err := fx.ToReporting(amount, currency, ds.Settings)
		if err != nil {
			return err
		}
		apply(rollup, reporting)
		return nil
	}

	for _, txn := range ds.Transactions {
		for _, a := range txn.Allocations {
			var apply func(r *domain.BudgetLineRollup, reporting decimal.Decimal)
			if txn.Type == domain.Expense {
				apply = func(r *domain.BudgetLineRollup, reporting decimal.Decimal) {
					r.SpentReporting = r.SpentReporting.Add(reporting)
				}
			} else {
				apply = func(r *domain.BudgetLineRollup, reporting decimal.Decimal) {
					r.IncomeReporting = r.IncomeReporting.Add(reporting)
				}
			}
			if err := addAllocation(a.BudgetLineID, a.Amount, txn.CurrencyCode, apply); err != nil {
				return nil, err
			}
		}
	}

	for _, sp := range ds.Sponsorships {
		// Cancelled sponsorships keep their allocation rows but
		// contribute nothing to any sponsored figure.
		if sp.Status == domain.SponsorshipCancelled {
			continue
		}
		for _, a := range sp.Allocations {
			err := addAllocation(a.BudgetLineID, a.Amount, sp.CurrencyCode, func(r *domain.BudgetLineRollup, reporting decimal.Decimal) {
				r.SponsoredReporting = r.SponsoredReporting.Add(reporting)
			})
			if err != nil {
				return nil, err
			}
		}
	}

	rollups := make([]domain.BudgetLineRollup, 0, len(order))
	for _, id := range order {
		r := byID[id]
		r.BalanceReporting = r.IncomeReporting.Add(r.SponsoredReporting).Sub(r.SpentReporting)

		var err error
		if r.Spent, err = fx.FromReporting(r.SpentReporting, r.CurrencyCode, ds.Settings); err != nil {
			return nil, err
		}
		if r.Income, err = fx.FromReporting(r.IncomeReporting, r.CurrencyCode, ds.Settings); err != nil {
			return nil, err
		}
		if r.Sponsored, err = fx.FromReporting(r.SponsoredReporting, r.CurrencyCode, ds.Settings); err != nil {
			return nil, err
		}
		rollups = append(rollups, *r)
	}
	return rollups, nil
}

// BudgetLineRollups returns one row per budget line.
func (s *reportingService) BudgetLineRollups(ctx context.Context) ([]domain.BudgetLineRollup, error) {
	ds, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildLineRollups(ctx, ds)
}

// MacroCategoryRollups groups the per-line figures by macro category,
// sorted by category label.
func (s *reportingService) MacroCategoryRollups(ctx context.Context) ([]domain.MacroCategoryRollup, error) {
	ds, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	lineRollups, err := s.buildLineRollups(ctx, ds)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*domain.MacroCategoryRollup)
	for _, r := range lineRollups {
		cat, ok := byCategory[r.MacroCategory]
		if !ok {
			cat = &domain.MacroCategoryRollup{
				MacroCategory:      r.MacroCategory,
				PlannedReporting:   decimal.Zero,
				SpentReporting:     decimal.Zero,
				IncomeReporting:    decimal.Zero,
				SponsoredReporting: decimal.Zero,
			}
			byCategory[r.MacroCategory] = cat
		}
		cat.PlannedReporting = cat.PlannedReporting.Add(r.PlannedReporting)
		cat.SpentReporting = cat.SpentReporting.Add(r.SpentReporting)
		cat.IncomeReporting = cat.IncomeReporting.Add(r.IncomeReporting)
		cat.SponsoredReporting = cat.SponsoredReporting.Add(r.SponsoredReporting)
	}

	rollups := make([]domain.MacroCategoryRollup, 0, len(byCategory))
	for _, cat := range byCategory {
		cat.BalanceReporting = cat.IncomeReporting.Add(cat.SponsoredReporting).Sub(cat.SpentReporting)
		rollups = append(rollups, *cat)
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].MacroCategory < rollups[j].MacroCategory
	})
	return rollups, nil
}

// AccountRollups groups raw transactions (not allocations) by account
// label. Transactions without an account fall into the "No account"
// bucket, which sorts last.
func (s *reportingService) AccountRollups(ctx context.Context) ([]domain.AccountRollup, error) {
	ds, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[string]*domain.AccountRollup)
	for _, txn := range ds.Transactions {
		account := txn.Account
		if account == "" {
			account = domain.NoAccountLabel
		}
		rollup, ok := byAccount[account]
		if !ok {
			rollup = &domain.AccountRollup{
				Account:          account,
				IncomeReporting:  decimal.Zero,
				ExpenseReporting: decimal.Zero,
			}
			byAccount[account] = rollup
		}

		reporting, err := fx.ToReporting(txn.Amount, txn.CurrencyCode, ds.Settings)
		if err != nil {
			return nil, err
		}
		if txn.Type == domain.Expense {
			rollup.ExpenseReporting = rollup.ExpenseReporting.Add(reporting)
		} else {
			rollup.IncomeReporting = rollup.IncomeReporting.Add(reporting)
		}
	}

	rollups := make([]domain.AccountRollup, 0, len(byAccount))
	for _, rollup := range byAccount {
		rollup.BalanceReporting = rollup.IncomeReporting.Sub(rollup.ExpenseReporting)
		rollups = append(rollups, *rollup)
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Account == domain.NoAccountLabel {
			return false
		}
		if rollups[j].Account == domain.NoAccountLabel {
			return true
		}
		return rollups[i].Account < rollups[j].Account
	})
	return rollups, nil
}

// Overview sums the per-line reporting figures into event-wide totals.
func (s *reportingService) Overview(ctx context.Context) (*domain.OverviewTotals, error) {
	ds, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	lineRollups, err := s.buildLineRollups(ctx, ds)
	if err != nil {
		return nil, err
	}

	totals := domain.OverviewTotals{
		PlannedReporting:   decimal.Zero,
		SpentReporting:     decimal.Zero,
		IncomeReporting:    decimal.Zero,
		SponsoredReporting: decimal.Zero,
	}
	for _, r := range lineRollups {
		totals.PlannedReporting = totals.PlannedReporting.Add(r.PlannedReporting)
		totals.SpentReporting = totals.SpentReporting.Add(r.SpentReporting)
		totals.IncomeReporting = totals.IncomeReporting.Add(r.IncomeReporting)
		totals.SponsoredReporting = totals.SponsoredReporting.Add(r.SponsoredReporting)
	}
	totals.BalanceReporting = totals.IncomeReporting.Add(totals.SponsoredReporting).Sub(totals.SpentReporting)
	return &totals, nil
}

// Dataset returns the full current ledger state in one read.
func (s *reportingService) Dataset(ctx context.Context) (*domain.Dataset, error) {
	return s.loadAll(ctx)
}

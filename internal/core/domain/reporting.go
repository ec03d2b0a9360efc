package domain

import "github.com/shopspring/decimal"

// NoAccountLabel is the sentinel bucket for transactions without an
// account in the per-account rollup. It sorts after every real account.
const NoAccountLabel = "No account"

// BudgetLineRollup aggregates one budget line's planned, spent, income and
// sponsored figures. Native amounts are in the line's own currency, the
// *Reporting fields are converted at the current rate.
type BudgetLineRollup struct {
	BudgetLineID  string
	Name          string
	MacroCategory string
	CurrencyCode  string

	Planned   decimal.Decimal
	Spent     decimal.Decimal
	Income    decimal.Decimal
	Sponsored decimal.Decimal

	PlannedReporting   decimal.Decimal
	SpentReporting     decimal.Decimal
	IncomeReporting    decimal.Decimal
	SponsoredReporting decimal.Decimal
	BalanceReporting   decimal.Decimal // income + sponsored - spent
}

// MacroCategoryRollup aggregates budget-line figures by macro category,
// entirely in the reporting currency.
type MacroCategoryRollup struct {
	MacroCategory      string
	PlannedReporting   decimal.Decimal
	SpentReporting     decimal.Decimal
	IncomeReporting    decimal.Decimal
	SponsoredReporting decimal.Decimal
	BalanceReporting   decimal.Decimal
}

// AccountRollup aggregates raw transactions (not allocations) by account
// label, in the reporting currency.
type AccountRollup struct {
	Account          string
	IncomeReporting  decimal.Decimal
	ExpenseReporting decimal.Decimal
	BalanceReporting decimal.Decimal // income - expense
}

// OverviewTotals are the event-wide sums across all budget lines.
type OverviewTotals struct {
	PlannedReporting   decimal.Decimal
	SpentReporting     decimal.Decimal
	IncomeReporting    decimal.Decimal
	SponsoredReporting decimal.Decimal
	BalanceReporting   decimal.Decimal
}

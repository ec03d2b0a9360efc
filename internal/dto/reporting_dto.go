package dto

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Rollup figures are computed at full precision and rounded to the
// reporting currency's two decimals only here, at the API boundary.
const reportingScale = 2

// BudgetLineRollupResponse is one budget line's rollup row.
type BudgetLineRollupResponse struct {
	BudgetLineID  string `json:"budgetLineID"`
	Name          string `json:"name"`
	MacroCategory string `json:"macroCategory"`
	CurrencyCode  string `json:"currencyCode"`

	Planned   decimal.Decimal `json:"planned"`
	Spent     decimal.Decimal `json:"spent"`
	Income    decimal.Decimal `json:"income"`
	Sponsored decimal.Decimal `json:"sponsored"`

	PlannedReporting   decimal.Decimal `json:"plannedReporting"`
	SpentReporting     decimal.Decimal `json:"spentReporting"`
	IncomeReporting    decimal.Decimal `json:"incomeReporting"`
	SponsoredReporting decimal.Decimal `json:"sponsoredReporting"`
	BalanceReporting   decimal.Decimal `json:"balanceReporting"`
}

// MacroCategoryRollupResponse is one macro category's rollup row.
type MacroCategoryRollupResponse struct {
	MacroCategory      string          `json:"macroCategory"`
	PlannedReporting   decimal.Decimal `json:"plannedReporting"`
	SpentReporting     decimal.Decimal `json:"spentReporting"`
	IncomeReporting    decimal.Decimal `json:"incomeReporting"`
	SponsoredReporting decimal.Decimal `json:"sponsoredReporting"`
	BalanceReporting   decimal.Decimal `json:"balanceReporting"`
}

// AccountRollupResponse is one account's rollup row.
type AccountRollupResponse struct {
	Account          string          `json:"account"`
	IncomeReporting  decimal.Decimal `json:"incomeReporting"`
	ExpenseReporting decimal.Decimal `json:"expenseReporting"`
	BalanceReporting decimal.Decimal `json:"balanceReporting"`
}

// OverviewResponse is the event-wide totals row.
type OverviewResponse struct {
	PlannedReporting   decimal.Decimal `json:"plannedReporting"`
	SpentReporting     decimal.Decimal `json:"spentReporting"`
	IncomeReporting    decimal.Decimal `json:"incomeReporting"`
	SponsoredReporting decimal.Decimal `json:"sponsoredReporting"`
	BalanceReporting   decimal.Decimal `json:"balanceReporting"`
}

// ToBudgetLineRollupResponses converts and rounds line rollups.
func ToBudgetLineRollupResponses(rollups []domain.BudgetLineRollup) []BudgetLineRollupResponse {
	responses := make([]BudgetLineRollupResponse, len(rollups))
	for i, r := range rollups {
		responses[i] = BudgetLineRollupResponse{
			BudgetLineID:       r.BudgetLineID,
			Name:               r.Name,
			MacroCategory:      r.MacroCategory,
			CurrencyCode:       r.CurrencyCode,
			Planned:            r.Planned.Round(reportingScale),
			Spent:              r.Spent.Round(reportingScale),
			Income:             r.Income.Round(reportingScale),
			Sponsored:          r.Sponsored.Round(reportingScale),
			PlannedReporting:   r.PlannedReporting.Round(reportingScale),
			SpentReporting:     r.SpentReporting.Round(reportingScale),
			IncomeReporting:    r.IncomeReporting.Round(reportingScale),
			SponsoredReporting: r.SponsoredReporting.Round(reportingScale),
			BalanceReporting:   r.BalanceReporting.Round(reportingScale),
		}
	}
	return responses
}

// ToMacroCategoryRollupResponses converts and rounds category rollups.
func ToMacroCategoryRollupResponses(rollups []domain.MacroCategoryRollup) []MacroCategoryRollupResponse {
	responses := make([]MacroCategoryRollupResponse, len(rollups))
	for i, r := range rollups {
		responses[i] = MacroCategoryRollupResponse{
			MacroCategory:      r.MacroCategory,
			PlannedReporting:   r.PlannedReporting.Round(reportingScale),
			SpentReporting:     r.SpentReporting.Round(reportingScale),
			IncomeReporting:    r.IncomeReporting.Round(reportingScale),
			SponsoredReporting: r.SponsoredReporting.Round(reportingScale),
			BalanceReporting:   r.BalanceReporting.Round(reportingScale),
		}
	}
	return responses
}

// ToAccountRollupResponses converts and rounds account rollups.
func ToAccountRollupResponses(rollups []domain.AccountRollup) []AccountRollupResponse {
	responses := make([]AccountRollupResponse, len(rollups))
	for i, r := range rollups {
		responses[i] = AccountRollupResponse{
			Account:          r.Account,
			IncomeReporting:  r.IncomeReporting.Round(reportingScale),
			ExpenseReporting: r.ExpenseReporting.Round(reportingScale),
			BalanceReporting: r.BalanceReporting.Round(reportingScale),
		}
	}
	return responses
}

// ToOverviewResponse converts and rounds the overview totals.
func ToOverviewResponse(o domain.OverviewTotals) OverviewResponse {
	return OverviewResponse{
		PlannedReporting:   o.PlannedReporting.Round(reportingScale),
		SpentReporting:     o.SpentReporting.Round(reportingScale),
		IncomeReporting:    o.IncomeReporting.Round(reportingScale),
		SponsoredReporting: o.SponsoredReporting.Round(reportingScale),
		BalanceReporting:   o.BalanceReporting.Round(reportingScale),
	}
}

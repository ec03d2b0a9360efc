package domain

import "github.com/shopspring/decimal"

// BudgetLine is a planned cost category: one row in the event's chart of
// budget items. The planned total is always derived from unit cost and
// quantity, never stored, so it cannot drift from edits.
type BudgetLine struct {
	BudgetLineID  string          `json:"budgetLineID"`
	Name          string          `json:"name"`
	MacroCategory string          `json:"macroCategory"` // free-text grouping key for rollups
	UnitCost      decimal.Decimal `json:"unitCost"`
	CurrencyCode  string          `json:"currencyCode"`
	Quantity      decimal.Decimal `json:"quantity"`
	Notes         string          `json:"notes"`
	AuditFields
}

// PlannedTotal returns unit cost multiplied by quantity.
func (b BudgetLine) PlannedTotal() decimal.Decimal {
	return b.UnitCost.Mul(b.Quantity)
}

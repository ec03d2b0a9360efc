package models

import "github.com/shopspring/decimal"

// BudgetLine is the budget_lines table row. The planned total is not a
// column; it is derived on read.
type BudgetLine struct {
	BudgetLineID  string          `json:"budgetLineID"`
	Name          string          `json:"name"`
	MacroCategory string          `json:"macroCategory"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	CurrencyCode  string          `json:"currencyCode"`
	Quantity      decimal.Decimal `json:"quantity"`
	Notes         string          `json:"notes"`
	AuditFields
}

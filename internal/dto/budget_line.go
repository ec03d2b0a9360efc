package dto

import (
	"github.com/evfin/event_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetLineRequest defines the payload for creating a budget line.
type CreateBudgetLineRequest struct {
	Name          string          `json:"name" binding:"required"`
	MacroCategory string          `json:"macroCategory" binding:"required"`
	UnitCost      decimal.Decimal `json:"unitCost" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	Notes         string          `json:"notes"`
}

// UpdateBudgetLineRequest replaces all fields of a budget line. There are
// no partial-field semantics; clients resend the whole record.
type UpdateBudgetLineRequest struct {
	Name          string          `json:"name" binding:"required"`
	MacroCategory string          `json:"macroCategory" binding:"required"`
	UnitCost      decimal.Decimal `json:"unitCost" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
	Notes         string          `json:"notes"`
}

// BudgetLineResponse defines the data returned for a budget line.
type BudgetLineResponse struct {
	BudgetLineID  string          `json:"budgetLineID"`
	Name          string          `json:"name"`
	MacroCategory string          `json:"macroCategory"`
	UnitCost      decimal.Decimal `json:"unitCost"`
	CurrencyCode  string          `json:"currencyCode"`
	Quantity      decimal.Decimal `json:"quantity"`
	PlannedTotal  decimal.Decimal `json:"plannedTotal"`
	Notes         string          `json:"notes"`
	AuditResponse
}

// ToBudgetLineResponse converts a domain.BudgetLine to its response DTO.
func ToBudgetLineResponse(line *domain.BudgetLine) BudgetLineResponse {
	return BudgetLineResponse{
		BudgetLineID:  line.BudgetLineID,
		Name:          line.Name,
		MacroCategory: line.MacroCategory,
		UnitCost:      line.UnitCost,
		CurrencyCode:  line.CurrencyCode,
		Quantity:      line.Quantity,
		PlannedTotal:  line.PlannedTotal(),
		Notes:         line.Notes,
		AuditResponse: toAuditResponse(line.AuditFields),
	}
}

// ToListBudgetLineResponse converts a slice of budget lines.
func ToListBudgetLineResponse(lines []domain.BudgetLine) []BudgetLineResponse {
	responses := make([]BudgetLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToBudgetLineResponse(&lines[i])
	}
	return responses
}
